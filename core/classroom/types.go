package classroom

// Wire shapes for the platform's list endpoints. Field names follow the
// API's camelCase convention and stay private to this package; everything
// leaving it is mapped to roster types.

type courseList struct {
	Courses       []courseResource `json:"courses"`
	NextPageToken string           `json:"nextPageToken"`
}

type courseResource struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Section     string `json:"section"`
	CourseState string `json:"courseState"`
}

type studentList struct {
	Students      []studentResource `json:"students"`
	NextPageToken string            `json:"nextPageToken"`
}

type studentResource struct {
	CourseID string `json:"courseId"`
	UserID   string `json:"userId"`
	Profile  struct {
		ID   string `json:"id"`
		Name struct {
			GivenName  string `json:"givenName"`
			FamilyName string `json:"familyName"`
			FullName   string `json:"fullName"`
		} `json:"name"`
		EmailAddress string `json:"emailAddress"`
	} `json:"profile"`
}
