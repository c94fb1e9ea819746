package roster

// Entry is one row of the SIS export: one student enrolled in one class
// section. A student taking six classes appears as six entries.
type Entry struct {
	// StudentName as written in the SIS, usually "Last, First Middle".
	StudentName string `json:"student_name"`
	// CourseLabel is the SIS display name of the class ("Chemistry Honors").
	CourseLabel string `json:"course_label"`
	// Period is the class period as exported, possibly zero-padded ("03").
	Period string `json:"period"`
	// Section is the SIS section number, kept verbatim for export output.
	Section string `json:"section"`
	// Day is the meeting-day code ("A", "B", ...) when the export has one.
	Day string `json:"day"`
	// TeacherName as written in the SIS.
	TeacherName string `json:"teacher_name"`
}

// Course is a platform course as listed by the Classroom API.
type Course struct {
	// ID is the platform's opaque course identifier.
	ID string `json:"id"`
	// Name is the course display name, which by local convention embeds the
	// class period ("3 Chemistry", "Period 4 Biology").
	Name string `json:"name"`
}

// Student is a platform roster member of a single course.
type Student struct {
	// FullName as rendered by the platform profile, usually "First Last".
	FullName string `json:"full_name"`
	// Email is the student's account address, may be empty when the API
	// withholds it.
	Email string `json:"email,omitempty"`
	// CourseID is the platform course this membership belongs to.
	CourseID string `json:"course_id"`
	// CourseName is the display name of that course, carried along so a
	// membership row is self-describing in exports.
	CourseName string `json:"course_name"`
}

// CanonicalName is the normalized form of a person name produced by
// Normalize. All fields are lowercase and single-spaced.
type CanonicalName struct {
	// First is the given name, first token only ("John Michael" keeps "john").
	First string `json:"first"`
	// Last is the surname, possibly multi-token ("van der berg").
	Last string `json:"last"`
	// Full is "first last", the primary comparison key.
	Full string `json:"full"`
}
