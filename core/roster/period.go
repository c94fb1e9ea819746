package roster

import (
	"regexp"
	"strconv"
	"strings"
)

// Course names on the platform embed the class period in a handful of local
// conventions. Patterns are tried in order and the first hit wins, so a name
// like "3 Chemistry P4" reads as period 3, not 4.
var periodPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(\d+)[\s-]`),        // "3 Chemistry", "4-Biology"
	regexp.MustCompile(`(?i)period\s*(\d+)`), // "Period 4", "period4"
	regexp.MustCompile(`\((\d+)\)`),          // "Chemistry (3)"
	regexp.MustCompile(`(?i)\bp(\d+)\b`),     // "Chem P3", but not "AP3"
	regexp.MustCompile(`(?i)pd\s*(\d+)`),     // "Pd 4", "pd4"
}

// ExtractPeriod pulls the class period out of a platform course name.
// It returns the captured digits verbatim ("Period 04" yields "04") and
// false when no convention matches.
func ExtractPeriod(courseName string) (string, bool) {
	for _, pattern := range periodPatterns {
		if match := pattern.FindStringSubmatch(courseName); match != nil {
			return match[1], true
		}
	}
	return "", false
}

// NormalizePeriod maps period strings to a comparable form: numeric values
// lose leading zeros ("03" becomes "3") while non-numeric values pass
// through with surrounding whitespace trimmed.
func NormalizePeriod(period string) string {
	period = strings.TrimSpace(period)
	if n, err := strconv.Atoi(period); err == nil {
		return strconv.Itoa(n)
	}
	return period
}

// MatchCourseForPeriod finds the platform course whose name embeds the given
// SIS period, comparing both sides in normalized form so "03" aligns with
// "Period 3". Courses are scanned in the order given and the first claimant
// wins; CoursesForPeriod lists the rest when ambiguity matters. The second
// return is false when no course claims the period.
func MatchCourseForPeriod(period string, courses []Course) (Course, bool) {
	want := NormalizePeriod(period)
	if want == "" {
		return Course{}, false
	}
	for _, course := range courses {
		if got, ok := ExtractPeriod(course.Name); ok && NormalizePeriod(got) == want {
			return course, true
		}
	}
	return Course{}, false
}

// CoursesForPeriod returns every course whose name claims the given period,
// in input order. More than one element means the period mapping is
// ambiguous and MatchCourseForPeriod silently picked the first.
func CoursesForPeriod(period string, courses []Course) []Course {
	want := NormalizePeriod(period)
	if want == "" {
		return nil
	}
	var claimants []Course
	for _, course := range courses {
		if got, ok := ExtractPeriod(course.Name); ok && NormalizePeriod(got) == want {
			claimants = append(claimants, course)
		}
	}
	return claimants
}
