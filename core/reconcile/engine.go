package reconcile

import "github.com/bme-wacoisd/google-classroom/core/roster"

// Reconcile compares the SIS export against the platform rosters and returns
// the full diff. Source entries are grouped and deduplicated by normalized
// period, each period is aligned to a platform course by the period embedded
// in the course name, and every name on each side is classified by the name
// matcher configured through opts.
//
// The call is total: nil or empty inputs yield an empty diff with zeroed
// counts, and a period no course claims is reported in UnmatchedPeriods
// with all of its source names counted missing.
func Reconcile(entries []roster.Entry, courses []roster.Course, studentsByCourse map[string][]roster.Student, opts Options) *RosterDiff {
	matcher := roster.Matcher{AcceptSwapped: opts.AcceptSwapped}
	groups := roster.GroupByPeriod(entries)
	periods := roster.SortedPeriods(groups)

	diff := &RosterDiff{
		Results:          make([]ComparisonResult, 0, len(periods)),
		UnmatchedPeriods: []string{},
	}
	for _, period := range periods {
		result, courseFound := comparePeriod(period, groups[period], courses, studentsByCourse, matcher)
		if !courseFound {
			diff.UnmatchedPeriods = append(diff.UnmatchedPeriods, period)
		}

		diff.Summary.TotalSource += len(result.SourceNames)
		diff.Summary.TotalPlatform += len(result.PlatformNames)
		diff.Summary.TotalMatched += len(result.Matched)
		diff.Summary.TotalMissing += len(result.MissingFromPlatform)
		diff.Summary.TotalExtra += len(result.ExtraInPlatform)
		diff.Results = append(diff.Results, result)
	}
	return diff
}

// comparePeriod builds the ComparisonResult for one deduplicated period
// group. The second return reports whether a platform course claimed the
// period; without one, every source name is missing by definition.
func comparePeriod(period string, group []roster.Entry, courses []roster.Course, studentsByCourse map[string][]roster.Student, matcher roster.Matcher) (ComparisonResult, bool) {
	result := ComparisonResult{
		Period:              period,
		CourseName:          roster.PrimaryCourseLabel(group),
		SourceEntries:       group,
		SourceNames:         make([]string, 0, len(group)),
		PlatformNames:       []string{},
		Matched:             []string{},
		MissingFromPlatform: []string{},
		ExtraInPlatform:     []string{},
	}
	for _, entry := range group {
		result.SourceNames = append(result.SourceNames, entry.StudentName)
	}

	course, ok := roster.MatchCourseForPeriod(period, courses)
	if !ok {
		result.MissingFromPlatform = append(result.MissingFromPlatform, result.SourceNames...)
		return result, false
	}
	result.PlatformCourseID = course.ID
	result.PlatformCourseName = course.Name
	for _, student := range studentsByCourse[course.ID] {
		result.PlatformNames = append(result.PlatformNames, student.FullName)
	}

	for _, name := range result.SourceNames {
		if matchesAny(matcher, name, result.PlatformNames) {
			result.Matched = append(result.Matched, name)
		} else {
			result.MissingFromPlatform = append(result.MissingFromPlatform, name)
		}
	}
	for _, name := range result.PlatformNames {
		if !matchesAny(matcher, name, result.SourceNames) {
			result.ExtraInPlatform = append(result.ExtraInPlatform, name)
		}
	}
	return result, true
}

// matchesAny scans candidates in order and stops at the first match.
func matchesAny(matcher roster.Matcher, name string, candidates []string) bool {
	for _, candidate := range candidates {
		if matcher.Match(name, candidate) {
			return true
		}
	}
	return false
}
