package reconcile

import "github.com/bme-wacoisd/google-classroom/core/roster"

// Options controls matching strictness for a reconciliation run.
// The zero value gives the default strict behavior.
type Options struct {
	// AcceptSwapped extends name matching to names whose first and last
	// tokens are reversed ("Rivera Jon" vs "Jon Rivera"). Off by default:
	// it recovers SIS rows typed surname-first without a comma, at the cost
	// of occasional false positives on mirrored name pairs.
	AcceptSwapped bool
}

// ComparisonResult is the reconciliation outcome for one class period.
type ComparisonResult struct {
	// Period is the normalized class period this result covers.
	Period string `json:"period"`

	// CourseName is the SIS-side label for the period, chosen by majority
	// vote over the group's course labels.
	CourseName string `json:"course_name"`

	// PlatformCourseID is the platform course aligned to this period.
	// Empty when no course claimed the period.
	PlatformCourseID string `json:"platform_course_id,omitempty"`

	// PlatformCourseName is the display name of the aligned course.
	PlatformCourseName string `json:"platform_course_name,omitempty"`

	// SourceNames lists the deduplicated SIS student names for the period,
	// verbatim as exported, in first-appearance order.
	SourceNames []string `json:"source_names"`

	// PlatformNames lists the platform roster names for the aligned course,
	// verbatim as supplied. Empty when the period is unmatched.
	PlatformNames []string `json:"platform_names"`

	// Matched holds the source names found on the platform roster.
	Matched []string `json:"matched"`

	// MissingFromPlatform holds the source names absent from the platform
	// roster. Together with Matched it partitions SourceNames exactly.
	MissingFromPlatform []string `json:"missing_from_platform"`

	// ExtraInPlatform holds platform names that match no source name.
	ExtraInPlatform []string `json:"extra_in_platform"`

	// SourceEntries carries the full deduplicated SIS rows behind
	// SourceNames so exporters can emit section, day, and teacher columns
	// without re-deriving the grouping.
	SourceEntries []roster.Entry `json:"source_entries"`
}

// Summary holds the aggregate counts for one reconciliation run. All values
// are straight sums over the per-period results.
type Summary struct {
	// TotalSource counts deduplicated SIS students across all periods.
	TotalSource int `json:"total_source"`

	// TotalPlatform counts platform roster rows across matched courses.
	TotalPlatform int `json:"total_platform"`

	// TotalMatched counts source names found on the platform.
	TotalMatched int `json:"total_matched"`

	// TotalMissing counts source names absent from the platform.
	TotalMissing int `json:"total_missing"`

	// TotalExtra counts platform names absent from the SIS.
	TotalExtra int `json:"total_extra"`
}

// Delta reports how this summary moved relative to an earlier run,
// as this minus prev per counter.
func (s Summary) Delta(prev Summary) SummaryDelta {
	return SummaryDelta{
		Source:   s.TotalSource - prev.TotalSource,
		Platform: s.TotalPlatform - prev.TotalPlatform,
		Matched:  s.TotalMatched - prev.TotalMatched,
		Missing:  s.TotalMissing - prev.TotalMissing,
		Extra:    s.TotalExtra - prev.TotalExtra,
	}
}

// SummaryDelta is the per-counter difference between two run summaries.
// Negative values mean the counter shrank since the earlier run.
type SummaryDelta struct {
	Source   int `json:"source"`
	Platform int `json:"platform"`
	Matched  int `json:"matched"`
	Missing  int `json:"missing"`
	Extra    int `json:"extra"`
}

// RosterDiff is the full output of one reconciliation run.
type RosterDiff struct {
	// Results holds one ComparisonResult per period, numeric periods first
	// in ascending value order, then non-numeric periods lexicographically.
	Results []ComparisonResult `json:"results"`

	// UnmatchedPeriods lists the periods no platform course claimed, in the
	// same order their results appear.
	UnmatchedPeriods []string `json:"unmatched_periods"`

	// Summary aggregates the counts across Results.
	Summary Summary `json:"summary"`
}
