package reconcile

import (
	"testing"

	"github.com/bme-wacoisd/google-classroom/core/roster"

	"github.com/stretchr/testify/assert"
)

// TestReconcile_EndToEnd tests the basic matched/missing classification for
// a single period.
func TestReconcile_EndToEnd(t *testing.T) {
	entries := []roster.Entry{
		{StudentName: "Doe, John", Period: "3", CourseLabel: "Chemistry"},
		{StudentName: "Smith, Jane", Period: "3", CourseLabel: "Chemistry"},
	}
	courses := []roster.Course{{ID: "c1", Name: "3 Chemistry"}}
	students := map[string][]roster.Student{
		"c1": {{FullName: "John Doe", CourseID: "c1"}},
	}

	diff := Reconcile(entries, courses, students, Options{})

	assert.Len(t, diff.Results, 1)
	result := diff.Results[0]
	assert.Equal(t, "3", result.Period)
	assert.Equal(t, "Chemistry", result.CourseName)
	assert.Equal(t, "c1", result.PlatformCourseID)
	assert.Equal(t, "3 Chemistry", result.PlatformCourseName)

	// Matched names are reported verbatim from the SIS side.
	assert.Equal(t, []string{"Doe, John"}, result.Matched)
	assert.Equal(t, []string{"Smith, Jane"}, result.MissingFromPlatform)
	assert.Empty(t, result.ExtraInPlatform)

	assert.Empty(t, diff.UnmatchedPeriods)
	assert.Equal(t, 2, diff.Summary.TotalSource)
	assert.Equal(t, 1, diff.Summary.TotalPlatform)
	assert.Equal(t, 1, diff.Summary.TotalMatched)
	assert.Equal(t, 1, diff.Summary.TotalMissing)
	assert.Equal(t, 0, diff.Summary.TotalExtra)
}

// TestReconcile_ExtraInPlatform tests that platform-only students are
// reported as extras.
func TestReconcile_ExtraInPlatform(t *testing.T) {
	entries := []roster.Entry{
		{StudentName: "Doe, John", Period: "1", CourseLabel: "Biology"},
	}
	courses := []roster.Course{{ID: "c1", Name: "1 Biology"}}
	students := map[string][]roster.Student{
		"c1": {
			{FullName: "John Doe", CourseID: "c1"},
			{FullName: "Sam Stray", CourseID: "c1"},
		},
	}

	diff := Reconcile(entries, courses, students, Options{})

	result := diff.Results[0]
	assert.Equal(t, []string{"Doe, John"}, result.Matched)
	assert.Empty(t, result.MissingFromPlatform)
	assert.Equal(t, []string{"Sam Stray"}, result.ExtraInPlatform)
	assert.Equal(t, 1, diff.Summary.TotalExtra)
}

// TestReconcile_UnmatchedPeriod tests that a period no course claims is
// reported with all its source names missing.
func TestReconcile_UnmatchedPeriod(t *testing.T) {
	entries := []roster.Entry{
		{StudentName: "Doe, John", Period: "7", CourseLabel: "Art"},
		{StudentName: "Smith, Jane", Period: "7", CourseLabel: "Art"},
	}
	courses := []roster.Course{{ID: "c1", Name: "3 Chemistry"}}

	diff := Reconcile(entries, courses, nil, Options{})

	assert.Equal(t, []string{"7"}, diff.UnmatchedPeriods)
	result := diff.Results[0]
	assert.Empty(t, result.PlatformCourseID)
	assert.Empty(t, result.PlatformNames)
	assert.Empty(t, result.Matched)
	assert.Equal(t, []string{"Doe, John", "Smith, Jane"}, result.MissingFromPlatform)

	assert.Equal(t, 2, diff.Summary.TotalSource)
	assert.Equal(t, 2, diff.Summary.TotalMissing)
	assert.Equal(t, 0, diff.Summary.TotalPlatform)
}

// TestReconcile_MatchedCourseEmptyRoster tests a claimed period whose
// platform roster is empty: everyone is missing but the period is matched.
func TestReconcile_MatchedCourseEmptyRoster(t *testing.T) {
	entries := []roster.Entry{
		{StudentName: "Doe, John", Period: "2", CourseLabel: "History"},
	}
	courses := []roster.Course{{ID: "c2", Name: "2 History"}}

	diff := Reconcile(entries, courses, map[string][]roster.Student{}, Options{})

	assert.Empty(t, diff.UnmatchedPeriods)
	result := diff.Results[0]
	assert.Equal(t, "c2", result.PlatformCourseID)
	assert.Empty(t, result.PlatformNames)
	assert.Equal(t, []string{"Doe, John"}, result.MissingFromPlatform)
}

// TestReconcile_PartitionInvariant tests that matched plus missing always
// covers the source names and matched-by-platform plus extra covers the
// platform names, for every result.
func TestReconcile_PartitionInvariant(t *testing.T) {
	entries := []roster.Entry{
		{StudentName: "Doe, John", Period: "1", CourseLabel: "Biology"},
		{StudentName: "Smith, Jane", Period: "1", CourseLabel: "Biology"},
		{StudentName: "Park, Amy", Period: "1", CourseLabel: "Biology"},
		{StudentName: "Lee, Ben", Period: "2", CourseLabel: "History"},
		{StudentName: "Cruz, Ana", Period: "7", CourseLabel: "Art"},
	}
	courses := []roster.Course{
		{ID: "c1", Name: "1 Biology"},
		{ID: "c2", Name: "2 History"},
	}
	students := map[string][]roster.Student{
		"c1": {
			{FullName: "John Doe", CourseID: "c1"},
			{FullName: "Amy Park", CourseID: "c1"},
			{FullName: "Zed Extra", CourseID: "c1"},
		},
		"c2": {},
	}

	diff := Reconcile(entries, courses, students, Options{})
	assert.Len(t, diff.Results, 3)

	for _, result := range diff.Results {
		assert.Equal(t, len(result.SourceNames), len(result.Matched)+len(result.MissingFromPlatform),
			"period %s: source partition", result.Period)
		extraAndMatched := 0
		for _, name := range result.PlatformNames {
			for _, extra := range result.ExtraInPlatform {
				if name == extra {
					extraAndMatched++
					break
				}
			}
		}
		assert.Equal(t, len(result.ExtraInPlatform), extraAndMatched,
			"period %s: every extra comes from the platform list", result.Period)
		assert.LessOrEqual(t, len(result.ExtraInPlatform), len(result.PlatformNames),
			"period %s: platform partition", result.Period)
	}

	// Aggregate counts are straight sums of the per-period lists.
	wantSource, wantPlatform, wantMatched, wantMissing, wantExtra := 0, 0, 0, 0, 0
	for _, result := range diff.Results {
		wantSource += len(result.SourceNames)
		wantPlatform += len(result.PlatformNames)
		wantMatched += len(result.Matched)
		wantMissing += len(result.MissingFromPlatform)
		wantExtra += len(result.ExtraInPlatform)
	}
	assert.Equal(t, wantSource, diff.Summary.TotalSource)
	assert.Equal(t, wantPlatform, diff.Summary.TotalPlatform)
	assert.Equal(t, wantMatched, diff.Summary.TotalMatched)
	assert.Equal(t, wantMissing, diff.Summary.TotalMissing)
	assert.Equal(t, wantExtra, diff.Summary.TotalExtra)
}

// TestReconcile_Idempotent tests that identical inputs yield identical diffs.
func TestReconcile_Idempotent(t *testing.T) {
	entries := []roster.Entry{
		{StudentName: "Doe, John", Period: "3", CourseLabel: "Chemistry"},
		{StudentName: "Smith, Jane", Period: "3", CourseLabel: "Chemistry"},
		{StudentName: "Cruz, Ana", Period: "7", CourseLabel: "Art"},
	}
	courses := []roster.Course{{ID: "c1", Name: "3 Chemistry"}}
	students := map[string][]roster.Student{
		"c1": {{FullName: "John Doe", CourseID: "c1"}},
	}

	first := Reconcile(entries, courses, students, Options{})
	second := Reconcile(entries, courses, students, Options{})
	assert.Equal(t, first, second)
}

// TestReconcile_EmptyInputs tests the degenerate all-empty run.
func TestReconcile_EmptyInputs(t *testing.T) {
	diff := Reconcile(nil, nil, nil, Options{})

	assert.NotNil(t, diff)
	assert.Empty(t, diff.Results)
	assert.Empty(t, diff.UnmatchedPeriods)
	assert.Equal(t, Summary{}, diff.Summary)
}

// TestReconcile_DuplicateSourceRows tests that duplicate SIS rows collapse
// before counting.
func TestReconcile_DuplicateSourceRows(t *testing.T) {
	entries := []roster.Entry{
		{StudentName: "Doe, John", Period: "3", CourseLabel: "Chemistry"},
		{StudentName: "DOE, JOHN MICHAEL", Period: "03", CourseLabel: "Chemistry"},
	}
	courses := []roster.Course{{ID: "c1", Name: "3 Chemistry"}}
	students := map[string][]roster.Student{
		"c1": {{FullName: "John Doe", CourseID: "c1"}},
	}

	diff := Reconcile(entries, courses, students, Options{})

	assert.Len(t, diff.Results, 1)
	assert.Equal(t, []string{"Doe, John"}, diff.Results[0].SourceNames)
	assert.Equal(t, 1, diff.Summary.TotalSource)
	assert.Equal(t, 1, diff.Summary.TotalMatched)
	assert.Equal(t, 0, diff.Summary.TotalMissing)
}

// TestReconcile_PeriodOrdering tests numeric-then-lexicographic result order.
func TestReconcile_PeriodOrdering(t *testing.T) {
	entries := []roster.Entry{
		{StudentName: "A, A", Period: "10"},
		{StudentName: "B, B", Period: "2"},
		{StudentName: "C, C", Period: "1"},
		{StudentName: "D, D", Period: "HR"},
	}

	diff := Reconcile(entries, nil, nil, Options{})

	got := make([]string, 0, len(diff.Results))
	for _, result := range diff.Results {
		got = append(got, result.Period)
	}
	assert.Equal(t, []string{"1", "2", "10", "HR"}, got)
	assert.Equal(t, []string{"1", "2", "10", "HR"}, diff.UnmatchedPeriods)
}

// TestReconcile_SwappedNamesOption tests that reversed-token matching only
// applies when asked for.
func TestReconcile_SwappedNamesOption(t *testing.T) {
	entries := []roster.Entry{
		{StudentName: "Rivera Jon", Period: "1", CourseLabel: "Math"},
	}
	courses := []roster.Course{{ID: "c1", Name: "1 Math"}}
	students := map[string][]roster.Student{
		"c1": {{FullName: "Jon Rivera", CourseID: "c1"}},
	}

	strict := Reconcile(entries, courses, students, Options{})
	assert.Empty(t, strict.Results[0].Matched)
	assert.Equal(t, []string{"Rivera Jon"}, strict.Results[0].MissingFromPlatform)
	assert.Equal(t, []string{"Jon Rivera"}, strict.Results[0].ExtraInPlatform)

	loose := Reconcile(entries, courses, students, Options{AcceptSwapped: true})
	assert.Equal(t, []string{"Rivera Jon"}, loose.Results[0].Matched)
	assert.Empty(t, loose.Results[0].MissingFromPlatform)
	assert.Empty(t, loose.Results[0].ExtraInPlatform)
}

// TestReconcile_SourceEntriesCarried tests that the deduplicated rows ride
// along for exporters.
func TestReconcile_SourceEntriesCarried(t *testing.T) {
	entries := []roster.Entry{
		{StudentName: "Doe, John", Period: "3", CourseLabel: "Chemistry", Section: "301", Day: "A", TeacherName: "Adams, Kate"},
	}

	diff := Reconcile(entries, nil, nil, Options{})

	assert.Len(t, diff.Results[0].SourceEntries, 1)
	entry := diff.Results[0].SourceEntries[0]
	assert.Equal(t, "301", entry.Section)
	assert.Equal(t, "A", entry.Day)
	assert.Equal(t, "Adams, Kate", entry.TeacherName)
}

// TestSummary_Delta tests run-over-run movement.
func TestSummary_Delta(t *testing.T) {
	prev := Summary{TotalSource: 100, TotalPlatform: 90, TotalMatched: 85, TotalMissing: 15, TotalExtra: 5}
	curr := Summary{TotalSource: 102, TotalPlatform: 95, TotalMatched: 94, TotalMissing: 8, TotalExtra: 1}

	delta := curr.Delta(prev)
	assert.Equal(t, SummaryDelta{Source: 2, Platform: 5, Matched: 9, Missing: -7, Extra: -4}, delta)

	assert.Equal(t, SummaryDelta{}, curr.Delta(curr))
}
