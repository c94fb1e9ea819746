package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGroupByPeriod_Buckets tests basic bucketing by normalized period.
func TestGroupByPeriod_Buckets(t *testing.T) {
	entries := []Entry{
		{StudentName: "Doe, John", Period: "1"},
		{StudentName: "Smith, Jane", Period: "2"},
		{StudentName: "Park, Amy", Period: "1"},
	}

	groups := GroupByPeriod(entries)
	assert.Len(t, groups, 2)
	assert.Len(t, groups["1"], 2)
	assert.Len(t, groups["2"], 1)
	assert.Equal(t, "Doe, John", groups["1"][0].StudentName)
	assert.Equal(t, "Park, Amy", groups["1"][1].StudentName)
}

// TestGroupByPeriod_PeriodNormalization tests that "03" and "3" share a bucket.
func TestGroupByPeriod_PeriodNormalization(t *testing.T) {
	entries := []Entry{
		{StudentName: "Doe, John", Period: "03"},
		{StudentName: "Smith, Jane", Period: "3"},
	}

	groups := GroupByPeriod(entries)
	assert.Len(t, groups, 1)
	assert.Len(t, groups["3"], 2)
}

// TestGroupByPeriod_DedupFirstWins tests duplicate suppression by canonical name.
func TestGroupByPeriod_DedupFirstWins(t *testing.T) {
	entries := []Entry{
		{StudentName: "Doe, John", CourseLabel: "Chemistry", Period: "1"},
		{StudentName: "DOE, JOHN MICHAEL", CourseLabel: "Chemistry Lab", Period: "1"},
		{StudentName: "Doe, John", CourseLabel: "Chemistry", Period: "2"},
	}

	groups := GroupByPeriod(entries)

	// Same canonical name twice in period 1: the first row is kept.
	assert.Len(t, groups["1"], 1)
	assert.Equal(t, "Chemistry", groups["1"][0].CourseLabel)

	// The same student in another period is not a duplicate.
	assert.Len(t, groups["2"], 1)
}

// TestGroupByPeriod_EmptyPeriod tests that period-less rows are kept under "".
func TestGroupByPeriod_EmptyPeriod(t *testing.T) {
	entries := []Entry{
		{StudentName: "Doe, John", Period: ""},
		{StudentName: "Smith, Jane", Period: "   "},
	}

	groups := GroupByPeriod(entries)
	assert.Len(t, groups, 1)
	assert.Len(t, groups[""], 2)
}

// TestGroupByPeriod_Empty tests the degenerate inputs.
func TestGroupByPeriod_Empty(t *testing.T) {
	assert.Empty(t, GroupByPeriod(nil))
	assert.Empty(t, GroupByPeriod([]Entry{}))
}

// TestSortedPeriods tests numeric-then-lexicographic ordering.
func TestSortedPeriods(t *testing.T) {
	groups := map[string][]Entry{
		"10": {},
		"2":  {},
		"1":  {},
		"A":  {},
		"":   {},
	}

	// Numeric ascending by value, then non-numeric lexicographically;
	// "" is non-numeric and sorts before "A".
	assert.Equal(t, []string{"1", "2", "10", "", "A"}, SortedPeriods(groups))
}

// TestPrimaryCourseLabel tests majority vote with first-seen tie-breaking.
func TestPrimaryCourseLabel(t *testing.T) {
	entries := []Entry{
		{CourseLabel: "Chemistry"},
		{CourseLabel: "Chemistry Honors"},
		{CourseLabel: "Chemistry"},
	}
	assert.Equal(t, "Chemistry", PrimaryCourseLabel(entries))

	// Tie: the label that reached the top count first wins.
	tied := []Entry{
		{CourseLabel: "Biology"},
		{CourseLabel: "Chemistry"},
		{CourseLabel: "Chemistry"},
		{CourseLabel: "Biology"},
	}
	assert.Equal(t, "Biology", PrimaryCourseLabel(tied))

	// Blank labels never win.
	blanks := []Entry{
		{CourseLabel: ""},
		{CourseLabel: "  "},
		{CourseLabel: "Chemistry"},
	}
	assert.Equal(t, "Chemistry", PrimaryCourseLabel(blanks))

	assert.Equal(t, "", PrimaryCourseLabel(nil))
	assert.Equal(t, "", PrimaryCourseLabel([]Entry{{CourseLabel: "   "}}))
}
