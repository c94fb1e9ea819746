package roster

import (
	"sort"
	"strconv"
	"strings"
)

// GroupByPeriod buckets SIS entries by normalized period and drops duplicate
// students within each bucket. Two entries count as duplicates when their
// names normalize to the same canonical full form; the first occurrence wins
// and input order is preserved, so repeated runs over the same export
// produce identical groups. Entries with no period land under the "" key
// rather than being lost.
func GroupByPeriod(entries []Entry) map[string][]Entry {
	groups := make(map[string][]Entry)
	seen := make(map[string]map[string]struct{})
	for _, entry := range entries {
		period := NormalizePeriod(entry.Period)
		key := Normalize(entry.StudentName).Full
		if seen[period] == nil {
			seen[period] = make(map[string]struct{})
		}
		if _, dup := seen[period][key]; dup {
			continue
		}
		seen[period][key] = struct{}{}
		groups[period] = append(groups[period], entry)
	}
	return groups
}

// SortedPeriods returns the group keys in presentation order: numeric
// periods ascending by value (so "10" follows "2"), then non-numeric
// periods lexicographically.
func SortedPeriods(groups map[string][]Entry) []string {
	periods := make([]string, 0, len(groups))
	for period := range groups {
		periods = append(periods, period)
	}
	sort.Slice(periods, func(i, j int) bool {
		return PeriodLess(periods[i], periods[j])
	})
	return periods
}

// PeriodLess is the presentation order for period labels: numeric before
// non-numeric, numeric compared by value, the rest lexicographically.
func PeriodLess(a, b string) bool {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	switch {
	case aerr == nil && berr == nil:
		return ai < bi
	case aerr == nil:
		return true
	case berr == nil:
		return false
	default:
		return a < b
	}
}

// PrimaryCourseLabel picks the label that should represent a period group in
// report headers: the most frequent non-blank CourseLabel, ties broken in
// favor of the label whose first occurrence comes earliest. Groups with only
// blank labels yield "".
func PrimaryCourseLabel(entries []Entry) string {
	counts := make(map[string]int)
	var order []string
	for _, entry := range entries {
		label := strings.TrimSpace(entry.CourseLabel)
		if label == "" {
			continue
		}
		if counts[label] == 0 {
			order = append(order, label)
		}
		counts[label]++
	}

	best := ""
	bestCount := 0
	for _, label := range order {
		if counts[label] > bestCount {
			best, bestCount = label, counts[label]
		}
	}
	return best
}
