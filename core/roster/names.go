package roster

import "strings"

// Normalize folds a raw person name into its canonical comparable form.
//
// The input is lowercased and runs of whitespace collapse to single spaces.
// A name containing a comma is read as "Last, First ..." and is split on the
// first comma; only the first token after the comma counts as the given name,
// so "Doe, John Michael" and "doe,john" both canonicalize to "john doe".
// Without a comma the name is read as "First Last ...": the first token is
// the given name and everything after it is the surname, which keeps
// multi-token surnames ("Mary van der Berg") intact.
//
// Single-token names leave Last empty. The empty string yields the zero
// CanonicalName. Normalize never fails.
func Normalize(raw string) CanonicalName {
	clean := strings.ToLower(strings.Join(strings.Fields(raw), " "))
	if clean == "" {
		return CanonicalName{}
	}

	if last, rest, found := strings.Cut(clean, ","); found {
		last = strings.TrimSpace(last)
		first := ""
		// Anything past a second comma ("Doe, John, Jr") is a suffix, not a
		// given name, so commas in the remainder act as separators too.
		if fields := strings.Fields(strings.ReplaceAll(rest, ",", " ")); len(fields) > 0 {
			first = fields[0]
		}
		return CanonicalName{
			First: first,
			Last:  last,
			Full:  strings.TrimSpace(first + " " + last),
		}
	}

	tokens := strings.Fields(clean)
	first := tokens[0]
	last := strings.Join(tokens[1:], " ")
	return CanonicalName{First: first, Last: last, Full: clean}
}

// Matcher decides whether two raw names refer to the same person. The zero
// value is the strict matcher used by default.
type Matcher struct {
	// AcceptSwapped additionally treats names with reversed first and last
	// tokens as equal ("Rivera Jon" vs "Jon Rivera"). It recovers SIS rows
	// typed surname-first without a comma, at the cost of false positives on
	// genuinely mirrored name pairs, so it stays off unless asked for.
	AcceptSwapped bool
}

// Match reports whether a and b name the same person.
//
// Both sides are normalized first, then compared by up to three rules in
// order: exact canonical equality; equality of the (first token, last token)
// pair when both names have at least two tokens, which lets middle names and
// compound-surname particles differ; and, only when AcceptSwapped is set,
// the same pair comparison with one side reversed.
func (m Matcher) Match(a, b string) bool {
	ca, cb := Normalize(a), Normalize(b)
	if ca.Full == cb.Full {
		return true
	}

	ta, tb := strings.Fields(ca.Full), strings.Fields(cb.Full)
	if len(ta) < 2 || len(tb) < 2 {
		return false
	}
	if ta[0] == tb[0] && ta[len(ta)-1] == tb[len(tb)-1] {
		return true
	}
	if m.AcceptSwapped && ta[0] == tb[len(tb)-1] && ta[len(ta)-1] == tb[0] {
		return true
	}
	return false
}

// NamesMatch is Match with the default strict matcher.
func NamesMatch(a, b string) bool {
	return Matcher{}.Match(a, b)
}
