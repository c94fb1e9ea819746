// Package reconcile computes the diff between the SIS roster export and the
// platform rosters: which students a platform course is missing, which
// extras it carries, and how the two sides line up period by period.
//
// # Pipeline
//
// Reconcile is the single entry point. It takes already-materialized inputs
// (SIS entries, platform courses, platform students keyed by course id) and
// runs them through the roster primitives:
//
//  1. Group and deduplicate SIS entries by normalized period.
//  2. Align each period to the platform course whose display name embeds the
//     same period number. Periods no course claims are reported, not failed.
//  3. For a matched course, classify every source name as matched or missing
//     via the name matcher, and every platform name as matched or extra. The
//     per-period scan is quadratic in class size, which stays trivial at
//     real class sizes.
//  4. Emit one ComparisonResult per period, ordered by period, plus
//     aggregate counts.
//
// # Purity
//
// Reconcile performs no I/O and holds no state between calls. Identical
// inputs produce identical diffs, so callers may re-run it freely and diff
// outputs across runs with Summary.Delta. Malformed input (blank names,
// missing periods) degrades to empty fields in the output rather than
// returning an error; fetching and parsing problems belong to the callers
// that materialize the inputs.
package reconcile
