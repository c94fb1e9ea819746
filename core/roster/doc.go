// Package roster holds the domain model and name/period primitives shared by
// every part of the audit pipeline.
//
// The SIS (Student Information System) export is the source of truth; Google
// Classroom is the platform being audited. Both sides describe the same
// students with different formatting: the SIS emits "Last, First Middle"
// rows keyed by class period, the platform emits "First Last" profiles keyed
// by course. This package provides the canonical forms that make the two
// comparable.
//
// # Components
//
//   - Normalize: folds a free-text person name into a CanonicalName
//     ({first, last, full}, lowercase, single-spaced). Total: any input,
//     including the empty string, produces a value and never an error.
//   - Matcher / NamesMatch: decides whether two differently formatted names
//     refer to the same person.
//   - ExtractPeriod / NormalizePeriod / MatchCourseForPeriod: aligns an SIS
//     class period with the platform course whose display name embeds the
//     same period number ("3 Chemistry", "Period 04", "Chem P3", ...).
//   - GroupByPeriod / PrimaryCourseLabel: collapses raw per-student-per-class
//     rows into one record per (student, period), preserving first-appearance
//     order so downstream output is deterministic.
//
// Everything here is pure computation over in-memory values: no I/O, no
// shared state, no errors. Malformed input degrades to empty fields rather
// than failing, which keeps the reconciliation engine total over its whole
// input domain.
package roster
