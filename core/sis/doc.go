// Package sis ingests Student Information System roster exports and maps
// them to roster entries.
//
// Schools hand over the same data in different shapes. Two CSV layouts are
// recognized, detected from the header row case- and order-insensitively:
//
//   - "roster": Student, Course, Section, Period, Day, Teacher
//   - "schedule": Student Name, Course Name, Section Number, Expression,
//     Teacher Name. The Expression column packs period and rotation day into
//     one value ("3(A)" means period 3 on A days).
//
// Extra columns are ignored. Rows that cannot be used (blank student name,
// broken quoting) are reported per row with their 1-based data row index
// and parsing continues; only a structurally unusable file (no header, no
// recognizable convention) fails the whole parse.
//
// ParseJSON accepts the same data as a JSON array for callers that upload
// pre-extracted rosters instead of raw CSV files.
package sis
