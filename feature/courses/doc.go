// Package courses exposes the Google Classroom side of the reconciliation
// for browsing: the active courses with their extracted periods, course
// rosters, and the period-to-course resolution the audit relies on.
//
// The period view also surfaces ambiguity: when several course names claim
// the same period, the audit silently aligns the first one, and this surface
// is where an operator sees the collision.
//
// All reads go through the shared snapshot cache; ?refresh=true drops the
// cache first.
package courses
