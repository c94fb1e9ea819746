// Package status provides health checks for the service's dependencies.
//
// Unlike the 'audit' package which reconciles roster content, this package
// validates the infrastructure the audit pipeline runs on: the run-history
// database, the export bucket and the Classroom API itself.
//
// # Checks Provided
//
//   - Database: Verifies connectivity and that the audit_runs table carries every column the Run model declares.
//   - Storage: Checks that the export bucket and its prefixes exist (supports repair).
//   - Classroom: Probes the Classroom API with a minimal course request.
//
// # HTTP Endpoints
//
//   - GET /status : Runs all checks.
//   - GET /status/database : Runs the database schema check.
//   - GET /status/storage : Runs the storage layout check (supports ?fix=true).
//   - GET /status/classroom : Runs the Classroom reachability check.
package status
