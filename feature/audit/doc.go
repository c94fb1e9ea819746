// Package audit is the roster reconciliation surface of the service.
//
// One audit run takes an uploaded SIS export, parses it into roster entries,
// fetches the cached Google Classroom snapshot, reconciles the two, and
// returns the diff. Runs persist to the audit_runs table when a database is
// configured and can be archived to object storage on request.
//
// # Endpoints
//
//   - POST /audit/run: execute a run (multipart file or raw CSV/JSON body).
//   - GET /audit/latest, /audit/runs, /audit/runs/:id: run history.
//   - GET /audit/runs/:id/export: missing-students CSV download.
//   - GET /audit/archives (+ /:id/:file, DELETE /:id): archived runs.
//
// # Layers
//
// Handler (HTTP) -> Service (pipeline) -> Store (GORM) with the snapshot
// cache and archiver injected. The database and object storage are both
// optional; endpoints that need them answer 503 when they are absent.
package audit
