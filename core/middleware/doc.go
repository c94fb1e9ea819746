// Package middleware holds the Fiber middleware the audit service installs
// ahead of its feature routes.
//
// # Components
//
//   - rayid: tags every request with a ray id, stored in
//     c.Locals("ray_id") and echoed in the X-Ray-ID response header.
//     Handlers thread it into their logs via logger.WithRayID.
//   - auth: shared-key guard reading the X-API-Key header. With no key
//     configured the guard admits everything, which keeps local
//     development keyless.
//
// Both are registered globally in cmd/start.go before the features load,
// so a ray id exists by the time any handler logs.
package middleware
