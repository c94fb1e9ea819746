// Package logger builds the service's zap loggers.
//
// Every component logs through zap; cmd/start.go installs the built logger
// as the global via zap.ReplaceGlobals, and CLI commands build their own
// console-format instance.
//
// # Request Correlation
//
// The rayid middleware stores a per-request id in the Fiber context. The
// WithRayID helper attaches that id to a logger, so every line a handler
// emits during one request carries the same ray_id field.
//
// # Configuration
//
//   - Level: debug, info, warn, error (debug also switches to zap's
//     development preset)
//   - Format: json (production) or console (colored, for terminals)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
