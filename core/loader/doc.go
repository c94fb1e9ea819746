// Package loader registers the service's features and mounts their routes.
//
// A feature is a self-contained vertical (handler, service, loader) that
// implements the Feature interface. cmd/start.go constructs each feature
// with its dependencies, hands it to the Manager, and calls LoadAll once
// the middleware chain is in place.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager holds the registry:
//   - Register adds a feature.
//   - LoadAll mounts every enabled feature's routes, failing fast on the
//     first error.
//
// The 'audit', 'courses' and 'status' features all load this way, which
// keeps them testable in isolation.
package loader
