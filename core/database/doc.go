// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly configure
// MySQL and SQLite connections based on the application's configuration.
//
// # Connect
//
// The generic Connect function establishes a connection to the database. MySQL is the
// production driver; SQLite (including ":memory:") serves lightweight deployments and
// tests. The connection is optional: the service runs without run history when no
// database is reachable.
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema, which is crucial for
// the Status Check. It allows retrieving table columns and verifying matches
// against expected models defined in feature packages.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "audit_runs")
package database
