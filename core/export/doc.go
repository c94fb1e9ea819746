// Package export serializes reconciliation results for download and archival.
//
// It renders a RosterDiff in two forms: a CSV of students missing from the
// platform (the actionable list for enrollment fixes) and an indented JSON
// dump of the full diff. The Archiver uploads both to object storage under
// exports/<run-id>/ so past runs stay retrievable after the database rotates.
//
// # Components
//
//   - WriteMissingCSV: one row per missing student with roster context.
//   - WriteDiffJSON: full diff as indented JSON.
//   - Archiver: uploads, lists, streams and removes archived runs.
//
// # Usage
//
//	archiver := export.NewArchiver(client, cfg.Storage.Bucket, logger)
//	objects, err := archiver.Archive(ctx, run.ID, diff)
package export
