// Package utils provides small shared helpers that do not belong to a
// domain package. The conversion functions absorb the loose typing of
// externally produced JSON (roster uploads, query parameters), where a
// period may arrive as a number or a string depending on the exporter.
package utils
