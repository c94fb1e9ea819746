package export

import (
	"encoding/csv"
	"io"

	"github.com/bme-wacoisd/google-classroom/core/reconcile"
	"github.com/bme-wacoisd/google-classroom/core/roster"
)

// missingHeader lists the columns of the missing-students export.
var missingHeader = []string{"student_name", "course", "section", "period", "day", "teacher"}

// WriteMissingCSV writes one row per student present in the source export but
// absent from the platform, in period order. Course, section, day and teacher
// come from the student's own roster entry so the file can feed an enrollment
// fix directly.
func WriteMissingCSV(w io.Writer, diff *reconcile.RosterDiff) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(missingHeader); err != nil {
		return err
	}

	for _, result := range diff.Results {
		entries := entriesByName(result.SourceEntries)
		for _, name := range result.MissingFromPlatform {
			entry := entries[roster.Normalize(name).Full]
			course := entry.CourseLabel
			if course == "" {
				course = result.CourseName
			}
			row := []string{name, course, entry.Section, result.Period, entry.Day, entry.TeacherName}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// entriesByName indexes roster entries by canonical student name. The first
// entry wins on duplicates, mirroring the grouping dedup.
func entriesByName(entries []roster.Entry) map[string]roster.Entry {
	byName := make(map[string]roster.Entry, len(entries))
	for _, entry := range entries {
		key := roster.Normalize(entry.StudentName).Full
		if _, ok := byName[key]; !ok {
			byName[key] = entry
		}
	}
	return byName
}
