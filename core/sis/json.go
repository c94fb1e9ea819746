package sis

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/bme-wacoisd/google-classroom/core/roster"
	"github.com/bme-wacoisd/google-classroom/core/utils"
)

// ParseJSON maps a JSON array of roster rows to entries. Field names are
// matched loosely (case-insensitive, several aliases per field) and values
// are coerced to strings, so a period uploaded as the number 3 parses the
// same as "3". Rows without a student name are dropped silently; only
// malformed JSON fails the call.
func ParseJSON(data []byte) ([]roster.Entry, error) {
	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse roster JSON: %w", err)
	}

	entries := make([]roster.Entry, 0, len(rows))
	for _, row := range rows {
		fields := make(map[string]any, len(row))
		for key, value := range row {
			fields[normalizeHeader(key)] = value
		}
		pick := func(keys ...string) string {
			for _, key := range keys {
				if value, ok := fields[key]; ok {
					if s := strings.TrimSpace(utils.ToString(value)); s != "" {
						return s
					}
				}
			}
			return ""
		}

		entry := roster.Entry{
			StudentName: pick("student_name", "student name", "student", "name"),
			CourseLabel: pick("course_label", "course_name", "course name", "course"),
			Period:      pick("period"),
			Section:     pick("section_number", "section number", "section"),
			Day:         pick("day"),
			TeacherName: pick("teacher_name", "teacher name", "teacher"),
		}
		if entry.Period == "" {
			if expression := pick("expression"); expression != "" {
				entry.Period, entry.Day = ParseExpression(expression)
			}
		}
		if entry.StudentName == "" {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
