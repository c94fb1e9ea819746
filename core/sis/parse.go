package sis

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/bme-wacoisd/google-classroom/core/roster"
)

// RowError describes one unusable data row. Parsing does not stop on row
// errors; they accumulate so the caller can surface all of them at once.
type RowError struct {
	// Row is the 1-based data row index, not counting the header row.
	Row int `json:"row"`

	// Message says what was wrong with the row.
	Message string `json:"message"`
}

// ParseResult is the outcome of parsing one SIS export.
type ParseResult struct {
	// Convention names the detected layout ("roster" or "schedule").
	Convention string `json:"convention"`

	// Entries holds the usable rows mapped to roster entries, in file order.
	Entries []roster.Entry `json:"entries"`

	// RowErrors lists the rows that could not be used.
	RowErrors []RowError `json:"row_errors"`
}

// Parse reads a CSV roster export, detects which known layout it uses, and
// maps its rows to roster entries. The returned error is reserved for
// structurally unusable input (empty file, unreadable header, unknown
// column set); per-row problems land in ParseResult.RowErrors instead and
// never abort the parse.
func Parse(r io.Reader) (*ParseResult, error) {
	return parse(r, Convention{})
}

// ParseWith reads an export with a pinned layout instead of detecting one
// from the header row. The pinned convention's required headers must still
// be present; pinning exists to break ties, not to parse arbitrary files.
func ParseWith(r io.Reader, conv Convention) (*ParseResult, error) {
	return parse(r, conv)
}

func parse(r io.Reader, pinned Convention) (*ParseResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("export is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	conv := pinned
	if conv.Name == "" {
		detected, ok := DetectConvention(header)
		if !ok {
			return nil, fmt.Errorf("unrecognized column set: %s", strings.Join(header, ", "))
		}
		conv = detected
	} else {
		present := make(map[string]struct{}, len(header))
		for _, label := range header {
			present[normalizeHeader(label)] = struct{}{}
		}
		if !conv.headersPresent(present) {
			return nil, fmt.Errorf("export does not match the %s layout", conv.Name)
		}
	}

	columns := columnIndex(header, conv)
	result := &ParseResult{
		Convention: conv.Name,
		Entries:    []roster.Entry{},
		RowErrors:  []RowError{},
	}

	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.RowErrors = append(result.RowErrors, RowError{Row: row, Message: err.Error()})
			continue
		}
		if blankRecord(record) {
			continue
		}

		entry, problem := buildEntry(conv, record, columns)
		if problem != "" {
			result.RowErrors = append(result.RowErrors, RowError{Row: row, Message: problem})
			continue
		}
		result.Entries = append(result.Entries, entry)
	}
	return result, nil
}

// columnIndex maps logical fields to column positions for one header row.
// Duplicate headers keep the first occurrence.
func columnIndex(header []string, conv Convention) map[string]int {
	index := make(map[string]int)
	for i, label := range header {
		name := normalizeHeader(label)
		for field, want := range conv.Columns {
			if name != want {
				continue
			}
			if _, taken := index[field]; !taken {
				index[field] = i
			}
		}
	}
	return index
}

func buildEntry(conv Convention, record []string, columns map[string]int) (roster.Entry, string) {
	field := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	entry := roster.Entry{
		StudentName: field(FieldStudent),
		CourseLabel: field(FieldCourse),
		Section:     field(FieldSection),
		TeacherName: field(FieldTeacher),
	}
	if conv.hasField(FieldExpression) {
		entry.Period, entry.Day = ParseExpression(field(FieldExpression))
	} else {
		entry.Period = field(FieldPeriod)
		entry.Day = field(FieldDay)
	}

	if entry.StudentName == "" {
		return entry, "student name is empty"
	}
	return entry, ""
}

func blankRecord(record []string) bool {
	for _, value := range record {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}

var expressionPattern = regexp.MustCompile(`(\d+)\s*\(\s*([^)]*?)\s*\)`)

// ParseExpression splits a schedule-export expression into period and
// rotation day. "3(A)" yields ("3", "A") and a bare "3" yields ("3", "").
// Multi-meeting expressions like "1(A) 2(B)" keep the first meeting slot.
// Anything unrecognizable passes through trimmed as the period with an
// empty day, so odd slots like "HR" stay visible downstream instead of
// disappearing.
func ParseExpression(expression string) (period, day string) {
	expression = strings.TrimSpace(expression)
	if match := expressionPattern.FindStringSubmatch(expression); match != nil {
		return match[1], match[2]
	}
	return expression, ""
}
