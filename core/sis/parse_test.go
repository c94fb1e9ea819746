package sis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDetectConvention tests layout recognition from header rows.
func TestDetectConvention(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		want   string
		ok     bool
	}{
		{
			name:   "roster layout",
			header: []string{"Student", "Course", "Section", "Period", "Day", "Teacher"},
			want:   "roster",
			ok:     true,
		},
		{
			name:   "schedule layout",
			header: []string{"Student Name", "Course Name", "Section Number", "Expression", "Teacher Name"},
			want:   "schedule",
			ok:     true,
		},
		{
			name:   "case and order insensitive",
			header: []string{"PERIOD", "student", "Teacher"},
			want:   "roster",
			ok:     true,
		},
		{
			name:   "extra columns ignored",
			header: []string{"Grade", "Student", "Homeroom", "Period"},
			want:   "roster",
			ok:     true,
		},
		{
			name:   "BOM on first header",
			header: []string{"﻿Student Name", "Expression"},
			want:   "schedule",
			ok:     true,
		},
		{
			name:   "unknown layout",
			header: []string{"Nombre", "Periodo"},
			ok:     false,
		},
		{
			name:   "empty header",
			header: []string{},
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv, ok := DetectConvention(tt.header)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, conv.Name)
			}
		})
	}
}

// TestParse_RosterConvention tests a plain roster export end to end.
func TestParse_RosterConvention(t *testing.T) {
	input := strings.Join([]string{
		"Student,Course,Section,Period,Day,Teacher",
		`"Doe, John",Chemistry,301,03,A,"Adams, Kate"`,
		`"Smith, Jane",Chemistry,301,03,A,"Adams, Kate"`,
	}, "\n")

	result, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "roster", result.Convention)
	assert.Empty(t, result.RowErrors)
	require.Len(t, result.Entries, 2)

	first := result.Entries[0]
	assert.Equal(t, "Doe, John", first.StudentName)
	assert.Equal(t, "Chemistry", first.CourseLabel)
	assert.Equal(t, "301", first.Section)
	assert.Equal(t, "03", first.Period)
	assert.Equal(t, "A", first.Day)
	assert.Equal(t, "Adams, Kate", first.TeacherName)
}

// TestParse_ScheduleConvention tests the expression-packed layout.
func TestParse_ScheduleConvention(t *testing.T) {
	input := strings.Join([]string{
		"Student Name,Course Name,Section Number,Expression,Teacher Name",
		`"Doe, John",Biology,12,3(A),"Reyes, Ana"`,
		`"Smith, Jane",Biology,12,4,"Reyes, Ana"`,
	}, "\n")

	result, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "schedule", result.Convention)
	require.Len(t, result.Entries, 2)

	assert.Equal(t, "3", result.Entries[0].Period)
	assert.Equal(t, "A", result.Entries[0].Day)
	assert.Equal(t, "4", result.Entries[1].Period)
	assert.Equal(t, "", result.Entries[1].Day)
}

// TestParse_RowErrors tests that bad rows are reported with 1-based indices
// and do not abort the parse.
func TestParse_RowErrors(t *testing.T) {
	input := strings.Join([]string{
		"Student,Period",
		`"Doe, John",1`,
		",2",
		`"Smith, Jane",3`,
	}, "\n")

	result, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, result.RowErrors, 1)
	assert.Equal(t, 2, result.RowErrors[0].Row)
	assert.Contains(t, result.RowErrors[0].Message, "student name")

	// The rows around the bad one still parse.
	require.Len(t, result.Entries, 2)
	assert.Equal(t, "Doe, John", result.Entries[0].StudentName)
	assert.Equal(t, "Smith, Jane", result.Entries[1].StudentName)
}

// TestParse_BlankRowsSkipped tests that fully empty lines are not errors.
func TestParse_BlankRowsSkipped(t *testing.T) {
	input := strings.Join([]string{
		"Student,Period",
		`"Doe, John",1`,
		"",
		"   ,",
		`"Smith, Jane",2`,
	}, "\n")

	result, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, result.RowErrors)
	assert.Len(t, result.Entries, 2)
}

// TestParse_ShortRecords tests rows with fewer columns than the header.
func TestParse_ShortRecords(t *testing.T) {
	input := strings.Join([]string{
		"Student,Course,Section,Period,Day,Teacher",
		`"Doe, John",Chemistry`,
	}, "\n")

	result, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)

	// Missing trailing fields degrade to empty, they are not errors.
	assert.Equal(t, "Doe, John", result.Entries[0].StudentName)
	assert.Equal(t, "", result.Entries[0].Period)
	assert.Empty(t, result.RowErrors)
}

// TestParse_StructuralErrors tests the inputs that fail the whole parse.
func TestParse_StructuralErrors(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.Error(t, err)

	_, err = Parse(strings.NewReader("Nombre,Periodo\nfoo,1\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized column set")
}

// TestParseWith_PinnedConvention tests parsing with a layout pinned by
// configuration.
func TestParseWith_PinnedConvention(t *testing.T) {
	input := strings.Join([]string{
		"Student,Period",
		`"Doe, John",1`,
	}, "\n")

	result, err := ParseWith(strings.NewReader(input), RosterConvention())
	require.NoError(t, err)
	assert.Equal(t, "roster", result.Convention)
	assert.Len(t, result.Entries, 1)

	// The pinned layout's required headers must still exist.
	_, err = ParseWith(strings.NewReader(input), ScheduleConvention())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schedule")
}

// TestConventionByName tests the config-to-layout lookup.
func TestConventionByName(t *testing.T) {
	conv, ok := ConventionByName("schedule")
	assert.True(t, ok)
	assert.Equal(t, "schedule", conv.Name)

	_, ok = ConventionByName("unknown")
	assert.False(t, ok)
}

// TestParseExpression tests period and rotation-day extraction.
func TestParseExpression(t *testing.T) {
	tests := []struct {
		expression string
		period     string
		day        string
	}{
		{expression: "3(A)", period: "3", day: "A"},
		{expression: "03(B)", period: "03", day: "B"},
		{expression: " 3 ( A ) ", period: "3", day: "A"},
		{expression: "4", period: "4", day: ""},
		{expression: "1(A) 2(B)", period: "1", day: "A"},
		{expression: "3()", period: "3", day: ""},
		{expression: "HR", period: "HR", day: ""},
		{expression: "", period: "", day: ""},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			period, day := ParseExpression(tt.expression)
			assert.Equal(t, tt.period, period)
			assert.Equal(t, tt.day, day)
		})
	}
}

// TestParseJSON tests the JSON upload path with loose field names.
func TestParseJSON(t *testing.T) {
	data := []byte(`[
		{"student_name": "Doe, John", "course": "Chemistry", "period": 3, "day": "A"},
		{"Student Name": "Smith, Jane", "Course Name": "Biology", "expression": "4(B)"},
		{"course": "Orphan row without a student"}
	]`)

	entries, err := ParseJSON(data)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Doe, John", entries[0].StudentName)
	assert.Equal(t, "Chemistry", entries[0].CourseLabel)
	assert.Equal(t, "3", entries[0].Period)
	assert.Equal(t, "A", entries[0].Day)

	assert.Equal(t, "Smith, Jane", entries[1].StudentName)
	assert.Equal(t, "4", entries[1].Period)
	assert.Equal(t, "B", entries[1].Day)
}

// TestParseJSON_Invalid tests that malformed JSON is the only hard failure.
func TestParseJSON_Invalid(t *testing.T) {
	_, err := ParseJSON([]byte(`{"not": "an array"}`))
	assert.Error(t, err)

	entries, err := ParseJSON([]byte(`[]`))
	assert.NoError(t, err)
	assert.Empty(t, entries)
}
