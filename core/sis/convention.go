package sis

import "strings"

// Convention describes one known SIS export layout: which header labels
// carry which logical fields.
type Convention struct {
	// Name identifies the convention in run records and logs.
	Name string

	// Columns maps logical field names to this convention's header labels,
	// in normalized (lowercase, trimmed) form.
	Columns map[string]string

	// Required lists the logical fields whose headers must be present for
	// the convention to be recognized. The rest are optional.
	Required []string
}

// Logical field constants for column references.
const (
	FieldStudent    = "student"
	FieldCourse     = "course"
	FieldSection    = "section"
	FieldPeriod     = "period"
	FieldDay        = "day"
	FieldTeacher    = "teacher"
	FieldExpression = "expression"
)

// RosterConvention returns the layout of the plain roster export, which
// carries period and rotation day as separate columns.
func RosterConvention() Convention {
	return Convention{
		Name: "roster",
		Columns: map[string]string{
			FieldStudent: "student",
			FieldCourse:  "course",
			FieldSection: "section",
			FieldPeriod:  "period",
			FieldDay:     "day",
			FieldTeacher: "teacher",
		},
		Required: []string{FieldStudent, FieldPeriod},
	}
}

// ScheduleConvention returns the layout of the schedule export, which packs
// period and rotation day into a single Expression column.
func ScheduleConvention() Convention {
	return Convention{
		Name: "schedule",
		Columns: map[string]string{
			FieldStudent:    "student name",
			FieldCourse:     "course name",
			FieldSection:    "section number",
			FieldExpression: "expression",
			FieldTeacher:    "teacher name",
		},
		Required: []string{FieldStudent, FieldExpression},
	}
}

// Conventions returns the known layouts in detection order.
func Conventions() []Convention {
	return []Convention{RosterConvention(), ScheduleConvention()}
}

// ConventionByName returns the named layout, for callers that pin one
// through configuration instead of detecting it.
func ConventionByName(name string) (Convention, bool) {
	for _, conv := range Conventions() {
		if conv.Name == name {
			return conv, true
		}
	}
	return Convention{}, false
}

// DetectConvention inspects a header row and returns the first convention
// whose required headers are all present. Header comparison is
// case-insensitive and ignores column order and extra columns.
func DetectConvention(header []string) (Convention, bool) {
	present := make(map[string]struct{}, len(header))
	for _, label := range header {
		present[normalizeHeader(label)] = struct{}{}
	}

	for _, conv := range Conventions() {
		if conv.headersPresent(present) {
			return conv, true
		}
	}
	return Convention{}, false
}

func (c Convention) headersPresent(present map[string]struct{}) bool {
	for _, field := range c.Required {
		if _, ok := present[c.Columns[field]]; !ok {
			return false
		}
	}
	return true
}

func (c Convention) hasField(field string) bool {
	_, ok := c.Columns[field]
	return ok
}

// normalizeHeader folds a header label for comparison: BOM stripped,
// trimmed, lowercased, inner whitespace collapsed.
func normalizeHeader(label string) string {
	label = strings.TrimPrefix(label, "﻿")
	return strings.Join(strings.Fields(strings.ToLower(label)), " ")
}
