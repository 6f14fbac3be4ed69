package domain

import "time"

// GradedItem is one row of the grade-report table.
type GradedItem struct {
	Type      string
	Theme     string
	Date      *time.Time
	IssueDate *time.Time
	Mark      float64
}

// GradeReport is a parsed subject grade report. Absent pieces stay at their
// zero values; the parser never fails on malformed markup.
type GradeReport struct {
	Raw        string
	RangeStart *time.Time
	RangeEnd   *time.Time
	Teacher    string
	Average    float64
	Items      []GradedItem
}
