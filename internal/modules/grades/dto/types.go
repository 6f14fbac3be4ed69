package dto

// GradedItemOutput carries one table row; Date and IssueDate are ISO-8601
// or empty when the report omitted them.
type GradedItemOutput struct {
	Type      string
	Theme     string
	Date      string
	IssueDate string
	Mark      float64
}

type GradeReportOutput struct {
	RangeStart string
	RangeEnd   string
	Teacher    string
	Average    float64
	Items      []GradedItemOutput
}

// Export mirrors the JSON export contract. Pointer fields serialize as null
// when the report has no date.
type Export struct {
	Raw         string       `json:"raw"`
	Range       ExportRange  `json:"range"`
	Teacher     string       `json:"teacher"`
	AverageMark float64      `json:"average_mark"`
	Assignments []ExportItem `json:"assignments"`
}

type ExportRange struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

type ExportItem struct {
	Type      string  `json:"type"`
	Theme     string  `json:"theme"`
	Date      *string `json:"date"`
	IssueDate *string `json:"issue_date"`
	Mark      float64 `json:"mark"`
}
