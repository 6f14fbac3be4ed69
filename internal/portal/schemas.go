package portal

import (
	"strings"
	"time"
)

// apiDate handles the portal's two date encodings: bare dates and
// second-precision timestamps without a zone.
type apiDate struct {
	time.Time
}

var apiDateLayouts = []string{"2006-01-02T15:04:05", "2006-01-02"}

func (d *apiDate) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range apiDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	// Unknown encodings map to the zero date; schedule mapping treats that
	// as absent rather than failing the whole payload.
	d.Time = time.Time{}
	return nil
}

type Diary struct {
	WeekStart apiDate    `json:"weekStart"`
	WeekEnd   apiDate    `json:"weekEnd"`
	WeekDays  []DiaryDay `json:"weekDays"`
}

type DiaryDay struct {
	Date    apiDate       `json:"date"`
	Lessons []DiaryLesson `json:"lessons"`
}

type DiaryLesson struct {
	Number      int               `json:"number"`
	SubjectName string            `json:"subjectName"`
	Room        string            `json:"room"`
	Teacher     string            `json:"teacher"`
	StartTime   string            `json:"startTime"`
	EndTime     string            `json:"endTime"`
	Assignments []DiaryAssignment `json:"assignments"`
}

type DiaryAssignment struct {
	ID       int64    `json:"id"`
	TypeName string   `json:"typeName"`
	Content  string   `json:"assignmentName"`
	Comment  string   `json:"comment"`
	Mark     *float64 `json:"mark"`
	DueDate  apiDate  `json:"dueDate"`
	IsDuty   bool     `json:"isDuty"`
}

type SubjectGroup struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type AssignmentDetails struct {
	ID           int64        `json:"id"`
	IsDeleted    bool         `json:"isDeleted"`
	SubjectGroup SubjectGroup `json:"subjectGroup"`
}

type School struct {
	ID        int    `json:"id"`
	ShortName string `json:"shortName"`
	Name      string `json:"name"`
}
