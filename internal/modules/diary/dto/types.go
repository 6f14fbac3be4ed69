package dto

type AssignmentOutput struct {
	Subject  string
	IsDuty   bool
	Deadline string
	Content  string
	Comment  string
}

type HomeworkNote struct {
	Content  string
	Comment  string
	Deadline string
	IsDuty   bool
}

type LessonOutput struct {
	Number   int
	Subject  string
	Room     string
	Teacher  string
	Start    string
	End      string
	Homework []HomeworkNote
}

type ScheduleOutput struct {
	Available bool
	Date      string
	Lessons   []LessonOutput
}
