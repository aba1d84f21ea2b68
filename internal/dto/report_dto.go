package dto

// SubjectScore is a student's result in one subject.
type SubjectScore struct {
	SubjectID   string  `json:"subject_id"`
	SubjectName string  `json:"subject_name"`
	Score       float64 `json:"score"`
	MaxScore    float64 `json:"max_score"`
	Percent     float64 `json:"percent"`
}

// StudentReport is the per-student report card.
type StudentReport struct {
	Student        StudentResponse `json:"student"`
	Term           string          `json:"term"`
	AttendanceRate float64         `json:"attendance_rate"`
	DaysRecorded   int             `json:"days_recorded"`
	AverageScore   float64         `json:"average_score"`
	Scores         []SubjectScore  `json:"scores"`
	FeeBalance     float64         `json:"fee_balance"`
	BooksOnLoan    int             `json:"books_on_loan"`
}

// TeacherReport summarises a teacher's workload and class results.
type TeacherReport struct {
	Teacher             TeacherSummary `json:"teacher"`
	Status              string         `json:"status"`
	HomeroomClasses     []string       `json:"homeroom_classes"`
	Subjects            []string       `json:"subjects"`
	AssignmentsByStatus map[string]int `json:"assignments_by_status"`
	TotalAssignments    int            `json:"total_assignments"`
	AverageScore        float64        `json:"average_score"`
}

// LeaderboardEntry is one row of the top-students widget.
type LeaderboardEntry struct {
	Rank         int     `json:"rank"`
	StudentID    string  `json:"student_id"`
	StudentName  string  `json:"student_name"`
	ClassID      string  `json:"class_id"`
	AverageScore float64 `json:"average_score"`
}
