package models

// AttendanceRecord is a student's attendance status on a school day.
type AttendanceRecord struct {
	ID        string `json:"id"`
	StudentID string `json:"student_id"`
	ClassID   string `json:"class_id"`
	Date      string `json:"date"` // YYYY-MM-DD
	Status    string `json:"status"`
	Note      string `json:"note"`
}

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceExcused = "excused"
)

// DateLayout is the calendar date format used by attendance records.
const DateLayout = "2006-01-02"

// Attended reports whether the student was in class, on time or late.
func (r AttendanceRecord) Attended() bool {
	return r.Status == AttendancePresent || r.Status == AttendanceLate
}
