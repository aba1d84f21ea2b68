package dto

// AttendanceSummary counts attendance statuses for a class and/or date.
type AttendanceSummary struct {
	ClassID string         `json:"class_id,omitempty"`
	Date    string         `json:"date,omitempty"`
	Total   int            `json:"total"`
	Counts  map[string]int `json:"counts"`
	Rate    float64        `json:"attendance_rate"`
}

// AttendanceEntry is one student's mark in an attendance batch.
type AttendanceEntry struct {
	StudentID string `json:"student_id" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=present absent late excused"`
	Note      string `json:"note" validate:"omitempty,max=200"`
}

// MarkAttendanceRequest marks a class register for one day.
type MarkAttendanceRequest struct {
	ClassID string            `json:"class_id" validate:"required"`
	Date    string            `json:"date" validate:"required,datetime=2006-01-02"`
	Entries []AttendanceEntry `json:"entries" validate:"required,min=1,dive"`
}

// MarkAttendanceResponse acknowledges an attendance batch.
type MarkAttendanceResponse struct {
	ClassID   string         `json:"class_id"`
	Date      string         `json:"date"`
	Recorded  int            `json:"recorded"`
	Counts    map[string]int `json:"counts"`
	Rate      float64        `json:"attendance_rate"`
	Simulated bool           `json:"simulated"`
}
