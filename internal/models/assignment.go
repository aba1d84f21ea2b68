package models

import "time"

// Assignment represents coursework set for a class.
type Assignment struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SubjectID   string    `json:"subject_id"`
	ClassID     string    `json:"class_id"`
	TeacherID   string    `json:"teacher_id"`
	DueDate     time.Time `json:"due_date"`
	Status      string    `json:"status"`
	MaxScore    float64   `json:"max_score"`
}

const (
	AssignmentStatusDraft     = "draft"
	AssignmentStatusPublished = "published"
	AssignmentStatusClosed    = "closed"
)

// IsPastDue returns true when the assignment deadline has already passed.
func (a Assignment) IsPastDue(reference time.Time) bool {
	return reference.After(a.DueDate)
}
