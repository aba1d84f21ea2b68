package models

import "time"

// Teacher represents a staff member who teaches subjects and may lead a class.
type Teacher struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	SubjectIDs []string  `json:"subject_ids"`
	Status     string    `json:"status"`
	JoinedAt   time.Time `json:"joined_at"`
}

const (
	TeacherStatusActive  = "active"
	TeacherStatusOnLeave = "on_leave"
)

// Teaches reports whether the teacher is assigned to the subject.
func (t Teacher) Teaches(subjectID string) bool {
	for _, id := range t.SubjectIDs {
		if id == subjectID {
			return true
		}
	}
	return false
}
