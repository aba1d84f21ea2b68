package models

import "time"

// Student represents a learner enrolled in a class.
type Student struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	ClassID    string    `json:"class_id"`
	Gender     string    `json:"gender"`
	Status     string    `json:"status"`
	RollNumber string    `json:"roll_number"`
	Guardian   string    `json:"guardian"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

const (
	StudentStatusActive    = "active"
	StudentStatusInactive  = "inactive"
	StudentStatusGraduated = "graduated"
)
