package models

import "time"

// IDCard is an identity card issued to a student or teacher.
type IDCard struct {
	ID         string    `json:"id"`
	HolderID   string    `json:"holder_id"`
	HolderType string    `json:"holder_type"`
	CardNumber string    `json:"card_number"`
	IssuedAt   time.Time `json:"issued_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	Status     string    `json:"status"`
}

const (
	HolderTypeStudent = "student"
	HolderTypeTeacher = "teacher"
)

const (
	IDCardStatusActive  = "active"
	IDCardStatusExpired = "expired"
	IDCardStatusRevoked = "revoked"
)
