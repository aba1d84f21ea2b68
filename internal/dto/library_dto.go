package dto

import (
	"time"

	"github.com/noah-isme/school-admin-api/internal/models"
)

// IssueBookRequest lends a book to a student.
type IssueBookRequest struct {
	BookID    string `json:"book_id" validate:"required"`
	StudentID string `json:"student_id" validate:"required"`
	Days      int    `json:"days" validate:"omitempty,min=1,max=60"`
}

// IssuanceReceipt acknowledges a book issue.
type IssuanceReceipt struct {
	Issuance        models.BookIssuance `json:"issuance"`
	RemainingCopies int                 `json:"remaining_copies"`
	Simulated       bool                `json:"simulated"`
}

// ReturnReceipt acknowledges a book return.
type ReturnReceipt struct {
	IssuanceID string    `json:"issuance_id"`
	BookID     string    `json:"book_id"`
	StudentID  string    `json:"student_id"`
	ReturnedAt time.Time `json:"returned_at"`
	LateDays   int       `json:"late_days"`
	Simulated  bool      `json:"simulated"`
}
