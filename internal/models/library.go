package models

import "time"

// Book is a library title with its copy counts.
type Book struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn"`
	Category        string `json:"category"`
	TotalCopies     int    `json:"total_copies"`
	AvailableCopies int    `json:"available_copies"`
	Shelf           string `json:"shelf"`
}

// Available reports whether at least one copy can be issued.
func (b Book) Available() bool {
	return b.AvailableCopies > 0
}

// BookIssuance records a book lent to a student.
type BookIssuance struct {
	ID         string     `json:"id"`
	BookID     string     `json:"book_id"`
	StudentID  string     `json:"student_id"`
	IssuedAt   time.Time  `json:"issued_at"`
	DueAt      time.Time  `json:"due_at"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
	Status     string     `json:"status"`
}

const (
	IssuanceStatusIssued   = "issued"
	IssuanceStatusReturned = "returned"
	IssuanceStatusOverdue  = "overdue"
)
