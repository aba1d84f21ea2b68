package models

import "time"

// Fee is an amount a student owes for a billing category.
type Fee struct {
	ID         string    `json:"id"`
	StudentID  string    `json:"student_id"`
	ClassID    string    `json:"class_id"`
	Category   string    `json:"category"`
	Amount     float64   `json:"amount"`
	PaidAmount float64   `json:"paid_amount"`
	DueDate    time.Time `json:"due_date"`
	Status     string    `json:"status"`
}

const (
	FeeStatusPaid    = "paid"
	FeeStatusPartial = "partial"
	FeeStatusUnpaid  = "unpaid"
	FeeStatusOverdue = "overdue"
)

const (
	FeeCategoryTuition   = "tuition"
	FeeCategoryTransport = "transport"
	FeeCategoryLibrary   = "library"
	FeeCategoryExam      = "exam"
)

// Outstanding returns the unpaid remainder of the fee.
func (f Fee) Outstanding() float64 {
	remaining := f.Amount - f.PaidAmount
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Transaction is a single income or expense entry in the school ledger.
type Transaction struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Reference   string    `json:"reference"`
}

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)
