package dto

import "time"

// CollectFeeRequest records a payment against a fee.
type CollectFeeRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Method string  `json:"method" validate:"omitempty,oneof=cash card transfer"`
	Payer  string  `json:"payer" validate:"omitempty,max=120"`
}

// FeeReceipt acknowledges a fee collection.
type FeeReceipt struct {
	ReceiptNumber    string    `json:"receipt_number"`
	FeeID            string    `json:"fee_id"`
	StudentID        string    `json:"student_id"`
	Amount           float64   `json:"amount"`
	Method           string    `json:"method"`
	PreviousBalance  float64   `json:"previous_balance"`
	RemainingBalance float64   `json:"remaining_balance"`
	NewStatus        string    `json:"new_status"`
	CollectedAt      time.Time `json:"collected_at"`
	Simulated        bool      `json:"simulated"`
}

// MonthlyTotal is the income and expense booked in a calendar month.
type MonthlyTotal struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// FeeSummary aggregates billed and collected fees.
type FeeSummary struct {
	Billed         float64        `json:"billed"`
	Collected      float64        `json:"collected"`
	Outstanding    float64        `json:"outstanding"`
	CollectionRate float64        `json:"collection_rate"`
	ByStatus       map[string]int `json:"by_status"`
}

// FinanceReport is the finance overview widget.
type FinanceReport struct {
	TotalIncome       float64            `json:"total_income"`
	TotalExpense      float64            `json:"total_expense"`
	Net               float64            `json:"net"`
	IncomeByCategory  map[string]float64 `json:"income_by_category"`
	ExpenseByCategory map[string]float64 `json:"expense_by_category"`
	Monthly           []MonthlyTotal     `json:"monthly"`
	Fees              FeeSummary         `json:"fees"`
	GeneratedAt       time.Time          `json:"generated_at"`
	CacheHit          bool               `json:"cache_hit"`
}
