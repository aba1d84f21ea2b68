package repository

import (
	"context"

	"github.com/noah-isme/school-admin-api/internal/listquery"
	"github.com/noah-isme/school-admin-api/internal/models"
)

var feeSchema = listquery.Schema[models.Fee]{
	Text: map[string]func(models.Fee) string{
		"id":         func(f models.Fee) string { return f.ID },
		"student_id": func(f models.Fee) string { return f.StudentID },
	},
	Fields: map[string]func(models.Fee) string{
		"student_id": func(f models.Fee) string { return f.StudentID },
		"class_id":   func(f models.Fee) string { return f.ClassID },
		"category":   func(f models.Fee) string { return f.Category },
		"status":     func(f models.Fee) string { return f.Status },
	},
	Sorts: map[string]func(a, b models.Fee) bool{
		"amount":      func(a, b models.Fee) bool { return a.Amount < b.Amount },
		"outstanding": func(a, b models.Fee) bool { return a.Outstanding() < b.Outstanding() },
		"due_date":    func(a, b models.Fee) bool { return a.DueDate.Before(b.DueDate) },
	},
}

var transactionSchema = listquery.Schema[models.Transaction]{
	Text: map[string]func(models.Transaction) string{
		"description": func(t models.Transaction) string { return t.Description },
		"reference":   func(t models.Transaction) string { return t.Reference },
	},
	Fields: map[string]func(models.Transaction) string{
		"type":     func(t models.Transaction) string { return t.Type },
		"category": func(t models.Transaction) string { return t.Category },
	},
	Sorts: map[string]func(a, b models.Transaction) bool{
		"date":   func(a, b models.Transaction) bool { return a.Date.Before(b.Date) },
		"amount": func(a, b models.Transaction) bool { return a.Amount < b.Amount },
	},
}

// FinanceRepository provides access to fees and ledger transactions.
type FinanceRepository interface {
	ListFees(ctx context.Context, criteria listquery.Criteria) (listquery.Result[models.Fee], error)
	GetFee(ctx context.Context, id string) (models.Fee, error)
	FeesByStudent(ctx context.Context, studentID string) ([]models.Fee, error)
	AllFees(ctx context.Context) ([]models.Fee, error)
	ListTransactions(ctx context.Context, criteria listquery.Criteria) (listquery.Result[models.Transaction], error)
	AllTransactions(ctx context.Context) ([]models.Transaction, error)
}

type financeRepository struct {
	fees         collection[models.Fee]
	transactions collection[models.Transaction]
}

// NewFinanceRepository constructs the finance repository.
func NewFinanceRepository(fees []models.Fee, transactions []models.Transaction) FinanceRepository {
	return &financeRepository{
		fees:         newCollection(fees, func(f models.Fee) string { return f.ID }, feeSchema),
		transactions: newCollection(transactions, func(t models.Transaction) string { return t.ID }, transactionSchema),
	}
}

func (r *financeRepository) ListFees(ctx context.Context, criteria listquery.Criteria) (listquery.Result[models.Fee], error) {
	return r.fees.list(ctx, criteria)
}

func (r *financeRepository) GetFee(ctx context.Context, id string) (models.Fee, error) {
	return r.fees.get(ctx, id)
}

func (r *financeRepository) FeesByStudent(ctx context.Context, studentID string) ([]models.Fee, error) {
	return r.fees.where(ctx, func(f models.Fee) bool { return f.StudentID == studentID })
}

func (r *financeRepository) AllFees(ctx context.Context) ([]models.Fee, error) {
	return r.fees.all(ctx)
}

func (r *financeRepository) ListTransactions(ctx context.Context, criteria listquery.Criteria) (listquery.Result[models.Transaction], error) {
	return r.transactions.list(ctx, criteria)
}

func (r *financeRepository) AllTransactions(ctx context.Context) ([]models.Transaction, error) {
	return r.transactions.all(ctx)
}
