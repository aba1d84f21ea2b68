package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/listquery"
	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/observability"
	"github.com/noah-isme/school-admin-api/internal/repository"
	"github.com/noah-isme/school-admin-api/pkg/spreadsheet"
)

const financeReportCacheKey = "finance:report"

var (
	// ErrFeeNotFound indicates the requested fee does not exist.
	ErrFeeNotFound = errors.New("fee not found")
	// ErrFeeSettled indicates the fee has nothing left to collect.
	ErrFeeSettled = errors.New("fee already settled")
	// ErrOverpayment indicates the collected amount exceeds the outstanding balance.
	ErrOverpayment = errors.New("amount exceeds outstanding balance")
)

// FinanceService exposes fees, the ledger and the finance report.
type FinanceService interface {
	ListFees(ctx context.Context, criteria listquery.Criteria) (dto.ListResponse[models.Fee], error)
	CollectFee(ctx context.Context, feeID string, req dto.CollectFeeRequest) (dto.FeeReceipt, error)
	ListTransactions(ctx context.Context, criteria listquery.Criteria) (dto.ListResponse[models.Transaction], error)
	Report(ctx context.Context) (dto.FinanceReport, error)
	ExportReport(ctx context.Context, w io.Writer) error
}

type financeService struct {
	repo      repository.FinanceRepository
	validator *validator.Validate
	cache     jsonCache
	logger    zerolog.Logger
	now       func() time.Time
}

// NewFinanceService constructs the finance service. A nil cache disables report caching.
func NewFinanceService(repo repository.FinanceRepository, cache *redis.Client, ttl time.Duration, validate *validator.Validate, logger zerolog.Logger) FinanceService {
	logger = logger.With().Str("component", "finance_service").Logger()
	return &financeService{
		repo:      repo,
		validator: validate,
		cache:     newJSONCache(cache, ttl, "finance_report", logger),
		logger:    logger,
		now:       time.Now,
	}
}

func (s *financeService) ListFees(ctx context.Context, criteria listquery.Criteria) (dto.ListResponse[models.Fee], error) {
	result, err := s.repo.ListFees(ctx, criteria)
	if err != nil {
		return dto.ListResponse[models.Fee]{}, err
	}
	return dto.NewListResponse(result), nil
}

// CollectFee validates a payment and returns the receipt it would produce.
// The fee itself is left untouched.
func (s *financeService) CollectFee(ctx context.Context, feeID string, req dto.CollectFeeRequest) (dto.FeeReceipt, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.FeeReceipt{}, err
	}

	fee, err := s.repo.GetFee(ctx, feeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.FeeReceipt{}, ErrFeeNotFound
		}
		return dto.FeeReceipt{}, err
	}

	outstanding := fee.Outstanding()
	if outstanding <= 0 {
		return dto.FeeReceipt{}, ErrFeeSettled
	}
	if round2(req.Amount) > round2(outstanding) {
		return dto.FeeReceipt{}, fmt.Errorf("%w: outstanding %.2f", ErrOverpayment, outstanding)
	}

	method := strings.TrimSpace(req.Method)
	if method == "" {
		method = "cash"
	}

	updated := fee
	updated.PaidAmount += req.Amount
	remaining := round2(updated.Outstanding())
	status := models.FeeStatusPartial
	if remaining == 0 {
		status = models.FeeStatusPaid
	}

	receipt := dto.FeeReceipt{
		ReceiptNumber:    "RCPT-" + strings.ToUpper(uuid.NewString()[:8]),
		FeeID:            fee.ID,
		StudentID:        fee.StudentID,
		Amount:           round2(req.Amount),
		Method:           method,
		PreviousBalance:  round2(outstanding),
		RemainingBalance: remaining,
		NewStatus:        status,
		CollectedAt:      s.now().UTC(),
		Simulated:        true,
	}

	observability.SimulatedWrites().WithLabelValues("collect_fee").Inc()
	s.logger.Info().
		Str("fee_id", fee.ID).
		Str("receipt", receipt.ReceiptNumber).
		Float64("amount", receipt.Amount).
		Msg("fee collection simulated")

	return receipt, nil
}

func (s *financeService) ListTransactions(ctx context.Context, criteria listquery.Criteria) (dto.ListResponse[models.Transaction], error) {
	result, err := s.repo.ListTransactions(ctx, criteria)
	if err != nil {
		return dto.ListResponse[models.Transaction]{}, err
	}
	return dto.NewListResponse(result), nil
}

func (s *financeService) Report(ctx context.Context) (dto.FinanceReport, error) {
	tracer := otel.Tracer("github.com/noah-isme/school-admin-api/internal/service/finance")
	ctx, span := tracer.Start(ctx, "finance.report")
	span.SetAttributes(attribute.String("finance.cache_key", financeReportCacheKey))
	defer span.End()

	var cached dto.FinanceReport
	if s.cache.get(ctx, financeReportCacheKey, &cached) {
		cached.CacheHit = true
		span.SetAttributes(attribute.Bool("finance.cache_hit", true))
		return cached, nil
	}

	transactions, err := s.repo.AllTransactions(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list_transactions_failed")
		return dto.FinanceReport{}, err
	}

	fees, err := s.repo.AllFees(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list_fees_failed")
		return dto.FinanceReport{}, err
	}

	report := s.buildReport(transactions, fees)
	span.SetAttributes(
		attribute.Int("finance.transaction_count", len(transactions)),
		attribute.Int("finance.fee_count", len(fees)),
	)

	s.cache.set(ctx, financeReportCacheKey, report)
	return report, nil
}

func (s *financeService) buildReport(transactions []models.Transaction, fees []models.Fee) dto.FinanceReport {
	var income, expense []models.Transaction
	for _, txn := range transactions {
		if txn.Type == models.TransactionTypeIncome {
			income = append(income, txn)
		} else {
			expense = append(expense, txn)
		}
	}

	amount := func(t models.Transaction) float64 { return t.Amount }
	category := func(t models.Transaction) string { return t.Category }

	report := dto.FinanceReport{
		TotalIncome:       round2(listquery.Sum(income, amount)),
		TotalExpense:      round2(listquery.Sum(expense, amount)),
		IncomeByCategory:  listquery.SumBy(income, category, amount),
		ExpenseByCategory: listquery.SumBy(expense, category, amount),
		Monthly:           monthlyTotals(transactions),
		GeneratedAt:       s.now().UTC(),
	}
	report.Net = round2(report.TotalIncome - report.TotalExpense)

	billed := listquery.Sum(fees, func(f models.Fee) float64 { return f.Amount })
	collected := listquery.Sum(fees, func(f models.Fee) float64 { return f.PaidAmount })
	report.Fees = dto.FeeSummary{
		Billed:         round2(billed),
		Collected:      round2(collected),
		Outstanding:    round2(listquery.Sum(fees, func(f models.Fee) float64 { return f.Outstanding() })),
		CollectionRate: ratePercent(collected, billed),
		ByStatus:       listquery.CountBy(fees, func(f models.Fee) string { return f.Status }),
	}
	return report
}

func monthlyTotals(transactions []models.Transaction) []dto.MonthlyTotal {
	byMonth := map[string]*dto.MonthlyTotal{}
	for _, txn := range transactions {
		month := txn.Date.Format("2006-01")
		entry, ok := byMonth[month]
		if !ok {
			entry = &dto.MonthlyTotal{Month: month}
			byMonth[month] = entry
		}
		if txn.Type == models.TransactionTypeIncome {
			entry.Income += txn.Amount
		} else {
			entry.Expense += txn.Amount
		}
	}

	months := make([]dto.MonthlyTotal, 0, len(byMonth))
	for _, entry := range byMonth {
		entry.Income = round2(entry.Income)
		entry.Expense = round2(entry.Expense)
		entry.Net = round2(entry.Income - entry.Expense)
		months = append(months, *entry)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })
	return months
}

// ExportReport writes the finance report and ledger as an .xlsx workbook.
func (s *financeService) ExportReport(ctx context.Context, w io.Writer) error {
	report, err := s.Report(ctx)
	if err != nil {
		return err
	}
	transactions, err := s.repo.AllTransactions(ctx)
	if err != nil {
		return err
	}

	summary := spreadsheet.Sheet{
		Name:   "Summary",
		Header: []string{"Metric", "Value"},
		Rows: [][]interface{}{
			{"Total income", report.TotalIncome},
			{"Total expense", report.TotalExpense},
			{"Net", report.Net},
			{"Fees billed", report.Fees.Billed},
			{"Fees collected", report.Fees.Collected},
			{"Fees outstanding", report.Fees.Outstanding},
			{"Collection rate (%)", report.Fees.CollectionRate},
		},
	}

	monthly := spreadsheet.Sheet{Name: "Monthly", Header: []string{"Month", "Income", "Expense", "Net"}}
	for _, month := range report.Monthly {
		monthly.Rows = append(monthly.Rows, []interface{}{month.Month, month.Income, month.Expense, month.Net})
	}

	categories := spreadsheet.Sheet{Name: "Categories", Header: []string{"Type", "Category", "Amount"}}
	categories.Rows = append(categories.Rows, categoryRows(models.TransactionTypeIncome, report.IncomeByCategory)...)
	categories.Rows = append(categories.Rows, categoryRows(models.TransactionTypeExpense, report.ExpenseByCategory)...)

	ledger := spreadsheet.Sheet{Name: "Transactions", Header: []string{"ID", "Date", "Type", "Category", "Description", "Amount", "Reference"}}
	for _, txn := range transactions {
		ledger.Rows = append(ledger.Rows, []interface{}{
			txn.ID, txn.Date.Format(models.DateLayout), txn.Type, txn.Category, txn.Description, txn.Amount, txn.Reference,
		})
	}

	return spreadsheet.Write(w, summary, monthly, categories, ledger)
}

func categoryRows(kind string, totals map[string]float64) [][]interface{} {
	keys := make([]string, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rows := make([][]interface{}, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, []interface{}{kind, key, round2(totals[key])})
	}
	return rows
}
