package handler_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/handler"
	"github.com/noah-isme/school-admin-api/internal/listquery"
	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/service"
	"github.com/noah-isme/school-admin-api/pkg/spreadsheet"
)

type mockFinanceService struct {
	collectErr  error
	lastFeeID   string
	lastPayload dto.CollectFeeRequest
}

func (m *mockFinanceService) ListFees(context.Context, listquery.Criteria) (dto.ListResponse[models.Fee], error) {
	return dto.ListResponse[models.Fee]{Items: []models.Fee{}}, nil
}

func (m *mockFinanceService) CollectFee(_ context.Context, feeID string, req dto.CollectFeeRequest) (dto.FeeReceipt, error) {
	m.lastFeeID = feeID
	m.lastPayload = req
	if m.collectErr != nil {
		return dto.FeeReceipt{}, m.collectErr
	}
	return dto.FeeReceipt{FeeID: feeID, Amount: req.Amount, Simulated: true}, nil
}

func (m *mockFinanceService) ListTransactions(context.Context, listquery.Criteria) (dto.ListResponse[models.Transaction], error) {
	return dto.ListResponse[models.Transaction]{Items: []models.Transaction{}}, nil
}

func (m *mockFinanceService) Report(context.Context) (dto.FinanceReport, error) {
	return dto.FinanceReport{}, errors.New("cache exploded")
}

func (m *mockFinanceService) ExportReport(context.Context, io.Writer) error {
	return errors.New("disk full")
}

func newFinanceApp() *fiber.App {
	env := newFixtureEnv()
	svc := service.NewFinanceService(env.finance, nil, 0, env.validate, env.logger)
	app := fiber.New()
	handler.NewFinanceHandler(svc, testPaging, env.logger).Register(app.Group("/finance"))
	return app
}

func TestFinanceHandlerCollectErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		statusCode int
	}{
		{name: "not found", err: service.ErrFeeNotFound, statusCode: fiber.StatusNotFound},
		{name: "settled", err: service.ErrFeeSettled, statusCode: fiber.StatusConflict},
		{name: "overpayment", err: fmt.Errorf("%w: outstanding 10.00", service.ErrOverpayment), statusCode: fiber.StatusUnprocessableEntity},
		{name: "generic", err: errors.New("boom"), statusCode: fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockFinanceService{collectErr: tc.err}
			app := fiber.New()
			handler.NewFinanceHandler(svc, testPaging, zerolog.New(io.Discard)).Register(app.Group("/finance"))

			resp := perform(t, app, http.MethodPost, "/finance/fees/f3/collect", dto.CollectFeeRequest{Amount: 100})
			require.Equal(t, tc.statusCode, resp.StatusCode)
			require.Equal(t, "f3", svc.lastFeeID)
			require.Equal(t, 100.0, svc.lastPayload.Amount)
		})
	}
}

func TestFinanceHandlerCollectRejectsMalformedBody(t *testing.T) {
	svc := &mockFinanceService{}
	app := fiber.New()
	handler.NewFinanceHandler(svc, testPaging, zerolog.New(io.Discard)).Register(app.Group("/finance"))

	req := bytes.NewBufferString("{not json")
	resp, err := app.Test(newJSONRequest(http.MethodPost, "/finance/fees/f3/collect", req), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Empty(t, svc.lastFeeID)
}

func TestFinanceHandlerCollectSimulatesReceipt(t *testing.T) {
	app := newFinanceApp()

	resp := perform(t, app, http.MethodPost, "/finance/fees/f3/collect", dto.CollectFeeRequest{Amount: 600, Method: "card"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var receipt dto.FeeReceipt
	decodeData(t, decodeEnvelope(t, resp), &receipt)
	require.True(t, receipt.Simulated)
	require.Equal(t, models.FeeStatusPaid, receipt.NewStatus)
	require.Equal(t, 0.0, receipt.RemainingBalance)

	resp = perform(t, app, http.MethodPost, "/finance/fees/f3/collect", dto.CollectFeeRequest{Amount: 50})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeData(t, decodeEnvelope(t, resp), &receipt)
	require.Equal(t, 600.0, receipt.PreviousBalance, "the previous collection must not have been stored")
}

func TestFinanceHandlerCollectValidation(t *testing.T) {
	app := newFinanceApp()

	resp := perform(t, app, http.MethodPost, "/finance/fees/f3/collect", dto.CollectFeeRequest{Amount: -5, Method: "barter"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	require.Equal(t, "validation failed", env.Message)
	require.Contains(t, env.Details, "amount")
	require.Contains(t, env.Details, "method")

	resp = perform(t, app, http.MethodPost, "/finance/fees/f1/collect", dto.CollectFeeRequest{Amount: 5})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestFinanceHandlerReport(t *testing.T) {
	app := newFinanceApp()

	resp := perform(t, app, http.MethodGet, "/finance/report", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "false", resp.Header.Get("X-Cache-Hit"))

	var report dto.FinanceReport
	decodeData(t, decodeEnvelope(t, resp), &report)
	require.InDelta(t, 14990.0, report.TotalIncome, 0.001)
	require.InDelta(t, 17090.0, report.TotalExpense, 0.001)
}

func TestFinanceHandlerExportWorkbook(t *testing.T) {
	app := newFinanceApp()

	resp := perform(t, app, http.MethodGet, "/finance/report/export", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, spreadsheet.ContentType, resp.Header.Get(fiber.HeaderContentType))
	require.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "finance-report-")

	book, err := excelize.OpenReader(resp.Body)
	require.NoError(t, err)
	defer book.Close()
	require.Equal(t, []string{"Summary", "Monthly", "Categories", "Transactions"}, book.GetSheetList())
}

func TestFinanceHandlerFailuresAreInternal(t *testing.T) {
	app := fiber.New()
	handler.NewFinanceHandler(&mockFinanceService{}, testPaging, zerolog.New(io.Discard)).Register(app.Group("/finance"))

	resp := perform(t, app, http.MethodGet, "/finance/report", nil)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	require.Equal(t, "failed to build finance report", decodeEnvelope(t, resp).Message)

	resp = perform(t, app, http.MethodGet, "/finance/report/export", nil)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
