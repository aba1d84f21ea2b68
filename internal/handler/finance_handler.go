package handler

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/service"
	"github.com/noah-isme/school-admin-api/internal/utils"
	"github.com/noah-isme/school-admin-api/pkg/spreadsheet"
)

// FinanceHandler serves fees, transactions and the finance report.
type FinanceHandler struct {
	service service.FinanceService
	paging  Paging
	logger  zerolog.Logger
}

// NewFinanceHandler constructs the handler.
func NewFinanceHandler(service service.FinanceService, paging Paging, logger zerolog.Logger) *FinanceHandler {
	return &FinanceHandler{
		service: service,
		paging:  paging,
		logger:  logger.With().Str("component", "finance_handler").Logger(),
	}
}

// Register attaches finance routes to the router group.
func (h *FinanceHandler) Register(router fiber.Router) {
	router.Get("/fees", h.listFees)
	router.Post("/fees/:id/collect", h.collect)
	router.Get("/transactions", h.listTransactions)
	router.Get("/report", h.report)
	router.Get("/report/export", h.export)
}

func (h *FinanceHandler) listFees(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c, h.paging, "student_id", "class_id", "category", "status")
	if err != nil {
		return respondError(c, h.logger, err, "list fees")
	}

	fees, err := h.service.ListFees(c.UserContext(), criteria)
	if err != nil {
		return respondError(c, h.logger, err, "list fees")
	}
	return sendList(c, "fees retrieved", fees)
}

func (h *FinanceHandler) collect(c *fiber.Ctx) error {
	var payload dto.CollectFeeRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	receipt, err := h.service.CollectFee(c.UserContext(), c.Params("id"), payload)
	if err != nil {
		return respondError(c, h.logger, err, "collect fee")
	}
	return utils.SendSuccess(c, "fee payment recorded", receipt)
}

func (h *FinanceHandler) listTransactions(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c, h.paging, "type", "category")
	if err != nil {
		return respondError(c, h.logger, err, "list transactions")
	}

	transactions, err := h.service.ListTransactions(c.UserContext(), criteria)
	if err != nil {
		return respondError(c, h.logger, err, "list transactions")
	}
	return sendList(c, "transactions retrieved", transactions)
}

func (h *FinanceHandler) report(c *fiber.Ctx) error {
	report, err := h.service.Report(c.UserContext())
	if err != nil {
		return respondError(c, h.logger, err, "build finance report")
	}

	c.Set("X-Cache-Hit", strconv.FormatBool(report.CacheHit))
	return utils.SendSuccess(c, "finance report generated", report)
}

func (h *FinanceHandler) export(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.service.ExportReport(c.UserContext(), &buf); err != nil {
		return respondError(c, h.logger, err, "export finance report")
	}

	filename := fmt.Sprintf("finance-report-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Set(fiber.HeaderContentType, spreadsheet.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}
