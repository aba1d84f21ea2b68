package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/listquery"
	"github.com/noah-isme/school-admin-api/internal/middleware"
	"github.com/noah-isme/school-admin-api/internal/service"
	"github.com/noah-isme/school-admin-api/internal/utils"
)

var errInvalidQuery = errors.New("invalid query")

// Paging bounds the page sizes accepted by list endpoints.
type Paging struct {
	DefaultPageSize int
	MaxPageSize     int
}

func parseQueryInt(c *fiber.Ctx, key string) (int, error) {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		return 0, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	return parsed, nil
}

// parseCriteria reads search, sort, order, page and page_size from the query
// string. Only the listed filter keys are picked up; "all" is passed through
// and matches every record.
func parseCriteria(c *fiber.Ctx, paging Paging, filters ...string) (listquery.Criteria, error) {
	page, err := parseQueryInt(c, "page")
	if err != nil {
		return listquery.Criteria{}, fmt.Errorf("%w: page must be a number", errInvalidQuery)
	}
	size, err := parseQueryInt(c, "page_size")
	if err != nil {
		return listquery.Criteria{}, fmt.Errorf("%w: page_size must be a number", errInvalidQuery)
	}

	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = paging.DefaultPageSize
	}
	if paging.MaxPageSize > 0 && size > paging.MaxPageSize {
		size = paging.MaxPageSize
	}

	order := strings.ToLower(strings.TrimSpace(c.Query("order")))
	if order != "" && order != "asc" && order != "desc" {
		return listquery.Criteria{}, fmt.Errorf("%w: order must be asc or desc", errInvalidQuery)
	}

	criteria := listquery.Criteria{
		Search:   strings.TrimSpace(c.Query("search")),
		Sort:     strings.TrimSpace(c.Query("sort")),
		Desc:     order == "desc",
		Page:     page,
		PageSize: size,
	}
	for _, key := range filters {
		value := strings.TrimSpace(c.Query(key))
		if value == "" {
			continue
		}
		if criteria.Filters == nil {
			criteria.Filters = make(map[string]string, len(filters))
		}
		criteria.Filters[key] = value
	}
	return criteria, nil
}

func sendList[T any](c *fiber.Ctx, message string, list dto.ListResponse[T]) error {
	return utils.OK(c, list.Items, message, list.Pagination)
}

func requestLogger(base zerolog.Logger, c *fiber.Ctx) *zerolog.Logger {
	return middleware.RequestLogger(base, c)
}

func isValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}

func validationDetails(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}
	details := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())
		if fe.Param() != "" {
			details[field] = fe.Tag() + "=" + fe.Param()
			continue
		}
		details[field] = fe.Tag()
	}
	return details
}

func errorStatus(err error) int {
	switch {
	case isValidationError(err),
		errors.Is(err, errInvalidQuery),
		errors.Is(err, listquery.ErrUnknownField),
		errors.Is(err, service.ErrInvalidDate):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrStudentNotFound),
		errors.Is(err, service.ErrTeacherNotFound),
		errors.Is(err, service.ErrClassNotFound),
		errors.Is(err, service.ErrFeeNotFound),
		errors.Is(err, service.ErrBookNotFound),
		errors.Is(err, service.ErrIssuanceNotFound),
		errors.Is(err, service.ErrIDCardNotFound),
		errors.Is(err, service.ErrNoticeNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrBookUnavailable),
		errors.Is(err, service.ErrAlreadyReturned),
		errors.Is(err, service.ErrFeeSettled):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrOverpayment),
		errors.Is(err, service.ErrStudentNotInClass),
		errors.Is(err, service.ErrDuplicateEntry),
		errors.Is(err, service.ErrStudentInactive),
		errors.Is(err, service.ErrEmptyNotice):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError maps service errors onto HTTP statuses. Unexpected errors are
// logged and reported as "failed to <action>".
func respondError(c *fiber.Ctx, logger zerolog.Logger, err error, action string) error {
	status := errorStatus(err)
	switch {
	case status == fiber.StatusInternalServerError:
		requestLogger(logger, c).Error().Err(err).Msg("failed to " + action)
		return utils.SendError(c, status, "failed to "+action)
	case isValidationError(err):
		return utils.Fail(c, status, "validation failed", validationDetails(err))
	default:
		return utils.SendError(c, status, err.Error())
	}
}
