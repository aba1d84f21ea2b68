package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/listquery"
	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/observability"
	"github.com/noah-isme/school-admin-api/internal/repository"
)

const defaultLoanDays = 14

var (
	// ErrBookNotFound indicates the requested book does not exist.
	ErrBookNotFound = errors.New("book not found")
	// ErrBookUnavailable indicates every copy of the book is on loan.
	ErrBookUnavailable = errors.New("no copies available")
	// ErrIssuanceNotFound indicates the requested issuance does not exist.
	ErrIssuanceNotFound = errors.New("issuance not found")
	// ErrAlreadyReturned indicates the issuance was closed already.
	ErrAlreadyReturned = errors.New("book already returned")
	// ErrStudentInactive indicates the borrower is not an active student.
	ErrStudentInactive = errors.New("student is not active")
)

// LibraryService exposes the catalogue and lending desk.
type LibraryService interface {
	ListBooks(ctx context.Context, criteria listquery.Criteria) (dto.ListResponse[models.Book], error)
	ListIssuances(ctx context.Context, criteria listquery.Criteria) (dto.ListResponse[models.BookIssuance], error)
	Issue(ctx context.Context, req dto.IssueBookRequest) (dto.IssuanceReceipt, error)
	Return(ctx context.Context, issuanceID string) (dto.ReturnReceipt, error)
}

type libraryService struct {
	library   repository.LibraryRepository
	students  repository.StudentRepository
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewLibraryService constructs the library service.
func NewLibraryService(library repository.LibraryRepository, students repository.StudentRepository, validate *validator.Validate, logger zerolog.Logger) LibraryService {
	return &libraryService{
		library:   library,
		students:  students,
		validator: validate,
		logger:    logger.With().Str("component", "library_service").Logger(),
		now:       time.Now,
	}
}

func (s *libraryService) ListBooks(ctx context.Context, criteria listquery.Criteria) (dto.ListResponse[models.Book], error) {
	result, err := s.library.ListBooks(ctx, criteria)
	if err != nil {
		return dto.ListResponse[models.Book]{}, err
	}
	return dto.NewListResponse(result), nil
}

func (s *libraryService) ListIssuances(ctx context.Context, criteria listquery.Criteria) (dto.ListResponse[models.BookIssuance], error) {
	result, err := s.library.ListIssuances(ctx, criteria)
	if err != nil {
		return dto.ListResponse[models.BookIssuance]{}, err
	}
	return dto.NewListResponse(result), nil
}

// Issue validates a loan and returns the issuance it would create. Copy counts
// are left untouched.
func (s *libraryService) Issue(ctx context.Context, req dto.IssueBookRequest) (dto.IssuanceReceipt, error) {
	req.BookID = strings.TrimSpace(req.BookID)
	req.StudentID = strings.TrimSpace(req.StudentID)
	if err := s.validator.Struct(req); err != nil {
		return dto.IssuanceReceipt{}, err
	}

	book, err := s.library.GetBook(ctx, req.BookID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.IssuanceReceipt{}, ErrBookNotFound
		}
		return dto.IssuanceReceipt{}, err
	}

	student, err := s.students.GetByID(ctx, req.StudentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.IssuanceReceipt{}, ErrStudentNotFound
		}
		return dto.IssuanceReceipt{}, err
	}
	if student.Status != models.StudentStatusActive {
		return dto.IssuanceReceipt{}, ErrStudentInactive
	}

	if !book.Available() {
		return dto.IssuanceReceipt{}, ErrBookUnavailable
	}

	days := req.Days
	if days == 0 {
		days = defaultLoanDays
	}
	issuedAt := s.now().UTC()

	receipt := dto.IssuanceReceipt{
		Issuance: models.BookIssuance{
			ID:        "iss-" + uuid.NewString(),
			BookID:    book.ID,
			StudentID: student.ID,
			IssuedAt:  issuedAt,
			DueAt:     issuedAt.AddDate(0, 0, days),
			Status:    models.IssuanceStatusIssued,
		},
		RemainingCopies: book.AvailableCopies - 1,
		Simulated:       true,
	}

	observability.SimulatedWrites().WithLabelValues("issue_book").Inc()
	s.logger.Info().Str("book_id", book.ID).Str("student_id", student.ID).Msg("book issue simulated")
	return receipt, nil
}

// Return closes an issuance and reports how many days late it came back.
// The issuance itself is left untouched.
func (s *libraryService) Return(ctx context.Context, issuanceID string) (dto.ReturnReceipt, error) {
	issuance, err := s.library.GetIssuance(ctx, strings.TrimSpace(issuanceID))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.ReturnReceipt{}, ErrIssuanceNotFound
		}
		return dto.ReturnReceipt{}, err
	}
	if issuance.Status == models.IssuanceStatusReturned || issuance.ReturnedAt != nil {
		return dto.ReturnReceipt{}, ErrAlreadyReturned
	}

	returnedAt := s.now().UTC()
	lateDays := 0
	if late := returnedAt.Sub(issuance.DueAt); late > 0 {
		lateDays = int(math.Ceil(late.Hours() / 24))
	}

	observability.SimulatedWrites().WithLabelValues("return_book").Inc()
	s.logger.Info().Str("issuance_id", issuance.ID).Int("late_days", lateDays).Msg("book return simulated")

	return dto.ReturnReceipt{
		IssuanceID: issuance.ID,
		BookID:     issuance.BookID,
		StudentID:  issuance.StudentID,
		ReturnedAt: returnedAt,
		LateDays:   lateDays,
		Simulated:  true,
	}, nil
}
