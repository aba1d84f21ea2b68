package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/listquery"
	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/observability"
	"github.com/noah-isme/school-admin-api/internal/repository"
	"github.com/noah-isme/school-admin-api/pkg/spreadsheet"
)

var (
	// ErrInvalidDate indicates a date that is not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("date must use the YYYY-MM-DD format")
	// ErrStudentNotInClass indicates an attendance entry for a student of another class.
	ErrStudentNotInClass = errors.New("student does not belong to class")
	// ErrDuplicateEntry indicates the same student appears twice in one batch.
	ErrDuplicateEntry = errors.New("duplicate attendance entry")
)

var attendanceStatuses = []string{
	models.AttendancePresent,
	models.AttendanceAbsent,
	models.AttendanceLate,
	models.AttendanceExcused,
}

// AttendanceService exposes the attendance register.
type AttendanceService interface {
	List(ctx context.Context, criteria listquery.Criteria) (dto.ListResponse[models.AttendanceRecord], error)
	Summary(ctx context.Context, classID, date string) (dto.AttendanceSummary, error)
	Mark(ctx context.Context, req dto.MarkAttendanceRequest) (dto.MarkAttendanceResponse, error)
	Export(ctx context.Context, criteria listquery.Criteria, w io.Writer) error
}

type attendanceService struct {
	records   repository.AttendanceRepository
	students  repository.StudentRepository
	classes   repository.ClassRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAttendanceService constructs the attendance service.
func NewAttendanceService(records repository.AttendanceRepository, students repository.StudentRepository, classes repository.ClassRepository, validate *validator.Validate, logger zerolog.Logger) AttendanceService {
	return &attendanceService{
		records:   records,
		students:  students,
		classes:   classes,
		validator: validate,
		logger:    logger.With().Str("component", "attendance_service").Logger(),
	}
}

func (s *attendanceService) List(ctx context.Context, criteria listquery.Criteria) (dto.ListResponse[models.AttendanceRecord], error) {
	if date := criteria.Filters["date"]; !isAll(strings.TrimSpace(date)) {
		if err := checkDate(date); err != nil {
			return dto.ListResponse[models.AttendanceRecord]{}, err
		}
	}

	result, err := s.records.List(ctx, criteria)
	if err != nil {
		return dto.ListResponse[models.AttendanceRecord]{}, err
	}
	return dto.NewListResponse(result), nil
}

// Summary counts statuses over the records matching classID and date. Empty
// values or "all" leave the dimension unfiltered.
func (s *attendanceService) Summary(ctx context.Context, classID, date string) (dto.AttendanceSummary, error) {
	classID = strings.TrimSpace(classID)
	date = strings.TrimSpace(date)
	if !isAll(date) {
		if err := checkDate(date); err != nil {
			return dto.AttendanceSummary{}, err
		}
	}
	if !isAll(classID) {
		if _, err := s.classes.GetByID(ctx, classID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return dto.AttendanceSummary{}, ErrClassNotFound
			}
			return dto.AttendanceSummary{}, err
		}
	}

	result, err := s.records.List(ctx, listquery.Criteria{
		Filters: map[string]string{"class_id": classID, "date": date},
	})
	if err != nil {
		return dto.AttendanceSummary{}, err
	}

	summary := summarise(result.Items)
	if !isAll(classID) {
		summary.ClassID = classID
	}
	if !isAll(date) {
		summary.Date = date
	}
	return summary, nil
}

// Mark validates an attendance batch for one class and day and returns the
// tallies it would record. The register itself is left untouched.
func (s *attendanceService) Mark(ctx context.Context, req dto.MarkAttendanceRequest) (dto.MarkAttendanceResponse, error) {
	req.ClassID = strings.TrimSpace(req.ClassID)
	if err := s.validator.Struct(req); err != nil {
		return dto.MarkAttendanceResponse{}, err
	}

	if _, err := s.classes.GetByID(ctx, req.ClassID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.MarkAttendanceResponse{}, ErrClassNotFound
		}
		return dto.MarkAttendanceResponse{}, err
	}

	roster, err := s.students.ListByClass(ctx, req.ClassID)
	if err != nil {
		return dto.MarkAttendanceResponse{}, err
	}
	enrolled := make(map[string]struct{}, len(roster))
	for _, student := range roster {
		enrolled[student.ID] = struct{}{}
	}

	seen := make(map[string]struct{}, len(req.Entries))
	records := make([]models.AttendanceRecord, 0, len(req.Entries))
	for _, entry := range req.Entries {
		studentID := strings.TrimSpace(entry.StudentID)
		if _, ok := enrolled[studentID]; !ok {
			return dto.MarkAttendanceResponse{}, fmt.Errorf("%w: %s", ErrStudentNotInClass, studentID)
		}
		if _, dup := seen[studentID]; dup {
			return dto.MarkAttendanceResponse{}, fmt.Errorf("%w: %s", ErrDuplicateEntry, studentID)
		}
		seen[studentID] = struct{}{}
		records = append(records, models.AttendanceRecord{StudentID: studentID, ClassID: req.ClassID, Date: req.Date, Status: entry.Status})
	}

	summary := summarise(records)
	observability.SimulatedWrites().WithLabelValues("mark_attendance").Inc()
	s.logger.Info().
		Str("class_id", req.ClassID).
		Str("date", req.Date).
		Int("entries", len(records)).
		Msg("attendance marking simulated")

	return dto.MarkAttendanceResponse{
		ClassID:   req.ClassID,
		Date:      req.Date,
		Recorded:  len(records),
		Counts:    summary.Counts,
		Rate:      summary.Rate,
		Simulated: true,
	}, nil
}

// Export writes every record matching the criteria as an .xlsx workbook.
func (s *attendanceService) Export(ctx context.Context, criteria listquery.Criteria, w io.Writer) error {
	criteria.Page = 1
	criteria.PageSize = 0
	list, err := s.List(ctx, criteria)
	if err != nil {
		return err
	}

	students, err := s.students.All(ctx)
	if err != nil {
		return err
	}
	names := make(map[string]string, len(students))
	for _, student := range students {
		names[student.ID] = student.Name
	}

	register := spreadsheet.Sheet{Name: "Attendance", Header: []string{"Date", "Class", "Student ID", "Student", "Status", "Note"}}
	for _, record := range list.Items {
		register.Rows = append(register.Rows, []interface{}{
			record.Date, record.ClassID, record.StudentID, names[record.StudentID], record.Status, record.Note,
		})
	}

	summary := summarise(list.Items)
	totals := spreadsheet.Sheet{Name: "Summary", Header: []string{"Status", "Count"}}
	for _, status := range attendanceStatuses {
		totals.Rows = append(totals.Rows, []interface{}{status, summary.Counts[status]})
	}
	totals.Rows = append(totals.Rows, []interface{}{"attendance rate (%)", summary.Rate})

	return spreadsheet.Write(w, register, totals)
}

func summarise(records []models.AttendanceRecord) dto.AttendanceSummary {
	counts := listquery.CountBy(records, func(r models.AttendanceRecord) string { return r.Status })
	for _, status := range attendanceStatuses {
		if _, ok := counts[status]; !ok {
			counts[status] = 0
		}
	}

	attended := 0
	for _, record := range records {
		if record.Attended() {
			attended++
		}
	}

	return dto.AttendanceSummary{
		Total:  len(records),
		Counts: counts,
		Rate:   ratePercent(float64(attended), float64(len(records))),
	}
}

func checkDate(value string) error {
	if _, err := time.Parse(models.DateLayout, strings.TrimSpace(value)); err != nil {
		return ErrInvalidDate
	}
	return nil
}
