package repository

import (
	"context"

	"github.com/noah-isme/school-admin-api/internal/listquery"
	"github.com/noah-isme/school-admin-api/internal/models"
)

var attendanceSchema = listquery.Schema[models.AttendanceRecord]{
	Text: map[string]func(models.AttendanceRecord) string{
		"note": func(r models.AttendanceRecord) string { return r.Note },
	},
	Fields: map[string]func(models.AttendanceRecord) string{
		"class_id":   func(r models.AttendanceRecord) string { return r.ClassID },
		"student_id": func(r models.AttendanceRecord) string { return r.StudentID },
		"date":       func(r models.AttendanceRecord) string { return r.Date },
		"status":     func(r models.AttendanceRecord) string { return r.Status },
	},
	Sorts: map[string]func(a, b models.AttendanceRecord) bool{
		"date":       func(a, b models.AttendanceRecord) bool { return a.Date < b.Date },
		"student_id": func(a, b models.AttendanceRecord) bool { return a.StudentID < b.StudentID },
	},
}

// AttendanceRepository provides access to the attendance register.
type AttendanceRepository interface {
	List(ctx context.Context, criteria listquery.Criteria) (listquery.Result[models.AttendanceRecord], error)
	ListByStudent(ctx context.Context, studentID string) ([]models.AttendanceRecord, error)
	All(ctx context.Context) ([]models.AttendanceRecord, error)
}

type attendanceRepository struct {
	records collection[models.AttendanceRecord]
}

// NewAttendanceRepository constructs an attendance repository over the given records.
func NewAttendanceRepository(records []models.AttendanceRecord) AttendanceRepository {
	return &attendanceRepository{
		records: newCollection(records, func(r models.AttendanceRecord) string { return r.ID }, attendanceSchema),
	}
}

func (r *attendanceRepository) List(ctx context.Context, criteria listquery.Criteria) (listquery.Result[models.AttendanceRecord], error) {
	return r.records.list(ctx, criteria)
}

func (r *attendanceRepository) ListByStudent(ctx context.Context, studentID string) ([]models.AttendanceRecord, error) {
	return r.records.where(ctx, func(rec models.AttendanceRecord) bool { return rec.StudentID == studentID })
}

func (r *attendanceRepository) All(ctx context.Context) ([]models.AttendanceRecord, error) {
	return r.records.all(ctx)
}
