package repository

import (
	"context"

	"github.com/noah-isme/school-admin-api/internal/listquery"
	"github.com/noah-isme/school-admin-api/internal/models"
)

var assignmentSchema = listquery.Schema[models.Assignment]{
	Text: map[string]func(models.Assignment) string{
		"title":       func(a models.Assignment) string { return a.Title },
		"description": func(a models.Assignment) string { return a.Description },
	},
	Fields: map[string]func(models.Assignment) string{
		"class_id":   func(a models.Assignment) string { return a.ClassID },
		"subject_id": func(a models.Assignment) string { return a.SubjectID },
		"teacher_id": func(a models.Assignment) string { return a.TeacherID },
		"status":     func(a models.Assignment) string { return a.Status },
	},
	Sorts: map[string]func(a, b models.Assignment) bool{
		"due_date":  func(a, b models.Assignment) bool { return a.DueDate.Before(b.DueDate) },
		"title":     func(a, b models.Assignment) bool { return a.Title < b.Title },
		"max_score": func(a, b models.Assignment) bool { return a.MaxScore < b.MaxScore },
	},
}

// AssignmentRepository provides access to assignments.
type AssignmentRepository interface {
	List(ctx context.Context, criteria listquery.Criteria) (listquery.Result[models.Assignment], error)
	GetByID(ctx context.Context, id string) (models.Assignment, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]models.Assignment, error)
}

type assignmentRepository struct {
	assignments collection[models.Assignment]
}

// NewAssignmentRepository constructs an assignment repository over the given records.
func NewAssignmentRepository(assignments []models.Assignment) AssignmentRepository {
	return &assignmentRepository{
		assignments: newCollection(assignments, func(a models.Assignment) string { return a.ID }, assignmentSchema),
	}
}

func (r *assignmentRepository) List(ctx context.Context, criteria listquery.Criteria) (listquery.Result[models.Assignment], error) {
	return r.assignments.list(ctx, criteria)
}

func (r *assignmentRepository) GetByID(ctx context.Context, id string) (models.Assignment, error) {
	return r.assignments.get(ctx, id)
}

func (r *assignmentRepository) ListByTeacher(ctx context.Context, teacherID string) ([]models.Assignment, error) {
	return r.assignments.where(ctx, func(a models.Assignment) bool { return a.TeacherID == teacherID })
}
