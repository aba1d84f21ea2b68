package repository

import (
	"context"

	"github.com/noah-isme/school-admin-api/internal/listquery"
	"github.com/noah-isme/school-admin-api/internal/models"
)

var studentSchema = listquery.Schema[models.Student]{
	Text: map[string]func(models.Student) string{
		"name":        func(s models.Student) string { return s.Name },
		"email":       func(s models.Student) string { return s.Email },
		"roll_number": func(s models.Student) string { return s.RollNumber },
	},
	Fields: map[string]func(models.Student) string{
		"class_id": func(s models.Student) string { return s.ClassID },
		"status":   func(s models.Student) string { return s.Status },
		"gender":   func(s models.Student) string { return s.Gender },
	},
	Sorts: map[string]func(a, b models.Student) bool{
		"name":        func(a, b models.Student) bool { return a.Name < b.Name },
		"roll_number": func(a, b models.Student) bool { return a.RollNumber < b.RollNumber },
		"enrolled_at": func(a, b models.Student) bool { return a.EnrolledAt.Before(b.EnrolledAt) },
	},
}

// StudentRepository provides access to student records.
type StudentRepository interface {
	List(ctx context.Context, criteria listquery.Criteria) (listquery.Result[models.Student], error)
	GetByID(ctx context.Context, id string) (models.Student, error)
	ListByClass(ctx context.Context, classID string) ([]models.Student, error)
	All(ctx context.Context) ([]models.Student, error)
}

type studentRepository struct {
	students collection[models.Student]
}

// NewStudentRepository constructs a student repository over the given records.
func NewStudentRepository(students []models.Student) StudentRepository {
	return &studentRepository{
		students: newCollection(students, func(s models.Student) string { return s.ID }, studentSchema),
	}
}

func (r *studentRepository) List(ctx context.Context, criteria listquery.Criteria) (listquery.Result[models.Student], error) {
	return r.students.list(ctx, criteria)
}

func (r *studentRepository) GetByID(ctx context.Context, id string) (models.Student, error) {
	return r.students.get(ctx, id)
}

func (r *studentRepository) ListByClass(ctx context.Context, classID string) ([]models.Student, error) {
	return r.students.where(ctx, func(s models.Student) bool { return s.ClassID == classID })
}

func (r *studentRepository) All(ctx context.Context) ([]models.Student, error) {
	return r.students.all(ctx)
}
