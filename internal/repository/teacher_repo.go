package repository

import (
	"context"
	"strings"

	"github.com/noah-isme/school-admin-api/internal/listquery"
	"github.com/noah-isme/school-admin-api/internal/models"
)

var teacherSchema = listquery.Schema[models.Teacher]{
	Text: map[string]func(models.Teacher) string{
		"name":  func(t models.Teacher) string { return t.Name },
		"email": func(t models.Teacher) string { return t.Email },
	},
	Fields: map[string]func(models.Teacher) string{
		"status": func(t models.Teacher) string { return t.Status },
	},
	Sorts: map[string]func(a, b models.Teacher) bool{
		"name":      func(a, b models.Teacher) bool { return a.Name < b.Name },
		"joined_at": func(a, b models.Teacher) bool { return a.JoinedAt.Before(b.JoinedAt) },
	},
}

// TeacherRepository provides access to teacher records.
type TeacherRepository interface {
	List(ctx context.Context, criteria listquery.Criteria, subjectID string) (listquery.Result[models.Teacher], error)
	GetByID(ctx context.Context, id string) (models.Teacher, error)
	All(ctx context.Context) ([]models.Teacher, error)
}

type teacherRepository struct {
	teachers collection[models.Teacher]
}

// NewTeacherRepository constructs a teacher repository over the given records.
func NewTeacherRepository(teachers []models.Teacher) TeacherRepository {
	return &teacherRepository{
		teachers: newCollection(teachers, func(t models.Teacher) string { return t.ID }, teacherSchema),
	}
}

// List applies the criteria and, when subjectID is set, keeps only teachers of that subject.
func (r *teacherRepository) List(ctx context.Context, criteria listquery.Criteria, subjectID string) (listquery.Result[models.Teacher], error) {
	subjectID = strings.TrimSpace(subjectID)
	if subjectID == "" || strings.EqualFold(subjectID, listquery.FilterAll) {
		return r.teachers.list(ctx, criteria)
	}

	teaching, err := r.teachers.where(ctx, func(t models.Teacher) bool { return t.Teaches(subjectID) })
	if err != nil {
		return listquery.Result[models.Teacher]{}, err
	}
	return listquery.Run(teaching, teacherSchema, criteria)
}

func (r *teacherRepository) GetByID(ctx context.Context, id string) (models.Teacher, error) {
	return r.teachers.get(ctx, id)
}

func (r *teacherRepository) All(ctx context.Context) ([]models.Teacher, error) {
	return r.teachers.all(ctx)
}
