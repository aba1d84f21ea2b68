package repository

import (
	"context"
	"strconv"

	"github.com/noah-isme/school-admin-api/internal/listquery"
	"github.com/noah-isme/school-admin-api/internal/models"
)

var classSchema = listquery.Schema[models.Class]{
	Text: map[string]func(models.Class) string{
		"name": func(c models.Class) string { return c.Name },
		"room": func(c models.Class) string { return c.Room },
	},
	Fields: map[string]func(models.Class) string{
		"teacher_id": func(c models.Class) string { return c.TeacherID },
		"section":    func(c models.Class) string { return c.Section },
		"grade":      func(c models.Class) string { return strconv.Itoa(c.Grade) },
	},
	Sorts: map[string]func(a, b models.Class) bool{
		"name":  func(a, b models.Class) bool { return a.Name < b.Name },
		"grade": func(a, b models.Class) bool { return a.Grade < b.Grade },
	},
}

var subjectSchema = listquery.Schema[models.Subject]{
	Text: map[string]func(models.Subject) string{
		"name": func(s models.Subject) string { return s.Name },
		"code": func(s models.Subject) string { return s.Code },
	},
	Fields: map[string]func(models.Subject) string{
		"class_id":   func(s models.Subject) string { return s.ClassID },
		"teacher_id": func(s models.Subject) string { return s.TeacherID },
	},
	Sorts: map[string]func(a, b models.Subject) bool{
		"name": func(a, b models.Subject) bool { return a.Name < b.Name },
		"code": func(a, b models.Subject) bool { return a.Code < b.Code },
	},
}

var classNoteSchema = listquery.Schema[models.ClassNote]{
	Text: map[string]func(models.ClassNote) string{
		"title":   func(n models.ClassNote) string { return n.Title },
		"content": func(n models.ClassNote) string { return n.Content },
	},
	Fields: map[string]func(models.ClassNote) string{
		"class_id":   func(n models.ClassNote) string { return n.ClassID },
		"subject_id": func(n models.ClassNote) string { return n.SubjectID },
		"teacher_id": func(n models.ClassNote) string { return n.TeacherID },
	},
	Sorts: map[string]func(a, b models.ClassNote) bool{
		"created_at": func(a, b models.ClassNote) bool { return a.CreatedAt.Before(b.CreatedAt) },
	},
}

// ClassRepository provides access to classes, their subjects and notes.
type ClassRepository interface {
	List(ctx context.Context, criteria listquery.Criteria) (listquery.Result[models.Class], error)
	GetByID(ctx context.Context, id string) (models.Class, error)
	All(ctx context.Context) ([]models.Class, error)
	ListSubjects(ctx context.Context, criteria listquery.Criteria) (listquery.Result[models.Subject], error)
	GetSubject(ctx context.Context, id string) (models.Subject, error)
	SubjectsByClass(ctx context.Context, classID string) ([]models.Subject, error)
	SubjectsByTeacher(ctx context.Context, teacherID string) ([]models.Subject, error)
	ListNotes(ctx context.Context, criteria listquery.Criteria) (listquery.Result[models.ClassNote], error)
}

type classRepository struct {
	classes  collection[models.Class]
	subjects collection[models.Subject]
	notes    collection[models.ClassNote]
}

// NewClassRepository constructs the class repository.
func NewClassRepository(classes []models.Class, subjects []models.Subject, notes []models.ClassNote) ClassRepository {
	return &classRepository{
		classes:  newCollection(classes, func(c models.Class) string { return c.ID }, classSchema),
		subjects: newCollection(subjects, func(s models.Subject) string { return s.ID }, subjectSchema),
		notes:    newCollection(notes, func(n models.ClassNote) string { return n.ID }, classNoteSchema),
	}
}

func (r *classRepository) List(ctx context.Context, criteria listquery.Criteria) (listquery.Result[models.Class], error) {
	return r.classes.list(ctx, criteria)
}

func (r *classRepository) GetByID(ctx context.Context, id string) (models.Class, error) {
	return r.classes.get(ctx, id)
}

func (r *classRepository) All(ctx context.Context) ([]models.Class, error) {
	return r.classes.all(ctx)
}

func (r *classRepository) ListSubjects(ctx context.Context, criteria listquery.Criteria) (listquery.Result[models.Subject], error) {
	return r.subjects.list(ctx, criteria)
}

func (r *classRepository) GetSubject(ctx context.Context, id string) (models.Subject, error) {
	return r.subjects.get(ctx, id)
}

func (r *classRepository) SubjectsByClass(ctx context.Context, classID string) ([]models.Subject, error) {
	return r.subjects.where(ctx, func(s models.Subject) bool { return s.ClassID == classID })
}

func (r *classRepository) SubjectsByTeacher(ctx context.Context, teacherID string) ([]models.Subject, error) {
	return r.subjects.where(ctx, func(s models.Subject) bool { return s.TeacherID == teacherID })
}

func (r *classRepository) ListNotes(ctx context.Context, criteria listquery.Criteria) (listquery.Result[models.ClassNote], error) {
	return r.notes.list(ctx, criteria)
}
