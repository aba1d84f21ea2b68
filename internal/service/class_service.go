package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/listquery"
	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/repository"
)

// ErrClassNotFound indicates the requested class does not exist.
var ErrClassNotFound = errors.New("class not found")

// ClassService exposes classes, their subjects and class notes.
type ClassService interface {
	List(ctx context.Context, criteria listquery.Criteria) (dto.ListResponse[dto.ClassResponse], error)
	Get(ctx context.Context, id string) (dto.ClassDetailResponse, error)
	Notes(ctx context.Context, classID string, criteria listquery.Criteria) (dto.ListResponse[models.ClassNote], error)
	Subjects(ctx context.Context, criteria listquery.Criteria) (dto.ListResponse[models.Subject], error)
}

type classService struct {
	classes  repository.ClassRepository
	teachers repository.TeacherRepository
	students repository.StudentRepository
	logger   zerolog.Logger
}

// NewClassService constructs the class service.
func NewClassService(classes repository.ClassRepository, teachers repository.TeacherRepository, students repository.StudentRepository, logger zerolog.Logger) ClassService {
	return &classService{
		classes:  classes,
		teachers: teachers,
		students: students,
		logger:   logger.With().Str("component", "class_service").Logger(),
	}
}

func (s *classService) List(ctx context.Context, criteria listquery.Criteria) (dto.ListResponse[dto.ClassResponse], error) {
	result, err := s.classes.List(ctx, criteria)
	if err != nil {
		return dto.ListResponse[dto.ClassResponse]{}, err
	}

	teachers, err := s.teachers.All(ctx)
	if err != nil {
		return dto.ListResponse[dto.ClassResponse]{}, err
	}
	names := make(map[string]string, len(teachers))
	for _, teacher := range teachers {
		names[teacher.ID] = teacher.Name
	}

	return dto.MapListResponse(result, func(class models.Class) dto.ClassResponse {
		return dto.ClassResponse{Class: class, TeacherName: names[class.TeacherID]}
	}), nil
}

func (s *classService) Get(ctx context.Context, id string) (dto.ClassDetailResponse, error) {
	class, err := s.lookup(ctx, id)
	if err != nil {
		return dto.ClassDetailResponse{}, err
	}

	detail := dto.ClassDetailResponse{Class: class}

	teacher, err := s.teachers.GetByID(ctx, class.TeacherID)
	switch {
	case err == nil:
		detail.HomeroomTeacher = &dto.TeacherSummary{ID: teacher.ID, Name: teacher.Name, Email: teacher.Email}
	case !errors.Is(err, repository.ErrNotFound):
		return dto.ClassDetailResponse{}, err
	}

	if detail.Subjects, err = s.classes.SubjectsByClass(ctx, class.ID); err != nil {
		return dto.ClassDetailResponse{}, err
	}

	students, err := s.students.ListByClass(ctx, class.ID)
	if err != nil {
		return dto.ClassDetailResponse{}, err
	}
	detail.StudentCount = len(students)

	return detail, nil
}

func (s *classService) Notes(ctx context.Context, classID string, criteria listquery.Criteria) (dto.ListResponse[models.ClassNote], error) {
	if _, err := s.lookup(ctx, classID); err != nil {
		return dto.ListResponse[models.ClassNote]{}, err
	}

	result, err := s.classes.ListNotes(ctx, withFilter(criteria, "class_id", classID))
	if err != nil {
		return dto.ListResponse[models.ClassNote]{}, err
	}
	return dto.NewListResponse(result), nil
}

func (s *classService) Subjects(ctx context.Context, criteria listquery.Criteria) (dto.ListResponse[models.Subject], error) {
	result, err := s.classes.ListSubjects(ctx, criteria)
	if err != nil {
		return dto.ListResponse[models.Subject]{}, err
	}
	return dto.NewListResponse(result), nil
}

func (s *classService) lookup(ctx context.Context, id string) (models.Class, error) {
	class, err := s.classes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Class{}, ErrClassNotFound
		}
		return models.Class{}, err
	}
	return class, nil
}
