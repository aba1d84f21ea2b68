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

// ErrStudentNotFound indicates the requested student does not exist.
var ErrStudentNotFound = errors.New("student not found")

// StudentService exposes the student directory.
type StudentService interface {
	List(ctx context.Context, criteria listquery.Criteria) (dto.ListResponse[dto.StudentResponse], error)
	Get(ctx context.Context, id string) (dto.StudentResponse, error)
}

type studentService struct {
	students repository.StudentRepository
	classes  repository.ClassRepository
	logger   zerolog.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(students repository.StudentRepository, classes repository.ClassRepository, logger zerolog.Logger) StudentService {
	return &studentService{
		students: students,
		classes:  classes,
		logger:   logger.With().Str("component", "student_service").Logger(),
	}
}

func (s *studentService) List(ctx context.Context, criteria listquery.Criteria) (dto.ListResponse[dto.StudentResponse], error) {
	result, err := s.students.List(ctx, criteria)
	if err != nil {
		return dto.ListResponse[dto.StudentResponse]{}, err
	}

	names, err := s.classNames(ctx)
	if err != nil {
		return dto.ListResponse[dto.StudentResponse]{}, err
	}

	return dto.MapListResponse(result, func(student models.Student) dto.StudentResponse {
		return dto.StudentResponse{Student: student, ClassName: names[student.ClassID]}
	}), nil
}

func (s *studentService) Get(ctx context.Context, id string) (dto.StudentResponse, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.StudentResponse{}, ErrStudentNotFound
		}
		return dto.StudentResponse{}, err
	}

	response := dto.StudentResponse{Student: student}
	class, err := s.classes.GetByID(ctx, student.ClassID)
	switch {
	case err == nil:
		response.ClassName = class.Name
	case !errors.Is(err, repository.ErrNotFound):
		return dto.StudentResponse{}, err
	default:
		s.logger.Warn().Str("student_id", id).Str("class_id", student.ClassID).Msg("student references unknown class")
	}
	return response, nil
}

func (s *studentService) classNames(ctx context.Context) (map[string]string, error) {
	classes, err := s.classes.All(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(classes))
	for _, class := range classes {
		names[class.ID] = class.Name
	}
	return names, nil
}
