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

// ErrTeacherNotFound indicates the requested teacher does not exist.
var ErrTeacherNotFound = errors.New("teacher not found")

// TeacherService exposes the staff directory.
type TeacherService interface {
	List(ctx context.Context, criteria listquery.Criteria, subjectID string) (dto.ListResponse[dto.TeacherResponse], error)
	Get(ctx context.Context, id string) (dto.TeacherResponse, error)
}

type teacherService struct {
	teachers repository.TeacherRepository
	classes  repository.ClassRepository
	logger   zerolog.Logger
}

// NewTeacherService constructs the teacher service.
func NewTeacherService(teachers repository.TeacherRepository, classes repository.ClassRepository, logger zerolog.Logger) TeacherService {
	return &teacherService{
		teachers: teachers,
		classes:  classes,
		logger:   logger.With().Str("component", "teacher_service").Logger(),
	}
}

func (s *teacherService) List(ctx context.Context, criteria listquery.Criteria, subjectID string) (dto.ListResponse[dto.TeacherResponse], error) {
	result, err := s.teachers.List(ctx, criteria, subjectID)
	if err != nil {
		return dto.ListResponse[dto.TeacherResponse]{}, err
	}

	items := make([]dto.TeacherResponse, 0, len(result.Items))
	for _, teacher := range result.Items {
		names, err := s.subjectNames(ctx, teacher)
		if err != nil {
			return dto.ListResponse[dto.TeacherResponse]{}, err
		}
		items = append(items, dto.TeacherResponse{Teacher: teacher, SubjectNames: names})
	}

	return dto.ListResponse[dto.TeacherResponse]{Items: items, Pagination: dto.NewPaginationMeta(result)}, nil
}

func (s *teacherService) Get(ctx context.Context, id string) (dto.TeacherResponse, error) {
	teacher, err := s.teachers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.TeacherResponse{}, ErrTeacherNotFound
		}
		return dto.TeacherResponse{}, err
	}

	names, err := s.subjectNames(ctx, teacher)
	if err != nil {
		return dto.TeacherResponse{}, err
	}
	return dto.TeacherResponse{Teacher: teacher, SubjectNames: names}, nil
}

func (s *teacherService) subjectNames(ctx context.Context, teacher models.Teacher) ([]string, error) {
	names := make([]string, 0, len(teacher.SubjectIDs))
	for _, subjectID := range teacher.SubjectIDs {
		subject, err := s.classes.GetSubject(ctx, subjectID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				s.logger.Warn().Str("teacher_id", teacher.ID).Str("subject_id", subjectID).Msg("teacher references unknown subject")
				continue
			}
			return nil, err
		}
		names = append(names, subject.Name+" ("+subject.Code+")")
	}
	return names, nil
}
