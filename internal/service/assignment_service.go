package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/listquery"
	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/repository"
)

// AssignmentResponse is an assignment with subject and class names resolved.
type AssignmentResponse struct {
	models.Assignment
	SubjectName string `json:"subject_name"`
	ClassName   string `json:"class_name"`
	Overdue     bool   `json:"overdue"`
}

// AssignmentService lists coursework.
type AssignmentService interface {
	List(ctx context.Context, criteria listquery.Criteria) (dto.ListResponse[AssignmentResponse], error)
}

type assignmentService struct {
	assignments repository.AssignmentRepository
	classes     repository.ClassRepository
	logger      zerolog.Logger
	now         func() time.Time
}

// NewAssignmentService constructs the assignment service.
func NewAssignmentService(assignments repository.AssignmentRepository, classes repository.ClassRepository, logger zerolog.Logger) AssignmentService {
	return &assignmentService{
		assignments: assignments,
		classes:     classes,
		logger:      logger.With().Str("component", "assignment_service").Logger(),
		now:         time.Now,
	}
}

func (s *assignmentService) List(ctx context.Context, criteria listquery.Criteria) (dto.ListResponse[AssignmentResponse], error) {
	result, err := s.assignments.List(ctx, criteria)
	if err != nil {
		return dto.ListResponse[AssignmentResponse]{}, err
	}

	classes, err := s.classes.All(ctx)
	if err != nil {
		return dto.ListResponse[AssignmentResponse]{}, err
	}
	classNames := make(map[string]string, len(classes))
	for _, class := range classes {
		classNames[class.ID] = class.Name
	}

	subjects, err := s.classes.ListSubjects(ctx, listquery.Criteria{})
	if err != nil {
		return dto.ListResponse[AssignmentResponse]{}, err
	}
	subjectNames := make(map[string]string, len(subjects.Items))
	for _, subject := range subjects.Items {
		subjectNames[subject.ID] = subject.Name
	}

	now := s.now()
	return dto.MapListResponse(result, func(assignment models.Assignment) AssignmentResponse {
		return AssignmentResponse{
			Assignment:  assignment,
			SubjectName: subjectNames[assignment.SubjectID],
			ClassName:   classNames[assignment.ClassID],
			Overdue:     assignment.Status == models.AssignmentStatusPublished && assignment.IsPastDue(now),
		}
	}), nil
}
