package service

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/listquery"
	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/repository"
	"github.com/noah-isme/school-admin-api/pkg/cardprint"
)

// ErrIDCardNotFound indicates the requested card does not exist.
var ErrIDCardNotFound = errors.New("id card not found")

// IDCardService exposes issued identity cards and renders them.
type IDCardService interface {
	List(ctx context.Context, criteria listquery.Criteria) (dto.ListResponse[dto.IDCardResponse], error)
	Get(ctx context.Context, id string) (dto.IDCardResponse, error)
	QR(ctx context.Context, id string) ([]byte, error)
	PDF(ctx context.Context, id string, w io.Writer) error
}

type idCardService struct {
	cards      repository.IDCardRepository
	students   repository.StudentRepository
	teachers   repository.TeacherRepository
	classes    repository.ClassRepository
	schoolName string
	logger     zerolog.Logger
}

// NewIDCardService constructs the ID card service. schoolName is printed on every card.
func NewIDCardService(cards repository.IDCardRepository, students repository.StudentRepository, teachers repository.TeacherRepository, classes repository.ClassRepository, schoolName string, logger zerolog.Logger) IDCardService {
	return &idCardService{
		cards:      cards,
		students:   students,
		teachers:   teachers,
		classes:    classes,
		schoolName: schoolName,
		logger:     logger.With().Str("component", "idcard_service").Logger(),
	}
}

func (s *idCardService) List(ctx context.Context, criteria listquery.Criteria) (dto.ListResponse[dto.IDCardResponse], error) {
	result, err := s.cards.List(ctx, criteria)
	if err != nil {
		return dto.ListResponse[dto.IDCardResponse]{}, err
	}

	items := make([]dto.IDCardResponse, 0, len(result.Items))
	for _, card := range result.Items {
		response, err := s.resolve(ctx, card)
		if err != nil {
			return dto.ListResponse[dto.IDCardResponse]{}, err
		}
		items = append(items, response)
	}
	return dto.ListResponse[dto.IDCardResponse]{Items: items, Pagination: dto.NewPaginationMeta(result)}, nil
}

func (s *idCardService) Get(ctx context.Context, id string) (dto.IDCardResponse, error) {
	card, err := s.cards.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.IDCardResponse{}, ErrIDCardNotFound
		}
		return dto.IDCardResponse{}, err
	}
	return s.resolve(ctx, card)
}

func (s *idCardService) QR(ctx context.Context, id string) ([]byte, error) {
	card, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return cardprint.QR(s.printable(card), cardprint.DefaultQRSize)
}

func (s *idCardService) PDF(ctx context.Context, id string, w io.Writer) error {
	card, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return cardprint.PDF(w, s.printable(card))
}

func (s *idCardService) printable(card dto.IDCardResponse) cardprint.Card {
	return cardprint.Card{
		SchoolName: s.schoolName,
		HolderName: card.HolderName,
		HolderType: card.HolderType,
		HolderID:   card.HolderID,
		Detail:     card.Detail,
		CardNumber: card.CardNumber,
		Status:     card.Status,
		IssuedAt:   card.IssuedAt,
		ExpiresAt:  card.ExpiresAt,
	}
}

func (s *idCardService) resolve(ctx context.Context, card models.IDCard) (dto.IDCardResponse, error) {
	response := dto.IDCardResponse{IDCard: card}

	switch card.HolderType {
	case models.HolderTypeStudent:
		student, err := s.students.GetByID(ctx, card.HolderID)
		if err != nil {
			return s.unresolved(response, err)
		}
		response.HolderName = student.Name
		response.Detail = "Roll " + student.RollNumber
		if class, err := s.classes.GetByID(ctx, student.ClassID); err == nil {
			response.Detail = class.Name + " / Roll " + student.RollNumber
		}
	case models.HolderTypeTeacher:
		teacher, err := s.teachers.GetByID(ctx, card.HolderID)
		if err != nil {
			return s.unresolved(response, err)
		}
		response.HolderName = teacher.Name
		response.Detail = "Teaching staff"
	}
	return response, nil
}

func (s *idCardService) unresolved(response dto.IDCardResponse, err error) (dto.IDCardResponse, error) {
	if !errors.Is(err, repository.ErrNotFound) {
		return dto.IDCardResponse{}, err
	}
	s.logger.Warn().Str("card_id", response.ID).Str("holder_id", response.HolderID).Msg("card holder not found")
	return response, nil
}
