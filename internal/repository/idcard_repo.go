package repository

import (
	"context"

	"github.com/noah-isme/school-admin-api/internal/listquery"
	"github.com/noah-isme/school-admin-api/internal/models"
)

var idCardSchema = listquery.Schema[models.IDCard]{
	Text: map[string]func(models.IDCard) string{
		"card_number": func(c models.IDCard) string { return c.CardNumber },
		"holder_id":   func(c models.IDCard) string { return c.HolderID },
	},
	Fields: map[string]func(models.IDCard) string{
		"holder_type": func(c models.IDCard) string { return c.HolderType },
		"status":      func(c models.IDCard) string { return c.Status },
	},
	Sorts: map[string]func(a, b models.IDCard) bool{
		"card_number": func(a, b models.IDCard) bool { return a.CardNumber < b.CardNumber },
		"expires_at":  func(a, b models.IDCard) bool { return a.ExpiresAt.Before(b.ExpiresAt) },
	},
}

// IDCardRepository provides access to issued ID cards.
type IDCardRepository interface {
	List(ctx context.Context, criteria listquery.Criteria) (listquery.Result[models.IDCard], error)
	GetByID(ctx context.Context, id string) (models.IDCard, error)
}

type idCardRepository struct {
	cards collection[models.IDCard]
}

// NewIDCardRepository constructs an ID card repository over the given records.
func NewIDCardRepository(cards []models.IDCard) IDCardRepository {
	return &idCardRepository{
		cards: newCollection(cards, func(c models.IDCard) string { return c.ID }, idCardSchema),
	}
}

func (r *idCardRepository) List(ctx context.Context, criteria listquery.Criteria) (listquery.Result[models.IDCard], error) {
	return r.cards.list(ctx, criteria)
}

func (r *idCardRepository) GetByID(ctx context.Context, id string) (models.IDCard, error) {
	return r.cards.get(ctx, id)
}
