package repository

import (
	"context"

	"github.com/noah-isme/school-admin-api/internal/models"
)

// ScoreRepository provides access to term scores.
type ScoreRepository interface {
	ListByStudent(ctx context.Context, studentID string) ([]models.Score, error)
	ListBySubjects(ctx context.Context, subjectIDs []string) ([]models.Score, error)
	All(ctx context.Context) ([]models.Score, error)
}

type scoreRepository struct {
	scores []models.Score
}

// NewScoreRepository constructs a score repository over the given records.
func NewScoreRepository(scores []models.Score) ScoreRepository {
	return &scoreRepository{scores: scores}
}

func (r *scoreRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Score, error) {
	return r.filter(ctx, func(s models.Score) bool { return s.StudentID == studentID })
}

func (r *scoreRepository) ListBySubjects(ctx context.Context, subjectIDs []string) ([]models.Score, error) {
	wanted := make(map[string]struct{}, len(subjectIDs))
	for _, id := range subjectIDs {
		wanted[id] = struct{}{}
	}
	return r.filter(ctx, func(s models.Score) bool {
		_, ok := wanted[s.SubjectID]
		return ok
	})
}

func (r *scoreRepository) All(ctx context.Context) ([]models.Score, error) {
	return r.filter(ctx, func(models.Score) bool { return true })
}

func (r *scoreRepository) filter(ctx context.Context, match func(models.Score) bool) ([]models.Score, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]models.Score, 0)
	for _, score := range r.scores {
		if match(score) {
			out = append(out, score)
		}
	}
	return out, nil
}
