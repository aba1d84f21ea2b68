package repository

import (
	"context"
	"strings"

	"github.com/noah-isme/school-admin-api/internal/models"
)

// UserRepository looks up accounts in the demo login directory.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

type userRepository struct {
	users []models.User
}

// NewUserRepository constructs a user repository over the given accounts.
func NewUserRepository(users []models.User) UserRepository {
	return &userRepository{users: users}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	for _, user := range r.users {
		if strings.ToLower(user.Email) == email {
			return user, nil
		}
	}
	return models.User{}, ErrNotFound
}
