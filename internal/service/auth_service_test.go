package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/models"
)

func TestAuthServiceLoginUsesDirectoryRole(t *testing.T) {
	env := newTestEnv()
	svc := NewAuthService(env.users, env.validate, "secret", time.Hour, zerolog.Nop())

	session, err := svc.Login(context.Background(), dto.LoginRequest{Email: " Alan.Turing@school.test ", Password: "anything"})
	require.NoError(t, err)
	require.Equal(t, "t1", session.User.ID)
	require.Equal(t, models.RoleTeacher, session.User.Role)
	require.Equal(t, "Bearer", session.TokenType)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(session.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.Equal(t, "t1", claims["sub"])
	require.Equal(t, models.RoleTeacher, claims["role"])
}

func TestAuthServiceLoginDefaultsToAdmin(t *testing.T) {
	env := newTestEnv()
	svc := NewAuthService(env.users, env.validate, "secret", time.Hour, zerolog.Nop())

	first, err := svc.Login(context.Background(), dto.LoginRequest{Email: "visitor@example.com", Password: "hunter22"})
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, first.User.Role)
	require.Equal(t, "visitor", first.User.Name)

	second, err := svc.Login(context.Background(), dto.LoginRequest{Email: "visitor@example.com", Password: "different"})
	require.NoError(t, err)
	require.Equal(t, first.User.ID, second.User.ID)
}

func TestAuthServiceLoginValidatesFields(t *testing.T) {
	env := newTestEnv()
	svc := NewAuthService(env.users, env.validate, "secret", time.Hour, zerolog.Nop())

	cases := []dto.LoginRequest{
		{Email: "", Password: "password"},
		{Email: "not-an-email", Password: "password"},
		{Email: "admin@school.test", Password: "short"},
	}
	for _, req := range cases {
		_, err := svc.Login(context.Background(), req)
		var validationErrors validator.ValidationErrors
		require.True(t, errors.As(err, &validationErrors), "request %+v", req)
	}
}
