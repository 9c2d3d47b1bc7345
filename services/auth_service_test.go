package services

import (
	"context"
	"testing"
	"time"

	"nutriplan/models"
	"nutriplan/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the user and issues a token for it", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetUserByEmail", ctx, "ada@example.com").Return(nil, nil).Once()
		repo.On("CreateUser", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.Email == "ada@example.com" && u.ID != "" && u.PasswordHash != "" && u.PasswordHash != "longenough"
		})).Return(nil).Once()

		user, token, err := NewAuthService(repo, testSecret, time.Hour).Register(ctx, RegisterInput{
			Email: " Ada@Example.com ", Password: "longenough", FirstName: "Ada",
		})

		require.NoError(t, err)
		sub, err := utils.ParseToken(token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, user.ID, sub)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetUserByEmail", ctx, "ada@example.com").Return(&models.User{ID: "x"}, nil).Once()

		_, _, err := NewAuthService(repo, testSecret, time.Hour).Register(ctx, RegisterInput{Email: "ada@example.com", Password: "longenough"})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("invalid input", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewAuthService(repo, testSecret, time.Hour)

		_, _, err := svc.Register(ctx, RegisterInput{Email: "not-an-email", Password: "longenough"})
		assert.ErrorIs(t, err, ErrInvalidInput)
		_, _, err = svc.Register(ctx, RegisterInput{Email: "ada@example.com", Password: "short"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := utils.HashPassword("longenough")
	require.NoError(t, err)
	user := &models.User{ID: "u1", Email: "ada@example.com", PasswordHash: hash}

	repo := new(MockUserRepository)
	repo.On("GetUserByEmail", ctx, "ada@example.com").Return(user, nil)
	repo.On("GetUserByEmail", ctx, "nobody@example.com").Return(nil, nil)
	svc := NewAuthService(repo, testSecret, time.Hour)

	got, token, err := svc.Login(ctx, "ada@example.com", "longenough")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
	assert.NotEmpty(t, token)

	_, _, err = svc.Login(ctx, "ada@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "longenough")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
