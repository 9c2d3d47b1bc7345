package services

import (
	"context"
	"errors"
	"testing"

	"nutriplan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validProfileInput() ProfileInput {
	return ProfileInput{
		Age:                30,
		Gender:             "Male",
		Height:             180,
		Weight:             80,
		ActivityLevel:      "moderate",
		Goal:               "lose-weight",
		DietType:           "Vegetarian",
		CuisinePreferences: []string{"Indian", " indian ", "italian"},
		Allergies:          []string{"nuts", ""},
	}
}

func TestProfileService_SaveProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes and stores a valid profile", func(t *testing.T) {
		repo := new(MockProfileRepository)
		var upserted *models.UserProfile
		repo.On("Upsert", ctx, mock.MatchedBy(func(p *models.UserProfile) bool {
			return p.UserID == "u1" && p.Gender == "male" && p.DietType == "vegetarian"
		})).Return(nil).Once().Run(func(args mock.Arguments) {
			upserted = args.Get(1).(*models.UserProfile)
		})
		stored := &models.UserProfile{ID: 7, UserID: "u1"}
		repo.On("GetByUserID", ctx, "u1").Return(stored, nil).Once()

		profile, err := NewProfileService(repo).SaveProfile(ctx, "u1", validProfileInput())

		require.NoError(t, err)
		assert.Same(t, stored, profile)
		require.NotNil(t, upserted)
		assert.Equal(t, []string{"indian", "italian"}, []string(upserted.CuisinePreferences))
		assert.Equal(t, []string{"nuts"}, []string(upserted.Allergies))
		repo.AssertExpectations(t)
	})

	t.Run("reload failure after save is returned", func(t *testing.T) {
		repo := new(MockProfileRepository)
		repo.On("Upsert", ctx, mock.Anything).Return(nil).Once()
		repo.On("GetByUserID", ctx, "u1").Return(nil, errors.New("connection reset")).Once()

		profile, err := NewProfileService(repo).SaveProfile(ctx, "u1", validProfileInput())

		assert.Nil(t, profile)
		assert.ErrorContains(t, err, "connection reset")
	})

	t.Run("missing profile after save is an error", func(t *testing.T) {
		repo := new(MockProfileRepository)
		repo.On("Upsert", ctx, mock.Anything).Return(nil).Once()
		repo.On("GetByUserID", ctx, "u1").Return(nil, nil).Once()

		profile, err := NewProfileService(repo).SaveProfile(ctx, "u1", validProfileInput())

		assert.Nil(t, profile)
		assert.Error(t, err)
	})

	t.Run("unknown activity level is accepted", func(t *testing.T) {
		repo := new(MockProfileRepository)
		repo.On("Upsert", ctx, mock.Anything).Return(nil).Once()
		stored := &models.UserProfile{UserID: "u1", ActivityLevel: "extreme"}
		repo.On("GetByUserID", ctx, "u1").Return(stored, nil).Once()

		in := validProfileInput()
		in.ActivityLevel = "extreme"
		profile, err := NewProfileService(repo).SaveProfile(ctx, "u1", in)

		require.NoError(t, err)
		assert.Same(t, stored, profile)
	})

	invalid := map[string]func(*ProfileInput){
		"zero age":        func(in *ProfileInput) { in.Age = 0 },
		"absurd age":      func(in *ProfileInput) { in.Age = 200 },
		"tiny height":     func(in *ProfileInput) { in.Height = 10 },
		"negative weight": func(in *ProfileInput) { in.Weight = -5 },
		"unknown gender":  func(in *ProfileInput) { in.Gender = "robot" },
		"unknown goal":    func(in *ProfileInput) { in.Goal = "get-huge" },
		"unknown diet":    func(in *ProfileInput) { in.DietType = "carnivore" },
	}
	for name, mutate := range invalid {
		t.Run("rejects "+name, func(t *testing.T) {
			repo := new(MockProfileRepository)
			in := validProfileInput()
			mutate(&in)

			_, err := NewProfileService(repo).SaveProfile(ctx, "u1", in)

			assert.ErrorIs(t, err, ErrInvalidInput)
			repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
		})
	}
}

func TestProfileService_GetProfile(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProfileRepository)
	repo.On("GetByUserID", ctx, "missing").Return(nil, nil).Once()
	repo.On("GetByUserID", ctx, "u1").Return(&models.UserProfile{UserID: "u1"}, nil).Once()
	svc := NewProfileService(repo)

	_, err := svc.GetProfile(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	p, err := svc.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", p.UserID)
}
