package services

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"

	"nutriplan/models"
	"nutriplan/repository"
)

// ProfileInput is the onboarding form as submitted by the client.
type ProfileInput struct {
	Age                int      `json:"age"`
	Gender             string   `json:"gender"`
	Height             float64  `json:"height"`
	Weight             float64  `json:"weight"`
	ActivityLevel      string   `json:"activityLevel"`
	Goal               string   `json:"goal"`
	DietType           string   `json:"dietType"`
	CuisinePreferences []string `json:"cuisinePreferences"`
	Allergies          []string `json:"allergies"`
	AdditionalInfo     string   `json:"additionalInfo"`
}

// ProfileService defines the interface for managing user profiles.
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	SaveProfile(ctx context.Context, userID string, in ProfileInput) (*models.UserProfile, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new instance of ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile for userID %s: %w", userID, err)
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: profile for user %s", ErrNotFound, userID)
	}
	return profile, nil
}

// SaveProfile validates the form and creates or wholesale replaces the
// user's profile.
func (s *profileService) SaveProfile(ctx context.Context, userID string, in ProfileInput) (*models.UserProfile, error) {
	profile, err := in.toProfile(userID)
	if err != nil {
		log.Printf("WARN: [ProfileService] Rejected profile for userID %s: %v", userID, err)
		return nil, err
	}
	if _, known := activityMultipliers[profile.ActivityLevel]; !known {
		log.Printf("WARN: [ProfileService] Unknown activity level '%s' for userID %s; it will be planned as sedentary.", profile.ActivityLevel, userID)
	}
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile for userID %s: %w", userID, err)
	}

	saved, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		log.Printf("ERROR: [ProfileService] Saved profile for userID %s but failed to reload it: %v", userID, err)
		return nil, fmt.Errorf("failed to reload profile for userID %s: %w", userID, err)
	}
	if saved == nil {
		log.Printf("ERROR: [ProfileService] Profile for userID %s not found right after saving it.", userID)
		return nil, fmt.Errorf("profile for userID %s missing after save", userID)
	}
	return saved, nil
}

func (in ProfileInput) toProfile(userID string) (*models.UserProfile, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userID cannot be empty", ErrInvalidInput)
	}
	gender := strings.ToLower(strings.TrimSpace(in.Gender))
	goal := strings.ToLower(strings.TrimSpace(in.Goal))
	diet := strings.ToLower(strings.TrimSpace(in.DietType))

	switch {
	case in.Age < 1 || in.Age > 130:
		return nil, fmt.Errorf("%w: age must be between 1 and 130", ErrInvalidInput)
	case in.Height < 50 || in.Height > 275:
		return nil, fmt.Errorf("%w: height must be between 50 and 275 cm", ErrInvalidInput)
	case in.Weight < 20 || in.Weight > 500:
		return nil, fmt.Errorf("%w: weight must be between 20 and 500 kg", ErrInvalidInput)
	case !slices.Contains([]string{models.GenderMale, models.GenderFemale, models.GenderOther}, gender):
		return nil, fmt.Errorf("%w: gender must be male, female or other", ErrInvalidInput)
	case !slices.Contains([]string{models.GoalLoseWeight, models.GoalGainWeight, models.GoalMaintain}, goal):
		return nil, fmt.Errorf("%w: goal must be lose-weight, gain-weight or maintain", ErrInvalidInput)
	case !slices.Contains([]string{models.DietVegetarian, models.DietNonVegetarian}, diet):
		return nil, fmt.Errorf("%w: dietType must be vegetarian or non-vegetarian", ErrInvalidInput)
	}

	return &models.UserProfile{
		UserID:             userID,
		Age:                in.Age,
		Gender:             gender,
		Height:             in.Height,
		Weight:             in.Weight,
		ActivityLevel:      strings.ToLower(strings.TrimSpace(in.ActivityLevel)),
		Goal:               goal,
		DietType:           diet,
		CuisinePreferences: uniqueTags(in.CuisinePreferences),
		Allergies:          uniqueTags(in.Allergies),
		AdditionalInfo:     strings.TrimSpace(in.AdditionalInfo),
	}, nil
}

// uniqueTags lower-cases, trims and de-duplicates tags, keeping first-seen order.
func uniqueTags(tags []string) []string {
	out := []string{}
	for _, t := range normalizedTags(tags) {
		if !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}
