package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"nutriplan/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository defines the interface for interacting with user profiles.
type ProfileRepository interface {
	// GetByUserID returns the user's profile, or nil when none exists.
	GetByUserID(ctx context.Context, userID string) (*models.UserProfile, error)
	// Upsert creates the profile or replaces every field of the existing one.
	Upsert(ctx context.Context, profile *models.UserProfile) error
	// ListUserIDs returns the IDs of every user that has completed onboarding.
	ListUserIDs(ctx context.Context) ([]string, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new instance of ProfileRepository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*models.UserProfile, error) {
	if userID == "" {
		return nil, errors.New("user ID cannot be empty")
	}
	var profile models.UserProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("INFO: [ProfileRepository] No profile found for userID %s.", userID)
			return nil, nil // Not found
		}
		log.Printf("ERROR: [ProfileRepository] Failed to fetch profile for userID %s: %v", userID, err)
		return nil, fmt.Errorf("failed to fetch profile for userID %s: %w", userID, err)
	}
	return &profile, nil
}

// Upsert relies on the unique index on user_id.
func (r *profileRepository) Upsert(ctx context.Context, profile *models.UserProfile) error {
	if profile == nil || profile.UserID == "" {
		log.Printf("ERROR: [ProfileRepository] Upsert: profile with a user ID is required")
		return errors.New("profile with a user ID is required")
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(profile).Error
	if err != nil {
		log.Printf("ERROR: [ProfileRepository] Failed to upsert profile for userID %s: %v", profile.UserID, err)
		return fmt.Errorf("failed to upsert profile for userID %s: %w", profile.UserID, err)
	}
	log.Printf("INFO: [ProfileRepository] Saved profile for userID %s.", profile.UserID)
	return nil
}

func (r *profileRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).Model(&models.UserProfile{}).Order("user_id asc").Pluck("user_id", &ids).Error; err != nil {
		log.Printf("ERROR: [ProfileRepository] Failed to list profile user IDs: %v", err)
		return nil, fmt.Errorf("failed to list profile user IDs: %w", err)
	}
	return ids, nil
}
