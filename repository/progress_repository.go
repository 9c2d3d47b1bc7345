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

// ProgressRepository defines the interface for interacting with daily progress entries.
type ProgressRepository interface {
	// UpsertProgress creates the entry or overwrites the metrics of the
	// existing entry for the same (user, date).
	UpsertProgress(ctx context.Context, entry *models.UserProgress) error
	GetProgressByDate(ctx context.Context, userID, date string) (*models.UserProgress, error)
	// ListProgress returns entries newest date first. Empty bounds are open.
	ListProgress(ctx context.Context, userID, startDate, endDate string) ([]models.UserProgress, error)
}

type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository creates a new instance of ProgressRepository.
func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) UpsertProgress(ctx context.Context, entry *models.UserProgress) error {
	if entry == nil || entry.UserID == "" || entry.Date == "" {
		log.Printf("ERROR: [ProgressRepository] UpsertProgress: entry with user ID and date is required.")
		return errors.New("progress entry with user ID and date is required")
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"weight", "calories_consumed", "water_intake", "exercise_minutes", "notes", "updated_at",
		}),
	}).Create(entry).Error
	if err != nil {
		log.Printf("ERROR: [ProgressRepository] Failed to upsert progress for userID %s on %s: %v", entry.UserID, entry.Date, err)
		return fmt.Errorf("failed to upsert progress for userID %s on %s: %w", entry.UserID, entry.Date, err)
	}
	log.Printf("INFO: [ProgressRepository] Saved progress for userID %s on %s.", entry.UserID, entry.Date)
	return nil
}

func (r *progressRepository) GetProgressByDate(ctx context.Context, userID, date string) (*models.UserProgress, error) {
	var entry models.UserProgress
	err := r.db.WithContext(ctx).Where("user_id = ? AND date = ?", userID, date).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Not found
		}
		log.Printf("ERROR: [ProgressRepository] Failed to fetch progress for userID %s on %s: %v", userID, date, err)
		return nil, fmt.Errorf("failed to fetch progress for userID %s on %s: %w", userID, date, err)
	}
	return &entry, nil
}

func (r *progressRepository) ListProgress(ctx context.Context, userID, startDate, endDate string) ([]models.UserProgress, error) {
	var entries []models.UserProgress
	q := whereDateBetween(r.db.WithContext(ctx).Where("user_id = ?", userID), "date", startDate, endDate)
	if err := q.Order("date desc").Find(&entries).Error; err != nil {
		log.Printf("ERROR: [ProgressRepository] Failed to list progress for userID %s: %v", userID, err)
		return nil, fmt.Errorf("failed to list progress for userID %s: %w", userID, err)
	}
	return entries, nil
}
