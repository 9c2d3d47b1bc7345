package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"nutriplan/models"

	"gorm.io/gorm"
)

// MealPlanRepository defines the interface for interacting with meal plan and meal data.
type MealPlanRepository interface {
	// ReplacePlanForDate atomically removes any plan the user already has for
	// plan.Date (with its meals) and inserts plan with its nested meals.
	ReplacePlanForDate(ctx context.Context, plan *models.MealPlan) error
	// CreatePlan inserts a plan with its meals. It fails on an existing (user, date).
	CreatePlan(ctx context.Context, plan *models.MealPlan) error
	GetPlanByID(ctx context.Context, planID uint) (*models.MealPlan, error)
	// ListPlansByUser returns plans with meals in slot order, newest date first.
	// Empty bounds are open.
	ListPlansByUser(ctx context.Context, userID, startDate, endDate string) ([]models.MealPlan, error)
	// PlannedDates returns the subset of dates for which the user already has a plan.
	PlannedDates(ctx context.Context, userID string, dates []string) (map[string]bool, error)
	GetMealByID(ctx context.Context, mealID uint) (*models.Meal, error)
	SetMealCompletion(ctx context.Context, mealID uint, completed bool, completedAt *time.Time) error
}

type mealPlanRepository struct {
	db *gorm.DB
}

// NewMealPlanRepository creates a new instance of MealPlanRepository.
func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func orderMealsBySlot(db *gorm.DB) *gorm.DB {
	return db.Order("position asc, id asc")
}

func (r *mealPlanRepository) ReplacePlanForDate(ctx context.Context, plan *models.MealPlan) error {
	if plan == nil {
		log.Printf("ERROR: [MealPlanRepository] ReplacePlanForDate: plan cannot be nil")
		return errors.New("plan cannot be nil")
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []models.MealPlan
		if err := tx.Where("user_id = ? AND date = ?", plan.UserID, plan.Date).Find(&existing).Error; err != nil {
			return fmt.Errorf("failed to look up existing plan: %w", err)
		}
		for _, old := range existing {
			if err := tx.Where("meal_plan_id = ?", old.ID).Delete(&models.Meal{}).Error; err != nil {
				return fmt.Errorf("failed to delete meals of plan ID %d: %w", old.ID, err)
			}
			if err := tx.Delete(&models.MealPlan{}, old.ID).Error; err != nil {
				return fmt.Errorf("failed to delete plan ID %d: %w", old.ID, err)
			}
			log.Printf("INFO: [MealPlanRepository] Replaced plan ID %d for userID %s on %s.", old.ID, plan.UserID, plan.Date)
		}
		if err := tx.Create(plan).Error; err != nil {
			return fmt.Errorf("failed to create plan: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Printf("ERROR: [MealPlanRepository] Failed to replace plan for userID %s on %s: %v", plan.UserID, plan.Date, err)
		return fmt.Errorf("failed to replace plan for userID %s on %s: %w", plan.UserID, plan.Date, err)
	}
	log.Printf("INFO: [MealPlanRepository] Stored plan ID %d for userID %s on %s with %d meals.", plan.ID, plan.UserID, plan.Date, len(plan.Meals))
	return nil
}

func (r *mealPlanRepository) CreatePlan(ctx context.Context, plan *models.MealPlan) error {
	if plan == nil {
		log.Printf("ERROR: [MealPlanRepository] CreatePlan: plan cannot be nil")
		return errors.New("plan cannot be nil")
	}
	if err := r.db.WithContext(ctx).Create(plan).Error; err != nil {
		log.Printf("ERROR: [MealPlanRepository] Failed to create plan for userID %s on %s: %v", plan.UserID, plan.Date, err)
		return fmt.Errorf("failed to create plan for userID %s on %s: %w", plan.UserID, plan.Date, err)
	}
	log.Printf("INFO: [MealPlanRepository] Successfully created plan ID %d for userID %s on %s.", plan.ID, plan.UserID, plan.Date)
	return nil
}

// GetPlanByID retrieves a plan by its ID, preloading its meals.
func (r *mealPlanRepository) GetPlanByID(ctx context.Context, planID uint) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := r.db.WithContext(ctx).Preload("Meals", orderMealsBySlot).First(&plan, planID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("INFO: [MealPlanRepository] Plan with ID %d not found.", planID)
			return nil, nil // Not found
		}
		log.Printf("ERROR: [MealPlanRepository] Failed to retrieve plan ID %d: %v", planID, err)
		return nil, fmt.Errorf("failed to retrieve plan ID %d: %w", planID, err)
	}
	return &plan, nil
}

func (r *mealPlanRepository) ListPlansByUser(ctx context.Context, userID, startDate, endDate string) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	q := r.db.WithContext(ctx).Preload("Meals", orderMealsBySlot).Where("user_id = ?", userID)
	q = whereDateBetween(q, "date", startDate, endDate)
	if err := q.Order("date desc").Find(&plans).Error; err != nil {
		log.Printf("ERROR: [MealPlanRepository] Failed to retrieve plans for userID %s: %v", userID, err)
		return nil, fmt.Errorf("failed to retrieve plans for userID %s: %w", userID, err)
	}
	log.Printf("INFO: [MealPlanRepository] Retrieved %d plans for userID %s.", len(plans), userID)
	return plans, nil
}

func (r *mealPlanRepository) PlannedDates(ctx context.Context, userID string, dates []string) (map[string]bool, error) {
	planned := make(map[string]bool, len(dates))
	if len(dates) == 0 {
		return planned, nil
	}
	var found []string
	err := r.db.WithContext(ctx).Model(&models.MealPlan{}).
		Where("user_id = ? AND date IN ?", userID, dates).
		Pluck("date", &found).Error
	if err != nil {
		log.Printf("ERROR: [MealPlanRepository] Failed to check planned dates for userID %s: %v", userID, err)
		return nil, fmt.Errorf("failed to check planned dates for userID %s: %w", userID, err)
	}
	for _, d := range found {
		planned[d] = true
	}
	return planned, nil
}

// GetMealByID retrieves a single meal by its ID.
func (r *mealPlanRepository) GetMealByID(ctx context.Context, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := r.db.WithContext(ctx).First(&meal, mealID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("INFO: [MealPlanRepository] Meal with ID %d not found.", mealID)
			return nil, nil // Not found
		}
		log.Printf("ERROR: [MealPlanRepository] Failed to retrieve meal ID %d: %v", mealID, err)
		return nil, fmt.Errorf("failed to retrieve meal ID %d: %w", mealID, err)
	}
	return &meal, nil
}

// SetMealCompletion updates only the completion columns of a meal.
func (r *mealPlanRepository) SetMealCompletion(ctx context.Context, mealID uint, completed bool, completedAt *time.Time) error {
	res := r.db.WithContext(ctx).Model(&models.Meal{}).Where("id = ?", mealID).
		Updates(map[string]interface{}{"completed": completed, "completed_at": completedAt})
	if res.Error != nil {
		log.Printf("ERROR: [MealPlanRepository] Failed to update completion of meal ID %d: %v", mealID, res.Error)
		return fmt.Errorf("failed to update completion of meal ID %d: %w", mealID, res.Error)
	}
	log.Printf("INFO: [MealPlanRepository] Meal ID %d marked completed=%t.", mealID, completed)
	return nil
}

// whereDateBetween narrows q to rows whose YYYY-MM-DD column lies within the
// inclusive bounds. An empty bound is ignored.
func whereDateBetween(q *gorm.DB, column, startDate, endDate string) *gorm.DB {
	if startDate != "" {
		q = q.Where(column+" >= ?", startDate)
	}
	if endDate != "" {
		q = q.Where(column+" <= ?", endDate)
	}
	return q
}
