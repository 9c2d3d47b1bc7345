package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"nutriplan/models"
	"nutriplan/repository"
)

// PlanHorizonDays is how many consecutive days, starting today, a generation run covers.
const PlanHorizonDays = 3

// MealPlanService defines the interface for generating and tracking meal plans.
type MealPlanService interface {
	// GeneratePlan (re)generates the plans for today and the next two days.
	// Existing plans for those dates are replaced.
	GeneratePlan(ctx context.Context, userID string) ([]models.MealPlan, error)
	// EnsureUpcomingPlans creates plans only for upcoming days that have none
	// and reports how many were created.
	EnsureUpcomingPlans(ctx context.Context, userID string) (int, error)
	// RefreshAllUpcomingPlans runs EnsureUpcomingPlans for every user with a profile.
	RefreshAllUpcomingPlans(ctx context.Context) error
	ListPlans(ctx context.Context, userID, startDate, endDate string) ([]models.MealPlan, error)
	SetMealCompletion(ctx context.Context, userID string, mealID uint, completed bool) (*models.Meal, error)
}

type mealPlanService struct {
	planRepo    repository.MealPlanRepository
	profileRepo repository.ProfileRepository
	allocator   *MealAllocator
	now         func() time.Time
}

// NewMealPlanService creates a new instance of MealPlanService.
func NewMealPlanService(planRepo repository.MealPlanRepository, profileRepo repository.ProfileRepository) MealPlanService {
	return &mealPlanService{
		planRepo:    planRepo,
		profileRepo: profileRepo,
		allocator:   NewMealAllocator(nil),
		now:         time.Now,
	}
}

// loadProfile returns ErrProfileRequired when the user has not onboarded.
func (s *mealPlanService) loadProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userID cannot be empty", ErrInvalidInput)
	}
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		log.Printf("ERROR: [MealPlanService] Failed to load profile for userID %s: %v", userID, err)
		return nil, fmt.Errorf("failed to load profile for userID %s: %w", userID, err)
	}
	if profile == nil {
		log.Printf("WARN: [MealPlanService] UserID %s has no profile; cannot plan meals.", userID)
		return nil, ErrProfileRequired
	}
	return profile, nil
}

func (s *mealPlanService) upcomingDates() []string {
	today := s.now()
	dates := make([]string, PlanHorizonDays)
	for day := range PlanHorizonDays {
		dates[day] = today.AddDate(0, 0, day).Format(time.DateOnly)
	}
	return dates
}

func (s *mealPlanService) buildPlan(profile *models.UserProfile, target int, date string) *models.MealPlan {
	drafts := s.allocator.Allocate(*profile, target)
	plan := &models.MealPlan{
		UserID:        profile.UserID,
		Date:          date,
		TotalCalories: target,
		Meals:         make([]models.Meal, 0, len(drafts)),
	}
	for i, d := range drafts {
		plan.Meals = append(plan.Meals, d.ToMeal(i))
	}
	return plan
}

func (s *mealPlanService) GeneratePlan(ctx context.Context, userID string) ([]models.MealPlan, error) {
	log.Printf("INFO: [MealPlanService] Generating %d-day meal plan for userID: %s", PlanHorizonDays, userID)
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	target := ComputeDailyCalorieTarget(*profile)
	plans := make([]models.MealPlan, 0, PlanHorizonDays)
	for _, date := range s.upcomingDates() {
		plan := s.buildPlan(profile, target, date)
		if err := s.planRepo.ReplacePlanForDate(ctx, plan); err != nil {
			log.Printf("ERROR: [MealPlanService] Failed to store plan for userID %s on %s after %d of %d days: %v", userID, date, len(plans), PlanHorizonDays, err)
			return nil, fmt.Errorf("failed to store meal plan for %s: %w", date, err)
		}
		plans = append(plans, *plan)
	}

	log.Printf("INFO: [MealPlanService] Generated %d plans at %d kcal/day for userID %s.", len(plans), target, userID)
	return plans, nil
}

func (s *mealPlanService) EnsureUpcomingPlans(ctx context.Context, userID string) (int, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return 0, err
	}

	dates := s.upcomingDates()
	planned, err := s.planRepo.PlannedDates(ctx, userID, dates)
	if err != nil {
		return 0, fmt.Errorf("failed to check existing plans for userID %s: %w", userID, err)
	}

	target := ComputeDailyCalorieTarget(*profile)
	created := 0
	for _, date := range dates {
		if planned[date] {
			continue
		}
		if err := s.planRepo.CreatePlan(ctx, s.buildPlan(profile, target, date)); err != nil {
			return created, fmt.Errorf("failed to create meal plan for %s: %w", date, err)
		}
		created++
	}
	if created > 0 {
		log.Printf("INFO: [MealPlanService] Created %d missing plans for userID %s.", created, userID)
	}
	return created, nil
}

func (s *mealPlanService) RefreshAllUpcomingPlans(ctx context.Context) error {
	userIDs, err := s.profileRepo.ListUserIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users for plan refresh: %w", err)
	}
	var errs []error
	total := 0
	for _, userID := range userIDs {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		n, err := s.EnsureUpcomingPlans(ctx, userID)
		if err != nil {
			log.Printf("ERROR: [MealPlanService] Plan refresh failed for userID %s: %v", userID, err)
			errs = append(errs, fmt.Errorf("userID %s: %w", userID, err))
			continue
		}
		total += n
	}
	log.Printf("INFO: [MealPlanService] Plan refresh finished: %d users, %d plans created, %d failures.", len(userIDs), total, len(errs))
	return errors.Join(errs...)
}

func (s *mealPlanService) ListPlans(ctx context.Context, userID, startDate, endDate string) ([]models.MealPlan, error) {
	if err := validateDateRange(startDate, endDate); err != nil {
		return nil, err
	}
	plans, err := s.planRepo.ListPlansByUser(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list meal plans for userID %s: %w", userID, err)
	}
	return plans, nil
}

// SetMealCompletion marks a meal completed or not. Only the owner of the
// meal's plan may change it.
func (s *mealPlanService) SetMealCompletion(ctx context.Context, userID string, mealID uint, completed bool) (*models.Meal, error) {
	meal, err := s.planRepo.GetMealByID(ctx, mealID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch meal ID %d: %w", mealID, err)
	}
	if meal == nil {
		return nil, fmt.Errorf("%w: meal %d", ErrNotFound, mealID)
	}

	plan, err := s.planRepo.GetPlanByID(ctx, meal.MealPlanID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch plan ID %d for meal ID %d: %w", meal.MealPlanID, mealID, err)
	}
	if plan == nil {
		log.Printf("ERROR: [MealPlanService] Plan not found for meal ID %d (MealPlanID: %d). Data integrity issue?", mealID, meal.MealPlanID)
		return nil, fmt.Errorf("%w: plan for meal %d", ErrNotFound, mealID)
	}
	if plan.UserID != userID {
		log.Printf("WARN: [MealPlanService] Unauthorized attempt by userID '%s' to update meal ID %d (belongs to userID '%s').", userID, mealID, plan.UserID)
		return nil, fmt.Errorf("%w: meal %d", ErrForbidden, mealID)
	}

	var completedAt *time.Time
	if completed {
		now := s.now()
		completedAt = &now
	}
	if err := s.planRepo.SetMealCompletion(ctx, mealID, completed, completedAt); err != nil {
		return nil, fmt.Errorf("failed to update meal ID %d: %w", mealID, err)
	}
	meal.Completed = completed
	meal.CompletedAt = completedAt
	return meal, nil
}

// validateDateRange checks optional YYYY-MM-DD bounds.
func validateDateRange(startDate, endDate string) error {
	var start, end time.Time
	var err error
	if startDate != "" {
		if start, err = time.Parse(time.DateOnly, startDate); err != nil {
			return fmt.Errorf("%w: startDate must be YYYY-MM-DD", ErrInvalidInput)
		}
	}
	if endDate != "" {
		if end, err = time.Parse(time.DateOnly, endDate); err != nil {
			return fmt.Errorf("%w: endDate must be YYYY-MM-DD", ErrInvalidInput)
		}
	}
	if startDate != "" && endDate != "" && end.Before(start) {
		return fmt.Errorf("%w: startDate must not be after endDate", ErrInvalidInput)
	}
	return nil
}
