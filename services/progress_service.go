package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"nutriplan/models"
	"nutriplan/repository"
)

const (
	PeriodLast7Days  = "last_7_days"
	PeriodLast30Days = "last_30_days"
	daysInWeek       = 7
	daysInMonth      = 30
)

// ProgressInput is the body of a daily progress submission.
type ProgressInput struct {
	Date             string   `json:"date"` // defaults to today
	Weight           *float64 `json:"weight"`
	CaloriesConsumed *int     `json:"caloriesConsumed"`
	WaterIntake      *int     `json:"waterIntake"`
	ExerciseMinutes  *int     `json:"exerciseMinutes"`
	Notes            string   `json:"notes"`
}

// ProgressService defines the interface for daily progress logging and reports.
type ProgressService interface {
	LogProgress(ctx context.Context, userID string, in ProgressInput) (*models.UserProgress, error)
	ListProgress(ctx context.Context, userID, startDate, endDate string) ([]models.UserProgress, error)
	GenerateProgressReport(ctx context.Context, userID string, periodType string, referenceDateStr string) (*models.ProgressReportResponse, error)
}

type progressService struct {
	progressRepo repository.ProgressRepository
	planRepo     repository.MealPlanRepository
	taskRepo     repository.TaskRepository
	now          func() time.Time
}

// NewProgressService creates a new instance of ProgressService.
func NewProgressService(progressRepo repository.ProgressRepository, planRepo repository.MealPlanRepository, taskRepo repository.TaskRepository) ProgressService {
	return &progressService{
		progressRepo: progressRepo,
		planRepo:     planRepo,
		taskRepo:     taskRepo,
		now:          time.Now,
	}
}

func (s *progressService) LogProgress(ctx context.Context, userID string, in ProgressInput) (*models.UserProgress, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userID cannot be empty", ErrInvalidInput)
	}
	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = s.now().Format(time.DateOnly)
	} else if _, err := time.Parse(time.DateOnly, date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if in.Weight != nil && (*in.Weight < 20 || *in.Weight > 500) {
		return nil, fmt.Errorf("%w: weight must be between 20 and 500 kg", ErrInvalidInput)
	}
	for name, v := range map[string]*int{
		"caloriesConsumed": in.CaloriesConsumed,
		"waterIntake":      in.WaterIntake,
		"exerciseMinutes":  in.ExerciseMinutes,
	} {
		if v != nil && *v < 0 {
			return nil, fmt.Errorf("%w: %s cannot be negative", ErrInvalidInput, name)
		}
	}

	entry := &models.UserProgress{
		UserID:           userID,
		Date:             date,
		Weight:           in.Weight,
		CaloriesConsumed: in.CaloriesConsumed,
		WaterIntake:      in.WaterIntake,
		ExerciseMinutes:  in.ExerciseMinutes,
		Notes:            strings.TrimSpace(in.Notes),
	}
	if err := s.progressRepo.UpsertProgress(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save progress for userID %s: %w", userID, err)
	}
	if saved, err := s.progressRepo.GetProgressByDate(ctx, userID, date); err == nil && saved != nil {
		return saved, nil
	}
	return entry, nil
}

func (s *progressService) ListProgress(ctx context.Context, userID, startDate, endDate string) ([]models.UserProgress, error) {
	if err := validateDateRange(startDate, endDate); err != nil {
		return nil, err
	}
	entries, err := s.progressRepo.ListProgress(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress for userID %s: %w", userID, err)
	}
	return entries, nil
}

// GenerateProgressReport summarises meals, tasks and logged metrics over the
// period ending on referenceDateStr (today when empty).
func (s *progressService) GenerateProgressReport(ctx context.Context, userID string, periodType string, referenceDateStr string) (*models.ProgressReportResponse, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty")
	}

	// 1. Determine Date Range
	endDate := s.now()
	if referenceDateStr != "" {
		parsedDate, err := time.Parse(time.DateOnly, referenceDateStr)
		if err != nil {
			return nil, fmt.Errorf("%w: referenceDate must be YYYY-MM-DD", ErrInvalidInput)
		}
		endDate = parsedDate
	}

	var startDate time.Time
	switch periodType {
	case PeriodLast7Days, "":
		periodType = PeriodLast7Days
		startDate = endDate.AddDate(0, 0, -(daysInWeek - 1))
	case PeriodLast30Days:
		startDate = endDate.AddDate(0, 0, -(daysInMonth - 1))
	default:
		return nil, fmt.Errorf("%w: period must be %s or %s", ErrInvalidInput, PeriodLast7Days, PeriodLast30Days)
	}

	period := models.ReportPeriod{
		StartDate:  startDate.Format(time.DateOnly),
		EndDate:    endDate.Format(time.DateOnly),
		PeriodType: periodType,
	}
	log.Printf("INFO: [ProgressService] Generating report for userID %s, period: %s to %s (%s)", userID, period.StartDate, period.EndDate, periodType)

	// 2. Fetch Data
	plans, err := s.planRepo.ListPlansByUser(ctx, userID, period.StartDate, period.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve meal plans: %w", err)
	}
	tasks, err := s.taskRepo.ListTasksInRange(ctx, userID, period.StartDate, period.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tasks: %w", err)
	}
	entries, err := s.progressRepo.ListProgress(ctx, userID, period.StartDate, period.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve progress entries: %w", err)
	}

	// 3. Aggregate
	report := &models.ProgressReportResponse{
		UserID:       userID,
		ReportPeriod: period,
		Meals:        summarizeMeals(plans),
		Tasks:        summarizeTasks(tasks),
		Metrics:      summarizeMetrics(entries),
		GeneratedAt:  s.now(),
	}
	log.Printf("INFO: [ProgressService] Report for userID %s: %d/%d meals, %d/%d tasks, %d days logged.",
		userID, report.Meals.CompletedMeals, report.Meals.PlannedMeals, report.Tasks.CompletedTasks, report.Tasks.TotalTasks, report.Metrics.DaysLogged)
	return report, nil
}

func summarizeMeals(plans []models.MealPlan) models.MealSummary {
	var sum models.MealSummary
	for _, plan := range plans {
		for _, meal := range plan.Meals {
			sum.PlannedMeals++
			sum.PlannedCalories += meal.Calories
			if meal.Completed {
				sum.CompletedMeals++
				sum.CompletedCalories += meal.Calories
			}
		}
	}
	sum.CompletionRate = rate(sum.CompletedMeals, sum.PlannedMeals)
	return sum
}

func summarizeTasks(tasks []models.Task) models.TaskSummary {
	sum := models.TaskSummary{TasksCompletedByType: make(map[models.TaskType]int)}
	for _, task := range tasks {
		sum.TotalTasks++
		if task.Completed {
			sum.CompletedTasks++
			sum.TasksCompletedByType[task.Type]++
		}
	}
	sum.CompletionRate = rate(sum.CompletedTasks, sum.TotalTasks)
	return sum
}

// summarizeMetrics expects entries newest first, as the repository returns them.
func summarizeMetrics(entries []models.UserProgress) models.MetricsSummary {
	sum := models.MetricsSummary{DaysLogged: len(entries)}
	var calories, calorieDays, water, waterDays int
	for _, e := range entries {
		if e.CaloriesConsumed != nil {
			calories += *e.CaloriesConsumed
			calorieDays++
		}
		if e.WaterIntake != nil {
			water += *e.WaterIntake
			waterDays++
		}
		if e.ExerciseMinutes != nil {
			sum.TotalExerciseMinutes += *e.ExerciseMinutes
		}
		if e.Weight != nil {
			w := *e.Weight
			if sum.EndWeight == nil {
				sum.EndWeight = &w
			}
			sum.StartWeight = &w
		}
	}
	sum.AvgCaloriesConsumed = average(calories, calorieDays)
	sum.AvgWaterIntake = average(water, waterDays)
	if sum.StartWeight != nil && sum.EndWeight != nil {
		change := math.Round((*sum.EndWeight-*sum.StartWeight)*10) / 10
		sum.WeightChange = &change
	}
	return sum
}

func rate(done, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(done)/float64(total)*100) / 100
}

func average(total, n int) float64 {
	if n == 0 {
		return 0
	}
	return math.Round(float64(total)/float64(n)*10) / 10
}
