package models

import "time"

// UserProgress is one day of self-reported metrics. One entry per (user, date).
type UserProgress struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	UserID           string    `json:"userId" gorm:"uniqueIndex:idx_user_progress_user_date;not null"`
	Date             string    `json:"date" gorm:"uniqueIndex:idx_user_progress_user_date;type:varchar(10);not null"` // YYYY-MM-DD
	Weight           *float64  `json:"weight"`
	CaloriesConsumed *int      `json:"caloriesConsumed"`
	WaterIntake      *int      `json:"waterIntake"` // glasses
	ExerciseMinutes  *int      `json:"exerciseMinutes"`
	Notes            string    `json:"notes" gorm:"type:text"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// TableName specifies the table name for the UserProgress model.
func (UserProgress) TableName() string {
	return "user_progress"
}

// ReportPeriod defines the time range for the progress report.
type ReportPeriod struct {
	StartDate  string `json:"startDate"`  // YYYY-MM-DD
	EndDate    string `json:"endDate"`    // YYYY-MM-DD
	PeriodType string `json:"periodType"` // last_7_days, last_30_days
}

// MealSummary aggregates meal plan adherence over the period.
type MealSummary struct {
	PlannedMeals      int     `json:"plannedMeals"`
	CompletedMeals    int     `json:"completedMeals"`
	CompletionRate    float64 `json:"completionRate"`
	PlannedCalories   int     `json:"plannedCalories"`
	CompletedCalories int     `json:"completedCalories"`
}

// TaskSummary aggregates task completion over the period.
type TaskSummary struct {
	TotalTasks           int              `json:"totalTasks"`
	CompletedTasks       int              `json:"completedTasks"`
	CompletionRate       float64          `json:"completionRate"`
	TasksCompletedByType map[TaskType]int `json:"tasksCompletedByType"`
}

// MetricsSummary aggregates self-reported progress entries.
type MetricsSummary struct {
	DaysLogged           int      `json:"daysLogged"`
	AvgCaloriesConsumed  float64  `json:"avgCaloriesConsumed"`
	AvgWaterIntake       float64  `json:"avgWaterIntake"`
	TotalExerciseMinutes int      `json:"totalExerciseMinutes"`
	StartWeight          *float64 `json:"startWeight,omitempty"`
	EndWeight            *float64 `json:"endWeight,omitempty"`
	WeightChange         *float64 `json:"weightChange,omitempty"`
}

// ProgressReportResponse is the body of GET /api/progress/report.
type ProgressReportResponse struct {
	UserID       string         `json:"userId"`
	ReportPeriod ReportPeriod   `json:"reportPeriod"`
	Meals        MealSummary    `json:"meals"`
	Tasks        TaskSummary    `json:"tasks"`
	Metrics      MetricsSummary `json:"metrics"`
	GeneratedAt  time.Time      `json:"generatedAt"`
}
