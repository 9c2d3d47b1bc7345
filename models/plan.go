package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MealType identifies one of the four daily meal slots.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeSnack     MealType = "snack"
	MealTypeDinner    MealType = "dinner"
)

// MealTypes lists the slots in the order meals are generated and displayed.
var MealTypes = []MealType{MealTypeBreakfast, MealTypeLunch, MealTypeSnack, MealTypeDinner}

// MealPlan is one user's generated plan for a single calendar day.
// (UserID, Date) is unique: regenerating a day replaces the previous plan.
type MealPlan struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	UserID        string    `json:"userId" gorm:"uniqueIndex:idx_meal_plans_user_date;not null"`
	Date          string    `json:"date" gorm:"uniqueIndex:idx_meal_plans_user_date;type:varchar(10);not null"` // YYYY-MM-DD
	TotalCalories int       `json:"totalCalories"`
	CreatedAt     time.Time `json:"createdAt" gorm:"autoCreateTime"`
	Meals         []Meal    `json:"meals" gorm:"foreignKey:MealPlanID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// TableName specifies the table name for the MealPlan model.
func (MealPlan) TableName() string {
	return "meal_plans"
}

// Meal is a single generated meal inside a plan. Everything except the
// completion fields is fixed at generation time.
type Meal struct {
	ID           uint                        `json:"id" gorm:"primarykey"`
	MealPlanID   uint                        `json:"mealPlanId" gorm:"index;not null"`
	MealType     MealType                    `json:"mealType" gorm:"type:varchar(20);not null"`
	Position     int                         `json:"-" gorm:"default:0"` // slot order within the plan
	Name         string                      `json:"name" gorm:"not null"`
	Description  string                      `json:"description" gorm:"type:text"`
	Ingredients  datatypes.JSONSlice[string] `json:"ingredients"`
	Instructions datatypes.JSONSlice[string] `json:"instructions"`
	Calories     int                         `json:"calories"`
	ImageRef     string                      `json:"imageRef"`
	Completed    bool                        `json:"completed" gorm:"default:false"`
	CompletedAt  *time.Time                  `json:"completedAt"`
}

// TableName specifies the table name for the Meal model.
func (Meal) TableName() string {
	return "meals"
}

// MealDraft is an unpersisted meal produced by the allocator.
type MealDraft struct {
	MealType     MealType `json:"mealType"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Calories     int      `json:"calories"`
	ImageRef     string   `json:"imageRef"`
}

// ToMeal converts the draft into a storable Meal at the given slot position.
func (d MealDraft) ToMeal(position int) Meal {
	return Meal{
		MealType:     d.MealType,
		Position:     position,
		Name:         d.Name,
		Description:  d.Description,
		Ingredients:  datatypes.JSONSlice[string](append([]string(nil), d.Ingredients...)),
		Instructions: datatypes.JSONSlice[string](append([]string(nil), d.Instructions...)),
		Calories:     d.Calories,
		ImageRef:     d.ImageRef,
	}
}

// TaskType defines the category of a user task.
type TaskType string

const (
	TaskTypeMeal       TaskType = "meal"
	TaskTypeExercise   TaskType = "exercise"
	TaskTypeWater      TaskType = "water"
	TaskTypeSupplement TaskType = "supplement"
	TaskTypeCustom     TaskType = "custom"
)

// IsValid reports whether t is one of the known task types.
func (t TaskType) IsValid() bool {
	switch t {
	case TaskTypeMeal, TaskTypeExercise, TaskTypeWater, TaskTypeSupplement, TaskTypeCustom:
		return true
	}
	return false
}

// Task is a free-standing to-do owned by a user. It shares nothing with
// meal plans except the user and, incidentally, the due date.
type Task struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	UserID      string         `json:"userId" gorm:"index;not null"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text"`
	Type        TaskType       `json:"type" gorm:"type:varchar(20);not null"`
	DueDate     *string        `json:"dueDate" gorm:"type:varchar(10);index"` // YYYY-MM-DD
	Completed   bool           `json:"completed" gorm:"default:false"`
	CompletedAt *time.Time     `json:"completedAt"`
	CreatedAt   time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name for the Task model.
func (Task) TableName() string {
	return "tasks"
}
