package models

import (
	"time"

	"gorm.io/datatypes"
)

// Gender values recognised by the calorie planner. Anything other than
// GenderMale uses the female BMR constant.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Activity levels accepted on a profile. Unknown values are stored as given
// and planned with the sedentary multiplier.
const (
	ActivitySedentary = "sedentary"
	ActivityLight     = "light"
	ActivityModerate  = "moderate"
	ActivityVery      = "very"
)

// Goals drive the calorie adjustment applied on top of TDEE.
const (
	GoalLoseWeight = "lose-weight"
	GoalGainWeight = "gain-weight"
	GoalMaintain   = "maintain"
)

// DietType values. Only vegetarian narrows the meal catalog.
const (
	DietVegetarian    = "vegetarian"
	DietNonVegetarian = "non-vegetarian"
)

// UserProfile holds the onboarding answers for a single user.
// There is at most one profile per user; onboarding replaces it wholesale.
type UserProfile struct {
	ID                 uint                        `json:"id" gorm:"primaryKey"`
	UserID             string                      `json:"userId" gorm:"uniqueIndex;not null"`
	Age                int                         `json:"age"`
	Gender             string                      `json:"gender" gorm:"type:varchar(20)"`
	Height             float64                     `json:"height"` // cm
	Weight             float64                     `json:"weight"` // kg
	ActivityLevel      string                      `json:"activityLevel" gorm:"type:varchar(20)"`
	Goal               string                      `json:"goal" gorm:"type:varchar(20)"`
	DietType           string                      `json:"dietType" gorm:"type:varchar(20)"`
	CuisinePreferences datatypes.JSONSlice[string] `json:"cuisinePreferences"`
	Allergies          datatypes.JSONSlice[string] `json:"allergies"`
	AdditionalInfo     string                      `json:"additionalInfo" gorm:"type:text"`
	CreatedAt          time.Time                   `json:"createdAt"`
	UpdatedAt          time.Time                   `json:"updatedAt"`
}

// TableName specifies the table name for the UserProfile model.
func (UserProfile) TableName() string {
	return "user_profiles"
}
