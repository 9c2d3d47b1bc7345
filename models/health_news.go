package models

import "time"

// News categories shown as filters in the client.
const (
	NewsCategoryNutrition = "nutrition"
	NewsCategoryFitness   = "fitness"
	NewsCategoryWellness  = "wellness"
	NewsCategoryResearch  = "research"
)

// HealthNews is a published article in the news feed.
type HealthNews struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Content     string    `gorm:"type:text" json:"content"`
	Category    string    `gorm:"index;not null" json:"category"`
	ImageURL    string    `json:"imageUrl"`
	SourceURL   string    `json:"sourceUrl"`
	PublishedAt time.Time `gorm:"index" json:"publishedAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TableName specifies the table name for the HealthNews model.
func (HealthNews) TableName() string {
	return "health_news"
}
