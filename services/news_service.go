package services

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"nutriplan/models"
	"nutriplan/repository"
)

const (
	defaultNewsLimit = 10
	maxNewsLimit     = 50
	newsCategoryAll  = "all"
)

var newsCategories = []string{
	models.NewsCategoryNutrition,
	models.NewsCategoryFitness,
	models.NewsCategoryWellness,
	models.NewsCategoryResearch,
}

// NewsInput is the body of an article creation request.
type NewsInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Content     string     `json:"content"`
	Category    string     `json:"category"`
	ImageURL    string     `json:"imageUrl"`
	SourceURL   string     `json:"sourceUrl"`
	PublishedAt *time.Time `json:"publishedAt"`
}

// NewsService defines the interface for the health news feed.
type NewsService interface {
	// ListNews returns the newest articles; category "" or "all" means every
	// category and limit <= 0 means the configured default.
	ListNews(ctx context.Context, category string, limit int) ([]models.HealthNews, error)
	CreateNews(ctx context.Context, in NewsInput) (*models.HealthNews, error)
	// SeedIfEmpty inserts the starter articles when the feed has none.
	SeedIfEmpty(ctx context.Context) (int, error)
}

type newsService struct {
	newsRepo     repository.NewsRepository
	defaultLimit int
	now          func() time.Time
}

// NewNewsService creates a new instance of NewsService.
func NewNewsService(newsRepo repository.NewsRepository, defaultLimit int) NewsService {
	if defaultLimit <= 0 || defaultLimit > maxNewsLimit {
		defaultLimit = defaultNewsLimit
	}
	return &newsService{newsRepo: newsRepo, defaultLimit: defaultLimit, now: time.Now}
}

func (s *newsService) ListNews(ctx context.Context, category string, limit int) ([]models.HealthNews, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == newsCategoryAll {
		category = ""
	}
	if category != "" && !slices.Contains(newsCategories, category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, category)
	}
	switch {
	case limit <= 0:
		limit = s.defaultLimit
	case limit > maxNewsLimit:
		limit = maxNewsLimit
	}
	articles, err := s.newsRepo.ListNews(ctx, category, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list health news: %w", err)
	}
	return articles, nil
}

func (s *newsService) CreateNews(ctx context.Context, in NewsInput) (*models.HealthNews, error) {
	title := strings.TrimSpace(in.Title)
	category := strings.ToLower(strings.TrimSpace(in.Category))
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if !slices.Contains(newsCategories, category) {
		return nil, fmt.Errorf("%w: category must be one of %s", ErrInvalidInput, strings.Join(newsCategories, ", "))
	}
	publishedAt := s.now()
	if in.PublishedAt != nil && !in.PublishedAt.IsZero() {
		publishedAt = *in.PublishedAt
	}
	article := &models.HealthNews{
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Content:     in.Content,
		Category:    category,
		ImageURL:    in.ImageURL,
		SourceURL:   in.SourceURL,
		PublishedAt: publishedAt,
	}
	if err := s.newsRepo.CreateNews(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}
	return article, nil
}

func (s *newsService) SeedIfEmpty(ctx context.Context) (int, error) {
	n, err := s.newsRepo.CountNews(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count health news: %w", err)
	}
	if n > 0 {
		return 0, nil
	}
	articles := seedArticles(s.now())
	if err := s.newsRepo.CreateNewsBatch(ctx, articles); err != nil {
		return 0, fmt.Errorf("failed to seed health news: %w", err)
	}
	log.Printf("INFO: [NewsService] Seeded %d health news articles.", len(articles))
	return len(articles), nil
}

func seedArticles(now time.Time) []models.HealthNews {
	article := func(title, description, category, imageID string, age time.Duration) models.HealthNews {
		return models.HealthNews{
			Title:       title,
			Description: description,
			Category:    category,
			ImageURL:    unsplash(imageID),
			SourceURL:   "#",
			PublishedAt: now.Add(-age),
		}
	}
	return []models.HealthNews{
		article("10 Superfoods That Boost Your Immune System",
			"Discover the power of nutrient-dense foods that can naturally strengthen your body's defenses and improve overall health.",
			models.NewsCategoryNutrition, "photo-1511690743698-d9d85f2fbf38", 2*time.Hour),
		article("Morning Exercise: The Key to Better Metabolism",
			"New research shows how morning workouts can significantly impact your metabolic rate throughout the day.",
			models.NewsCategoryFitness, "photo-1571019613454-1cb2f99b2d8b", 5*time.Hour),
		article("Mindful Eating: Transform Your Relationship with Food",
			"Learn how mindfulness practices can help you make better food choices and improve digestion.",
			models.NewsCategoryWellness, "photo-1506905925346-21bda4d32df4", 24*time.Hour),
		article("Breakthrough Study on Plant-Based Proteins",
			"Scientists discover new benefits of plant proteins for muscle building and recovery.",
			models.NewsCategoryResearch, "photo-1576671081837-49000212a370", 48*time.Hour),
		article("Seasonal Eating: Why It Matters for Your Health",
			"Exploring the benefits of eating fruits and vegetables that are in season for optimal nutrition.",
			models.NewsCategoryNutrition, "photo-1540420773420-3366772f4999", 72*time.Hour),
		article("Hydration Myths: What Science Really Says",
			"Debunking common hydration myths and understanding your body's actual water needs.",
			models.NewsCategoryWellness, "photo-1559827260-dc66d52bef19", 96*time.Hour),
	}
}
