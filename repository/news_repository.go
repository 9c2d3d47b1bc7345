package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"nutriplan/models"

	"gorm.io/gorm"
)

// NewsRepository defines the interface for interacting with health news articles.
type NewsRepository interface {
	// ListNews returns articles newest first. An empty category means all.
	ListNews(ctx context.Context, category string, limit int) ([]models.HealthNews, error)
	CreateNews(ctx context.Context, article *models.HealthNews) error
	// CreateNewsBatch inserts several articles in one statement.
	CreateNewsBatch(ctx context.Context, articles []models.HealthNews) error
	CountNews(ctx context.Context) (int64, error)
}

type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new instance of NewsRepository.
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) ListNews(ctx context.Context, category string, limit int) ([]models.HealthNews, error) {
	var articles []models.HealthNews
	q := r.db.WithContext(ctx)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Order("published_at desc, id desc").Find(&articles).Error; err != nil {
		log.Printf("ERROR: [NewsRepository] Failed to list news (category '%s'): %v", category, err)
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	return articles, nil
}

func (r *newsRepository) CreateNews(ctx context.Context, article *models.HealthNews) error {
	if article == nil {
		return errors.New("article cannot be nil")
	}
	if err := r.db.WithContext(ctx).Create(article).Error; err != nil {
		log.Printf("ERROR: [NewsRepository] Failed to create article '%s': %v", article.Title, err)
		return fmt.Errorf("failed to create article '%s': %w", article.Title, err)
	}
	log.Printf("INFO: [NewsRepository] Created article ID %d ('%s').", article.ID, article.Title)
	return nil
}

func (r *newsRepository) CreateNewsBatch(ctx context.Context, articles []models.HealthNews) error {
	if len(articles) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&articles).Error; err != nil {
		log.Printf("ERROR: [NewsRepository] Failed to insert %d articles: %v", len(articles), err)
		return fmt.Errorf("failed to insert %d articles: %w", len(articles), err)
	}
	return nil
}

func (r *newsRepository) CountNews(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.HealthNews{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count news: %w", err)
	}
	return n, nil
}
