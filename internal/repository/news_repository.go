package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubsite/internal/model"
)

// NewsRepository defines article persistence operations.
type NewsRepository interface {
	Create(ctx context.Context, news *model.News) error
	Save(ctx context.Context, news *model.News) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.News, error)
	ListPublished(ctx context.Context) ([]model.News, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository builds a GORM-backed news repository.
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) Create(ctx context.Context, news *model.News) error {
	return r.db.WithContext(ctx).Create(news).Error
}

func (r *newsRepository) Save(ctx context.Context, news *model.News) error {
	return r.db.WithContext(ctx).Save(news).Error
}

func (r *newsRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.News, error) {
	var news model.News
	if err := r.db.WithContext(ctx).Preload("Author").Where("id = ?", id).First(&news).Error; err != nil {
		return nil, err
	}
	return &news, nil
}

// ListPublished returns published articles newest first, with the author
// record loaded for display.
func (r *newsRepository) ListPublished(ctx context.Context) ([]model.News, error) {
	var articles []model.News
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("published = ?", true).
		Order("created_at desc").
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *newsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.News{}).Error
}
