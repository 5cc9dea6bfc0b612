package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubsite/internal/model"
)

// GalleryRepository defines gallery persistence operations.
type GalleryRepository interface {
	Create(ctx context.Context, item *model.GalleryItem) error
	Save(ctx context.Context, item *model.GalleryItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.GalleryItem, error)
	List(ctx context.Context) ([]model.GalleryItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type galleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository builds a GORM-backed gallery repository.
func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) Create(ctx context.Context, item *model.GalleryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *galleryRepository) Save(ctx context.Context, item *model.GalleryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *galleryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.GalleryItem, error) {
	var item model.GalleryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns all gallery items newest first.
func (r *galleryRepository) List(ctx context.Context) ([]model.GalleryItem, error) {
	var items []model.GalleryItem
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *galleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.GalleryItem{}).Error
}
