package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubsite/internal/apperrors"
	"clubsite/internal/model"
	"clubsite/internal/repository"
)

// GalleryUpdate carries a partial gallery edit; nil fields are left unchanged.
type GalleryUpdate struct {
	Title       *string
	ImageURL    *string
	Description *string
	Category    *model.GalleryCategory
}

// GalleryService exposes gallery operations.
type GalleryService interface {
	Create(ctx context.Context, item *model.GalleryItem) (*model.GalleryItem, error)
	List(ctx context.Context) ([]model.GalleryItem, error)
	Get(ctx context.Context, id uuid.UUID) (*model.GalleryItem, error)
	Update(ctx context.Context, id uuid.UUID, upd GalleryUpdate) (*model.GalleryItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type galleryService struct {
	gallery repository.GalleryRepository
}

// NewGalleryService builds a GalleryService.
func NewGalleryService(gallery repository.GalleryRepository) GalleryService {
	return &galleryService{gallery: gallery}
}

func (s *galleryService) Create(ctx context.Context, item *model.GalleryItem) (*model.GalleryItem, error) {
	if item.Category == "" {
		item.Category = model.GalleryOther
	}
	if err := validateGalleryItem(item); err != nil {
		return nil, err
	}
	if err := s.gallery.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *galleryService) List(ctx context.Context) ([]model.GalleryItem, error) {
	return s.gallery.List(ctx)
}

func (s *galleryService) Get(ctx context.Context, id uuid.UUID) (*model.GalleryItem, error) {
	item, err := s.gallery.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFound("Gallery item")
		}
		return nil, err
	}
	return item, nil
}

// Update merges the supplied fields into the stored record and revalidates
// the result against the same rules as Create.
func (s *galleryService) Update(ctx context.Context, id uuid.UUID, upd GalleryUpdate) (*model.GalleryItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		item.Title = *upd.Title
	}
	if upd.ImageURL != nil {
		item.ImageURL = *upd.ImageURL
	}
	if upd.Description != nil {
		item.Description = *upd.Description
	}
	if upd.Category != nil {
		item.Category = *upd.Category
	}

	if err := validateGalleryItem(item); err != nil {
		return nil, err
	}
	if err := s.gallery.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *galleryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.gallery.Delete(ctx, id)
}

func validateGalleryItem(g *model.GalleryItem) error {
	var fields []string
	if g.Title == "" {
		fields = append(fields, "title")
	}
	if g.ImageURL == "" {
		fields = append(fields, "imageUrl")
	}
	if !g.Category.Valid() {
		fields = append(fields, "category")
	}
	if len(fields) > 0 {
		return apperrors.NewValidation("invalid gallery item", fields...)
	}
	return nil
}
