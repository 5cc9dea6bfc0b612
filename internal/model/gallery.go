package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GalleryCategory classifies a gallery item.
type GalleryCategory string

const (
	GalleryMatch    GalleryCategory = "match"
	GalleryTraining GalleryCategory = "training"
	GalleryTeam     GalleryCategory = "team"
	GalleryEvents   GalleryCategory = "events"
	GalleryOther    GalleryCategory = "other"
)

// Valid reports whether c is a known gallery category.
func (c GalleryCategory) Valid() bool {
	switch c {
	case GalleryMatch, GalleryTraining, GalleryTeam, GalleryEvents, GalleryOther:
		return true
	}
	return false
}

// GalleryItem represents a photo in the club gallery.
type GalleryItem struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string          `json:"title" gorm:"size:255;not null"`
	ImageURL    string          `json:"imageUrl" gorm:"type:text;not null"`
	Description string          `json:"description" gorm:"type:text"`
	Category    GalleryCategory `json:"category" gorm:"size:20;not null;default:'other'"`
	CreatedAt   time.Time       `json:"createdAt" gorm:"index"`
	UpdatedAt   time.Time       `json:"-"`
}

// BeforeCreate sets the UUID before creating the record.
func (g *GalleryItem) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
