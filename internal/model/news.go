package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewsCategory classifies an article.
type NewsCategory string

const (
	NewsMatch        NewsCategory = "match"
	NewsTransfer     NewsCategory = "transfer"
	NewsTraining     NewsCategory = "training"
	NewsAnnouncement NewsCategory = "announcement"
	NewsOther        NewsCategory = "other"
)

// Valid reports whether c is a known news category.
func (c NewsCategory) Valid() bool {
	switch c {
	case NewsMatch, NewsTransfer, NewsTraining, NewsAnnouncement, NewsOther:
		return true
	}
	return false
}

// News represents an article. Author is always the admin who created it; the
// public list hides unpublished articles.
type News struct {
	ID        uuid.UUID    `json:"id" gorm:"type:char(36);primaryKey"`
	Title     string       `json:"title" gorm:"size:255;not null"`
	Excerpt   string       `json:"excerpt" gorm:"type:text;not null"`
	Content   string       `json:"content" gorm:"type:text;not null"`
	AuthorID  uuid.UUID    `json:"-" gorm:"type:char(36);not null;index"`
	Author    User         `json:"-" gorm:"foreignKey:AuthorID"`
	Image     string       `json:"image" gorm:"type:text"`
	Category  NewsCategory `json:"category" gorm:"size:20;not null;default:'other'"`
	Published bool         `json:"published" gorm:"not null;default:true;index"`
	CreatedAt time.Time    `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time    `json:"-"`
}

// BeforeCreate sets the UUID before creating the record.
func (n *News) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
