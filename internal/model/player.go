package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Position is a player's field position.
type Position string

const (
	PositionGoalkeeper Position = "Goalkeeper"
	PositionDefender   Position = "Defender"
	PositionMidfielder Position = "Midfielder"
	PositionForward    Position = "Forward"
)

// Valid reports whether p is one of the four roster positions.
func (p Position) Valid() bool {
	switch p {
	case PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward:
		return true
	}
	return false
}

// Player represents a roster entry. Jersey numbers are deliberately not
// unique; the roster has never enforced that.
type Player struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Position    Position  `json:"position" gorm:"size:20;not null"`
	Number      int       `json:"number" gorm:"not null;index"`
	Age         int       `json:"age" gorm:"not null"`
	Nationality string    `json:"nationality" gorm:"size:100;not null"`
	Goals       int       `json:"goals" gorm:"not null;default:0"`
	Assists     int       `json:"assists" gorm:"not null;default:0"`
	Image       string    `json:"image" gorm:"type:text"`
	Bio         string    `json:"bio" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"-"`
}

// BeforeCreate sets the UUID before creating the record.
func (p *Player) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
