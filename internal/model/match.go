package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MatchStatus is the lifecycle state of a fixture.
type MatchStatus string

const (
	MatchScheduled MatchStatus = "scheduled"
	MatchLive      MatchStatus = "live"
	MatchCompleted MatchStatus = "completed"
	MatchCancelled MatchStatus = "cancelled"
)

// Valid reports whether s is a known match status.
func (s MatchStatus) Valid() bool {
	switch s {
	case MatchScheduled, MatchLive, MatchCompleted, MatchCancelled:
		return true
	}
	return false
}

// TeamSide distinguishes the home and away side of a fixture.
type TeamSide string

const (
	TeamHome TeamSide = "home"
	TeamAway TeamSide = "away"
)

// GoalScorer is one entry of a match's ordered scorer list. Player optionally
// references a roster entry but is never checked against the players table.
type GoalScorer struct {
	Player     *uuid.UUID `json:"player,omitempty"`
	PlayerName string     `json:"playerName"`
	Goals      int        `json:"goals"`
	Team       TeamSide   `json:"team"`
}

// GoalScorerList persists as a JSON column, which keeps insertion order.
type GoalScorerList = datatypes.JSONSlice[GoalScorer]

// Match represents a fixture. Scores stay null until the match is played, and
// nothing ties them to the goalScorers list.
type Match struct {
	ID          uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	HomeTeam    string         `json:"homeTeam" gorm:"size:255;not null"`
	AwayTeam    string         `json:"awayTeam" gorm:"size:255;not null"`
	Date        time.Time      `json:"date" gorm:"not null;index"`
	Time        string         `json:"time" gorm:"size:20;not null"`
	Venue       string         `json:"venue" gorm:"size:255;not null"`
	HomeScore   *int           `json:"homeScore"`
	AwayScore   *int           `json:"awayScore"`
	Status      MatchStatus    `json:"status" gorm:"size:20;not null;default:'scheduled';index"`
	Competition string         `json:"competition" gorm:"size:255;not null;default:'League'"`
	GoalScorers GoalScorerList `json:"goalScorers" gorm:"type:json"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"-"`
}

// BeforeCreate sets the UUID before creating the record.
func (m *Match) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
