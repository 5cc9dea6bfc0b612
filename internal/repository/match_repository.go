package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubsite/internal/model"
)

// MatchRepository defines fixture persistence operations.
type MatchRepository interface {
	Create(ctx context.Context, match *model.Match) error
	Save(ctx context.Context, match *model.Match) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Match, error)
	List(ctx context.Context) ([]model.Match, error)
	ListUpcoming(ctx context.Context, from time.Time, limit int) ([]model.Match, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository builds a GORM-backed match repository.
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(ctx context.Context, match *model.Match) error {
	return r.db.WithContext(ctx).Create(match).Error
}

func (r *matchRepository) Save(ctx context.Context, match *model.Match) error {
	return r.db.WithContext(ctx).Save(match).Error
}

func (r *matchRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Match, error) {
	var match model.Match
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&match).Error; err != nil {
		return nil, err
	}
	return &match, nil
}

// List returns all fixtures ordered by date ascending.
func (r *matchRepository) List(ctx context.Context) ([]model.Match, error) {
	var matches []model.Match
	if err := r.db.WithContext(ctx).Order("date asc").Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

// ListUpcoming returns scheduled fixtures on or after from, soonest first.
func (r *matchRepository) ListUpcoming(ctx context.Context, from time.Time, limit int) ([]model.Match, error) {
	var matches []model.Match
	err := r.db.WithContext(ctx).
		Where("date >= ? AND status = ?", from, model.MatchScheduled).
		Order("date asc").
		Limit(limit).
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *matchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Match{}).Error
}
