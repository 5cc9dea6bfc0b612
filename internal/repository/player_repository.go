package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubsite/internal/model"
)

// PlayerRepository defines roster persistence operations.
type PlayerRepository interface {
	Create(ctx context.Context, player *model.Player) error
	Save(ctx context.Context, player *model.Player) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Player, error)
	List(ctx context.Context) ([]model.Player, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository builds a GORM-backed player repository.
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Create(ctx context.Context, player *model.Player) error {
	return r.db.WithContext(ctx).Create(player).Error
}

func (r *playerRepository) Save(ctx context.Context, player *model.Player) error {
	return r.db.WithContext(ctx).Save(player).Error
}

func (r *playerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Player, error) {
	var player model.Player
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&player).Error; err != nil {
		return nil, err
	}
	return &player, nil
}

// List returns the full roster ordered by jersey number ascending.
func (r *playerRepository) List(ctx context.Context) ([]model.Player, error) {
	var players []model.Player
	if err := r.db.WithContext(ctx).Order("number asc").Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Player{}).Error
}
