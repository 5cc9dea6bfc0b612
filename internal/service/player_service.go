package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubsite/internal/apperrors"
	"clubsite/internal/model"
	"clubsite/internal/repository"
)

// PlayerUpdate carries a partial roster edit; nil fields are left unchanged.
type PlayerUpdate struct {
	Name        *string
	Position    *model.Position
	Number      *int
	Age         *int
	Nationality *string
	Goals       *int
	Assists     *int
	Image       *string
	Bio         *string
}

// PlayerService exposes roster operations.
type PlayerService interface {
	Create(ctx context.Context, player *model.Player) (*model.Player, error)
	List(ctx context.Context) ([]model.Player, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Player, error)
	Update(ctx context.Context, id uuid.UUID, upd PlayerUpdate) (*model.Player, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type playerService struct {
	players repository.PlayerRepository
}

// NewPlayerService builds a PlayerService.
func NewPlayerService(players repository.PlayerRepository) PlayerService {
	return &playerService{players: players}
}

func (s *playerService) Create(ctx context.Context, player *model.Player) (*model.Player, error) {
	if err := validatePlayer(player); err != nil {
		return nil, err
	}
	if err := s.players.Create(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

func (s *playerService) List(ctx context.Context) ([]model.Player, error) {
	return s.players.List(ctx)
}

func (s *playerService) Get(ctx context.Context, id uuid.UUID) (*model.Player, error) {
	player, err := s.players.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFound("Player")
		}
		return nil, err
	}
	return player, nil
}

// Update merges the supplied fields into the stored record and revalidates
// the result against the same rules as Create.
func (s *playerService) Update(ctx context.Context, id uuid.UUID, upd PlayerUpdate) (*model.Player, error) {
	player, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		player.Name = *upd.Name
	}
	if upd.Position != nil {
		player.Position = *upd.Position
	}
	if upd.Number != nil {
		player.Number = *upd.Number
	}
	if upd.Age != nil {
		player.Age = *upd.Age
	}
	if upd.Nationality != nil {
		player.Nationality = *upd.Nationality
	}
	if upd.Goals != nil {
		player.Goals = *upd.Goals
	}
	if upd.Assists != nil {
		player.Assists = *upd.Assists
	}
	if upd.Image != nil {
		player.Image = *upd.Image
	}
	if upd.Bio != nil {
		player.Bio = *upd.Bio
	}

	if err := validatePlayer(player); err != nil {
		return nil, err
	}
	if err := s.players.Save(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

func (s *playerService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.players.Delete(ctx, id)
}

// validatePlayer checks the full document. Jersey numbers are intentionally
// not required to be unique across the roster.
func validatePlayer(p *model.Player) error {
	var fields []string
	if p.Name == "" {
		fields = append(fields, "name")
	}
	if !p.Position.Valid() {
		fields = append(fields, "position")
	}
	if p.Number < 1 || p.Number > 99 {
		fields = append(fields, "number")
	}
	if p.Age < 1 {
		fields = append(fields, "age")
	}
	if p.Nationality == "" {
		fields = append(fields, "nationality")
	}
	if p.Goals < 0 {
		fields = append(fields, "goals")
	}
	if p.Assists < 0 {
		fields = append(fields, "assists")
	}
	if len(fields) > 0 {
		return apperrors.NewValidation("invalid player", fields...)
	}
	return nil
}
