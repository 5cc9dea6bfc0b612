package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"clubsite/internal/apperrors"
	"clubsite/internal/model"
)

func validPlayer() *model.Player {
	return &model.Player{
		Name:        "Luis Moreno",
		Position:    model.PositionForward,
		Number:      9,
		Age:         26,
		Nationality: "Spain",
		Goals:       12,
		Assists:     4,
		Bio:         "Club top scorer",
	}
}

func TestPlayerService_Create(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*model.Player)
		wantFields []string
	}{
		{
			name:   "valid player",
			mutate: func(p *model.Player) {},
		},
		{
			name:       "unknown position",
			mutate:     func(p *model.Player) { p.Position = "Striker" },
			wantFields: []string{"position"},
		},
		{
			name:       "number out of range",
			mutate:     func(p *model.Player) { p.Number = 100 },
			wantFields: []string{"number"},
		},
		{
			name:       "missing name and nationality",
			mutate:     func(p *model.Player) { p.Name = ""; p.Nationality = "" },
			wantFields: []string{"name", "nationality"},
		},
		{
			name:       "negative goals",
			mutate:     func(p *model.Player) { p.Goals = -1 },
			wantFields: []string{"goals"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPlayerRepository)
			player := validPlayer()
			tt.mutate(player)

			if len(tt.wantFields) == 0 {
				mockRepo.On("Create", mock.Anything, player).Return(nil)
			}

			service := NewPlayerService(mockRepo)
			created, err := service.Create(context.Background(), player)

			if len(tt.wantFields) > 0 {
				var verr *apperrors.ValidationError
				assert.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantFields, verr.Fields)
				assert.Nil(t, created)
				mockRepo.AssertNotCalled(t, "Create")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, player, created)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

// Updating a single field must leave every other field unchanged.
func TestPlayerService_UpdatePartialMerge(t *testing.T) {
	id := uuid.New()
	stored := validPlayer()
	stored.ID = id

	mockRepo := new(MockPlayerRepository)
	mockRepo.On("FindByID", mock.Anything, id).Return(stored, nil)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Player")).Return(nil)

	service := NewPlayerService(mockRepo)

	goals := 13
	updated, err := service.Update(context.Background(), id, PlayerUpdate{Goals: &goals})

	assert.NoError(t, err)
	assert.Equal(t, 13, updated.Goals)
	assert.Equal(t, "Luis Moreno", updated.Name)
	assert.Equal(t, model.PositionForward, updated.Position)
	assert.Equal(t, 9, updated.Number)
	assert.Equal(t, 26, updated.Age)
	assert.Equal(t, "Spain", updated.Nationality)
	assert.Equal(t, 4, updated.Assists)
	assert.Equal(t, "Club top scorer", updated.Bio)

	mockRepo.AssertExpectations(t)
}

func TestPlayerService_UpdateRevalidates(t *testing.T) {
	id := uuid.New()
	stored := validPlayer()
	stored.ID = id

	mockRepo := new(MockPlayerRepository)
	mockRepo.On("FindByID", mock.Anything, id).Return(stored, nil)

	service := NewPlayerService(mockRepo)

	number := 0
	_, err := service.Update(context.Background(), id, PlayerUpdate{Number: &number})

	var verr *apperrors.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"number"}, verr.Fields)
	mockRepo.AssertNotCalled(t, "Save")
}

func TestPlayerService_NotFound(t *testing.T) {
	id := uuid.New()

	mockRepo := new(MockPlayerRepository)
	mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	service := NewPlayerService(mockRepo)

	_, err := service.Get(context.Background(), id)
	var notFound *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Player not found", err.Error())

	err = service.Delete(context.Background(), id)
	assert.ErrorAs(t, err, &notFound)
	mockRepo.AssertNotCalled(t, "Delete")
}
