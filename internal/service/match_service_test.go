package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"clubsite/internal/apperrors"
	"clubsite/internal/model"
)

func validMatch() *model.Match {
	return &model.Match{
		HomeTeam: "Club FC",
		AwayTeam: "Riverside United",
		Date:     time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Time:     "15:00",
		Venue:    "Club Stadium",
	}
}

func TestMatchService_CreateDefaults(t *testing.T) {
	mockRepo := new(MockMatchRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Match")).Return(nil)

	service := NewMatchService(mockRepo, nil)

	match := validMatch()
	match.GoalScorers = []model.GoalScorer{
		{PlayerName: "Smith", Team: model.TeamHome}, // goals omitted
	}
	created, err := service.Create(context.Background(), match)

	assert.NoError(t, err)
	assert.Equal(t, model.MatchScheduled, created.Status)
	assert.Equal(t, "League", created.Competition)
	assert.Equal(t, 1, created.GoalScorers[0].Goals)
	mockRepo.AssertExpectations(t)
}

func TestMatchService_CreateValidation(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*model.Match)
		wantFields []string
	}{
		{
			name:       "missing venue",
			mutate:     func(m *model.Match) { m.Venue = "" },
			wantFields: []string{"venue"},
		},
		{
			name:       "missing date",
			mutate:     func(m *model.Match) { m.Date = time.Time{} },
			wantFields: []string{"date"},
		},
		{
			name: "scorer without name",
			mutate: func(m *model.Match) {
				m.GoalScorers = []model.GoalScorer{{Goals: 1, Team: model.TeamHome}}
			},
			wantFields: []string{"goalScorers"},
		},
		{
			name: "scorer with bad team",
			mutate: func(m *model.Match) {
				m.GoalScorers = []model.GoalScorer{{PlayerName: "Smith", Goals: 1, Team: "neutral"}}
			},
			wantFields: []string{"goalScorers"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockMatchRepository)
			service := NewMatchService(mockRepo, nil)

			match := validMatch()
			tt.mutate(match)

			_, err := service.Create(context.Background(), match)

			var verr *apperrors.ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantFields, verr.Fields)
			mockRepo.AssertNotCalled(t, "Create")
		})
	}
}

// The scorer list keeps insertion order and is never reconciled with the
// match score.
func TestMatchService_GoalScorersOrderPreserved(t *testing.T) {
	mockRepo := new(MockMatchRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Match")).Return(nil)

	service := NewMatchService(mockRepo, nil)

	home, away := 2, 1
	match := validMatch()
	match.HomeScore = &home
	match.AwayScore = &away
	match.GoalScorers = []model.GoalScorer{
		{PlayerName: "Smith", Goals: 2, Team: model.TeamHome},
		{PlayerName: "Jones", Goals: 1, Team: model.TeamAway},
	}

	created, err := service.Create(context.Background(), match)
	assert.NoError(t, err)
	assert.Equal(t, "Smith", created.GoalScorers[0].PlayerName)
	assert.Equal(t, "Jones", created.GoalScorers[1].PlayerName)
}

func TestMatchService_ListUpcoming(t *testing.T) {
	upcoming := []model.Match{*validMatch()}

	mockRepo := new(MockMatchRepository)
	mockRepo.On("ListUpcoming", mock.Anything, mock.AnythingOfType("time.Time"), 5).Return(upcoming, nil)

	service := NewMatchService(mockRepo, nil)

	matches, err := service.ListUpcoming(context.Background())
	assert.NoError(t, err)
	assert.Len(t, matches, 1)
	mockRepo.AssertExpectations(t)
}
