package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubsite/internal/apperrors"
	"clubsite/internal/cache"
	"clubsite/internal/model"
	"clubsite/internal/repository"
)

const (
	upcomingMatchesKey = "matches:upcoming"
	upcomingCacheTTL   = time.Minute
	upcomingLimit      = 5
)

// MatchUpdate carries a partial fixture edit; nil fields are left unchanged.
// GoalScorers, when present, replaces the whole list.
type MatchUpdate struct {
	HomeTeam    *string
	AwayTeam    *string
	Date        *time.Time
	Time        *string
	Venue       *string
	HomeScore   *int
	AwayScore   *int
	Status      *model.MatchStatus
	Competition *string
	GoalScorers *model.GoalScorerList
}

// MatchService exposes fixture operations.
type MatchService interface {
	Create(ctx context.Context, match *model.Match) (*model.Match, error)
	List(ctx context.Context) ([]model.Match, error)
	ListUpcoming(ctx context.Context) ([]model.Match, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Match, error)
	Update(ctx context.Context, id uuid.UUID, upd MatchUpdate) (*model.Match, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type matchService struct {
	matches repository.MatchRepository
	cache   *cache.Client
}

// NewMatchService builds a MatchService with repository and cache.
func NewMatchService(matches repository.MatchRepository, cache *cache.Client) MatchService {
	return &matchService{matches: matches, cache: cache}
}

func (s *matchService) Create(ctx context.Context, match *model.Match) (*model.Match, error) {
	applyMatchDefaults(match)
	if err := validateMatch(match); err != nil {
		return nil, err
	}
	if err := s.matches.Create(ctx, match); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, upcomingMatchesKey)
	return match, nil
}

func (s *matchService) List(ctx context.Context) ([]model.Match, error) {
	return s.matches.List(ctx)
}

// ListUpcoming feeds the "next fixture" widget: scheduled matches from now
// on, soonest first, capped at five. The result is cached briefly because
// this is the hottest public endpoint.
func (s *matchService) ListUpcoming(ctx context.Context) ([]model.Match, error) {
	var cached []model.Match
	if s.cache.GetJSON(ctx, upcomingMatchesKey, &cached) {
		return cached, nil
	}

	matches, err := s.matches.ListUpcoming(ctx, time.Now(), upcomingLimit)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, upcomingMatchesKey, matches, upcomingCacheTTL)
	return matches, nil
}

func (s *matchService) Get(ctx context.Context, id uuid.UUID) (*model.Match, error) {
	match, err := s.matches.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFound("Match")
		}
		return nil, err
	}
	return match, nil
}

// Update merges the supplied fields into the stored record and revalidates
// the result against the same rules as Create.
func (s *matchService) Update(ctx context.Context, id uuid.UUID, upd MatchUpdate) (*model.Match, error) {
	match, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.HomeTeam != nil {
		match.HomeTeam = *upd.HomeTeam
	}
	if upd.AwayTeam != nil {
		match.AwayTeam = *upd.AwayTeam
	}
	if upd.Date != nil {
		match.Date = *upd.Date
	}
	if upd.Time != nil {
		match.Time = *upd.Time
	}
	if upd.Venue != nil {
		match.Venue = *upd.Venue
	}
	if upd.HomeScore != nil {
		match.HomeScore = upd.HomeScore
	}
	if upd.AwayScore != nil {
		match.AwayScore = upd.AwayScore
	}
	if upd.Status != nil {
		match.Status = *upd.Status
	}
	if upd.Competition != nil {
		match.Competition = *upd.Competition
	}
	if upd.GoalScorers != nil {
		match.GoalScorers = *upd.GoalScorers
	}

	applyMatchDefaults(match)
	if err := validateMatch(match); err != nil {
		return nil, err
	}
	if err := s.matches.Save(ctx, match); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, upcomingMatchesKey)
	return match, nil
}

func (s *matchService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.matches.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, upcomingMatchesKey)
	return nil
}

func applyMatchDefaults(m *model.Match) {
	if m.Status == "" {
		m.Status = model.MatchScheduled
	}
	if m.Competition == "" {
		m.Competition = "League"
	}
	for i := range m.GoalScorers {
		if m.GoalScorers[i].Goals == 0 {
			m.GoalScorers[i].Goals = 1
		}
	}
}

// validateMatch checks the full document. Scores and goalScorers are
// independent: entries are validated individually but never summed against
// the match score.
func validateMatch(m *model.Match) error {
	var fields []string
	if m.HomeTeam == "" {
		fields = append(fields, "homeTeam")
	}
	if m.AwayTeam == "" {
		fields = append(fields, "awayTeam")
	}
	if m.Date.IsZero() {
		fields = append(fields, "date")
	}
	if m.Time == "" {
		fields = append(fields, "time")
	}
	if m.Venue == "" {
		fields = append(fields, "venue")
	}
	if !m.Status.Valid() {
		fields = append(fields, "status")
	}
	if m.HomeScore != nil && *m.HomeScore < 0 {
		fields = append(fields, "homeScore")
	}
	if m.AwayScore != nil && *m.AwayScore < 0 {
		fields = append(fields, "awayScore")
	}
	for _, scorer := range m.GoalScorers {
		if scorer.PlayerName == "" || scorer.Goals < 1 || (scorer.Team != model.TeamHome && scorer.Team != model.TeamAway) {
			fields = append(fields, "goalScorers")
			break
		}
	}
	if len(fields) > 0 {
		return apperrors.NewValidation("invalid match", fields...)
	}
	return nil
}
