package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"clubsite/internal/model"
	"clubsite/internal/service"
)

// MatchHandler handles fixture endpoints.
type MatchHandler struct {
	matches service.MatchService
}

// NewMatchHandler creates a new match handler.
func NewMatchHandler(matches service.MatchService) *MatchHandler {
	return &MatchHandler{matches: matches}
}

// GoalScorerRequest is one scorer entry in a match payload. The player
// reference is optional and never checked against the roster.
type GoalScorerRequest struct {
	Player     *uuid.UUID     `json:"player"`
	PlayerName string         `json:"playerName" validate:"required"`
	Goals      int            `json:"goals" validate:"omitempty,gte=1"`
	Team       model.TeamSide `json:"team" validate:"required,oneof=home away"`
}

// CreateMatchRequest represents a fixture creation request.
type CreateMatchRequest struct {
	HomeTeam    string              `json:"homeTeam" validate:"required"`
	AwayTeam    string              `json:"awayTeam" validate:"required"`
	Date        time.Time           `json:"date" validate:"required"`
	Time        string              `json:"time" validate:"required"`
	Venue       string              `json:"venue" validate:"required"`
	HomeScore   *int                `json:"homeScore" validate:"omitempty,gte=0"`
	AwayScore   *int                `json:"awayScore" validate:"omitempty,gte=0"`
	Status      model.MatchStatus   `json:"status" validate:"omitempty,oneof=scheduled live completed cancelled"`
	Competition string              `json:"competition"`
	GoalScorers []GoalScorerRequest `json:"goalScorers" validate:"omitempty,dive"`
}

// UpdateMatchRequest represents a partial fixture edit; absent fields are
// left unchanged and goalScorers, when present, replaces the whole list.
type UpdateMatchRequest struct {
	HomeTeam    *string              `json:"homeTeam"`
	AwayTeam    *string              `json:"awayTeam"`
	Date        *time.Time           `json:"date"`
	Time        *string              `json:"time"`
	Venue       *string              `json:"venue"`
	HomeScore   *int                 `json:"homeScore" validate:"omitempty,gte=0"`
	AwayScore   *int                 `json:"awayScore" validate:"omitempty,gte=0"`
	Status      *model.MatchStatus   `json:"status" validate:"omitempty,oneof=scheduled live completed cancelled"`
	Competition *string              `json:"competition"`
	GoalScorers *[]GoalScorerRequest `json:"goalScorers" validate:"omitempty,dive"`
}

func toGoalScorers(reqs []GoalScorerRequest) model.GoalScorerList {
	scorers := make(model.GoalScorerList, 0, len(reqs))
	for _, r := range reqs {
		scorers = append(scorers, model.GoalScorer{
			Player:     r.Player,
			PlayerName: r.PlayerName,
			Goals:      r.Goals,
			Team:       r.Team,
		})
	}
	return scorers
}

// Create godoc
// @Summary Create a match
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateMatchRequest true "Match data"
// @Success 201 {object} model.Match
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /matches [post]
func (h *MatchHandler) Create(c echo.Context) error {
	var req CreateMatchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	match := &model.Match{
		HomeTeam:    req.HomeTeam,
		AwayTeam:    req.AwayTeam,
		Date:        req.Date,
		Time:        req.Time,
		Venue:       req.Venue,
		HomeScore:   req.HomeScore,
		AwayScore:   req.AwayScore,
		Status:      req.Status,
		Competition: req.Competition,
		GoalScorers: toGoalScorers(req.GoalScorers),
	}
	created, err := h.matches.Create(c.Request().Context(), match)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// List godoc
// @Summary List all matches ordered by date
// @Tags matches
// @Produce json
// @Success 200 {array} model.Match
// @Router /matches [get]
func (h *MatchHandler) List(c echo.Context) error {
	matches, err := h.matches.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, matches)
}

// ListUpcoming godoc
// @Summary List the next scheduled matches
// @Tags matches
// @Produce json
// @Success 200 {array} model.Match
// @Router /matches/upcoming [get]
func (h *MatchHandler) ListUpcoming(c echo.Context) error {
	matches, err := h.matches.ListUpcoming(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, matches)
}

// Get godoc
// @Summary Get a match
// @Tags matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} model.Match
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /matches/{id} [get]
func (h *MatchHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	match, err := h.matches.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, match)
}

// Update godoc
// @Summary Update a match
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Param request body UpdateMatchRequest true "Fields to change"
// @Success 200 {object} model.Match
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /matches/{id} [put]
func (h *MatchHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var req UpdateMatchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	upd := service.MatchUpdate{
		HomeTeam:    req.HomeTeam,
		AwayTeam:    req.AwayTeam,
		Date:        req.Date,
		Time:        req.Time,
		Venue:       req.Venue,
		HomeScore:   req.HomeScore,
		AwayScore:   req.AwayScore,
		Status:      req.Status,
		Competition: req.Competition,
	}
	if req.GoalScorers != nil {
		scorers := toGoalScorers(*req.GoalScorers)
		upd.GoalScorers = &scorers
	}

	match, err := h.matches.Update(c.Request().Context(), id, upd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, match)
}

// Delete godoc
// @Summary Delete a match
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /matches/{id} [delete]
func (h *MatchHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.matches.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return deleted(c, "Match")
}
