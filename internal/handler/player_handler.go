package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clubsite/internal/model"
	"clubsite/internal/service"
)

// PlayerHandler handles roster endpoints.
type PlayerHandler struct {
	players service.PlayerService
}

// NewPlayerHandler creates a new player handler.
func NewPlayerHandler(players service.PlayerService) *PlayerHandler {
	return &PlayerHandler{players: players}
}

// CreatePlayerRequest represents a roster entry creation request.
type CreatePlayerRequest struct {
	Name        string         `json:"name" validate:"required"`
	Position    model.Position `json:"position" validate:"required,oneof=Goalkeeper Defender Midfielder Forward"`
	Number      int            `json:"number" validate:"required,gte=1,lte=99"`
	Age         int            `json:"age" validate:"required,gte=1"`
	Nationality string         `json:"nationality" validate:"required"`
	Goals       int            `json:"goals" validate:"gte=0"`
	Assists     int            `json:"assists" validate:"gte=0"`
	Image       string         `json:"image"`
	Bio         string         `json:"bio"`
}

// UpdatePlayerRequest represents a partial roster edit; absent fields are
// left unchanged.
type UpdatePlayerRequest struct {
	Name        *string         `json:"name"`
	Position    *model.Position `json:"position" validate:"omitempty,oneof=Goalkeeper Defender Midfielder Forward"`
	Number      *int            `json:"number" validate:"omitempty,gte=1,lte=99"`
	Age         *int            `json:"age" validate:"omitempty,gte=1"`
	Nationality *string         `json:"nationality"`
	Goals       *int            `json:"goals" validate:"omitempty,gte=0"`
	Assists     *int            `json:"assists" validate:"omitempty,gte=0"`
	Image       *string         `json:"image"`
	Bio         *string         `json:"bio"`
}

// Create godoc
// @Summary Create a player
// @Tags players
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePlayerRequest true "Player data"
// @Success 201 {object} model.Player
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /players [post]
func (h *PlayerHandler) Create(c echo.Context) error {
	var req CreatePlayerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	player := &model.Player{
		Name:        req.Name,
		Position:    req.Position,
		Number:      req.Number,
		Age:         req.Age,
		Nationality: req.Nationality,
		Goals:       req.Goals,
		Assists:     req.Assists,
		Image:       req.Image,
		Bio:         req.Bio,
	}
	created, err := h.players.Create(c.Request().Context(), player)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// List godoc
// @Summary List the roster ordered by jersey number
// @Tags players
// @Produce json
// @Success 200 {array} model.Player
// @Router /players [get]
func (h *PlayerHandler) List(c echo.Context) error {
	players, err := h.players.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, players)
}

// Get godoc
// @Summary Get a player
// @Tags players
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} model.Player
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /players/{id} [get]
func (h *PlayerHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	player, err := h.players.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, player)
}

// Update godoc
// @Summary Update a player
// @Tags players
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Player ID"
// @Param request body UpdatePlayerRequest true "Fields to change"
// @Success 200 {object} model.Player
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /players/{id} [put]
func (h *PlayerHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var req UpdatePlayerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	player, err := h.players.Update(c.Request().Context(), id, service.PlayerUpdate{
		Name:        req.Name,
		Position:    req.Position,
		Number:      req.Number,
		Age:         req.Age,
		Nationality: req.Nationality,
		Goals:       req.Goals,
		Assists:     req.Assists,
		Image:       req.Image,
		Bio:         req.Bio,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, player)
}

// Delete godoc
// @Summary Delete a player
// @Tags players
// @Produce json
// @Security BearerAuth
// @Param id path string true "Player ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /players/{id} [delete]
func (h *PlayerHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.players.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return deleted(c, "Player")
}
