package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clubsite/internal/model"
	"clubsite/internal/service"
)

// GalleryHandler handles gallery endpoints.
type GalleryHandler struct {
	gallery service.GalleryService
}

// NewGalleryHandler creates a new gallery handler.
func NewGalleryHandler(gallery service.GalleryService) *GalleryHandler {
	return &GalleryHandler{gallery: gallery}
}

// CreateGalleryRequest represents a gallery item creation request.
type CreateGalleryRequest struct {
	Title       string                `json:"title" validate:"required"`
	ImageURL    string                `json:"imageUrl" validate:"required"`
	Description string                `json:"description"`
	Category    model.GalleryCategory `json:"category" validate:"omitempty,oneof=match training team events other"`
}

// UpdateGalleryRequest represents a partial gallery edit; absent fields are
// left unchanged.
type UpdateGalleryRequest struct {
	Title       *string                `json:"title"`
	ImageURL    *string                `json:"imageUrl"`
	Description *string                `json:"description"`
	Category    *model.GalleryCategory `json:"category" validate:"omitempty,oneof=match training team events other"`
}

// Create godoc
// @Summary Create a gallery item
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateGalleryRequest true "Gallery item data"
// @Success 201 {object} model.GalleryItem
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /gallery [post]
func (h *GalleryHandler) Create(c echo.Context) error {
	var req CreateGalleryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	item := &model.GalleryItem{
		Title:       req.Title,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Category:    req.Category,
	}
	created, err := h.gallery.Create(c.Request().Context(), item)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// List godoc
// @Summary List gallery items, newest first
// @Tags gallery
// @Produce json
// @Success 200 {array} model.GalleryItem
// @Router /gallery [get]
func (h *GalleryHandler) List(c echo.Context) error {
	items, err := h.gallery.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// Get godoc
// @Summary Get a gallery item
// @Tags gallery
// @Produce json
// @Param id path string true "Gallery item ID"
// @Success 200 {object} model.GalleryItem
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /gallery/{id} [get]
func (h *GalleryHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	item, err := h.gallery.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// Update godoc
// @Summary Update a gallery item
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gallery item ID"
// @Param request body UpdateGalleryRequest true "Fields to change"
// @Success 200 {object} model.GalleryItem
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /gallery/{id} [put]
func (h *GalleryHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var req UpdateGalleryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	item, err := h.gallery.Update(c.Request().Context(), id, service.GalleryUpdate{
		Title:       req.Title,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// Delete godoc
// @Summary Delete a gallery item
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gallery item ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /gallery/{id} [delete]
func (h *GalleryHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.gallery.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return deleted(c, "Gallery item")
}
