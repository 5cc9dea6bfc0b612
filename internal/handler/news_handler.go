package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"clubsite/internal/apperrors"
	"clubsite/internal/middleware"
	"clubsite/internal/model"
	"clubsite/internal/service"
)

// NewsHandler handles article endpoints.
type NewsHandler struct {
	news service.NewsService
}

// NewNewsHandler creates a new news handler.
func NewNewsHandler(news service.NewsService) *NewsHandler {
	return &NewsHandler{news: news}
}

// CreateNewsRequest represents an article creation request. There is no
// author field: authorship always comes from the authenticated caller.
type CreateNewsRequest struct {
	Title     string             `json:"title" validate:"required"`
	Excerpt   string             `json:"excerpt" validate:"required"`
	Content   string             `json:"content" validate:"required"`
	Image     string             `json:"image"`
	Category  model.NewsCategory `json:"category" validate:"omitempty,oneof=match transfer training announcement other"`
	Published *bool              `json:"published"`
}

// UpdateNewsRequest represents a partial article edit; absent fields are
// left unchanged.
type UpdateNewsRequest struct {
	Title     *string             `json:"title"`
	Excerpt   *string             `json:"excerpt"`
	Content   *string             `json:"content"`
	Image     *string             `json:"image"`
	Category  *model.NewsCategory `json:"category" validate:"omitempty,oneof=match transfer training announcement other"`
	Published *bool               `json:"published"`
}

// AuthorRef is the author projection shown on articles.
type AuthorRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// NewsResponse is an article with its author expanded for display.
type NewsResponse struct {
	model.News
	Author AuthorRef `json:"author"`
}

func newNewsResponse(n *model.News) NewsResponse {
	return NewsResponse{
		News:   *n,
		Author: AuthorRef{ID: n.Author.ID, Name: n.Author.Name},
	}
}

// Create godoc
// @Summary Create an article
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateNewsRequest true "Article data"
// @Success 201 {object} NewsResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /news [post]
func (h *NewsHandler) Create(c echo.Context) error {
	author := middleware.CurrentUser(c)
	if author == nil {
		return respondError(c, apperrors.NewAuth("Not authorized, no token"))
	}

	var req CreateNewsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}
	news := &model.News{
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Image:     req.Image,
		Category:  req.Category,
		Published: published,
	}
	created, err := h.news.Create(c.Request().Context(), news, author)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, newNewsResponse(created))
}

// List godoc
// @Summary List published articles, newest first
// @Tags news
// @Produce json
// @Success 200 {array} NewsResponse
// @Router /news [get]
func (h *NewsHandler) List(c echo.Context) error {
	articles, err := h.news.ListPublished(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	resp := make([]NewsResponse, 0, len(articles))
	for i := range articles {
		resp = append(resp, newNewsResponse(&articles[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Get an article
// @Tags news
// @Produce json
// @Param id path string true "News ID"
// @Success 200 {object} NewsResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /news/{id} [get]
func (h *NewsHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	news, err := h.news.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, newNewsResponse(news))
}

// Update godoc
// @Summary Update an article
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "News ID"
// @Param request body UpdateNewsRequest true "Fields to change"
// @Success 200 {object} NewsResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /news/{id} [put]
func (h *NewsHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var req UpdateNewsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	news, err := h.news.Update(c.Request().Context(), id, service.NewsUpdate{
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Image:     req.Image,
		Category:  req.Category,
		Published: req.Published,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, newNewsResponse(news))
}

// Delete godoc
// @Summary Delete an article
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param id path string true "News ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /news/{id} [delete]
func (h *NewsHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.news.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return deleted(c, "News")
}
