package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubsite/internal/apperrors"
	"clubsite/internal/model"
	"clubsite/internal/repository"
)

// NewsUpdate carries a partial article edit; nil fields are left unchanged.
// Authorship is fixed at creation and cannot be updated.
type NewsUpdate struct {
	Title     *string
	Excerpt   *string
	Content   *string
	Image     *string
	Category  *model.NewsCategory
	Published *bool
}

// NewsService exposes article operations.
type NewsService interface {
	Create(ctx context.Context, news *model.News, author *model.User) (*model.News, error)
	ListPublished(ctx context.Context) ([]model.News, error)
	Get(ctx context.Context, id uuid.UUID) (*model.News, error)
	Update(ctx context.Context, id uuid.UUID, upd NewsUpdate) (*model.News, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type newsService struct {
	news repository.NewsRepository
}

// NewNewsService builds a NewsService.
func NewNewsService(news repository.NewsRepository) NewsService {
	return &newsService{news: news}
}

// Create stores an article attributed to author. Any author supplied in the
// payload has already been discarded: callers cannot forge authorship.
func (s *newsService) Create(ctx context.Context, news *model.News, author *model.User) (*model.News, error) {
	news.AuthorID = author.ID
	news.Author = *author
	if news.Category == "" {
		news.Category = model.NewsOther
	}
	if err := validateNews(news); err != nil {
		return nil, err
	}
	if err := s.news.Create(ctx, news); err != nil {
		return nil, err
	}
	return news, nil
}

func (s *newsService) ListPublished(ctx context.Context) ([]model.News, error) {
	return s.news.ListPublished(ctx)
}

func (s *newsService) Get(ctx context.Context, id uuid.UUID) (*model.News, error) {
	news, err := s.news.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFound("News")
		}
		return nil, err
	}
	return news, nil
}

// Update merges the supplied fields into the stored record and revalidates
// the result against the same rules as Create.
func (s *newsService) Update(ctx context.Context, id uuid.UUID, upd NewsUpdate) (*model.News, error) {
	news, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		news.Title = *upd.Title
	}
	if upd.Excerpt != nil {
		news.Excerpt = *upd.Excerpt
	}
	if upd.Content != nil {
		news.Content = *upd.Content
	}
	if upd.Image != nil {
		news.Image = *upd.Image
	}
	if upd.Category != nil {
		news.Category = *upd.Category
	}
	if upd.Published != nil {
		news.Published = *upd.Published
	}

	if err := validateNews(news); err != nil {
		return nil, err
	}
	if err := s.news.Save(ctx, news); err != nil {
		return nil, err
	}
	return news, nil
}

func (s *newsService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.news.Delete(ctx, id)
}

func validateNews(n *model.News) error {
	var fields []string
	if n.Title == "" {
		fields = append(fields, "title")
	}
	if n.Excerpt == "" {
		fields = append(fields, "excerpt")
	}
	if n.Content == "" {
		fields = append(fields, "content")
	}
	if !n.Category.Valid() {
		fields = append(fields, "category")
	}
	if len(fields) > 0 {
		return apperrors.NewValidation("invalid news", fields...)
	}
	return nil
}
