package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cabin-backend/models"
)

// ArticleService manages the knowledge base. Admins see everything; guest
// reads are publish-gated.
type ArticleService struct {
	repo ArticleRepository
	log  *zap.Logger
}

func NewArticleService(repo ArticleRepository, log *zap.Logger) *ArticleService {
	return &ArticleService{repo: repo, log: log}
}

// ArticleInput carries the author-editable fields of an article.
type ArticleInput struct {
	Title     string
	Content   string
	Category  string
	Published bool
	ImageURL  *string
}

func (s *ArticleService) Add(ctx context.Context, in ArticleInput) (*models.Article, error) {
	if !models.ValidCategory(in.Category) {
		return nil, ErrInvalidCategory
	}
	now := time.Now()
	article := &models.Article{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Content:   in.Content,
		Category:  in.Category,
		Published: in.Published,
		ImageURL:  in.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, article); err != nil {
		return nil, err
	}
	s.log.Info("article created", zap.String("id", article.ID), zap.String("title", article.Title))
	return article, nil
}

// ArticleUpdate holds optional replacements; nil fields are left untouched.
type ArticleUpdate struct {
	Title     *string
	Content   *string
	Category  *string
	Published *bool
	ImageURL  *string
}

// Update merges the supplied fields and refreshes UpdatedAt.
func (s *ArticleService) Update(ctx context.Context, id string, in ArticleUpdate) (*models.Article, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		article.Title = *in.Title
	}
	if in.Content != nil {
		article.Content = *in.Content
	}
	if in.Category != nil {
		if !models.ValidCategory(*in.Category) {
			return nil, ErrInvalidCategory
		}
		article.Category = *in.Category
	}
	if in.Published != nil {
		article.Published = *in.Published
	}
	if in.ImageURL != nil {
		article.ImageURL = in.ImageURL
	}
	article.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *ArticleService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("article deleted", zap.String("id", id))
	return nil
}

// GetByID fetches one article. Unpublished articles are hidden unless the
// caller is an admin view.
func (s *ArticleService) GetByID(ctx context.Context, id string, includeUnpublished bool) (*models.Article, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !article.Published && !includeUnpublished {
		return nil, models.ErrNotFound
	}
	return article, nil
}

// List returns articles in store order, publish-gated for guest callers.
func (s *ArticleService) List(ctx context.Context, includeUnpublished bool) ([]models.Article, error) {
	articles, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if includeUnpublished {
		return articles, nil
	}
	published := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if a.Published {
			published = append(published, a)
		}
	}
	return published, nil
}

// ListByCategory returns published articles of one category.
func (s *ArticleService) ListByCategory(ctx context.Context, category string) ([]models.Article, error) {
	if !models.ValidCategory(category) {
		return nil, ErrInvalidCategory
	}
	articles, err := s.List(ctx, false)
	if err != nil {
		return nil, err
	}
	matched := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if a.Category == category {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

// Search does a case-insensitive substring match over title and content of
// published articles. No ranking; store order.
func (s *ArticleService) Search(ctx context.Context, query string) ([]models.Article, error) {
	articles, err := s.List(ctx, false)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	matched := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Content), q) {
			matched = append(matched, a)
		}
	}
	return matched, nil
}
