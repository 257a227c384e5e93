// Package services – ArticleService
//
// This file implements the ArticleService, which coordinates article reads and
// the vote mutation. It validates the topic filter against the topic table
// (an unknown topic is "not found", while a known topic with zero matching
// articles is a valid empty result) and translates repository errors into
// service-level sentinels so handlers can map them to HTTP results
// consistently.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/repo"
)

// ArticleRepo defines the repository contract required by ArticleService.
// Implementations are responsible for persistence of article aggregates.
type ArticleRepo interface {
	// GetArticle fetches an article (with comment_count) by id.
	GetArticle(ctx context.Context, db *gorm.DB, id int) (*domain.Article, error)

	// ListArticles returns articles filtered/sorted per the given tokens.
	ListArticles(ctx context.Context, db *gorm.DB, topic, sortBy, orderBy string) ([]domain.Article, error)

	// IncrementArticleVotes adjusts votes by delta and returns the new row.
	IncrementArticleVotes(ctx context.Context, db *gorm.DB, id, delta int) (*domain.Article, error)

	// FindTopic fetches a topic by slug (existence check for the filter).
	FindTopic(ctx context.Context, db *gorm.DB, slug string) (*domain.Topic, error)
}

// ArticleService provides article-level operations: fetching a single
// article, listing with filter/sort, and adjusting votes.
type ArticleService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the article repository used by this service.
	Repo ArticleRepo
}

// NewArticleService constructs an ArticleService bound to db and r.
func NewArticleService(db *gorm.DB, r ArticleRepo) *ArticleService {
	return &ArticleService{DB: db, Repo: r}
}

// Get returns the article with the given id, or ErrArticleNotFound.
func (s *ArticleService) Get(ctx context.Context, id int) (*domain.Article, error) {
	a, err := s.Repo.GetArticle(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return a, nil
}

// List returns articles augmented with comment_count.
//
// A non-empty topic must name an existing topic slug; otherwise
// ErrTopicNotFound is returned. A valid topic with no matching articles is an
// empty slice, not an error. Disallowed sort_by/order_by values surface as
// ErrInvalidSortField / ErrInvalidSortOrder.
func (s *ArticleService) List(ctx context.Context, topic, sortBy, orderBy string) ([]domain.Article, error) {
	if topic != "" {
		if _, err := s.Repo.FindTopic(ctx, s.DB, topic); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTopicNotFound
			}
			return nil, err
		}
	}

	items, err := s.Repo.ListArticles(ctx, s.DB, topic, sortBy, orderBy)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrInvalidSortField):
			return nil, ErrInvalidSortField
		case errors.Is(err, repo.ErrInvalidSortOrder):
			return nil, ErrInvalidSortOrder
		}
		return nil, err
	}
	return items, nil
}

// IncrementVotes adjusts an article's votes by delta (may be negative, and
// zero is a legal no-op delta) and returns the updated article, or
// ErrArticleNotFound when the id does not exist.
func (s *ArticleService) IncrementVotes(ctx context.Context, id, delta int) (*domain.Article, error) {
	a, err := s.Repo.IncrementArticleVotes(ctx, s.DB, id, delta)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return a, nil
}
