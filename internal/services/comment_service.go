// Package services – CommentService
//
// This file implements the CommentService, which governs comment reads,
// creation, and deletion. Creation enforces the referential rules of the data
// model: the parent article must exist and the author must be a known user,
// checked inside the same transaction as the insert so a concurrent delete
// cannot slip between the check and the write.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/repo"
)

// CommentService implements the use-cases around article comments. It is
// context-aware and opens its own transaction where atomicity matters.
type CommentService struct {
	// DB is the database handle used for all comment operations.
	DB *gorm.DB
}

// ListForArticle returns the comments of an article, newest first.
// The article must exist (ErrArticleNotFound otherwise); an existing article
// with no comments yields an empty slice.
func (s *CommentService) ListForArticle(ctx context.Context, articleID int) ([]domain.Comment, error) {
	if _, err := repo.GetArticle(ctx, s.DB, articleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return repo.ListCommentsForArticle(ctx, s.DB, articleID)
}

// Create adds a comment authored by username to the given article.
//
// Semantics and validation:
//   - username and body must be non-blank; otherwise ErrMissingCommentFields.
//   - username must name an existing user; otherwise ErrUserNotFound.
//   - articleID must name an existing article; otherwise ErrArticleNotFound.
//   - The new comment starts with votes=0 and a server-set created_at.
//
// The existence checks and the insert run in one transaction.
func (s *CommentService) Create(ctx context.Context, articleID int, username, body string) (*domain.Comment, error) {
	username = strings.TrimSpace(username)
	body = strings.TrimSpace(body)
	if username == "" || body == "" {
		return nil, ErrMissingCommentFields
	}

	var created *domain.Comment
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.FindUser(ctx, tx, username); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if _, err := repo.GetArticle(ctx, tx, articleID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArticleNotFound
			}
			return err
		}
		c, err := repo.CreateComment(ctx, tx, articleID, username, body)
		if err != nil {
			return err
		}
		created = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Get returns the comment with the given id, or ErrCommentNotFound.
func (s *CommentService) Get(ctx context.Context, id int) (*domain.Comment, error) {
	c, err := repo.GetComment(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return c, nil
}

// Delete hard-deletes the comment with the given id. Deleting a missing (or
// already deleted) comment returns ErrCommentNotFound.
func (s *CommentService) Delete(ctx context.Context, id int) error {
	if err := repo.DeleteComment(ctx, s.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	return nil
}
