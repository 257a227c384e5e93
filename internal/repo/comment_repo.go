// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Comment model.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// ListCommentsForArticle returns the comments attached to an article, newest
// first (CreatedAt DESC, CommentID DESC for determinism). An article with no
// comments yields an empty slice; article existence is checked by the caller.
func ListCommentsForArticle(ctx context.Context, db *gorm.DB, articleID int) ([]domain.Comment, error) {
	out := []domain.Comment{}
	err := db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at DESC, comment_id DESC").
		Find(&out).Error
	return out, err
}

// CreateComment inserts a new comment row with zero votes and a server-set
// UTC timestamp, and returns the persisted comment with its generated id.
func CreateComment(ctx context.Context, db *gorm.DB, articleID int, author, body string) (*domain.Comment, error) {
	c := &domain.Comment{
		Body:      body,
		ArticleID: articleID,
		Author:    author,
		Votes:     0,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// GetComment fetches a single comment by id, or ErrNotFound if missing.
func GetComment(ctx context.Context, db *gorm.DB, id int) (*domain.Comment, error) {
	var c domain.Comment
	if err := db.WithContext(ctx).Where("comment_id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// DeleteComment hard-deletes a comment by id. If no row is affected the
// comment did not exist and ErrNotFound is returned, which also makes a
// repeated delete of the same id fail with ErrNotFound.
func DeleteComment(ctx context.Context, db *gorm.DB, id int) error {
	res := db.WithContext(ctx).
		Where("comment_id = ?", id).
		Delete(&domain.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
