// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Article
// model, including the dynamically composed list query.
//
// Query construction discipline: the sort column and direction cannot travel
// as bind parameters, so they are resolved through the closed lookup tables
// below before being spliced into the query text. Everything else (topic
// slug, ids, vote deltas) is always a bind parameter.
package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// Sort validation errors returned by ListArticles before any SQL is built.
var (
	// ErrInvalidSortField is returned when sort_by is not a whitelisted column.
	ErrInvalidSortField = errors.New("invalid sort field")

	// ErrInvalidSortOrder is returned when order_by is not "asc" or "desc".
	ErrInvalidSortOrder = errors.New("invalid sort order")
)

// sortColumns maps allowed sort_by values to the exact ORDER BY token.
// Columns are table-qualified because the list query joins comments, which
// shares column names (created_at, votes) with articles.
var sortColumns = map[string]string{
	"title":         "articles.title",
	"votes":         "articles.votes",
	"comment_count": "comment_count",
	"author":        "articles.author",
	"created_at":    "articles.created_at",
}

// sortOrders maps allowed order_by values to the exact direction token.
var sortOrders = map[string]string{
	"asc":  "ASC",
	"desc": "DESC",
}

// articleQuery composes the article base query with the comment_count
// aggregate. The LEFT JOIN keeps articles with no comments (count 0).
func articleQuery(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).
		Model(&domain.Article{}).
		Select("articles.*, COUNT(comments.comment_id) AS comment_count").
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Group("articles.article_id")
}

// GetArticle fetches a single article by id, augmented with comment_count,
// or ErrNotFound if missing.
func GetArticle(ctx context.Context, db *gorm.DB, id int) (*domain.Article, error) {
	var a domain.Article
	err := articleQuery(ctx, db).
		Where("articles.article_id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListArticles returns articles augmented with comment_count, optionally
// filtered by topic slug and sorted by a whitelisted column and direction.
//
// Empty sortBy/orderBy fall back to created_at descending. Values outside the
// whitelists yield ErrInvalidSortField / ErrInvalidSortOrder without touching
// the database. Topic existence is a service-level concern: an unknown topic
// here simply produces an empty result.
func ListArticles(ctx context.Context, db *gorm.DB, topic, sortBy, orderBy string) ([]domain.Article, error) {
	if sortBy == "" {
		sortBy = "created_at"
	}
	if orderBy == "" {
		orderBy = "desc"
	}
	col, ok := sortColumns[sortBy]
	if !ok {
		return nil, ErrInvalidSortField
	}
	dir, ok := sortOrders[orderBy]
	if !ok {
		return nil, ErrInvalidSortOrder
	}

	q := articleQuery(ctx, db)
	if topic != "" {
		q = q.Where("articles.topic = ?", topic)
	}

	out := []domain.Article{}
	err := q.Order(col + " " + dir).Find(&out).Error
	return out, err
}

// IncrementArticleVotes adjusts an article's votes by delta (which may be
// negative) and returns the updated row. The conditional UPDATE and the
// re-read run in one transaction so concurrent increments cannot be lost
// between an existence check and the mutation.
//
// Returns ErrNotFound when the article does not exist.
func IncrementArticleVotes(ctx context.Context, db *gorm.DB, id, delta int) (*domain.Article, error) {
	var updated *domain.Article
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Article{}).
			Where("article_id = ?", id).
			UpdateColumn("votes", gorm.Expr("votes + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		a, err := GetArticle(ctx, tx, id)
		if err != nil {
			return err
		}
		updated = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
