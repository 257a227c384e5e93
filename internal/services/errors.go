// Package services defines the business logic for topics, articles, comments,
// and users. This file centralizes common service-level error values so that
// they can be consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages and HTTP status codes is performed in one place at
// the handler layer.
package services

import "errors"

// Not-found errors (each maps to HTTP 404).
var (
	// ErrTopicNotFound indicates that a requested topic slug does not exist,
	// or that the topic table is empty.
	ErrTopicNotFound = errors.New("topic not found")

	// ErrArticleNotFound indicates that the requested article does not exist.
	ErrArticleNotFound = errors.New("article not found")

	// ErrCommentNotFound indicates that the requested comment does not exist.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrUserNotFound indicates that a referenced username does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// Bad-argument errors (each maps to HTTP 400).
var (
	// ErrInvalidSortField is returned when sort_by is outside the allowed set
	// {title, votes, comment_count, author, created_at}.
	ErrInvalidSortField = errors.New("sort_by must be one of: title, votes, comment_count, author, created_at")

	// ErrInvalidSortOrder is returned when order_by is neither asc nor desc.
	ErrInvalidSortOrder = errors.New("order_by must be asc or desc")

	// ErrMissingCommentFields is returned when a new comment is missing a
	// username or a body (absent or blank after trimming).
	ErrMissingCommentFields = errors.New("username and body are required")
)
