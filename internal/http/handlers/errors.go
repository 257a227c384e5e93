// Package handlers defines the HTTP-layer error taxonomy and the single
// normalizer that converts service failures into responses.
//
// The API exposes exactly three failure outcomes:
//   - 400 "Bad request"                             (malformed input)
//   - 404 "Resource not found"                      (referenced entity absent)
//   - 500 "Something went wrong there, try again"   (anything else)
//
// Handlers never write error responses directly: malformed path/query/body
// input short-circuits through badRequest(), and every service error goes
// through failFromService(), whose catch-all guarantees that an unrecognized
// failure still produces the 500 outcome and that raw database error text
// never leaks to clients. A stable machine-readable `code` accompanies each
// response for programmatic clients.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/services"
)

// Fixed user-facing messages. These are part of the API contract.
const (
	MsgBadRequest = "Bad request"
	MsgNotFound   = "Resource not found"
	MsgInternal   = "Something went wrong there, try again"
)

// Machine-readable error codes.
const (
	ErrCodeBadRequest = "bad_request"
	ErrCodeNotFound   = "not_found"
	ErrCodeInternal   = "internal_error"
)

// badRequest rejects malformed input (non-integer id, unparsable body,
// missing required field) before any service is called.
func badRequest(c *gin.Context) {
	fail(c, http.StatusBadRequest, ErrCodeBadRequest, MsgBadRequest)
}

// failFromService maps a service-level error onto one of the three outcomes.
// Unmatched errors always hit the catch-all 500 branch.
func failFromService(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTopicNotFound),
		errors.Is(err, services.ErrArticleNotFound),
		errors.Is(err, services.ErrCommentNotFound),
		errors.Is(err, services.ErrUserNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, MsgNotFound)
	case errors.Is(err, services.ErrInvalidSortField),
		errors.Is(err, services.ErrInvalidSortOrder),
		errors.Is(err, services.ErrMissingCommentFields):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, MsgBadRequest)
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, MsgInternal)
	}
}
