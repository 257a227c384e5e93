// Comment HTTP handlers.
//
// This file exposes REST endpoints for comment resources:
//   - GET    /api/articles/:id/comments   (list an article's comments)
//   - POST   /api/articles/:id/comments   (create)
//   - GET    /api/comments/:id            (fetch one)
//   - DELETE /api/comments/:id            (hard delete)
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/domain"
)

//
// DTOs
//

// CommentResponse wraps a single comment under the "comment" key.
type CommentResponse struct {
	Comment *domain.Comment `json:"comment"`
}

// CommentsResponse wraps a list of comments under the "comments" key.
type CommentsResponse struct {
	Comments []domain.Comment `json:"comments"`
}

// PostCommentRequest is the JSON payload for creating a comment.
// Unknown fields are ignored; both username and body must be present and
// non-blank.
type PostCommentRequest struct {
	Username string `json:"username" example:"butter_bridge"`
	Body     string `json:"body"     example:"i am so hungry"`
}

//
// Handlers
//

// ListArticleComments godoc
// @ID          listArticleComments
// @Summary     List an article's comments
// @Description Returns the comments attached to the article, newest first. An existing article with no comments yields an empty list.
// @Tags        Comments
// @Produce     json
//
// @Param       id  path  int  true  "Article ID"  example(1)
//
// @Success     200  {object}  handlers.CommentsResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Article not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /articles/{id}/comments [get]
func (h *Handlers) ListArticleComments(c *gin.Context) {
	id, okID := intParam(c, "id")
	if !okID {
		badRequest(c)
		return
	}

	items, err := h.commentSvc.ListForArticle(c.Request.Context(), id)
	if err != nil {
		failFromService(c, err)
		return
	}
	ok(c, http.StatusOK, CommentsResponse{Comments: items})
}

// PostComment godoc
// @ID          postComment
// @Summary     Create a comment on an article
// @Description Adds a comment authored by an existing user. The new comment starts with zero votes and a server-set timestamp.
// @Tags        Comments
// @Accept      json
// @Produce     json
//
// @Param       id    path  int                          true  "Article ID"  example(6)
// @Param       body  body  handlers.PostCommentRequest  true  "Comment payload"
//
// @Success     201  {object}  handlers.CommentResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing username or body"
// @Failure     404  {object}  handlers.ErrorResponse  "Unknown article or user"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /articles/{id}/comments [post]
func (h *Handlers) PostComment(c *gin.Context) {
	id, okID := intParam(c, "id")
	if !okID {
		badRequest(c)
		return
	}

	var req PostCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Body) == "" {
		badRequest(c)
		return
	}

	cm, err := h.commentSvc.Create(c.Request.Context(), id, req.Username, req.Body)
	if err != nil {
		failFromService(c, err)
		return
	}
	ok(c, http.StatusCreated, CommentResponse{Comment: cm})
}

// GetComment godoc
// @ID          getComment
// @Summary     Fetch a single comment
// @Tags        Comments
// @Produce     json
//
// @Param       id  path  int  true  "Comment ID"  example(1)
//
// @Success     200  {object}  handlers.CommentResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Comment not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /comments/{id} [get]
func (h *Handlers) GetComment(c *gin.Context) {
	id, okID := intParam(c, "id")
	if !okID {
		badRequest(c)
		return
	}

	cm, err := h.commentSvc.Get(c.Request.Context(), id)
	if err != nil {
		failFromService(c, err)
		return
	}
	ok(c, http.StatusOK, CommentResponse{Comment: cm})
}

// DeleteComment godoc
// @ID          deleteComment
// @Summary     Delete a comment
// @Description Hard-deletes the comment. A second delete of the same id reports not found.
// @Tags        Comments
// @Produce     json
//
// @Param       id  path  int  true  "Comment ID"  example(1)
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Comment not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /comments/{id} [delete]
func (h *Handlers) DeleteComment(c *gin.Context) {
	id, okID := intParam(c, "id")
	if !okID {
		badRequest(c)
		return
	}

	if err := h.commentSvc.Delete(c.Request.Context(), id); err != nil {
		failFromService(c, err)
		return
	}
	noContent(c)
}
