// Article HTTP handlers.
//
// This file exposes REST endpoints for article resources:
//   - GET    /api/articles        (list, with topic filter and sorting)
//   - GET    /api/articles/:id    (fetch one, with comment_count)
//   - PATCH  /api/articles/:id    (adjust votes)
//
// It also declares the service contracts consumed by every handler in this
// package and the Handlers wiring. Handlers are transport-thin: they validate
// input shape, call application services, and translate results into HTTP
// responses through the shared normalizer.
package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/domain"
)

//
// Service contracts (context-aware)
//

// TopicService defines topic read operations consumed by HTTP handlers.
type TopicService interface {
	// List returns all topics; an empty topic table is a not-found condition.
	List(ctx context.Context) ([]domain.Topic, error)
}

// ArticleService defines article operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ArticleService interface {
	// Get fetches one article (with comment_count) by id.
	Get(ctx context.Context, id int) (*domain.Article, error)
	// List returns articles filtered by topic and sorted per sortBy/orderBy.
	List(ctx context.Context, topic, sortBy, orderBy string) ([]domain.Article, error)
	// IncrementVotes adjusts an article's votes by delta and returns the row.
	IncrementVotes(ctx context.Context, id, delta int) (*domain.Article, error)
}

// CommentService defines comment operations consumed by HTTP handlers.
type CommentService interface {
	// ListForArticle returns an existing article's comments, newest first.
	ListForArticle(ctx context.Context, articleID int) ([]domain.Comment, error)
	// Create adds a comment by username to an article.
	Create(ctx context.Context, articleID int, username, body string) (*domain.Comment, error)
	// Get fetches one comment by id.
	Get(ctx context.Context, id int) (*domain.Comment, error)
	// Delete hard-deletes one comment by id.
	Delete(ctx context.Context, id int) error
}

// UserService defines user read operations consumed by HTTP handlers.
type UserService interface {
	// List returns all users; an empty set is a valid empty result.
	List(ctx context.Context) ([]domain.User, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for topics, articles, comments, and
// users. It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	topicSvc   TopicService
	articleSvc ArticleService
	commentSvc CommentService
	userSvc    UserService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(topicSvc TopicService, articleSvc ArticleService, commentSvc CommentService, userSvc UserService) *Handlers {
	return &Handlers{topicSvc: topicSvc, articleSvc: articleSvc, commentSvc: commentSvc, userSvc: userSvc}
}

// intParam parses the named path parameter as a base-10 integer. Any
// non-integer value is malformed input per the API contract.
func intParam(c *gin.Context, name string) (int, bool) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, false
	}
	return n, true
}

//
// DTOs
//

// ArticleResponse wraps a single article under the "article" key.
type ArticleResponse struct {
	Article *domain.Article `json:"article"`
}

// ArticlesResponse wraps a list of articles under the "articles" key.
type ArticlesResponse struct {
	Articles []domain.Article `json:"articles"`
}

// PatchArticleRequest is the JSON payload for adjusting an article's votes.
// IncVotes is a pointer so "field missing" and "field present with value 0"
// stay distinct: zero is a legal delta. Unknown fields are ignored.
type PatchArticleRequest struct {
	// IncVotes is added to the article's votes; it may be negative or zero.
	IncVotes *int `json:"inc_votes" example:"1"`
}

//
// Handlers
//

// GetArticle godoc
// @ID          getArticle
// @Summary     Fetch a single article
// @Description Returns the article with the given id, including its derived comment_count.
// @Tags        Articles
// @Produce     json
//
// @Param       id  path  int  true  "Article ID"  example(1)
//
// @Success     200  {object}  handlers.ArticleResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Article not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /articles/{id} [get]
func (h *Handlers) GetArticle(c *gin.Context) {
	id, okID := intParam(c, "id")
	if !okID {
		badRequest(c)
		return
	}

	a, err := h.articleSvc.Get(c.Request.Context(), id)
	if err != nil {
		failFromService(c, err)
		return
	}
	ok(c, http.StatusOK, ArticleResponse{Article: a})
}

// ListArticles godoc
// @ID          listArticles
// @Summary     List articles
// @Description Returns all articles with comment_count, optionally filtered by topic and sorted.
// @Tags        Articles
// @Produce     json
//
// @Param       topic     query  string  false  "Topic slug filter (unknown slug → 404)"
// @Param       sort_by   query  string  false  "Sort column"     Enums(title, votes, comment_count, author, created_at)  default(created_at)
// @Param       order_by  query  string  false  "Sort direction"  Enums(asc, desc)  default(desc)
//
// @Success     200  {object}  handlers.ArticlesResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad sort_by/order_by"
// @Failure     404  {object}  handlers.ErrorResponse  "Unknown topic"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /articles [get]
func (h *Handlers) ListArticles(c *gin.Context) {
	items, err := h.articleSvc.List(
		c.Request.Context(),
		c.Query("topic"),
		c.Query("sort_by"),
		c.Query("order_by"),
	)
	if err != nil {
		failFromService(c, err)
		return
	}
	ok(c, http.StatusOK, ArticlesResponse{Articles: items})
}

// PatchArticleVotes godoc
// @ID          patchArticleVotes
// @Summary     Adjust an article's votes
// @Description Adds inc_votes (which may be negative or zero) to the article's vote count.
// @Tags        Articles
// @Accept      json
// @Produce     json
//
// @Param       id    path  int                            true  "Article ID"  example(1)
// @Param       body  body  handlers.PatchArticleRequest   true  "Vote delta"
//
// @Success     201  {object}  handlers.ArticleResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Article not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /articles/{id} [patch]
func (h *Handlers) PatchArticleVotes(c *gin.Context) {
	id, okID := intParam(c, "id")
	if !okID {
		badRequest(c)
		return
	}

	var req PatchArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IncVotes == nil {
		// nil IncVotes means the field was absent; a present 0 is accepted.
		badRequest(c)
		return
	}

	a, err := h.articleSvc.IncrementVotes(c.Request.Context(), id, *req.IncVotes)
	if err != nil {
		failFromService(c, err)
		return
	}
	ok(c, http.StatusCreated, ArticleResponse{Article: a})
}
