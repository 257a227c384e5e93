// Topic and user HTTP handlers. Both resources are read-only list endpoints.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// TopicsResponse wraps a list of topics under the "topics" key.
type TopicsResponse struct {
	Topics []domain.Topic `json:"topics"`
}

// UsersResponse wraps a list of users under the "users" key.
type UsersResponse struct {
	Users []domain.User `json:"users"`
}

// ListTopics godoc
// @ID          listTopics
// @Summary     List all topics
// @Description Returns every topic. An empty topic table reports not found, because topics are immutable seed data.
// @Tags        Topics
// @Produce     json
//
// @Success     200  {object}  handlers.TopicsResponse
// @Failure     404  {object}  handlers.ErrorResponse  "No topics loaded"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /topics [get]
func (h *Handlers) ListTopics(c *gin.Context) {
	topics, err := h.topicSvc.List(c.Request.Context())
	if err != nil {
		failFromService(c, err)
		return
	}
	ok(c, http.StatusOK, TopicsResponse{Topics: topics})
}

// ListUsers godoc
// @ID          listUsers
// @Summary     List all users
// @Tags        Users
// @Produce     json
//
// @Success     200  {object}  handlers.UsersResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /users [get]
func (h *Handlers) ListUsers(c *gin.Context) {
	users, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		failFromService(c, err)
		return
	}
	ok(c, http.StatusOK, UsersResponse{Users: users})
}
