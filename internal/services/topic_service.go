// Package services – TopicService and UserService
//
// Topics and users are read-only seed data through this API, so their
// services are thin pass-throughs over the repository with error mapping.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/repo"
)

// TopicService provides read access to topics.
type TopicService struct {
	DB *gorm.DB
}

// List returns all topics. An empty topic table maps to ErrTopicNotFound:
// topics are seed data, so an empty set means the dataset is missing.
func (s *TopicService) List(ctx context.Context) ([]domain.Topic, error) {
	topics, err := repo.ListTopics(ctx, s.DB)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTopicNotFound
		}
		return nil, err
	}
	return topics, nil
}

// UserService provides read access to users.
type UserService struct {
	DB *gorm.DB
}

// List returns all users; an empty user table is a valid empty result.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return repo.ListUsers(ctx, s.DB)
}
