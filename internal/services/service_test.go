package services

import (
	"context"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/repo"
)

// newTestDB opens an isolated in-memory database with the full schema.
func newTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	if err := repo.Seed(context.Background(), db); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

// gormArticleRepo implements ArticleRepo over the repo package, mirroring the
// shim the router installs in production.
type gormArticleRepo struct{}

func (gormArticleRepo) GetArticle(ctx context.Context, db *gorm.DB, id int) (*domain.Article, error) {
	return repo.GetArticle(ctx, db, id)
}

func (gormArticleRepo) ListArticles(ctx context.Context, db *gorm.DB, topic, sortBy, orderBy string) ([]domain.Article, error) {
	return repo.ListArticles(ctx, db, topic, sortBy, orderBy)
}

func (gormArticleRepo) IncrementArticleVotes(ctx context.Context, db *gorm.DB, id, delta int) (*domain.Article, error) {
	return repo.IncrementArticleVotes(ctx, db, id, delta)
}

func (gormArticleRepo) FindTopic(ctx context.Context, db *gorm.DB, slug string) (*domain.Topic, error) {
	return repo.FindTopic(ctx, db, slug)
}
