package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
)

func TestArticleService_Get(t *testing.T) {
	db := newTestDB(t, "svc_article_get")
	seedTestDB(t, db)
	svc := NewArticleService(db, gormArticleRepo{})

	a, err := svc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if a.ArticleID != 1 || a.CommentCount != 3 {
		t.Fatalf("unexpected article: %+v", a)
	}

	if _, err := svc.Get(context.Background(), 424242); !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("Get(missing) = %v; want ErrArticleNotFound", err)
	}
}

func TestArticleService_List_TopicSemantics(t *testing.T) {
	db := newTestDB(t, "svc_article_list_topic")
	seedTestDB(t, db)
	svc := NewArticleService(db, gormArticleRepo{})

	ctx := context.Background()

	// Unknown topic slug: not found, regardless of result size.
	if _, err := svc.List(ctx, "bananas", "", ""); !errors.Is(err, ErrTopicNotFound) {
		t.Fatalf("unknown topic = %v; want ErrTopicNotFound", err)
	}

	// Known topic with zero articles: valid empty result.
	items, err := svc.List(ctx, "paper", "", "")
	if err != nil {
		t.Fatalf("List(paper): %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("List(paper) = %d items; want 0", len(items))
	}

	// No filter returns everything.
	all, err := svc.List(ctx, "", "", "")
	if err != nil {
		t.Fatalf("List(all): %v", err)
	}
	if len(all) != 6 {
		t.Fatalf("List(all) = %d items; want 6", len(all))
	}
}

func TestArticleService_List_SortErrors(t *testing.T) {
	db := newTestDB(t, "svc_article_list_sort")
	seedTestDB(t, db)
	svc := NewArticleService(db, gormArticleRepo{})

	ctx := context.Background()

	if _, err := svc.List(ctx, "", "body", ""); !errors.Is(err, ErrInvalidSortField) {
		t.Fatalf("bad sort_by = %v; want ErrInvalidSortField", err)
	}
	if _, err := svc.List(ctx, "", "", "up"); !errors.Is(err, ErrInvalidSortOrder) {
		t.Fatalf("bad order_by = %v; want ErrInvalidSortOrder", err)
	}
}

func TestArticleService_IncrementVotes(t *testing.T) {
	db := newTestDB(t, "svc_article_votes")
	seedTestDB(t, db)
	svc := NewArticleService(db, gormArticleRepo{})

	ctx := context.Background()

	a, err := svc.IncrementVotes(ctx, 1, -10)
	if err != nil {
		t.Fatalf("IncrementVotes: %v", err)
	}
	if a.Votes != 90 {
		t.Fatalf("votes = %d; want 90", a.Votes)
	}

	// Zero is a legal delta.
	a, err = svc.IncrementVotes(ctx, 1, 0)
	if err != nil {
		t.Fatalf("IncrementVotes(0): %v", err)
	}
	if a.Votes != 90 {
		t.Fatalf("votes after zero delta = %d; want 90", a.Votes)
	}

	if _, err := svc.IncrementVotes(ctx, 424242, 1); !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("missing article = %v; want ErrArticleNotFound", err)
	}
}

// erroringRepo returns a fixed error from every method to verify unexpected
// failures pass through untranslated.
type erroringRepo struct{ err error }

func (r erroringRepo) GetArticle(context.Context, *gorm.DB, int) (*domain.Article, error) {
	return nil, r.err
}

func (r erroringRepo) ListArticles(context.Context, *gorm.DB, string, string, string) ([]domain.Article, error) {
	return nil, r.err
}

func (r erroringRepo) IncrementArticleVotes(context.Context, *gorm.DB, int, int) (*domain.Article, error) {
	return nil, r.err
}

func (r erroringRepo) FindTopic(context.Context, *gorm.DB, string) (*domain.Topic, error) {
	return nil, r.err
}

func TestArticleService_UnexpectedErrorsPassThrough(t *testing.T) {
	boom := errors.New("disk on fire")
	svc := NewArticleService(nil, erroringRepo{err: boom})

	ctx := context.Background()

	if _, err := svc.Get(ctx, 1); !errors.Is(err, boom) {
		t.Fatalf("Get error = %v; want passthrough", err)
	}
	if _, err := svc.List(ctx, "", "", ""); !errors.Is(err, boom) {
		t.Fatalf("List error = %v; want passthrough", err)
	}
	if _, err := svc.IncrementVotes(ctx, 1, 1); !errors.Is(err, boom) {
		t.Fatalf("IncrementVotes error = %v; want passthrough", err)
	}
}
