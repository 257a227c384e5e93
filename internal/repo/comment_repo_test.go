package repo

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestListCommentsForArticle_NewestFirst(t *testing.T) {
	db := newTestDB(t, "comments_list")
	seedTestDB(t, db)

	items, err := ListCommentsForArticle(context.Background(), db, 1)
	if err != nil {
		t.Fatalf("ListCommentsForArticle: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len = %d; want 3", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].CreatedAt.After(items[i-1].CreatedAt) {
			t.Fatalf("not sorted created_at desc at index %d", i)
		}
	}
	for _, cm := range items {
		if cm.ArticleID != 1 {
			t.Fatalf("comment %d belongs to article %d; want 1", cm.CommentID, cm.ArticleID)
		}
	}
}

func TestListCommentsForArticle_NoComments(t *testing.T) {
	db := newTestDB(t, "comments_list_empty")
	seedTestDB(t, db)

	items, err := ListCommentsForArticle(context.Background(), db, 2)
	if err != nil {
		t.Fatalf("ListCommentsForArticle: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("items = %#v; want empty non-nil slice", items)
	}
}

func TestCreateComment(t *testing.T) {
	db := newTestDB(t, "comments_create")
	seedTestDB(t, db)

	before := time.Now().UTC().Add(-time.Second)
	cm, err := CreateComment(context.Background(), db, 2, "lurker", "first!")
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if cm.CommentID == 0 {
		t.Fatalf("expected generated comment id")
	}
	if cm.Votes != 0 {
		t.Fatalf("new comment votes = %d; want 0", cm.Votes)
	}
	if cm.Author != "lurker" || cm.Body != "first!" || cm.ArticleID != 2 {
		t.Fatalf("unexpected comment: %+v", cm)
	}
	if cm.CreatedAt.Before(before) {
		t.Fatalf("created_at not server-set: %v", cm.CreatedAt)
	}

	// Round-trip through GetComment.
	got, err := GetComment(context.Background(), db, cm.CommentID)
	if err != nil {
		t.Fatalf("GetComment: %v", err)
	}
	if got.Body != "first!" {
		t.Fatalf("persisted body = %q", got.Body)
	}
}

func TestGetComment_Missing(t *testing.T) {
	db := newTestDB(t, "comments_get_missing")
	seedTestDB(t, db)

	if _, err := GetComment(context.Background(), db, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetComment(9999) = %v; want ErrNotFound", err)
	}
}

func TestDeleteComment(t *testing.T) {
	db := newTestDB(t, "comments_delete")
	seedTestDB(t, db)

	ctx := context.Background()

	if err := DeleteComment(ctx, db, 1); err != nil {
		t.Fatalf("DeleteComment: %v", err)
	}
	if _, err := GetComment(ctx, db, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted comment still readable: %v", err)
	}
	// Second delete of the same id reports not found.
	if err := DeleteComment(ctx, db, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("repeat delete = %v; want ErrNotFound", err)
	}
}
