package services

import (
	"context"
	"errors"
	"testing"
)

func TestCommentService_ListForArticle(t *testing.T) {
	db := newTestDB(t, "svc_comment_list")
	seedTestDB(t, db)
	svc := &CommentService{DB: db}

	ctx := context.Background()

	items, err := svc.ListForArticle(ctx, 1)
	if err != nil {
		t.Fatalf("ListForArticle: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len = %d; want 3", len(items))
	}

	// Existing article, no comments: empty, not an error.
	items, err = svc.ListForArticle(ctx, 2)
	if err != nil {
		t.Fatalf("ListForArticle(2): %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("len = %d; want 0", len(items))
	}

	// Missing article: not found.
	if _, err := svc.ListForArticle(ctx, 424242); !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("missing article = %v; want ErrArticleNotFound", err)
	}
}

func TestCommentService_Create(t *testing.T) {
	db := newTestDB(t, "svc_comment_create")
	seedTestDB(t, db)
	svc := &CommentService{DB: db}

	ctx := context.Background()

	cm, err := svc.Create(ctx, 2, "lurker", "quality content")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if cm.CommentID == 0 || cm.Votes != 0 || cm.Author != "lurker" {
		t.Fatalf("unexpected comment: %+v", cm)
	}

	// Whitespace-only counts as missing.
	if _, err := svc.Create(ctx, 2, "   ", "body"); !errors.Is(err, ErrMissingCommentFields) {
		t.Fatalf("blank username = %v; want ErrMissingCommentFields", err)
	}
	if _, err := svc.Create(ctx, 2, "lurker", "\t\n"); !errors.Is(err, ErrMissingCommentFields) {
		t.Fatalf("blank body = %v; want ErrMissingCommentFields", err)
	}

	// Author must be a known user.
	if _, err := svc.Create(ctx, 2, "ghost", "boo"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("unknown user = %v; want ErrUserNotFound", err)
	}

	// Parent article must exist.
	if _, err := svc.Create(ctx, 424242, "lurker", "hello"); !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("unknown article = %v; want ErrArticleNotFound", err)
	}
}

func TestCommentService_Create_TrimsFields(t *testing.T) {
	db := newTestDB(t, "svc_comment_trim")
	seedTestDB(t, db)
	svc := &CommentService{DB: db}

	cm, err := svc.Create(context.Background(), 2, "  lurker  ", "  hi  ")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if cm.Author != "lurker" || cm.Body != "hi" {
		t.Fatalf("fields not trimmed: %+v", cm)
	}
}

func TestCommentService_GetAndDelete(t *testing.T) {
	db := newTestDB(t, "svc_comment_delete")
	seedTestDB(t, db)
	svc := &CommentService{DB: db}

	ctx := context.Background()

	cm, err := svc.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if cm.CommentID != 1 {
		t.Fatalf("unexpected comment: %+v", cm)
	}

	if err := svc.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, 1); !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("Get after delete = %v; want ErrCommentNotFound", err)
	}
	if err := svc.Delete(ctx, 1); !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("repeat delete = %v; want ErrCommentNotFound", err)
	}
}
