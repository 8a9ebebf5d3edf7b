package service

import (
	"context"
	"errors"
	"testing"

	"github.com/satriadw/openmusic/internal/errs"
)

func TestCollaborationService_GrantThenIsCollaborator(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewCollaborationService(&fakeCollabRepo{})

	id, err := s.Grant(ctx, "p1", "user2")
	if err != nil || id == "" {
		t.Fatalf("grant: id=%q err=%v", id, err)
	}

	ok, err := s.IsCollaborator(ctx, "p1", "user2")
	if err != nil || !ok {
		t.Fatalf("after grant: want true, got %v err=%v", ok, err)
	}

	if err := s.Revoke(ctx, "p1", "user2"); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	ok, err = s.IsCollaborator(ctx, "p1", "user2")
	if err != nil || ok {
		t.Fatalf("after revoke: want false, got %v err=%v", ok, err)
	}
}

func TestCollaborationService_RevokeMissing(t *testing.T) {
	t.Parallel()
	s := NewCollaborationService(&fakeCollabRepo{})
	err := s.Revoke(context.Background(), "p1", "user2")
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestCollaborationService_IsCollaboratorAbsenceIsFalseNotError(t *testing.T) {
	t.Parallel()
	s := NewCollaborationService(&fakeCollabRepo{})
	ok, err := s.IsCollaborator(context.Background(), "p1", "nobody")
	if err != nil {
		t.Fatalf("absence must not be an error: %v", err)
	}
	if ok {
		t.Fatal("want false")
	}
}

func TestCollaborationService_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewCollaborationService(&fakeCollabRepo{})

	if _, err := s.Grant(ctx, "", "user2"); err == nil {
		t.Fatal("want validation error on empty playlistID")
	}
	if err := s.Revoke(ctx, "p1", ""); err == nil {
		t.Fatal("want validation error on empty userID")
	}
	if _, err := s.IsCollaborator(ctx, "", ""); err == nil {
		t.Fatal("want validation error on empty ids")
	}
}

func TestCollaborationService_DuplicateGrantsAllRevokedAtOnce(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := &fakeCollabRepo{}
	s := NewCollaborationService(repo)

	// No uniqueness constraint on (playlist, user): a second grant lands.
	if _, err := s.Grant(ctx, "p1", "user2"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Grant(ctx, "p1", "user2"); err != nil {
		t.Fatal(err)
	}

	if err := s.Revoke(ctx, "p1", "user2"); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	ok, err := s.IsCollaborator(ctx, "p1", "user2")
	if err != nil || ok {
		t.Fatalf("revoke must clear every grant: got %v err=%v", ok, err)
	}
}
