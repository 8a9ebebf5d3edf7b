package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/satriadw/openmusic/internal/errs"
	"github.com/satriadw/openmusic/internal/model"
	"github.com/satriadw/openmusic/internal/repository"
)

type fakeActivityRepo struct {
	entries []model.Activity
	seqs    []int
	nextSeq int
	now     time.Time // fixed clock; zero means real time
}

var _ repository.ActivityRepository = (*fakeActivityRepo)(nil)

func (f *fakeActivityRepo) clock() time.Time {
	if !f.now.IsZero() {
		return f.now
	}
	return time.Now()
}

func (f *fakeActivityRepo) Add(_ context.Context, playlistID, songID, userID string, action model.Action) (string, error) {
	f.nextSeq++
	id := fmt.Sprintf("activity-%d", f.nextSeq)
	f.entries = append(f.entries, model.Activity{
		ID:         id,
		PlaylistID: playlistID,
		SongID:     songID,
		UserID:     userID,
		Action:     action,
		Time:       f.clock(),
	})
	f.seqs = append(f.seqs, f.nextSeq)
	return id, nil
}

func (f *fakeActivityRepo) ListByPlaylist(_ context.Context, playlistID string) ([]model.Activity, error) {
	type row struct {
		a   model.Activity
		seq int
	}
	rows := []row{}
	for i, a := range f.entries {
		if a.PlaylistID == playlistID {
			rows = append(rows, row{a: a, seq: f.seqs[i]})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].a.Time.Equal(rows[j].a.Time) {
			return rows[i].seq < rows[j].seq
		}
		return rows[i].a.Time.Before(rows[j].a.Time)
	})
	out := make([]model.Activity, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.a)
	}
	return out, nil
}

func (f *fakeActivityRepo) ListFeed(ctx context.Context, playlistID string) ([]model.ActivityView, error) {
	entries, err := f.ListByPlaylist(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	out := make([]model.ActivityView, 0, len(entries))
	for _, a := range entries {
		out = append(out, model.ActivityView{Username: a.UserID, Title: a.SongID, Action: a.Action, Time: a.Time})
	}
	return out, nil
}

func (f *fakeActivityRepo) DeleteMatching(_ context.Context, playlistID, songID, userID string, action model.Action) error {
	for i, a := range f.entries {
		if a.PlaylistID == playlistID && a.SongID == songID && a.UserID == userID && a.Action == action {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			f.seqs = append(f.seqs[:i], f.seqs[i+1:]...)
			return nil
		}
	}
	return errs.ErrNotFound
}

func TestActivityService_RecordThenList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewActivityService(&fakeActivityRepo{})

	id, err := s.Record(ctx, "p1", "s1", "u1", model.ActionAdd)
	if err != nil || id == "" {
		t.Fatalf("record: id=%q err=%v", id, err)
	}

	out, err := s.List(ctx, "p1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 1 || out[0].Action != model.ActionAdd {
		t.Fatalf("want one add entry, got %+v", out)
	}
}

func TestActivityService_ListOrderedAscending(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := &fakeActivityRepo{}
	s := NewActivityService(repo)

	repo.now = time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	if _, err := s.Record(ctx, "p1", "s1", "u1", model.ActionAdd); err != nil {
		t.Fatal(err)
	}
	repo.now = repo.now.Add(time.Minute)
	if _, err := s.Record(ctx, "p1", "s2", "u1", model.ActionAdd); err != nil {
		t.Fatal(err)
	}

	out, err := s.List(ctx, "p1")
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("want 2 entries, got %d", len(out))
	}
	if out[0].Time.After(out[1].Time) {
		t.Fatalf("entries not ascending: %v then %v", out[0].Time, out[1].Time)
	}
}

func TestActivityService_TimestampTiesResolveByInsertionOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := &fakeActivityRepo{now: time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)}
	s := NewActivityService(repo)

	first, err := s.Record(ctx, "p1", "s1", "u1", model.ActionAdd)
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Record(ctx, "p1", "s2", "u1", model.ActionAdd)
	if err != nil {
		t.Fatal(err)
	}

	out, err := s.List(ctx, "p1")
	if err != nil {
		t.Fatal(err)
	}
	if out[0].ID != first || out[1].ID != second {
		t.Fatalf("tie not resolved by insertion order: %v", out)
	}
}

func TestActivityService_ListEmptyIsNotError(t *testing.T) {
	t.Parallel()
	s := NewActivityService(&fakeActivityRepo{})
	out, err := s.List(context.Background(), "p-empty")
	if err != nil {
		t.Fatalf("empty ledger must not error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("want empty, got %v", out)
	}
}

func TestActivityService_RemoveMatchingNotIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewActivityService(&fakeActivityRepo{})

	if _, err := s.Record(ctx, "p1", "s1", "u1", model.ActionAdd); err != nil {
		t.Fatal(err)
	}
	if err := s.RemoveMatching(ctx, "p1", "s1", "u1", model.ActionAdd); err != nil {
		t.Fatalf("first remove: %v", err)
	}
	err := s.RemoveMatching(ctx, "p1", "s1", "u1", model.ActionAdd)
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("second remove: want ErrNotFound, got %v", err)
	}
}

func TestActivityService_RemoveMatchingRemovesExactlyOne(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewActivityService(&fakeActivityRepo{})

	// Two identical entries; one removal must leave the other.
	if _, err := s.Record(ctx, "p1", "s1", "u1", model.ActionAdd); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Record(ctx, "p1", "s1", "u1", model.ActionAdd); err != nil {
		t.Fatal(err)
	}

	if err := s.RemoveMatching(ctx, "p1", "s1", "u1", model.ActionAdd); err != nil {
		t.Fatal(err)
	}
	out, err := s.List(ctx, "p1")
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Fatalf("want exactly one entry left, got %d", len(out))
	}
}

func TestActivityService_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewActivityService(&fakeActivityRepo{})

	if _, err := s.Record(ctx, "", "s1", "u1", model.ActionAdd); err == nil {
		t.Fatal("want validation error on empty playlistID")
	}
	if _, err := s.Record(ctx, "p1", "s1", "u1", model.Action("rename")); err == nil {
		t.Fatal("want validation error on unknown action")
	}
	if err := s.RemoveMatching(ctx, "p1", "s1", "u1", model.Action("rename")); err == nil {
		t.Fatal("want validation error on unknown action")
	}
}
