package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/satriadw/openmusic/internal/model"
	"github.com/satriadw/openmusic/internal/repository"
)

// ActivityService records and queries the append-only playlist activity
// ledger.
type ActivityService interface {
	// Record appends a ledger entry and returns its ID.
	Record(ctx context.Context, playlistID, songID, userID string, action model.Action) (string, error)
	// List returns a playlist's entries ascending by time; an empty slice
	// when none exist.
	List(ctx context.Context, playlistID string) ([]model.Activity, error)
	// Feed returns entries joined with usernames and song titles.
	Feed(ctx context.Context, playlistID string) ([]model.ActivityView, error)
	// RemoveMatching reverses a prior Record by deleting exactly one entry
	// matching all four fields. ErrNotFound when nothing matches; the
	// delete is not idempotent.
	RemoveMatching(ctx context.Context, playlistID, songID, userID string, action model.Action) error
}

type ActivityServiceImpl struct {
	repo repository.ActivityRepository
}

// NewActivityService constructs ActivityService.
func NewActivityService(repo repository.ActivityRepository) *ActivityServiceImpl {
	return &ActivityServiceImpl{repo: repo}
}

// Record validates input and appends; the timestamp is assigned at
// insertion time by the store.
func (s *ActivityServiceImpl) Record(ctx context.Context, playlistID, songID, userID string, action model.Action) (string, error) {
	if playlistID == "" || songID == "" || userID == "" {
		return "", errors.New("validation: empty playlistID/songID/userID")
	}
	if !action.Valid() {
		return "", fmt.Errorf("validation: unknown action %q", action)
	}
	return s.repo.Add(ctx, playlistID, songID, userID, action)
}

// List returns the ordered ledger for a playlist.
func (s *ActivityServiceImpl) List(ctx context.Context, playlistID string) ([]model.Activity, error) {
	if playlistID == "" {
		return nil, errors.New("validation: empty playlistID")
	}
	return s.repo.ListByPlaylist(ctx, playlistID)
}

// Feed returns the display form of the ledger for activity feeds.
func (s *ActivityServiceImpl) Feed(ctx context.Context, playlistID string) ([]model.ActivityView, error) {
	if playlistID == "" {
		return nil, errors.New("validation: empty playlistID")
	}
	return s.repo.ListFeed(ctx, playlistID)
}

// RemoveMatching deletes the single oldest entry matching all fields.
func (s *ActivityServiceImpl) RemoveMatching(ctx context.Context, playlistID, songID, userID string, action model.Action) error {
	if playlistID == "" || songID == "" || userID == "" {
		return errors.New("validation: empty playlistID/songID/userID")
	}
	if !action.Valid() {
		return fmt.Errorf("validation: unknown action %q", action)
	}
	return s.repo.DeleteMatching(ctx, playlistID, songID, userID, action)
}
