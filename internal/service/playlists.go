package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/satriadw/openmusic/internal/errs"
	"github.com/satriadw/openmusic/internal/model"
	"github.com/satriadw/openmusic/internal/repository"
)

// PlaylistService covers playlist CRUD and the song mutations that feed
// the activity ledger. Every mutation passes through the access resolver
// first; the ledger entry is appended only after the mutation succeeds.
type PlaylistService interface {
	// Create makes a new playlist owned by owner.
	Create(ctx context.Context, name, owner string) (string, error)
	// ListForUser returns playlists the user owns or collaborates on.
	ListForUser(ctx context.Context, userID string) ([]model.PlaylistSummary, error)
	// Get returns a playlist with songs; requires Read access.
	Get(ctx context.Context, playlistID, userID string) (*model.PlaylistWithSongs, error)
	// Delete removes a playlist; owner only.
	Delete(ctx context.Context, playlistID, userID string) error
	// AddSong attaches a song and records an "add" activity. Collaborators
	// may add songs.
	AddSong(ctx context.Context, playlistID, songID, userID string) error
	// RemoveSong detaches a song and records a "delete" activity.
	RemoveSong(ctx context.Context, playlistID, songID, userID string) error
	// Activities returns the playlist's activity feed; requires Read access.
	Activities(ctx context.Context, playlistID, userID string) ([]model.ActivityView, error)
}

type PlaylistServiceImpl struct {
	playlists repository.PlaylistRepository
	songs     repository.SongRepository
	access    AccessService
	activity  ActivityService
}

// NewPlaylistService constructs PlaylistService.
func NewPlaylistService(
	playlists repository.PlaylistRepository,
	songs repository.SongRepository,
	access AccessService,
	activity ActivityService,
) *PlaylistServiceImpl {
	return &PlaylistServiceImpl{playlists: playlists, songs: songs, access: access, activity: activity}
}

// Create inserts a playlist owned by owner.
func (s *PlaylistServiceImpl) Create(ctx context.Context, name, owner string) (string, error) {
	if name == "" || owner == "" {
		return "", errors.New("validation: empty name/owner")
	}
	return s.playlists.Create(ctx, name, owner)
}

// ListForUser lists owned and collaborated playlists.
func (s *PlaylistServiceImpl) ListForUser(ctx context.Context, userID string) ([]model.PlaylistSummary, error) {
	if userID == "" {
		return nil, errors.New("validation: empty userID")
	}
	return s.playlists.ListForUser(ctx, userID)
}

// Get loads a playlist with songs after a Read access check.
func (s *PlaylistServiceImpl) Get(ctx context.Context, playlistID, userID string) (*model.PlaylistWithSongs, error) {
	if err := s.resolve(ctx, playlistID, userID, ModeRead); err != nil {
		return nil, err
	}
	return s.playlists.GetWithSongs(ctx, playlistID)
}

// Delete removes a playlist; only the owner may delete.
func (s *PlaylistServiceImpl) Delete(ctx context.Context, playlistID, userID string) error {
	if err := s.resolve(ctx, playlistID, userID, ModeWrite); err != nil {
		return err
	}
	return s.playlists.Delete(ctx, playlistID)
}

// AddSong verifies access and song existence, attaches the song, then
// appends an "add" ledger entry.
func (s *PlaylistServiceImpl) AddSong(ctx context.Context, playlistID, songID, userID string) error {
	if songID == "" {
		return errors.New("validation: empty songID")
	}
	if err := s.resolve(ctx, playlistID, userID, ModeRead); err != nil {
		return err
	}
	ok, err := s.songs.Exists(ctx, songID)
	if err != nil {
		return fmt.Errorf("check song: %w", err)
	}
	if !ok {
		return fmt.Errorf("song %s: %w", songID, errs.ErrNotFound)
	}
	if _, err := s.playlists.AddSong(ctx, playlistID, songID); err != nil {
		return err
	}
	_, err = s.activity.Record(ctx, playlistID, songID, userID, model.ActionAdd)
	return err
}

// RemoveSong verifies access, detaches the song, then appends a "delete"
// ledger entry.
func (s *PlaylistServiceImpl) RemoveSong(ctx context.Context, playlistID, songID, userID string) error {
	if songID == "" {
		return errors.New("validation: empty songID")
	}
	if err := s.resolve(ctx, playlistID, userID, ModeRead); err != nil {
		return err
	}
	if err := s.playlists.RemoveSong(ctx, playlistID, songID); err != nil {
		return err
	}
	_, err := s.activity.Record(ctx, playlistID, songID, userID, model.ActionDelete)
	return err
}

// Activities returns the activity feed after a Read access check.
func (s *PlaylistServiceImpl) Activities(ctx context.Context, playlistID, userID string) ([]model.ActivityView, error) {
	if err := s.resolve(ctx, playlistID, userID, ModeRead); err != nil {
		return nil, err
	}
	return s.activity.Feed(ctx, playlistID)
}

func (s *PlaylistServiceImpl) resolve(ctx context.Context, playlistID, userID string, mode AccessMode) error {
	d, err := s.access.Resolve(ctx, playlistID, userID, mode)
	if err != nil {
		return err
	}
	return d.Err()
}
