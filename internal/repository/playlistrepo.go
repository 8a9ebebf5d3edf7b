// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/satriadw/openmusic/internal/model"
)

// PlaylistRepository provides access to playlists and their song rows.
type PlaylistRepository interface {
	// Create inserts a new playlist and returns its generated ID.
	Create(ctx context.Context, name, owner string) (string, error)
	// GetByID loads a playlist by ID.
	GetByID(ctx context.Context, id string) (*model.Playlist, error)
	// ListForUser returns playlists the user owns or collaborates on.
	ListForUser(ctx context.Context, userID string) ([]model.PlaylistSummary, error)
	// Delete removes a playlist by ID.
	Delete(ctx context.Context, id string) error
	// GetWithSongs loads a playlist with its resolved song list.
	GetWithSongs(ctx context.Context, id string) (*model.PlaylistWithSongs, error)
	// AddSong attaches a song to a playlist and returns the row ID.
	AddSong(ctx context.Context, playlistID, songID string) (string, error)
	// RemoveSong detaches a song from a playlist.
	RemoveSong(ctx context.Context, playlistID, songID string) error
}
