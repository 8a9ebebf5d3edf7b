package repository

import (
	"context"

	"github.com/satriadw/openmusic/internal/model"
)

// AlbumRepository provides CRUD access to albums and their songs.
type AlbumRepository interface {
	// Create inserts a new album and returns its generated ID.
	Create(ctx context.Context, name string, year int) (string, error)
	// GetByID loads an album by ID.
	GetByID(ctx context.Context, id string) (*model.Album, error)
	// ListSongs returns songs attached to the album.
	ListSongs(ctx context.Context, albumID string) ([]model.Song, error)
	// Update replaces name and year for an existing album.
	Update(ctx context.Context, id, name string, year int) error
	// Delete removes an album by ID.
	Delete(ctx context.Context, id string) error
}

// SongRepository provides CRUD access to the song catalog.
type SongRepository interface {
	// Create inserts a new song and returns its generated ID.
	Create(ctx context.Context, s model.Song) (string, error)
	// List returns songs whose title and performer contain the given
	// substrings, case-insensitively. Empty filters match everything.
	List(ctx context.Context, title, performer string) ([]model.Song, error)
	// GetByID loads a song by ID.
	GetByID(ctx context.Context, id string) (*model.Song, error)
	// Update replaces all mutable fields of an existing song.
	Update(ctx context.Context, s model.Song) error
	// Delete removes a song by ID.
	Delete(ctx context.Context, id string) error
	// Exists reports whether a song with the given ID is present.
	Exists(ctx context.Context, id string) (bool, error)
}
