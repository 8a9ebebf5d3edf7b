package repository

import (
	"context"

	"github.com/satriadw/openmusic/internal/model"
)

// ActivityRepository provides the append-only playlist activity ledger.
type ActivityRepository interface {
	// Add appends an entry with the insertion timestamp and returns its ID.
	Add(ctx context.Context, playlistID, songID, userID string, action model.Action) (string, error)
	// ListByPlaylist returns entries ascending by time, ties by insertion order.
	ListByPlaylist(ctx context.Context, playlistID string) ([]model.Activity, error)
	// ListFeed returns entries joined with usernames and song titles.
	ListFeed(ctx context.Context, playlistID string) ([]model.ActivityView, error)
	// DeleteMatching removes exactly one entry matching all four fields,
	// oldest first.
	DeleteMatching(ctx context.Context, playlistID, songID, userID string, action model.Action) error
}
