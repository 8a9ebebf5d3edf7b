package repository

import "context"

// CollaborationRepository provides grant/revoke storage for delegated
// playlist access.
type CollaborationRepository interface {
	// Add inserts a grant row and returns its generated ID.
	Add(ctx context.Context, playlistID, userID string) (string, error)
	// Delete removes every grant matching (playlistID, userID).
	Delete(ctx context.Context, playlistID, userID string) error
	// Exists reports whether at least one grant matches (playlistID, userID).
	Exists(ctx context.Context, playlistID, userID string) (bool, error)
}
