package repository

import "context"

// LikeRepository provides storage for per-user album likes.
type LikeRepository interface {
	// Add inserts a like row and returns its generated ID. The insert is
	// conflict-aware: a duplicate (userID, albumID) pair fails without a
	// prior existence check.
	Add(ctx context.Context, userID, albumID string) (string, error)
	// Delete removes the like row for (userID, albumID).
	Delete(ctx context.Context, userID, albumID string) error
	// CountByAlbum returns the authoritative like count for an album.
	CountByAlbum(ctx context.Context, albumID string) (int, error)
}
