package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/satriadw/openmusic/internal/errs"
)

// LikeRepo implements LikeRepository using PostgreSQL.
type LikeRepo struct{ db *DB }

// NewLikeRepo constructs a like repository.
func NewLikeRepo(db *DB) *LikeRepo { return &LikeRepo{db: db} }

// Add inserts a like row. The unique index on (user_id, album_id) makes
// the insert conflict-aware; there is no read-then-insert window.
func (r *LikeRepo) Add(ctx context.Context, userID, albumID string) (string, error) {
	const q = `INSERT INTO user_album_likes (id, user_id, album_id) VALUES ($1, $2, $3) RETURNING id`
	id := newID("like")
	var got string
	err := r.db.Pool.QueryRow(ctx, q, id, userID, albumID).Scan(&got)
	if err != nil {
		if isUniqueViolation(err) {
			return "", errs.ErrConflict
		}
		if isFKViolation(err) {
			return "", errs.ErrNotFound
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return "", errs.ErrInvariant
		}
		return "", err
	}
	return got, nil
}

// Delete removes the like row for (userID, albumID).
func (r *LikeRepo) Delete(ctx context.Context, userID, albumID string) error {
	const q = `DELETE FROM user_album_likes WHERE user_id=$1 AND album_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, userID, albumID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// CountByAlbum returns the authoritative like count for an album.
func (r *LikeRepo) CountByAlbum(ctx context.Context, albumID string) (int, error) {
	const q = `SELECT COUNT(*) FROM user_album_likes WHERE album_id=$1`
	var n int
	if err := r.db.Pool.QueryRow(ctx, q, albumID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
