package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/satriadw/openmusic/internal/errs"
)

// CollaborationRepo implements CollaborationRepository using PostgreSQL.
type CollaborationRepo struct{ db *DB }

// NewCollaborationRepo constructs a collaboration repository.
func NewCollaborationRepo(db *DB) *CollaborationRepo { return &CollaborationRepo{db: db} }

// Add inserts a grant row. A missing playlist surfaces as ErrNotFound via
// the foreign key; an insert returning no row is an invariant failure.
func (r *CollaborationRepo) Add(ctx context.Context, playlistID, userID string) (string, error) {
	const q = `INSERT INTO collaborations (id, playlist_id, user_id) VALUES ($1, $2, $3) RETURNING id`
	id := newID("collab")
	var got string
	err := r.db.Pool.QueryRow(ctx, q, id, playlistID, userID).Scan(&got)
	if err != nil {
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

// Delete removes every grant matching (playlistID, userID). Duplicate
// grants are possible, so all matching rows go at once.
func (r *CollaborationRepo) Delete(ctx context.Context, playlistID, userID string) error {
	const q = `DELETE FROM collaborations WHERE playlist_id=$1 AND user_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, playlistID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Exists reports whether at least one grant matches. Absence is an
// ordinary false, never an error.
func (r *CollaborationRepo) Exists(ctx context.Context, playlistID, userID string) (bool, error) {
	const q = `SELECT 1 FROM collaborations WHERE playlist_id=$1 AND user_id=$2 LIMIT 1`
	var one int
	err := r.db.Pool.QueryRow(ctx, q, playlistID, userID).Scan(&one)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, pgx.ErrNoRows):
		return false, nil
	default:
		return false, err
	}
}
