package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/satriadw/openmusic/internal/errs"
	"github.com/satriadw/openmusic/internal/model"
)

// ActivityRepo implements ActivityRepository using PostgreSQL.
//
// The ledger is append-only: rows are never updated, and the only delete
// is the exact reverse of a prior insert. The seq column fixes insertion
// order for entries sharing a timestamp.
type ActivityRepo struct{ db *DB }

// NewActivityRepo constructs an activity repository.
func NewActivityRepo(db *DB) *ActivityRepo { return &ActivityRepo{db: db} }

// Add appends a ledger entry; the timestamp is assigned by the database
// at insertion time.
func (r *ActivityRepo) Add(ctx context.Context, playlistID, songID, userID string, action model.Action) (string, error) {
	const q = `
INSERT INTO playlist_song_activities (id, playlist_id, song_id, user_id, action, time)
VALUES ($1, $2, $3, $4, $5, now()) RETURNING id`
	id := newID("activity")
	var got string
	err := r.db.Pool.QueryRow(ctx, q, id, playlistID, songID, userID, string(action)).Scan(&got)
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

// ListByPlaylist returns entries ascending by time; ties resolve by seq,
// i.e. insertion order.
func (r *ActivityRepo) ListByPlaylist(ctx context.Context, playlistID string) ([]model.Activity, error) {
	const q = `
SELECT id, playlist_id, song_id, user_id, action, time
FROM playlist_song_activities
WHERE playlist_id=$1
ORDER BY time ASC, seq ASC`
	rows, err := r.db.Pool.Query(ctx, q, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Activity{}
	for rows.Next() {
		var (
			a      model.Activity
			action string
		)
		if err := rows.Scan(&a.ID, &a.PlaylistID, &a.SongID, &a.UserID, &action, &a.Time); err != nil {
			return nil, err
		}
		a.Action = model.Action(action)
		out = append(out, a)
	}
	return out, rows.Err()
}

// ListFeed returns entries joined with usernames and song titles, in the
// same order as ListByPlaylist.
func (r *ActivityRepo) ListFeed(ctx context.Context, playlistID string) ([]model.ActivityView, error) {
	const q = `
SELECT u.username, s.title, psa.action, psa.time
FROM playlist_song_activities psa
INNER JOIN users u ON psa.user_id = u.id
INNER JOIN songs s ON psa.song_id = s.id
WHERE psa.playlist_id=$1
ORDER BY psa.time ASC, psa.seq ASC`
	rows, err := r.db.Pool.Query(ctx, q, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.ActivityView{}
	for rows.Next() {
		var (
			v      model.ActivityView
			action string
		)
		if err := rows.Scan(&v.Username, &v.Title, &action, &v.Time); err != nil {
			return nil, err
		}
		v.Action = model.Action(action)
		out = append(out, v)
	}
	return out, rows.Err()
}

// DeleteMatching removes exactly one entry matching all four fields, the
// oldest by insertion order. Not idempotent: no match is ErrNotFound.
func (r *ActivityRepo) DeleteMatching(ctx context.Context, playlistID, songID, userID string, action model.Action) error {
	const q = `
DELETE FROM playlist_song_activities
WHERE seq = (
    SELECT seq FROM playlist_song_activities
    WHERE playlist_id=$1 AND song_id=$2 AND user_id=$3 AND action=$4
    ORDER BY seq ASC LIMIT 1
)`
	tag, err := r.db.Pool.Exec(ctx, q, playlistID, songID, userID, string(action))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
