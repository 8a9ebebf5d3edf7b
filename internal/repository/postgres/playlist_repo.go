package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/satriadw/openmusic/internal/errs"
	"github.com/satriadw/openmusic/internal/model"
)

// PlaylistRepo implements PlaylistRepository using PostgreSQL.
type PlaylistRepo struct{ db *DB }

// NewPlaylistRepo constructs a playlist repository.
func NewPlaylistRepo(db *DB) *PlaylistRepo { return &PlaylistRepo{db: db} }

// Create inserts a new playlist row and returns its ID.
func (r *PlaylistRepo) Create(ctx context.Context, name, owner string) (string, error) {
	const q = `INSERT INTO playlists (id, name, owner) VALUES ($1, $2, $3) RETURNING id`
	id := newID("playlist")
	var got string
	if err := r.db.Pool.QueryRow(ctx, q, id, name, owner).Scan(&got); err != nil {
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

// GetByID selects a playlist by ID.
func (r *PlaylistRepo) GetByID(ctx context.Context, id string) (*model.Playlist, error) {
	const q = `SELECT id, name, owner FROM playlists WHERE id=$1`
	var p model.Playlist
	if err := r.db.Pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.Owner); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ListForUser returns playlists owned by the user or shared with them.
func (r *PlaylistRepo) ListForUser(ctx context.Context, userID string) ([]model.PlaylistSummary, error) {
	const q = `
SELECT DISTINCT playlists.id, playlists.name, users.username
FROM playlists
INNER JOIN users ON playlists.owner = users.id
LEFT JOIN collaborations c ON playlists.id = c.playlist_id
WHERE playlists.owner = $1 OR c.user_id = $1`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.PlaylistSummary{}
	for rows.Next() {
		var s model.PlaylistSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Username); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Delete removes a playlist row by ID.
func (r *PlaylistRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM playlists WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// GetWithSongs loads a playlist with owner username and its songs.
func (r *PlaylistRepo) GetWithSongs(ctx context.Context, id string) (*model.PlaylistWithSongs, error) {
	const qp = `
SELECT playlists.id, playlists.name, users.username
FROM playlists
INNER JOIN users ON playlists.owner = users.id
WHERE playlists.id=$1`
	var p model.PlaylistWithSongs
	if err := r.db.Pool.QueryRow(ctx, qp, id).Scan(&p.ID, &p.Name, &p.Username); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	const qs = `
SELECT songs.id, songs.title, songs.performer
FROM playlist_songs
INNER JOIN songs ON playlist_songs.song_id = songs.id
WHERE playlist_songs.playlist_id=$1
ORDER BY songs.title ASC`
	rows, err := r.db.Pool.Query(ctx, qs, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	p.Songs = []model.Song{}
	for rows.Next() {
		var s model.Song
		if err := rows.Scan(&s.ID, &s.Title, &s.Performer); err != nil {
			return nil, err
		}
		p.Songs = append(p.Songs, s)
	}
	return &p, rows.Err()
}

// AddSong attaches a song to a playlist.
func (r *PlaylistRepo) AddSong(ctx context.Context, playlistID, songID string) (string, error) {
	const q = `INSERT INTO playlist_songs (id, playlist_id, song_id) VALUES ($1, $2, $3) RETURNING id`
	id := newID("playlistsong")
	var got string
	err := r.db.Pool.QueryRow(ctx, q, id, playlistID, songID).Scan(&got)
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

// RemoveSong detaches a song from a playlist.
func (r *PlaylistRepo) RemoveSong(ctx context.Context, playlistID, songID string) error {
	const q = `DELETE FROM playlist_songs WHERE playlist_id=$1 AND song_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, playlistID, songID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
