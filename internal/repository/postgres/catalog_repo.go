package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/satriadw/openmusic/internal/errs"
	"github.com/satriadw/openmusic/internal/model"
)

// AlbumRepo implements AlbumRepository using PostgreSQL.
type AlbumRepo struct{ db *DB }

// NewAlbumRepo constructs an album repository.
func NewAlbumRepo(db *DB) *AlbumRepo { return &AlbumRepo{db: db} }

// Create inserts a new album row and returns its ID.
func (r *AlbumRepo) Create(ctx context.Context, name string, year int) (string, error) {
	const q = `INSERT INTO albums (id, name, year) VALUES ($1, $2, $3) RETURNING id`
	id := newID("album")
	var got string
	if err := r.db.Pool.QueryRow(ctx, q, id, name, year).Scan(&got); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", errs.ErrInvariant
		}
		return "", err
	}
	return got, nil
}

// GetByID selects an album by ID.
func (r *AlbumRepo) GetByID(ctx context.Context, id string) (*model.Album, error) {
	const q = `SELECT id, name, year FROM albums WHERE id=$1`
	var a model.Album
	if err := r.db.Pool.QueryRow(ctx, q, id).Scan(&a.ID, &a.Name, &a.Year); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ListSongs returns songs attached to the album.
func (r *AlbumRepo) ListSongs(ctx context.Context, albumID string) ([]model.Song, error) {
	const q = `SELECT id, title, performer FROM songs WHERE album_id=$1`
	rows, err := r.db.Pool.Query(ctx, q, albumID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Song{}
	for rows.Next() {
		var s model.Song
		if err := rows.Scan(&s.ID, &s.Title, &s.Performer); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Update replaces name and year for an existing album.
func (r *AlbumRepo) Update(ctx context.Context, id, name string, year int) error {
	const q = `UPDATE albums SET name=$2, year=$3 WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id, name, year)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Delete removes an album row by ID.
func (r *AlbumRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM albums WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// SongRepo implements SongRepository using PostgreSQL.
type SongRepo struct{ db *DB }

// NewSongRepo constructs a song repository.
func NewSongRepo(db *DB) *SongRepo { return &SongRepo{db: db} }

// Create inserts a new song row and returns its ID. Duration 0 and an
// empty AlbumID are stored as NULL.
func (r *SongRepo) Create(ctx context.Context, s model.Song) (string, error) {
	const q = `INSERT INTO songs (id, title, year, genre, performer, duration, album_id)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, 0), NULLIF($7, '')) RETURNING id`
	id := newID("song")
	var got string
	err := r.db.Pool.QueryRow(ctx, q, id, s.Title, s.Year, s.Genre, s.Performer, s.Duration, s.AlbumID).Scan(&got)
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

// List returns songs filtered by title and performer substrings; empty
// filters match every row.
func (r *SongRepo) List(ctx context.Context, title, performer string) ([]model.Song, error) {
	const q = `SELECT id, title, performer FROM songs
WHERE title ILIKE '%' || $1 || '%' AND performer ILIKE '%' || $2 || '%'`
	rows, err := r.db.Pool.Query(ctx, q, title, performer)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Song{}
	for rows.Next() {
		var s model.Song
		if err := rows.Scan(&s.ID, &s.Title, &s.Performer); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetByID selects a full song row by ID.
func (r *SongRepo) GetByID(ctx context.Context, id string) (*model.Song, error) {
	const q = `SELECT id, title, year, genre, performer, COALESCE(duration, 0), COALESCE(album_id, '')
FROM songs WHERE id=$1`
	var s model.Song
	err := r.db.Pool.QueryRow(ctx, q, id).
		Scan(&s.ID, &s.Title, &s.Year, &s.Genre, &s.Performer, &s.Duration, &s.AlbumID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Update replaces all mutable fields of an existing song.
func (r *SongRepo) Update(ctx context.Context, s model.Song) error {
	const q = `UPDATE songs SET title=$2, year=$3, genre=$4, performer=$5,
duration=NULLIF($6, 0), album_id=NULLIF($7, '') WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, s.ID, s.Title, s.Year, s.Genre, s.Performer, s.Duration, s.AlbumID)
	if err != nil {
		if isFKViolation(err) {
			return errs.ErrNotFound
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Delete removes a song row by ID.
func (r *SongRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM songs WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Exists reports whether a song with the given ID is present.
func (r *SongRepo) Exists(ctx context.Context, id string) (bool, error) {
	const q = `SELECT 1 FROM songs WHERE id=$1`
	var one int
	err := r.db.Pool.QueryRow(ctx, q, id).Scan(&one)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, pgx.ErrNoRows):
		return false, nil
	default:
		return false, err
	}
}
