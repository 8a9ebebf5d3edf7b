package service

import (
	"context"
	"errors"

	"github.com/satriadw/openmusic/internal/model"
	"github.com/satriadw/openmusic/internal/repository"
)

// SongService covers the song catalog: CRUD plus a combined
// title/performer substring search.
type SongService interface {
	// Create adds a song and returns its ID. The album, when given, must
	// exist; ErrNotFound otherwise.
	Create(ctx context.Context, s model.Song) (string, error)
	// List returns songs matching the title and performer filters; empty
	// filters match everything.
	List(ctx context.Context, title, performer string) ([]model.Song, error)
	// Get loads the full song record.
	Get(ctx context.Context, id string) (*model.Song, error)
	// Update replaces all mutable fields of an existing song.
	Update(ctx context.Context, s model.Song) error
	// Delete removes a song.
	Delete(ctx context.Context, id string) error
}

type SongServiceImpl struct {
	repo repository.SongRepository
}

// NewSongService constructs SongService.
func NewSongService(repo repository.SongRepository) *SongServiceImpl {
	return &SongServiceImpl{repo: repo}
}

func validateSong(s model.Song) error {
	if s.Title == "" || s.Genre == "" || s.Performer == "" {
		return errors.New("validation: empty title/genre/performer")
	}
	if s.Year == 0 {
		return errors.New("validation: missing year")
	}
	return nil
}

// Create validates and inserts a song.
func (s *SongServiceImpl) Create(ctx context.Context, song model.Song) (string, error) {
	if err := validateSong(song); err != nil {
		return "", err
	}
	return s.repo.Create(ctx, song)
}

// List returns the (possibly filtered) catalog.
func (s *SongServiceImpl) List(ctx context.Context, title, performer string) ([]model.Song, error) {
	return s.repo.List(ctx, title, performer)
}

// Get loads one song.
func (s *SongServiceImpl) Get(ctx context.Context, id string) (*model.Song, error) {
	if id == "" {
		return nil, errors.New("validation: empty id")
	}
	return s.repo.GetByID(ctx, id)
}

// Update validates and replaces an existing song.
func (s *SongServiceImpl) Update(ctx context.Context, song model.Song) error {
	if song.ID == "" {
		return errors.New("validation: empty id")
	}
	if err := validateSong(song); err != nil {
		return err
	}
	return s.repo.Update(ctx, song)
}

// Delete removes a song.
func (s *SongServiceImpl) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("validation: empty id")
	}
	return s.repo.Delete(ctx, id)
}
