package service

import (
	"context"
	"errors"

	"github.com/satriadw/openmusic/internal/model"
	"github.com/satriadw/openmusic/internal/repository"
)

// AlbumService covers album CRUD. Likes live in LikeService; album
// ownership is irrelevant to liking.
type AlbumService interface {
	Create(ctx context.Context, name string, year int) (string, error)
	Get(ctx context.Context, id string) (*model.AlbumWithSongs, error)
	Update(ctx context.Context, id, name string, year int) error
	Delete(ctx context.Context, id string) error
}

type AlbumServiceImpl struct {
	repo repository.AlbumRepository
}

// NewAlbumService constructs AlbumService.
func NewAlbumService(repo repository.AlbumRepository) *AlbumServiceImpl {
	return &AlbumServiceImpl{repo: repo}
}

// Create inserts a new album.
func (s *AlbumServiceImpl) Create(ctx context.Context, name string, year int) (string, error) {
	if name == "" {
		return "", errors.New("validation: empty name")
	}
	if year <= 0 {
		return "", errors.New("validation: non-positive year")
	}
	return s.repo.Create(ctx, name, year)
}

// Get loads an album together with its songs.
func (s *AlbumServiceImpl) Get(ctx context.Context, id string) (*model.AlbumWithSongs, error) {
	if id == "" {
		return nil, errors.New("validation: empty id")
	}
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	songs, err := s.repo.ListSongs(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.AlbumWithSongs{Album: *a, Songs: songs}, nil
}

// Update replaces name and year for an existing album.
func (s *AlbumServiceImpl) Update(ctx context.Context, id, name string, year int) error {
	if id == "" || name == "" {
		return errors.New("validation: empty id/name")
	}
	if year <= 0 {
		return errors.New("validation: non-positive year")
	}
	return s.repo.Update(ctx, id, name, year)
}

// Delete removes an album.
func (s *AlbumServiceImpl) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("validation: empty id")
	}
	return s.repo.Delete(ctx, id)
}
