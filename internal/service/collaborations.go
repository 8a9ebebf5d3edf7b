package service

import (
	"context"
	"errors"

	"github.com/satriadw/openmusic/internal/repository"
)

// CollaborationService manages delegated playlist access grants.
type CollaborationService interface {
	// Grant gives userID collaborator access to a playlist and returns the
	// new grant ID.
	Grant(ctx context.Context, playlistID, userID string) (string, error)
	// Revoke removes userID's collaborator access.
	Revoke(ctx context.Context, playlistID, userID string) error
	// IsCollaborator reports whether userID has a grant on the playlist.
	// Absence is a normal false, never an error.
	IsCollaborator(ctx context.Context, playlistID, userID string) (bool, error)
}

type CollaborationServiceImpl struct {
	repo repository.CollaborationRepository
}

// NewCollaborationService constructs CollaborationService.
func NewCollaborationService(repo repository.CollaborationRepository) *CollaborationServiceImpl {
	return &CollaborationServiceImpl{repo: repo}
}

// Grant inserts a grant row. ErrNotFound surfaces when the playlist does
// not exist; ErrInvariant when the insert returns no row.
func (s *CollaborationServiceImpl) Grant(ctx context.Context, playlistID, userID string) (string, error) {
	if playlistID == "" || userID == "" {
		return "", errors.New("validation: empty playlistID/userID")
	}
	return s.repo.Add(ctx, playlistID, userID)
}

// Revoke deletes all grants matching (playlistID, userID); ErrNotFound
// when none exist.
func (s *CollaborationServiceImpl) Revoke(ctx context.Context, playlistID, userID string) error {
	if playlistID == "" || userID == "" {
		return errors.New("validation: empty playlistID/userID")
	}
	return s.repo.Delete(ctx, playlistID, userID)
}

// IsCollaborator is a pure membership predicate.
func (s *CollaborationServiceImpl) IsCollaborator(ctx context.Context, playlistID, userID string) (bool, error) {
	if playlistID == "" || userID == "" {
		return false, errors.New("validation: empty playlistID/userID")
	}
	return s.repo.Exists(ctx, playlistID, userID)
}
