// Package service contains business logic on top of repositories.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/satriadw/openmusic/internal/errs"
	"github.com/satriadw/openmusic/internal/repository"
)

// AccessMode is the kind of access being resolved.
type AccessMode int

const (
	// ModeRead covers viewing a playlist and collaborator-level mutations
	// (adding/removing songs).
	ModeRead AccessMode = iota
	// ModeWrite covers owner-only operations (deleting the playlist,
	// managing collaborators).
	ModeWrite
)

// Decision is the tagged outcome of an access resolution. Forbidden and
// NotFound are ordinary outcomes, not errors; callers need the
// distinction for status mapping (403 vs 404).
type Decision int

const (
	DecisionAllowed Decision = iota
	DecisionForbidden
	DecisionNotFound
)

// Err converts a decision into its sentinel error, nil for Allowed.
func (d Decision) Err() error {
	switch d {
	case DecisionForbidden:
		return errs.ErrForbidden
	case DecisionNotFound:
		return errs.ErrNotFound
	default:
		return nil
	}
}

// AccessService resolves whether a user may act on a playlist.
type AccessService interface {
	// Resolve decides access for (playlistID, userID, mode). Infrastructure
	// failures come back as a non-nil error; Forbidden/NotFound do not.
	Resolve(ctx context.Context, playlistID, userID string, mode AccessMode) (Decision, error)
}

type AccessServiceImpl struct {
	playlists repository.PlaylistRepository
	collabs   repository.CollaborationRepository
}

// NewAccessService constructs AccessService over playlist and
// collaboration storage.
func NewAccessService(playlists repository.PlaylistRepository, collabs repository.CollaborationRepository) *AccessServiceImpl {
	return &AccessServiceImpl{playlists: playlists, collabs: collabs}
}

// Resolve checks ownership first; ownership is authoritative. The
// collaborator path is consulted only as a fallback for ModeRead, never
// for ModeWrite. A playlist that does not exist always resolves NotFound,
// never Forbidden.
func (s *AccessServiceImpl) Resolve(ctx context.Context, playlistID, userID string, mode AccessMode) (Decision, error) {
	if playlistID == "" || userID == "" {
		return DecisionForbidden, errors.New("validation: empty playlistID/userID")
	}

	p, err := s.playlists.GetByID(ctx, playlistID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return DecisionNotFound, nil
		}
		return DecisionForbidden, fmt.Errorf("load playlist: %w", err)
	}

	if p.Owner == userID {
		return DecisionAllowed, nil
	}
	if mode == ModeWrite {
		return DecisionForbidden, nil
	}

	ok, err := s.collabs.Exists(ctx, playlistID, userID)
	if err != nil {
		return DecisionForbidden, fmt.Errorf("check collaborator: %w", err)
	}
	if ok {
		return DecisionAllowed, nil
	}
	return DecisionForbidden, nil
}
