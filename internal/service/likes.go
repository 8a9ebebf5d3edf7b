package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/satriadw/openmusic/internal/cache"
	"github.com/satriadw/openmusic/internal/model"
	"github.com/satriadw/openmusic/internal/repository"
)

// LikeService is a cache-aside counter over per-user album likes.
// Mutations invalidate the cached count before returning; the fresh value
// is recomputed lazily on the next read, not pushed into the cache.
type LikeService interface {
	// Count returns the like count for an album, flagging whether it was
	// served from the cache or recomputed from the store.
	Count(ctx context.Context, albumID string) (model.LikeCount, error)
	// Add records a like. ErrConflict when the user already liked the
	// album; ErrNotFound when the album does not exist.
	Add(ctx context.Context, userID, albumID string) error
	// Delete removes a like. ErrNotFound when no like exists.
	Delete(ctx context.Context, userID, albumID string) error
}

type LikeServiceImpl struct {
	repo  repository.LikeRepository
	cache cache.Cache
	ttl   time.Duration
	log   *zap.Logger
}

// NewLikeService constructs LikeService; ttl bounds how long a populated
// count may live without a read miss.
func NewLikeService(repo repository.LikeRepository, c cache.Cache, ttl time.Duration, log *zap.Logger) *LikeServiceImpl {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &LikeServiceImpl{repo: repo, cache: c, ttl: ttl, log: log}
}

func likesKey(albumID string) string { return "likes:" + albumID }

// Count serves the cached value on a hit. On a miss it recomputes the
// authoritative count from the store, populates the cache, and reports
// FromCache=false. A malformed cached value counts as a miss and is
// overwritten.
func (s *LikeServiceImpl) Count(ctx context.Context, albumID string) (model.LikeCount, error) {
	if albumID == "" {
		return model.LikeCount{}, errors.New("validation: empty albumID")
	}

	key := likesKey(albumID)
	raw, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		return model.LikeCount{}, err
	}
	if hit {
		if n, convErr := strconv.Atoi(raw); convErr == nil {
			return model.LikeCount{Likes: n, FromCache: true}, nil
		}
		s.log.Warn("malformed cached like count", zap.String("album_id", albumID), zap.String("raw", raw))
	}

	n, err := s.repo.CountByAlbum(ctx, albumID)
	if err != nil {
		return model.LikeCount{}, err
	}
	if err := s.cache.Set(ctx, key, strconv.Itoa(n), s.ttl); err != nil {
		return model.LikeCount{}, err
	}
	return model.LikeCount{Likes: n, FromCache: false}, nil
}

// Add inserts the like and invalidates the cached count before returning,
// so no caller can observe a count computed before its own mutation.
func (s *LikeServiceImpl) Add(ctx context.Context, userID, albumID string) error {
	if userID == "" || albumID == "" {
		return errors.New("validation: empty userID/albumID")
	}
	if _, err := s.repo.Add(ctx, userID, albumID); err != nil {
		return err
	}
	s.invalidate(ctx, albumID)
	return nil
}

// Delete removes the like and invalidates the cached count before
// returning.
func (s *LikeServiceImpl) Delete(ctx context.Context, userID, albumID string) error {
	if userID == "" || albumID == "" {
		return errors.New("validation: empty userID/albumID")
	}
	if err := s.repo.Delete(ctx, userID, albumID); err != nil {
		return err
	}
	s.invalidate(ctx, albumID)
	return nil
}

// invalidate drops the cached count. A failed invalidation does not fail
// the mutation that already committed; the stale value ages out by TTL.
func (s *LikeServiceImpl) invalidate(ctx context.Context, albumID string) {
	if err := s.cache.Delete(ctx, likesKey(albumID)); err != nil {
		s.log.Warn("like cache invalidation failed", zap.String("album_id", albumID), zap.Error(err))
	}
}
