package postgres

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/satriadw/openmusic/internal/errs"
	"github.com/satriadw/openmusic/internal/model"
)

func TestActivityRepo_Add_OK(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewActivityRepo(db)

	mock.ExpectQuery(`INSERT INTO playlist_song_activities \(id, playlist_id, song_id, user_id, action, time\)`).
		WithArgs(pgxmock.AnyArg(), "playlist-abc", "song-1", "user-1", "add").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("activity-1"))

	id, err := r.Add(context.Background(), "playlist-abc", "song-1", "user-1", model.ActionAdd)
	require.NoError(t, err)
	require.Equal(t, "activity-1", id)
}

func TestActivityRepo_ListByPlaylist_Ordered(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewActivityRepo(db)

	t0 := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Minute)

	mock.ExpectQuery(`SELECT id, playlist_id, song_id, user_id, action, time FROM playlist_song_activities WHERE playlist_id=\$1 ORDER BY time ASC, seq ASC`).
		WithArgs("playlist-abc").
		WillReturnRows(pgxmock.NewRows([]string{"id", "playlist_id", "song_id", "user_id", "action", "time"}).
			AddRow("activity-1", "playlist-abc", "song-1", "user-1", "add", t0).
			AddRow("activity-2", "playlist-abc", "song-2", "user-2", "delete", t1))

	out, err := r.ListByPlaylist(context.Background(), "playlist-abc")
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, model.ActionAdd, out[0].Action)
	require.Equal(t, model.ActionDelete, out[1].Action)
	require.True(t, out[0].Time.Before(out[1].Time))
}

func TestActivityRepo_ListByPlaylist_Empty(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewActivityRepo(db)

	mock.ExpectQuery(`SELECT id, playlist_id, song_id, user_id, action, time FROM playlist_song_activities`).
		WithArgs("playlist-empty").
		WillReturnRows(pgxmock.NewRows([]string{"id", "playlist_id", "song_id", "user_id", "action", "time"}))

	out, err := r.ListByPlaylist(context.Background(), "playlist-empty")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestActivityRepo_ListFeed(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewActivityRepo(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT u.username, s.title, psa.action, psa.time FROM playlist_song_activities psa`).
		WithArgs("playlist-abc").
		WillReturnRows(pgxmock.NewRows([]string{"username", "title", "action", "time"}).
			AddRow("alice", "Song A", "add", now))

	out, err := r.ListFeed(context.Background(), "playlist-abc")
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "alice", out[0].Username)
}

func TestActivityRepo_DeleteMatching(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewActivityRepo(db)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM playlist_song_activities WHERE seq = \(`).
		WithArgs("playlist-abc", "song-1", "user-1", "add").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, r.DeleteMatching(ctx, "playlist-abc", "song-1", "user-1", model.ActionAdd))

	// Repeating the delete after success is an error, not a no-op.
	mock.ExpectExec(`DELETE FROM playlist_song_activities WHERE seq = \(`).
		WithArgs("playlist-abc", "song-1", "user-1", "add").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	require.ErrorIs(t, r.DeleteMatching(ctx, "playlist-abc", "song-1", "user-1", model.ActionAdd), errs.ErrNotFound)
}
