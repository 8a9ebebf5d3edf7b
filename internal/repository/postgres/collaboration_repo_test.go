package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/satriadw/openmusic/internal/errs"
)

func TestCollaborationRepo_Add_OK(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewCollaborationRepo(db)

	mock.ExpectQuery(`INSERT INTO collaborations \(id, playlist_id, user_id\) VALUES \(\$1, \$2, \$3\) RETURNING id`).
		WithArgs(pgxmock.AnyArg(), "playlist-abc", "user-2").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("collab-xyz"))

	id, err := r.Add(context.Background(), "playlist-abc", "user-2")
	require.NoError(t, err)
	require.Equal(t, "collab-xyz", id)
}

func TestCollaborationRepo_Add_MissingPlaylist(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewCollaborationRepo(db)

	mock.ExpectQuery(`INSERT INTO collaborations \(id, playlist_id, user_id\) VALUES \(\$1, \$2, \$3\) RETURNING id`).
		WithArgs(pgxmock.AnyArg(), "missing", "user-2").
		WillReturnError(pgErr("23503"))

	_, err := r.Add(context.Background(), "missing", "user-2")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestCollaborationRepo_Add_NoRowReturned(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewCollaborationRepo(db)

	mock.ExpectQuery(`INSERT INTO collaborations \(id, playlist_id, user_id\) VALUES \(\$1, \$2, \$3\) RETURNING id`).
		WithArgs(pgxmock.AnyArg(), "playlist-abc", "user-2").
		WillReturnError(pgx.ErrNoRows)

	_, err := r.Add(context.Background(), "playlist-abc", "user-2")
	require.ErrorIs(t, err, errs.ErrInvariant)
}

func TestCollaborationRepo_Delete(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewCollaborationRepo(db)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM collaborations WHERE playlist_id=\$1 AND user_id=\$2`).
		WithArgs("playlist-abc", "user-2").
		WillReturnResult(pgxmock.NewResult("DELETE", 2)) // duplicate grants go together
	require.NoError(t, r.Delete(ctx, "playlist-abc", "user-2"))

	mock.ExpectExec(`DELETE FROM collaborations WHERE playlist_id=\$1 AND user_id=\$2`).
		WithArgs("playlist-abc", "user-2").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	require.ErrorIs(t, r.Delete(ctx, "playlist-abc", "user-2"), errs.ErrNotFound)
}

func TestCollaborationRepo_Exists(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewCollaborationRepo(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT 1 FROM collaborations WHERE playlist_id=\$1 AND user_id=\$2 LIMIT 1`).
		WithArgs("playlist-abc", "user-2").
		WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))
	ok, err := r.Exists(ctx, "playlist-abc", "user-2")
	require.NoError(t, err)
	require.True(t, ok)

	// Absence is an ordinary false, not an error.
	mock.ExpectQuery(`SELECT 1 FROM collaborations WHERE playlist_id=\$1 AND user_id=\$2 LIMIT 1`).
		WithArgs("playlist-abc", "user-3").
		WillReturnError(pgx.ErrNoRows)
	ok, err = r.Exists(ctx, "playlist-abc", "user-3")
	require.NoError(t, err)
	require.False(t, ok)
}
