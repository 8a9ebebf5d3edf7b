// Package model defines domain entities used by services and repositories.
package model

import "time"

// Playlist is a named, user-owned collection of songs. Owner is immutable
// after creation.
type Playlist struct {
	ID    string
	Name  string
	Owner string // user ID of the creator
}

// PlaylistSummary is a playlist row as listed for a user, including the
// owner's username from the join.
type PlaylistSummary struct {
	ID       string
	Name     string
	Username string
}

// Song is a single track, optionally attached to an album.
type Song struct {
	ID        string
	Title     string
	Year      int
	Genre     string
	Performer string
	Duration  int // seconds; 0 when unknown
	AlbumID   string
}

// PlaylistWithSongs is a playlist plus its resolved song list.
type PlaylistWithSongs struct {
	ID       string
	Name     string
	Username string
	Songs    []Song
}

// Album groups songs and carries the like counter.
type Album struct {
	ID   string
	Name string
	Year int
}

// AlbumWithSongs is an album plus the songs attached to it.
type AlbumWithSongs struct {
	Album
	Songs []Song
}

// Collaboration is a grant of delegated playlist access to a user.
// Duplicate (PlaylistID, UserID) rows are possible; membership checks are
// existence-based.
type Collaboration struct {
	ID         string
	PlaylistID string
	UserID     string
}

// Action is the kind of playlist mutation recorded in the activity ledger.
type Action string

const (
	ActionAdd    Action = "add"
	ActionDelete Action = "delete"
)

// Valid reports whether a is one of the recorded action kinds.
func (a Action) Valid() bool { return a == ActionAdd || a == ActionDelete }

// Activity is a single append-only ledger entry for a playlist mutation.
// Entries for one playlist are ordered by Time, ties by insertion order.
type Activity struct {
	ID         string
	PlaylistID string
	SongID     string
	UserID     string
	Action     Action
	Time       time.Time
}

// ActivityView is a ledger entry joined with display fields for feeds.
type ActivityView struct {
	Username string
	Title    string
	Action   Action
	Time     time.Time
}

// LikeCount is a like counter read, flagging whether it was served from
// the cache or recomputed from the store.
type LikeCount struct {
	Likes     int
	FromCache bool
}
