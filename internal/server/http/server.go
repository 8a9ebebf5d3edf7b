// Package httpserver exposes the playlist API over HTTP.
package httpserver

import (
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"

	"github.com/satriadw/openmusic/internal/service"
)

// Server wires services into HTTP handlers.
type Server struct {
	playlists service.PlaylistService
	collabs   service.CollaborationService
	access    service.AccessService
	albums    service.AlbumService
	songs     service.SongService
	likes     service.LikeService
	signKey   []byte
	log       *zap.Logger
}

// New constructs a Server with injected services.
func New(
	playlists service.PlaylistService,
	collabs service.CollaborationService,
	access service.AccessService,
	albums service.AlbumService,
	songs service.SongService,
	likes service.LikeService,
	signKey []byte,
	log *zap.Logger,
) *Server {
	return &Server{
		playlists: playlists,
		collabs:   collabs,
		access:    access,
		albums:    albums,
		songs:     songs,
		likes:     likes,
		signKey:   signKey,
		log:       log,
	}
}

// Router builds the gin engine with middleware and routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(Recover(s.log), Logging(s.log))

	// The album and song catalog is public; likes require an
	// authenticated user.
	r.POST("/songs", s.postSong)
	r.GET("/songs", s.getSongs)
	r.GET("/songs/:id", s.getSong)
	r.PUT("/songs/:id", s.putSong)
	r.DELETE("/songs/:id", s.deleteSong)

	r.POST("/albums", s.postAlbum)
	r.GET("/albums/:id", s.getAlbum)
	r.PUT("/albums/:id", s.putAlbum)
	r.DELETE("/albums/:id", s.deleteAlbum)
	r.GET("/albums/:id/likes", s.getAlbumLikes)

	auth := r.Group("/", Auth(s.signKey))
	auth.POST("/albums/:id/likes", s.postAlbumLike)
	auth.DELETE("/albums/:id/likes", s.deleteAlbumLike)

	auth.POST("/playlists", s.postPlaylist)
	auth.GET("/playlists", s.getPlaylists)
	auth.DELETE("/playlists/:id", s.deletePlaylist)
	auth.GET("/playlists/:id/songs", s.getPlaylistSongs)
	auth.POST("/playlists/:id/songs", s.postPlaylistSong)
	auth.DELETE("/playlists/:id/songs", s.deletePlaylistSong)
	auth.GET("/playlists/:id/activities", s.getPlaylistActivities)

	auth.POST("/collaborations", s.postCollaboration)
	auth.DELETE("/collaborations", s.deleteCollaboration)

	return r
}
