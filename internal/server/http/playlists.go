package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type playlistPayload struct {
	Name string `json:"name" binding:"required"`
}

type playlistSongPayload struct {
	SongID string `json:"songId" binding:"required"`
}

func (s *Server) postPlaylist(c *gin.Context) {
	var p playlistPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		failJSON(c, http.StatusBadRequest, "invalid payload")
		return
	}
	id, err := s.playlists.Create(c.Request.Context(), p.Name, userID(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	successJSON(c, http.StatusCreated, gin.H{"playlistId": id})
}

func (s *Server) getPlaylists(c *gin.Context) {
	out, err := s.playlists.ListForUser(c.Request.Context(), userID(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	playlists := make([]gin.H, 0, len(out))
	for _, p := range out {
		playlists = append(playlists, gin.H{"id": p.ID, "name": p.Name, "username": p.Username})
	}
	successJSON(c, http.StatusOK, gin.H{"playlists": playlists})
}

func (s *Server) deletePlaylist(c *gin.Context) {
	if err := s.playlists.Delete(c.Request.Context(), c.Param("id"), userID(c)); err != nil {
		s.writeError(c, err)
		return
	}
	successJSON(c, http.StatusOK, nil)
}

func (s *Server) getPlaylistSongs(c *gin.Context) {
	p, err := s.playlists.Get(c.Request.Context(), c.Param("id"), userID(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	songs := make([]gin.H, 0, len(p.Songs))
	for _, song := range p.Songs {
		songs = append(songs, gin.H{"id": song.ID, "title": song.Title, "performer": song.Performer})
	}
	successJSON(c, http.StatusOK, gin.H{"playlist": gin.H{
		"id":       p.ID,
		"name":     p.Name,
		"username": p.Username,
		"songs":    songs,
	}})
}

func (s *Server) postPlaylistSong(c *gin.Context) {
	var p playlistSongPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		failJSON(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := s.playlists.AddSong(c.Request.Context(), c.Param("id"), p.SongID, userID(c)); err != nil {
		s.writeError(c, err)
		return
	}
	successJSON(c, http.StatusCreated, nil)
}

func (s *Server) deletePlaylistSong(c *gin.Context) {
	var p playlistSongPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		failJSON(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := s.playlists.RemoveSong(c.Request.Context(), c.Param("id"), p.SongID, userID(c)); err != nil {
		s.writeError(c, err)
		return
	}
	successJSON(c, http.StatusOK, nil)
}

func (s *Server) getPlaylistActivities(c *gin.Context) {
	playlistID := c.Param("id")
	views, err := s.playlists.Activities(c.Request.Context(), playlistID, userID(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	activities := make([]gin.H, 0, len(views))
	for _, v := range views {
		activities = append(activities, gin.H{
			"username": v.Username,
			"title":    v.Title,
			"action":   v.Action,
			"time":     v.Time,
		})
	}
	successJSON(c, http.StatusOK, gin.H{"playlistId": playlistID, "activities": activities})
}
