package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/satriadw/openmusic/internal/model"
)

type songPayload struct {
	Title     string `json:"title" binding:"required"`
	Year      int    `json:"year" binding:"required"`
	Genre     string `json:"genre" binding:"required"`
	Performer string `json:"performer" binding:"required"`
	Duration  int    `json:"duration"`
	AlbumID   string `json:"albumId"`
}

func (p songPayload) toModel(id string) model.Song {
	return model.Song{
		ID:        id,
		Title:     p.Title,
		Year:      p.Year,
		Genre:     p.Genre,
		Performer: p.Performer,
		Duration:  p.Duration,
		AlbumID:   p.AlbumID,
	}
}

func (s *Server) postSong(c *gin.Context) {
	var p songPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		failJSON(c, http.StatusBadRequest, "invalid payload")
		return
	}
	id, err := s.songs.Create(c.Request.Context(), p.toModel(""))
	if err != nil {
		s.writeError(c, err)
		return
	}
	successJSON(c, http.StatusCreated, gin.H{"songId": id})
}

// getSongs lists the catalog; ?title= and ?performer= narrow the result
// by case-insensitive substring match.
func (s *Server) getSongs(c *gin.Context) {
	out, err := s.songs.List(c.Request.Context(), c.Query("title"), c.Query("performer"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	songs := make([]gin.H, 0, len(out))
	for _, song := range out {
		songs = append(songs, gin.H{"id": song.ID, "title": song.Title, "performer": song.Performer})
	}
	successJSON(c, http.StatusOK, gin.H{"songs": songs})
}

func (s *Server) getSong(c *gin.Context) {
	song, err := s.songs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	successJSON(c, http.StatusOK, gin.H{"song": gin.H{
		"id":        song.ID,
		"title":     song.Title,
		"year":      song.Year,
		"genre":     song.Genre,
		"performer": song.Performer,
		"duration":  song.Duration,
		"albumId":   song.AlbumID,
	}})
}

func (s *Server) putSong(c *gin.Context) {
	var p songPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		failJSON(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := s.songs.Update(c.Request.Context(), p.toModel(c.Param("id"))); err != nil {
		s.writeError(c, err)
		return
	}
	successJSON(c, http.StatusOK, nil)
}

func (s *Server) deleteSong(c *gin.Context) {
	if err := s.songs.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	successJSON(c, http.StatusOK, nil)
}
