package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type albumPayload struct {
	Name string `json:"name" binding:"required"`
	Year int    `json:"year" binding:"required"`
}

func (s *Server) postAlbum(c *gin.Context) {
	var p albumPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		failJSON(c, http.StatusBadRequest, "invalid payload")
		return
	}
	id, err := s.albums.Create(c.Request.Context(), p.Name, p.Year)
	if err != nil {
		s.writeError(c, err)
		return
	}
	successJSON(c, http.StatusCreated, gin.H{"albumId": id})
}

func (s *Server) getAlbum(c *gin.Context) {
	a, err := s.albums.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	songs := make([]gin.H, 0, len(a.Songs))
	for _, song := range a.Songs {
		songs = append(songs, gin.H{"id": song.ID, "title": song.Title, "performer": song.Performer})
	}
	successJSON(c, http.StatusOK, gin.H{"album": gin.H{
		"id":    a.ID,
		"name":  a.Name,
		"year":  a.Year,
		"songs": songs,
	}})
}

func (s *Server) putAlbum(c *gin.Context) {
	var p albumPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		failJSON(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := s.albums.Update(c.Request.Context(), c.Param("id"), p.Name, p.Year); err != nil {
		s.writeError(c, err)
		return
	}
	successJSON(c, http.StatusOK, nil)
}

func (s *Server) deleteAlbum(c *gin.Context) {
	if err := s.albums.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	successJSON(c, http.StatusOK, nil)
}

// Likes bypass playlist authorization entirely; album ownership is
// irrelevant to liking.
func (s *Server) getAlbumLikes(c *gin.Context) {
	count, err := s.likes.Count(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	// X-Data-Source tells the client whether the count came from the cache.
	src := "store"
	if count.FromCache {
		src = "cache"
	}
	c.Header("X-Data-Source", src)
	successJSON(c, http.StatusOK, gin.H{"likes": count.Likes})
}

func (s *Server) postAlbumLike(c *gin.Context) {
	if err := s.likes.Add(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	successJSON(c, http.StatusCreated, nil)
}

func (s *Server) deleteAlbumLike(c *gin.Context) {
	if err := s.likes.Delete(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	successJSON(c, http.StatusOK, nil)
}
