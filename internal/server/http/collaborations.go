package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/satriadw/openmusic/internal/service"
)

type collaborationPayload struct {
	PlaylistID string `json:"playlistId" binding:"required"`
	UserID     string `json:"userId" binding:"required"`
}

// Managing collaborators is an owner-only operation, so both handlers
// resolve Write access before touching the registry.
func (s *Server) postCollaboration(c *gin.Context) {
	var p collaborationPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		failJSON(c, http.StatusBadRequest, "invalid payload")
		return
	}
	ctx := c.Request.Context()

	d, err := s.access.Resolve(ctx, p.PlaylistID, userID(c), service.ModeWrite)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if err := d.Err(); err != nil {
		s.writeError(c, err)
		return
	}

	id, err := s.collabs.Grant(ctx, p.PlaylistID, p.UserID)
	if err != nil {
		s.writeError(c, err)
		return
	}
	successJSON(c, http.StatusCreated, gin.H{"collaborationId": id})
}

func (s *Server) deleteCollaboration(c *gin.Context) {
	var p collaborationPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		failJSON(c, http.StatusBadRequest, "invalid payload")
		return
	}
	ctx := c.Request.Context()

	d, err := s.access.Resolve(ctx, p.PlaylistID, userID(c), service.ModeWrite)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if err := d.Err(); err != nil {
		s.writeError(c, err)
		return
	}

	if err := s.collabs.Revoke(ctx, p.PlaylistID, p.UserID); err != nil {
		s.writeError(c, err)
		return
	}
	successJSON(c, http.StatusOK, nil)
}
