package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/satriadw/openmusic/internal/errs"
)

// successJSON writes the standard success envelope.
func successJSON(c *gin.Context, code int, data any) {
	body := gin.H{"status": "success"}
	if data != nil {
		body["data"] = data
	}
	c.JSON(code, body)
}

// failJSON writes the standard failure envelope.
func failJSON(c *gin.Context, code int, msg string) {
	status := "fail"
	if code >= http.StatusInternalServerError {
		status = "error"
	}
	c.JSON(code, gin.H{"status": status, "message": msg})
}

// writeError maps sentinel errors onto status codes: NotFound->404,
// Forbidden->403, Conflict->409, Invariant->500. Validation failures map
// to 400; anything else is an internal error.
func (s *Server) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		failJSON(c, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		failJSON(c, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrConflict):
		failJSON(c, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrInvariant):
		s.log.Error("invariant violation", zap.Error(err))
		failJSON(c, http.StatusInternalServerError, "data integrity failure")
	case strings.HasPrefix(err.Error(), "validation:"):
		failJSON(c, http.StatusBadRequest, err.Error())
	default:
		s.log.Error("request failed", zap.Error(err))
		failJSON(c, http.StatusInternalServerError, "internal server error")
	}
}
