package handlers

import (
	"net/http"
	"strconv"

	"gamenight/internal/apperror"

	"github.com/gin-gonic/gin"
)

const (
	errInternal   = "internal server error"
	errInvalidID  = "invalid id"
	errBadBodyPre = "invalid body: "
)

// respondError writes err as JSON. Classified errors expose their message;
// anything else is logged and hidden behind a generic 500.
func (h *Handler) respondError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	if ae, ok := apperror.As(err); ok && ae.Kind != apperror.Internal {
		if h.log != nil {
			h.log.Infow(logKey, append([]interface{}{"err", err}, kv...)...)
		}
		c.JSON(ae.StatusCode(), gin.H{"error": ae.Message})
		return
	}
	h.logAndJSONError(c, http.StatusInternalServerError, errInternal, logKey, err, kv...)
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// paramID reads a positive integer route param. On failure it writes a 400
// and returns false.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidID})
		return 0, false
	}
	return id, true
}

// bindOrBadRequest binds form or JSON input into dst based on Content-Type
// and writes a 400 on failure.
func (h *Handler) bindOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBind(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": errBadBodyPre + err.Error()})
		return false
	}
	return true
}
