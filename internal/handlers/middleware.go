package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID      = "userId"
	msgLoginNeeded = "Please log in first"
)

// sessionMiddleware resolves the session cookie into a user id. A missing or
// invalid cookie leaves the request anonymous.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	token, err := c.Cookie(h.opts.CookieName)
	if err != nil || token == "" {
		c.Next()
		return
	}

	userID, err := h.services.ParseSession(token)
	if err != nil {
		if h.log != nil {
			h.log.Debugw("session_rejected", "err", err)
		}
		c.Next()
		return
	}

	c.Set(ctxUserID, userID)
	c.Next()
}

// requireSession stops anonymous requests before any data is touched.
func (h *Handler) requireSession(c *gin.Context) {
	if currentUserID(c) == 0 {
		c.String(http.StatusUnauthorized, msgLoginNeeded)
		c.Abort()
		return
	}
	c.Next()
}

// requestTimeout bounds the request context so hung queries give up.
func (h *Handler) requestTimeout(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.opts.RequestTimeout)
	defer cancel()

	c.Request = c.Request.WithContext(ctx)
	c.Next()
}

func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()

	if h.log == nil {
		return
	}
	h.log.Infow("http_request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
	)
}

func currentUserID(c *gin.Context) int64 {
	return c.GetInt64(ctxUserID)
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.opts.CookieName, token, int(h.opts.SessionTTL.Seconds()), "/", "", h.opts.CookieSecure, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.opts.CookieName, "", -1, "/", "", h.opts.CookieSecure, true)
}
