package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const statusOK = "ok"

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

func (h *Handler) root(c *gin.Context) {
	c.Redirect(http.StatusFound, "/index")
}

func (h *Handler) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"id": currentUserID(c)})
}

func (h *Handler) createEventPage(c *gin.Context) {
	c.HTML(http.StatusOK, "create_event.html", gin.H{"id": currentUserID(c)})
}

// @Summary      Event view
// @Description  Viewer's profile plus the event's posts, each with its comments.
// @Tags         events
// @Produce      json
// @Param        id   path      int  true  "Game id"
// @Success      200  {object}  gamenight.EventView
// @Failure      400  {object}  map[string]string
// @Failure      401  {string}  string  "Please log in first"
// @Failure      500  {object}  map[string]string
// @Router       /event/{id} [get]
func (h *Handler) eventView(c *gin.Context) {
	gameID, ok := paramID(c, "id")
	if !ok {
		return
	}
	view, err := h.services.EventView(c.Request.Context(), currentUserID(c), gameID)
	if err != nil {
		h.respondError(c, "event_view_failed", err, "game_id", gameID)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) createGameRedirect(c *gin.Context) {
	gameID, ok := paramID(c, "id")
	if !ok {
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/event/%d", gameID))
}

func (h *Handler) createGamePage(c *gin.Context) {
	gameID, ok := paramID(c, "id")
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "event.html", gin.H{"id": gameID, "viewer": currentUserID(c)})
}

func (h *Handler) profilePage(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}
	profile, err := h.services.Profile(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, "profile_page_failed", err, "user_id", userID)
		return
	}
	c.HTML(http.StatusOK, "profile.html", gin.H{"id": userID, "profile": profile})
}

// profileEditPage shows the profile of :id, while id in the view is the
// logged in user.
func (h *Handler) profileEditPage(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}
	profile, err := h.services.Profile(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, "profile_edit_page_failed", err, "user_id", userID)
		return
	}
	c.HTML(http.StatusOK, "profile_edit.html", gin.H{"id": currentUserID(c), "profile": profile})
}

func (h *Handler) logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/index")
}
