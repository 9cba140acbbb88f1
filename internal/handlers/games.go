package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gamenight"
	"gamenight/internal/service"

	"github.com/gin-gonic/gin"
)

// layoutLocalDateTime is what <input type="datetime-local"> submits.
const layoutLocalDateTime = "2006-01-02T15:04"

type gameRequest struct {
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
	Location    string `form:"location" json:"location"`
	StartsAt    string `form:"starts_at" json:"starts_at"`
}

type postRequest struct {
	GameID int64  `form:"game_id" json:"game_id" binding:"required"`
	Body   string `form:"body" json:"body"`
}

type commentRequest struct {
	Body string `form:"body" json:"body"`
}

func (h *Handler) getGame(c *gin.Context) {
	gameID, ok := paramID(c, "id")
	if !ok {
		return
	}
	g, err := h.services.GetGame(c.Request.Context(), gameID)
	if err != nil {
		h.respondError(c, "games_get_failed", err, "game_id", gameID)
		return
	}
	c.JSON(http.StatusOK, g)
}

func (h *Handler) listGames(c *gin.Context) {
	games, err := h.services.ListGames(c.Request.Context())
	if err != nil {
		h.respondError(c, "games_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// @Summary      Create event
// @Tags         events
// @Accept       x-www-form-urlencoded
// @Param        name         formData  string  true   "Name"
// @Param        description  formData  string  false  "Description"
// @Param        location     formData  string  false  "Location"
// @Param        starts_at    formData  string  false  "RFC3339 or YYYY-MM-DDTHH:MM"
// @Success      303
// @Failure      400  {object}  map[string]string
// @Failure      401  {string}  string  "Please log in first"
// @Router       /api/games/new [post]
func (h *Handler) createGame(c *gin.Context) {
	var input gameRequest
	if ok := h.bindOrBadRequest(c, &input); !ok {
		return
	}
	startsAt, err := parseStartsAt(input.StartsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errStartsAtInvalid})
		return
	}

	ownerID := currentUserID(c)
	gameID, err := h.services.CreateGame(c.Request.Context(), ownerID, service.GameInput{
		Name:        input.Name,
		Description: input.Description,
		Location:    input.Location,
		StartsAt:    startsAt,
	})
	if err != nil {
		h.respondError(c, "games_create_failed", err, "owner_id", ownerID)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/create_game/%d", gameID))
}

// @Summary      List posts of an event
// @Tags         posts
// @Produce      json
// @Param        game_id  query     int  true  "Game id"
// @Success      200      {object}  gamenight.Thread
// @Failure      400      {object}  map[string]string
// @Failure      500      {object}  map[string]string
// @Router       /api/posts [get]
func (h *Handler) listPosts(c *gin.Context) {
	gameID, err := strconv.ParseInt(c.Query("game_id"), 10, 64)
	if err != nil || gameID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "game_id must be a positive integer"})
		return
	}
	posts, err := h.services.Thread(c.Request.Context(), gameID)
	if err != nil {
		h.respondError(c, "posts_list_failed", err, "game_id", gameID)
		return
	}
	c.JSON(http.StatusOK, gamenight.Thread{ID: gameID, Posts: posts})
}

func (h *Handler) createPost(c *gin.Context) {
	var input postRequest
	if ok := h.bindOrBadRequest(c, &input); !ok {
		return
	}
	p, err := h.services.CreatePost(c.Request.Context(), currentUserID(c), input.GameID, input.Body)
	if err != nil {
		h.respondError(c, "posts_create_failed", err, "game_id", input.GameID)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) addComment(c *gin.Context) {
	postID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input commentRequest
	if ok := h.bindOrBadRequest(c, &input); !ok {
		return
	}
	cm, err := h.services.AddComment(c.Request.Context(), currentUserID(c), postID, input.Body)
	if err != nil {
		h.respondError(c, "comments_create_failed", err, "post_id", postID)
		return
	}
	c.JSON(http.StatusCreated, cm)
}

const errStartsAtInvalid = "invalid 'starts_at'; use RFC3339 or YYYY-MM-DDTHH:MM"

// parseStartsAt accepts RFC3339 or a datetime-local value read as UTC. Empty
// yields the zero time, which the repository turns into now.
func parseStartsAt(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{time.RFC3339, layoutLocalDateTime} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q", s)
}
