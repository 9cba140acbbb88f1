package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"gamenight/internal/service"

	"github.com/gin-gonic/gin"
)

// multipart headers and boundaries on top of the file itself
const multipartOverhead = 64 << 10

type profileRequest struct {
	FirstName string `form:"first_name" json:"first_name"`
	LastName  string `form:"last_name" json:"last_name"`
	Equipment string `form:"equipment" json:"equipment"`
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.services.ListUsers(c.Request.Context())
	if err != nil {
		h.respondError(c, "users_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) getUser(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}
	u, err := h.services.GetUser(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, "users_get_failed", err, "user_id", userID)
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary      Update profile
// @Description  Only the logged in user may edit their own profile.
// @Tags         users
// @Accept       x-www-form-urlencoded
// @Param        id          path      int     true   "User id"
// @Param        first_name  formData  string  true   "First name"
// @Param        last_name   formData  string  false  "Last name"
// @Param        equipment   formData  string  false  "Equipment"
// @Success      303
// @Failure      400  {object}  map[string]string
// @Failure      401  {string}  string  "Please log in first"
// @Failure      403  {object}  map[string]string
// @Router       /api/users/{id} [post]
func (h *Handler) updateUser(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input profileRequest
	if ok := h.bindOrBadRequest(c, &input); !ok {
		return
	}

	err := h.services.UpdateProfile(c.Request.Context(), currentUserID(c), userID, service.ProfileInput{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Equipment: input.Equipment,
	})
	if err != nil {
		h.respondError(c, "users_update_failed", err, "user_id", userID)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/user/%d/profile", userID))
}

// @Summary      Upload profile picture
// @Tags         users
// @Accept       multipart/form-data
// @Param        picture  formData  file  true  "jpg, png, gif or webp"
// @Success      303
// @Failure      400  {object}  map[string]string
// @Failure      401  {string}  string  "Please log in first"
// @Failure      413  {object}  map[string]string
// @Router       /api/picture [post]
func (h *Handler) uploadPicture(c *gin.Context) {
	userID := currentUserID(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.opts.UploadMaxBytes+multipartOverhead)

	fh, err := c.FormFile("picture")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "picture is too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "picture is required"})
		return
	}
	if fh.Size > h.opts.UploadMaxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "picture is too large"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		h.respondError(c, "users_picture_open_failed", err, "user_id", userID)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.services.SetPicture(c.Request.Context(), userID, fh.Filename, f)
	if err != nil {
		h.respondError(c, "users_picture_failed", err, "user_id", userID)
		return
	}
	if h.log != nil {
		h.log.Infow("users_picture_set", "user_id", userID, "url", url)
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/user/%d/profile", userID))
}
