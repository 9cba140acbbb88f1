package handlers

import (
	"net/http"

	"gamenight/internal/service"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `form:"email" json:"email" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// Field rules live in the service so form and JSON clients get the same messages.
type registerRequest struct {
	FirstName string `form:"first_name" json:"first_name"`
	LastName  string `form:"last_name" json:"last_name"`
	Email     string `form:"email" json:"email"`
	Password  string `form:"password" json:"password"`
}

// @Summary      Log in
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        email     formData  string  true  "Email"
// @Param        password  formData  string  true  "Password"
// @Success      303
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindOrBadRequest(c, &input); !ok {
		return
	}

	userID, err := h.services.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		h.respondError(c, "auth_login_failed", err, "email", input.Email)
		return
	}
	h.startSession(c, userID)
}

// @Summary      Register
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        first_name  formData  string  true   "First name"
// @Param        last_name   formData  string  false  "Last name"
// @Param        email       formData  string  true   "Email"
// @Param        password    formData  string  true   "Password, at least 6 characters"
// @Success      303
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/register [post]
func (h *Handler) register(c *gin.Context) {
	var input registerRequest
	if ok := h.bindOrBadRequest(c, &input); !ok {
		return
	}

	userID, err := h.services.Register(c.Request.Context(), service.RegisterInput{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
	})
	if err != nil {
		h.respondError(c, "auth_register_failed", err, "email", input.Email)
		return
	}
	h.startSession(c, userID)
}

func (h *Handler) startSession(c *gin.Context, userID int64) {
	token, err := h.services.IssueSession(userID)
	if err != nil {
		h.respondError(c, "auth_issue_session_failed", err, "user_id", userID)
		return
	}
	h.setSessionCookie(c, token)
	c.Redirect(http.StatusSeeOther, "/index")
}
