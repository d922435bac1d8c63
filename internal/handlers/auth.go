package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-board/internal/constants"
	pageerrors "github.com/yukikurage/project-board/internal/errors"
	"github.com/yukikurage/project-board/internal/paths"
	"github.com/yukikurage/project-board/internal/services"
	"github.com/yukikurage/project-board/internal/web"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LoginForm shows the login page, or the home page to a signed-in user.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	session := sessions.Default(c)
	if loginID, ok := session.Get(constants.ContextKeyUserID).(string); ok && loginID != "" {
		redirect(c, paths.Home)
		return
	}

	render(c, http.StatusOK, web.PageLogin, "Log in", gin.H{})
}

// Login authenticates a user and initializes the session.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		LoginID  string `form:"login_id" binding:"required"`
		Password string `form:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		render(c, http.StatusBadRequest, web.PageLogin, "Log in", gin.H{
			"Error":   "Login ID and password are required.",
			"LoginID": req.LoginID,
		})
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		LoginID:  req.LoginID,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			pageerrors.SetErrorCode(c, pageerrors.ErrCodeInvalidCredentials)
			render(c, http.StatusUnauthorized, web.PageLogin, "Log in", gin.H{
				"Error":   "Invalid login ID or password.",
				"LoginID": req.LoginID,
			})
			return
		}
		internalError(c, err)
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, user.LoginID)
	session.Set(constants.ContextKeyUserName, user.UserName)
	if err := session.Save(); err != nil {
		internalError(c, err)
		return
	}

	redirect(c, paths.Home)
}

// Logout removes the authentication session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		internalError(c, err)
		return
	}

	redirect(c, paths.Login)
}
