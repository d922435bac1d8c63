package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	pageerrors "github.com/yukikurage/project-board/internal/errors"
	"github.com/yukikurage/project-board/internal/middleware"
	"github.com/yukikurage/project-board/internal/services"
)

// render writes an HTML page. Every page gets its title and the signed-in
// user's display name.
func render(c *gin.Context, status int, page, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	data["UserName"] = middleware.GetUserName(c)
	c.HTML(status, page, data)
}

// respondServiceError maps service sentinel errors to terminal page errors
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPostNotFound):
		pageerrors.NotFound(c, pageerrors.MsgPostNotFound)
	case errors.Is(err, services.ErrTaskNotFound):
		pageerrors.NotFound(c, pageerrors.MsgTaskNotFound)
	case errors.Is(err, services.ErrProjectNotFound):
		pageerrors.NotFound(c, pageerrors.MsgProjectNotFound)
	case errors.Is(err, services.ErrNotProjectMember),
		errors.Is(err, services.ErrNotProjectManager):
		pageerrors.Forbidden(c, pageerrors.MsgAccessDenied)
	default:
		internalError(c, err)
	}
}

func internalError(c *gin.Context, err error) {
	log.Printf("[%s] %s %s: %v", middleware.GetRequestID(c), c.Request.Method, c.Request.URL.Path, err)
	pageerrors.InternalError(c)
}

// currentUser returns the signed-in login id. RequireAuth guarantees it on
// gated routes; the redirect covers handlers mounted without it.
func currentUser(c *gin.Context) (string, bool) {
	loginID, ok := middleware.GetUserID(c)
	if !ok {
		pageerrors.Unauthenticated(c)
		return "", false
	}
	return loginID, true
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}
