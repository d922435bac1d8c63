package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-board/internal/constants"
	pageerrors "github.com/yukikurage/project-board/internal/errors"
)

// RequireAuth checks if the user is authenticated via session
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		loginID, ok := session.Get(constants.ContextKeyUserID).(string)

		if !ok || loginID == "" {
			pageerrors.Unauthenticated(c)
			return
		}

		// Store login id in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, loginID)
		if name, ok := session.Get(constants.ContextKeyUserName).(string); ok {
			c.Set(constants.ContextKeyUserName, name)
		}
		c.Next()
	}
}

// GetUserID retrieves the current login id from context
func GetUserID(c *gin.Context) (string, bool) {
	loginID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return "", false
	}

	v, ok := loginID.(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// GetUserName retrieves the display name stored at login
func GetUserName(c *gin.Context) string {
	return c.GetString(constants.ContextKeyUserName)
}
