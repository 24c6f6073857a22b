package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/internship-management-api/internal/constants"
	apierrors "github.com/yukikurage/internship-management-api/internal/errors"
	"github.com/yukikurage/internship-management-api/internal/models"
)

// RequireAuth checks if the user is authenticated via session
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get(constants.ContextKeyUserID)
		email, _ := session.Get(constants.ContextKeyEmail).(string)

		if userID == nil || email == "" {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		// Store identity in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, userID)
		c.Set(constants.ContextKeyEmail, email)
		if role, ok := session.Get(constants.ContextKeyRole).(string); ok {
			c.Set(constants.ContextKeyRole, role)
		}
		c.Next()
	}
}

// RequireRole only lets through users holding one of the given roles.
// It must run after RequireAuth.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		apierrors.Forbidden(c, "Insufficient role")
		c.Abort()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}

// GetEmail retrieves the current user's email from context
func GetEmail(c *gin.Context) (string, bool) {
	email := c.GetString(constants.ContextKeyEmail)
	return email, email != ""
}

// GetRole retrieves the current user's role from context
func GetRole(c *gin.Context) (models.Role, bool) {
	return models.ParseRole(c.GetString(constants.ContextKeyRole))
}
