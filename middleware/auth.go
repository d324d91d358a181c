package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fragrance-store/models"
	"fragrance-store/services"
)

// AuthMiddleware resolves the session's backend bearer token and cached user.
// Absence of a token is a client-side precondition failure: the request is
// rejected here without any upstream round trip.
func AuthMiddleware(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, user, err := sessions.Current(c.Request.Context(), SessionID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Success: false,
				Message: "Failed to load session",
				Error:   err.Error(),
			})
			c.Abort()
			return
		}

		if token == "" || user == nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Please login to continue",
			})
			c.Abort()
			return
		}

		c.Set("auth_token", token)
		c.Set("current_user", user)
		c.Next()
	}
}

func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "User role not found",
			})
			c.Abort()
			return
		}

		if !user.IsAdmin() {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "Access denied. Admin role required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func AuthToken(c *gin.Context) string {
	return c.GetString("auth_token")
}

func CurrentUser(c *gin.Context) *models.User {
	if value, exists := c.Get("current_user"); exists {
		if user, ok := value.(*models.User); ok {
			return user
		}
	}
	return nil
}
