package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dgf281219-blip/metodo/models"
	"github.com/dgf281219-blip/metodo/services"
)

// SessionCookie is the cookie the session token travels in when no bearer
// header is present.
const SessionCookie = "session_token"

// TokenFromRequest pulls the session token out of the request; the bearer
// header wins over the cookie.
func TokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	if token, err := c.Cookie(SessionCookie); err == nil {
		return token
	}
	return ""
}

// AuthMiddleware resolves the session token to a user and aborts with a
// generic 401 otherwise. Expired and unknown tokens are indistinguishable
// to the caller.
func AuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := auth.UserForToken(TokenFromRequest(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// CurrentUser returns the user set by AuthMiddleware.
func CurrentUser(c *gin.Context) *models.User {
	return c.MustGet("user").(*models.User)
}
