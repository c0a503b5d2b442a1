package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dgf281219-blip/metodo/middlewares"
	"github.com/dgf281219-blip/metodo/services"
)

// cookieMaxAge matches the 7-day session expiry.
const cookieMaxAge = 7 * 24 * 60 * 60

type AuthController struct {
	auth         *services.AuthService
	cookieSecure bool
}

func NewAuthController(auth *services.AuthService, cookieSecure bool) *AuthController {
	return &AuthController{auth: auth, cookieSecure: cookieSecure}
}

type ProcessSessionInput struct {
	SessionID string `json:"session_id" binding:"required"`
}

// ProcessSession exchanges a one-time session id for a session token and
// sets it as an HTTP-only cookie.
func (ctl *AuthController) ProcessSession(c *gin.Context) {
	var input ProcessSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}

	user, token, err := ctl.auth.ProcessSession(input.SessionID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidSession) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session_id"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.SessionCookie, token, cookieMaxAge, "/", "", ctl.cookieSecure, true)

	c.JSON(http.StatusOK, gin.H{
		"user":          user,
		"session_token": token,
	})
}

func (ctl *AuthController) Me(c *gin.Context) {
	c.JSON(http.StatusOK, middlewares.CurrentUser(c))
}

// Logout deletes the session row and clears the cookie.
func (ctl *AuthController) Logout(c *gin.Context) {
	token, err := c.Cookie(middlewares.SessionCookie)
	if err != nil {
		token = middlewares.TokenFromRequest(c)
	}

	if err := ctl.auth.Logout(token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.SessionCookie, "", -1, "/", "", ctl.cookieSecure, true)

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
