package auth

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/yigitates17/Article-App/internal/api/flash"
)

const (
	loginPath = "/login"
	homePath  = "/"
)

// RequireAuth blocks anonymous requests with a notice and a redirect to the login page.
// LoadIdentity must run before it.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentIdentity(c) == nil {
			flash.Add(c, flash.Danger, "Login required to access this page.")
			if err := SaveSession(c); err != nil {
				log.Error("failed to save session", "path", c.Request.URL.Path, "error", err)
			}
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireGuest sends already authenticated sessions back to the home page.
func RequireGuest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentIdentity(c) != nil {
			c.Redirect(http.StatusFound, homePath)
			c.Abort()
			return
		}
		c.Next()
	}
}
