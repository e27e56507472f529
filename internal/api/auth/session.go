package auth

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	sessionKeyLoggedIn = "logged_in"
	sessionKeyUsername = "user_name"

	identityContextKey = "identity"
)

// Identity is the authenticated user of the current request.
type Identity struct {
	Username string
}

// SignIn marks the session as authenticated for username.
// The change is persisted by the next SaveSession.
func SignIn(c *gin.Context, username string) {
	session := sessions.Default(c)
	session.Set(sessionKeyLoggedIn, true)
	session.Set(sessionKeyUsername, username)
	c.Set(identityContextKey, &Identity{Username: username})
}

// SignOut clears all session state.
func SignOut(c *gin.Context) {
	sessions.Default(c).Clear()
	c.Set(identityContextKey, (*Identity)(nil))
}

// SaveSession writes the session cookie. Call it once, right before the
// response headers are written.
func SaveSession(c *gin.Context) error {
	return sessions.Default(c).Save()
}

// LoadIdentity resolves the identity from the session once per request.
// Handlers read it with CurrentIdentity instead of touching the session.
func LoadIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		username := getSessionString(session, sessionKeyUsername)
		if getSessionBool(session, sessionKeyLoggedIn) && username != "" {
			c.Set(identityContextKey, &Identity{Username: username})
		}
		c.Next()
	}
}

// CurrentIdentity returns the identity of the request, or nil if anonymous.
func CurrentIdentity(c *gin.Context) *Identity {
	val, ok := c.Get(identityContextKey)
	if !ok {
		return nil
	}
	identity, _ := val.(*Identity)
	return identity
}

// CurrentUsername returns the username of the request, or "" if anonymous.
func CurrentUsername(c *gin.Context) string {
	if identity := CurrentIdentity(c); identity != nil {
		return identity.Username
	}
	return ""
}

func getSessionString(session sessions.Session, key string) string {
	if val := session.Get(key); val != nil {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getSessionBool(session sessions.Session, key string) bool {
	if val := session.Get(key); val != nil {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}
