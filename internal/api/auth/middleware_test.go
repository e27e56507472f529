package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MiddlewareTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (s *MiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	store := cookie.NewStore([]byte("test-secret"))
	s.router.Use(sessions.Sessions("articleapp_session", store), LoadIdentity())

	s.router.GET("/signin", func(c *gin.Context) {
		SignIn(c, "alice01")
		require.NoError(s.T(), SaveSession(c))
		c.Status(http.StatusNoContent)
	})
	s.router.GET("/signout", func(c *gin.Context) {
		SignOut(c)
		require.NoError(s.T(), SaveSession(c))
		c.Status(http.StatusNoContent)
	})
	s.router.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, CurrentUsername(c))
	})
	s.router.GET("/protected", RequireAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, "protected content for "+CurrentIdentity(c).Username)
	})
	s.router.GET("/guest", RequireGuest(), func(c *gin.Context) {
		c.String(http.StatusOK, "guest page")
	})
}

func (s *MiddlewareTestSuite) do(path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *MiddlewareTestSuite) TestRequireAuth_Anonymous() {
	w := s.do("/protected", nil)

	assert.Equal(s.T(), http.StatusFound, w.Code)
	assert.Equal(s.T(), "/login", w.Header().Get("Location"))
	assert.NotContains(s.T(), w.Body.String(), "protected content")
	assert.Len(s.T(), w.Result().Cookies(), 1)
}

func (s *MiddlewareTestSuite) TestSignIn_IdentityVisibleInSameRequest() {
	var during string
	s.router.GET("/signin-and-read", func(c *gin.Context) {
		SignIn(c, "bobby01")
		during = CurrentUsername(c)
		c.Status(http.StatusNoContent)
	})

	w := s.do("/signin-and-read", nil)
	assert.Equal(s.T(), "bobby01", during)
	assert.Empty(s.T(), w.Result().Cookies())
}

func (s *MiddlewareTestSuite) TestRequireAuth_SignedIn() {
	cookies := s.do("/signin", nil).Result().Cookies()

	w := s.do("/protected", cookies)

	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), "protected content for alice01", w.Body.String())
}

func (s *MiddlewareTestSuite) TestSignOut_ClearsIdentity() {
	cookies := s.do("/signin", nil).Result().Cookies()
	cookies = s.do("/signout", cookies).Result().Cookies()

	w := s.do("/whoami", cookies)
	assert.Equal(s.T(), "", w.Body.String())

	w = s.do("/protected", cookies)
	assert.Equal(s.T(), http.StatusFound, w.Code)
}

func (s *MiddlewareTestSuite) TestRequireGuest() {
	w := s.do("/guest", nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)

	cookies := s.do("/signin", nil).Result().Cookies()
	w = s.do("/guest", cookies)
	assert.Equal(s.T(), http.StatusFound, w.Code)
	assert.Equal(s.T(), "/", w.Header().Get("Location"))
}

func TestMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}

func TestSessionHelperFunctions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sessions.Sessions("test", cookie.NewStore([]byte("test-secret"))))

	router.GET("/test-helpers", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set("string_val", "test_string")
		session.Set("bool_val", true)
		session.Set("int_val", 42)

		assert.Equal(t, "test_string", getSessionString(session, "string_val"))
		assert.Equal(t, "", getSessionString(session, "int_val"))
		assert.Equal(t, "", getSessionString(session, "missing_key"))

		assert.True(t, getSessionBool(session, "bool_val"))
		assert.False(t, getSessionBool(session, "string_val"))
		assert.False(t, getSessionBool(session, "missing_key"))

		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/test-helpers", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
