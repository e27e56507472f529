package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yigitates17/Article-App/internal/api/auth"
	"github.com/yigitates17/Article-App/internal/api/handler"
	"github.com/yigitates17/Article-App/internal/config"
	"github.com/yigitates17/Article-App/internal/database"
	"github.com/yigitates17/Article-App/internal/gravatar"
	"github.com/yigitates17/Article-App/internal/notify/email"
	"github.com/yigitates17/Article-App/internal/static"
	"golang.org/x/sync/errgroup"
)

const sessionName = "articleapp_session"

type Server struct {
	cfg       *config.Config
	ginEngine *gin.Engine
	db        database.DB
	handler   *handler.Handler
}

// New builds the server and registers all routes.
func New(cfg *config.Config, db database.DB, debug bool) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	avatars, err := gravatar.New(cfg.Gravatar)
	if err != nil {
		return nil, fmt.Errorf("failed to configure gravatar: %w", err)
	}

	s := &Server{
		cfg:       cfg,
		ginEngine: gin.New(),
		db:        db,
		handler:   handler.New(db, avatars, email.New(cfg.Email, cfg.ServerURL)),
	}

	s.ginEngine.Use(gin.Recovery(), requestLogger())
	s.ginEngine.Use(gzip.Gzip(gzip.DefaultCompression))
	if err := s.setupStatic(); err != nil {
		return nil, err
	}
	s.setupSession()
	s.setupRoutes()

	return s, nil
}

func (s *Server) setupStatic() error {
	assets, err := static.FS()
	if err != nil {
		return err
	}
	s.ginEngine.StaticFS("/static", http.FS(assets))
	return nil
}

func (s *Server) setupSession() {
	store := cookie.NewStore([]byte(s.cfg.SessionKey))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   s.cfg.SessionMaxAge,
		HttpOnly: true,
		Secure:   s.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	s.ginEngine.Use(sessions.Sessions(sessionName, store), auth.LoadIdentity())
}

func (s *Server) setupRoutes() {
	h := s.handler

	s.ginEngine.GET("/", h.Home)
	s.ginEngine.GET("/about", h.About)

	guest := s.ginEngine.Group("/")
	guest.Use(auth.RequireGuest())
	guest.GET("/register", h.RegisterForm)
	guest.POST("/register", h.Register)
	guest.GET("/login", h.LoginForm)
	guest.POST("/login", h.Login)

	s.ginEngine.GET("/logout", h.Logout)

	s.ginEngine.GET("/articles", h.Articles)
	s.ginEngine.GET("/articles/:id", h.Article)
	s.ginEngine.GET("/articles/search", h.SearchRedirect)
	s.ginEngine.POST("/articles/search", h.Search)
	s.ginEngine.GET("/users", h.Users)

	protected := s.ginEngine.Group("/")
	protected.Use(auth.RequireAuth())
	protected.GET("/dashboard", h.Dashboard)
	protected.GET("/addarticle", h.AddArticleForm)
	protected.POST("/addarticle", h.AddArticle)
	protected.GET("/edit/:id", h.EditArticleForm)
	protected.POST("/edit/:id", h.EditArticle)
	protected.GET("/delete/:id", h.DeleteArticle)
	protected.GET("/users/:id", h.UserPage)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.ginEngine
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
// A listener failure ends Run with that error.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.ginEngine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting HTTP server", "listen", s.cfg.Listen)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve HTTP: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info("shutting down HTTP server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func requestLogger() gin.HandlerFunc {
	logger := log.Default().WithPrefix("http")
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)

		c.Next()

		logger.Debug("request",
			"id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"errors", len(c.Errors),
		)
	}
}
