package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/ccoveille/go-safecast"
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/yigitates17/Article-App/internal/api/auth"
	"github.com/yigitates17/Article-App/internal/api/flash"
	"github.com/yigitates17/Article-App/internal/database"
	"github.com/yigitates17/Article-App/internal/gravatar"
	"github.com/yigitates17/Article-App/internal/web/pages"
)

// WelcomeSender sends the mail that follows a successful registration.
type WelcomeSender interface {
	SendWelcome(username, name, address string) error
}

type Handler struct {
	db      database.DB
	avatars *gravatar.Resolver
	mailer  WelcomeSender
}

// New creates the page handlers. avatars and mailer may be nil.
func New(db database.DB, avatars *gravatar.Resolver, mailer WelcomeSender) *Handler {
	return &Handler{
		db:      db,
		avatars: avatars,
		mailer:  mailer,
	}
}

func (h *Handler) Home(c *gin.Context) {
	h.render(c, http.StatusOK, pages.Home(layout(c)))
}

func (h *Handler) About(c *gin.Context) {
	h.render(c, http.StatusOK, pages.About(layout(c)))
}

// layout collects the data shared by all pages. It consumes the pending flash messages.
func layout(c *gin.Context) pages.Layout {
	return pages.Layout{
		Username: auth.CurrentUsername(c),
		Flashes:  flash.Pop(c),
	}
}

// render saves the session, since layout may have consumed flashes, and writes the page.
func (h *Handler) render(c *gin.Context, status int, component templ.Component) {
	if err := auth.SaveSession(c); err != nil {
		log.Error("Failed to save session", "path", c.Request.URL.Path, "error", err)
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := component.Render(c.Request.Context(), c.Writer); err != nil {
		log.Error("Failed to render page", "path", c.FullPath(), "error", err)
	}
}

// serverError logs err and renders the error page with status 500.
func (h *Handler) serverError(c *gin.Context, msg string, err error) {
	log.Error(msg, "path", c.Request.URL.Path, "error", err)
	_ = c.Error(err)
	h.render(c, http.StatusInternalServerError, pages.Error(layout(c), "We couldn't complete your request. Please try again later."))
}

// redirect queues a flash message, saves the session and redirects to location.
func (h *Handler) redirect(c *gin.Context, category flash.Category, text, location string) {
	flash.Add(c, category, text)
	if err := auth.SaveSession(c); err != nil {
		h.serverError(c, "failed to save session", err)
		return
	}
	c.Redirect(http.StatusFound, location)
}

func parseUintParam(param string) (uint, error) {
	id, err := strconv.ParseUint(param, 10, 64)
	if err != nil {
		return 0, err
	}
	v, err := safecast.Convert[uint](id)
	if err != nil {
		return 0, fmt.Errorf("id out of range: %w", err)
	}
	return v, nil
}
