package handler

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/yigitates17/Article-App/internal/api/auth"
	"github.com/yigitates17/Article-App/internal/api/flash"
	"github.com/yigitates17/Article-App/internal/database"
	"github.com/yigitates17/Article-App/internal/forms"
	"github.com/yigitates17/Article-App/internal/web/pages"
	"gorm.io/gorm"
)

const (
	msgUsernameTaken   = "This username is already taken."
	msgBadCredentials  = "Username or password is not correct."
	msgInvalidFormData = "The submitted form could not be read."
)

func (h *Handler) RegisterForm(c *gin.Context) {
	h.render(c, http.StatusOK, pages.Register(layout(c), pages.RegisterFormView{}))
}

func (h *Handler) Register(c *gin.Context) {
	var f forms.RegisterForm
	if err := forms.Bind(c, &f); err != nil {
		h.renderRegister(c, f, forms.Errors{"": msgInvalidFormData})
		return
	}

	if errs := forms.Validate(&f); errs != nil {
		h.renderRegister(c, f, errs)
		return
	}

	ctx := c.Request.Context()
	_, err := h.db.GetUserByUsername(ctx, f.Username)
	switch {
	case err == nil:
		h.renderRegister(c, f, forms.Errors{"username": msgUsernameTaken})
		return
	case !errors.Is(err, gorm.ErrRecordNotFound):
		h.serverError(c, "failed to look up username", err)
		return
	}

	hash, err := auth.HashPassword(f.Password)
	if err != nil {
		h.serverError(c, "failed to hash password", err)
		return
	}

	user := &database.User{
		Name:     f.Name,
		Username: f.Username,
		Email:    f.Email,
		Password: hash,
	}
	if err := h.db.CreateUser(ctx, user); err != nil {
		if errors.Is(err, database.ErrUsernameTaken) {
			h.renderRegister(c, f, forms.Errors{"username": msgUsernameTaken})
			return
		}
		h.serverError(c, "failed to create user", err)
		return
	}

	log.Info("user registered", "username", user.Username, "id", user.ID)

	if h.mailer != nil {
		if err := h.mailer.SendWelcome(user.Username, user.Name, user.Email); err != nil {
			log.Warn("failed to send welcome mail", "username", user.Username, "error", err)
		}
	}

	h.redirect(c, flash.Success, "Signed up successfully.", "/login")
}

func (h *Handler) renderRegister(c *gin.Context, f forms.RegisterForm, errs forms.Errors) {
	h.render(c, http.StatusOK, pages.Register(layout(c), pages.RegisterFormView{
		Name:     f.Name,
		Username: f.Username,
		Email:    f.Email,
		Errors:   errs,
	}))
}

func (h *Handler) LoginForm(c *gin.Context) {
	h.render(c, http.StatusOK, pages.Login(layout(c), ""))
}

// Login authenticates the user. Unknown users and wrong passwords get the same notice.
func (h *Handler) Login(c *gin.Context) {
	var f forms.LoginForm
	if err := forms.Bind(c, &f); err != nil {
		h.redirect(c, flash.Danger, msgBadCredentials, "/login")
		return
	}

	if f.Username == "" || f.Password == "" {
		h.redirect(c, flash.Danger, msgBadCredentials, "/login")
		return
	}

	user, err := h.db.GetUserByUsername(c.Request.Context(), f.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.redirect(c, flash.Danger, msgBadCredentials, "/login")
			return
		}
		h.serverError(c, "failed to look up user", err)
		return
	}

	ok, err := auth.CheckPassword(user.Password, f.Password)
	if err != nil || !ok {
		if err != nil {
			log.Error("stored password hash is invalid", "username", user.Username, "error", err)
		}
		h.redirect(c, flash.Danger, msgBadCredentials, "/login")
		return
	}

	auth.SignIn(c, user.Username)
	log.Debug("user logged in", "username", user.Username)
	h.redirect(c, flash.Success, "Logged in successfully.", "/")
}

func (h *Handler) Logout(c *gin.Context) {
	auth.SignOut(c)
	h.redirect(c, flash.Warning, "Successfully logged out.", "/")
}
