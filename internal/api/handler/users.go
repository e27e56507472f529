package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigitates17/Article-App/internal/api/auth"
	"github.com/yigitates17/Article-App/internal/api/models"
	"github.com/yigitates17/Article-App/internal/web/pages"
	"gorm.io/gorm"
)

// Users lists every registered user. It also works for anonymous visitors.
func (h *Handler) Users(c *gin.Context) {
	users, err := h.db.GetAllUsers(c.Request.Context())
	if err != nil {
		h.serverError(c, "failed to get users", err)
		return
	}
	h.render(c, http.StatusOK, pages.Users(layout(c), models.ToUserEntries(users, auth.CurrentUsername(c))))
}

// UserPage shows a profile, or the placeholder page for unknown ids.
func (h *Handler) UserPage(c *gin.Context) {
	idParam := c.Param("id")
	profile := pages.UserProfile{RequestedID: idParam}

	id, err := parseUintParam(idParam)
	if err != nil {
		h.render(c, http.StatusOK, pages.UserPage(layout(c), profile))
		return
	}

	ctx := c.Request.Context()
	user, err := h.db.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.render(c, http.StatusOK, pages.UserPage(layout(c), profile))
			return
		}
		h.serverError(c, "failed to get user", err)
		return
	}

	articles, err := h.db.GetArticlesByAuthor(ctx, user.Username)
	if err != nil {
		h.serverError(c, "failed to get user articles", err)
		return
	}

	profile.Found = true
	profile.Name = user.Name
	profile.Username = user.Username
	profile.AvatarURL = h.avatars.URL(user.Email)
	profile.Articles = len(articles)

	h.render(c, http.StatusOK, pages.UserPage(layout(c), profile))
}
