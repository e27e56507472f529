package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigitates17/Article-App/internal/api/auth"
	"github.com/yigitates17/Article-App/internal/api/flash"
	"github.com/yigitates17/Article-App/internal/api/models"
	"github.com/yigitates17/Article-App/internal/database"
	"github.com/yigitates17/Article-App/internal/forms"
	"github.com/yigitates17/Article-App/internal/web/pages"
	"gorm.io/gorm"
)

const (
	msgNoEditPermission   = "You have no permission to edit that article."
	msgNoPermission       = "You have no permission for this action."
	msgNoArticleToDelete  = "There is no article to delete in that index."
	msgArticleNotFound    = "We couldn't find the article you were looking for."
	msgArticleAdded       = "Your article has been added successfully."
	msgArticleUpdatedTmpl = "%s has been updated."
	msgArticleDeletedTmpl = "%s has been deleted."
	msgSearchResultsTmpl  = "We found %d results."
)

// Dashboard lists the articles of the current user.
func (h *Handler) Dashboard(c *gin.Context) {
	username := auth.CurrentUsername(c)
	articles, err := h.db.GetArticlesByAuthor(c.Request.Context(), username)
	if err != nil {
		h.serverError(c, "failed to get dashboard articles", err)
		return
	}
	h.render(c, http.StatusOK, pages.Dashboard(layout(c), models.ToArticleViews(articles, username)))
}

func (h *Handler) Articles(c *gin.Context) {
	articles, err := h.db.GetArticles(c.Request.Context())
	if err != nil {
		h.serverError(c, "failed to get articles", err)
		return
	}
	h.render(c, http.StatusOK, pages.Articles(layout(c), models.ToArticleViews(articles, auth.CurrentUsername(c))))
}

// Article shows one article. Unknown ids render the empty state, not a 404.
func (h *Handler) Article(c *gin.Context) {
	idParam := c.Param("id")
	article, err := h.findArticle(c, idParam)
	if err != nil {
		h.serverError(c, "failed to get article", err)
		return
	}
	if article == nil {
		h.render(c, http.StatusOK, pages.Article(layout(c), nil, idParam))
		return
	}
	view := models.ToArticleView(*article, auth.CurrentUsername(c))
	h.render(c, http.StatusOK, pages.Article(layout(c), &view, idParam))
}

func (h *Handler) AddArticleForm(c *gin.Context) {
	h.render(c, http.StatusOK, pages.AddArticle(layout(c), pages.ArticleFormView{}))
}

func (h *Handler) AddArticle(c *gin.Context) {
	var f forms.ArticleForm
	if err := forms.Bind(c, &f); err != nil {
		h.render(c, http.StatusOK, pages.AddArticle(layout(c), pages.ArticleFormView{Errors: forms.Errors{"": msgInvalidFormData}}))
		return
	}
	if errs := forms.Validate(&f); errs != nil {
		h.render(c, http.StatusOK, pages.AddArticle(layout(c), articleFormView(f, errs)))
		return
	}

	article := &database.Article{
		Title:   f.Title,
		Author:  auth.CurrentUsername(c),
		Content: f.Content,
	}
	if err := h.db.CreateArticle(c.Request.Context(), article); err != nil {
		h.serverError(c, "failed to create article", err)
		return
	}

	h.redirect(c, flash.Success, msgArticleAdded, "/articles")
}

func (h *Handler) EditArticleForm(c *gin.Context) {
	idParam := c.Param("id")
	article, ok := h.ownedArticle(c, idParam)
	if !ok {
		return
	}
	h.render(c, http.StatusOK, pages.EditArticle(layout(c), idParam, true, pages.ArticleFormView{
		Title:   article.Title,
		Content: article.Content,
	}))
}

// EditArticle updates title and content. Existence and ownership are checked before any write.
func (h *Handler) EditArticle(c *gin.Context) {
	idParam := c.Param("id")
	article, ok := h.ownedArticle(c, idParam)
	if !ok {
		return
	}

	var f forms.ArticleForm
	if err := forms.Bind(c, &f); err != nil {
		h.render(c, http.StatusOK, pages.EditArticle(layout(c), idParam, true, pages.ArticleFormView{Errors: forms.Errors{"": msgInvalidFormData}}))
		return
	}
	if errs := forms.Validate(&f); errs != nil {
		h.render(c, http.StatusOK, pages.EditArticle(layout(c), idParam, true, articleFormView(f, errs)))
		return
	}

	if err := h.db.UpdateArticle(c.Request.Context(), article.ID, f.Title, f.Content); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.render(c, http.StatusOK, pages.EditArticle(layout(c), idParam, false, pages.ArticleFormView{}))
			return
		}
		h.serverError(c, "failed to update article", err)
		return
	}

	h.redirect(c, flash.Success, fmt.Sprintf(msgArticleUpdatedTmpl, f.Title), "/dashboard")
}

func (h *Handler) DeleteArticle(c *gin.Context) {
	article, err := h.findArticle(c, c.Param("id"))
	if err != nil {
		h.serverError(c, "failed to get article", err)
		return
	}
	if article == nil {
		h.redirect(c, flash.Danger, msgNoArticleToDelete, "/")
		return
	}
	if !article.IsOwnedBy(auth.CurrentUsername(c)) {
		h.redirect(c, flash.Danger, msgNoPermission, "/")
		return
	}

	if err := h.db.DeleteArticle(c.Request.Context(), article.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.redirect(c, flash.Danger, msgNoArticleToDelete, "/")
			return
		}
		h.serverError(c, "failed to delete article", err)
		return
	}

	h.redirect(c, flash.Success, fmt.Sprintf(msgArticleDeletedTmpl, article.Title), "/dashboard")
}

// Search matches the keyword against article titles.
func (h *Handler) Search(c *gin.Context) {
	var f forms.SearchForm
	if err := forms.Bind(c, &f); err != nil {
		h.redirect(c, flash.Warning, msgArticleNotFound, "/articles")
		return
	}

	if f.Keyword == "" {
		h.redirect(c, flash.Warning, msgArticleNotFound, "/articles")
		return
	}

	articles, err := h.db.SearchArticlesByTitle(c.Request.Context(), f.Keyword)
	if err != nil {
		h.serverError(c, "failed to search articles", err)
		return
	}
	if len(articles) == 0 {
		h.redirect(c, flash.Warning, msgArticleNotFound, "/articles")
		return
	}

	flash.Add(c, flash.Success, fmt.Sprintf(msgSearchResultsTmpl, len(articles)))
	h.render(c, http.StatusOK, pages.Articles(layout(c), models.ToArticleViews(articles, auth.CurrentUsername(c))))
}

func (h *Handler) SearchRedirect(c *gin.Context) {
	c.Redirect(http.StatusFound, "/articles")
}

// findArticle looks up the article named by idParam.
// A malformed or unknown id yields a nil article and a nil error.
func (h *Handler) findArticle(c *gin.Context, idParam string) (*database.Article, error) {
	id, err := parseUintParam(idParam)
	if err != nil {
		return nil, nil
	}
	article, err := h.db.GetArticleByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return article, nil
}

// ownedArticle loads the article for the edit flow and enforces ownership.
// If it returns false a response has already been written.
func (h *Handler) ownedArticle(c *gin.Context, idParam string) (*database.Article, bool) {
	article, err := h.findArticle(c, idParam)
	if err != nil {
		h.serverError(c, "failed to get article", err)
		return nil, false
	}
	if article == nil {
		h.render(c, http.StatusOK, pages.EditArticle(layout(c), idParam, false, pages.ArticleFormView{}))
		return nil, false
	}
	if !article.IsOwnedBy(auth.CurrentUsername(c)) {
		h.redirect(c, flash.Danger, msgNoEditPermission, "/")
		return nil, false
	}
	return article, true
}

func articleFormView(f forms.ArticleForm, errs forms.Errors) pages.ArticleFormView {
	return pages.ArticleFormView{
		Title:   f.Title,
		Content: f.Content,
		Errors:  errs,
	}
}
