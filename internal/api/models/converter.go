package models

import (
	"github.com/samber/lo"
	"github.com/yigitates17/Article-App/internal/database"
	"github.com/yigitates17/Article-App/internal/web/pages"
)

const (
	StatusOnline  = "Online"
	StatusOffline = "Offline"
)

// ToArticleView converts a database.Article for display to viewer.
// CanManage is only set for the article's author.
func ToArticleView(a database.Article, viewer string) pages.ArticleView {
	return pages.ArticleView{
		ID:        a.ID,
		Title:     a.Title,
		Author:    a.Author,
		Content:   a.Content,
		CreatedAt: a.CreatedAt,
		CanManage: a.IsOwnedBy(viewer),
	}
}

// ToArticleViews converts a slice of database.Article to ArticleViews.
func ToArticleViews(articles []database.Article, viewer string) []pages.ArticleView {
	return lo.Map(articles, func(a database.Article, _ int) pages.ArticleView {
		return ToArticleView(a, viewer)
	})
}

// ToUserEntries converts users to directory rows. A user is "Online"
// only if it is the viewer; this is not real presence.
func ToUserEntries(users []database.User, viewer string) []pages.UserEntry {
	return lo.Map(users, func(u database.User, _ int) pages.UserEntry {
		status := StatusOffline
		if viewer != "" && u.Username == viewer {
			status = StatusOnline
		}
		return pages.UserEntry{
			ID:       u.ID,
			Username: u.Username,
			Status:   status,
		}
	})
}
