package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yigitates17/Article-App/internal/database"
)

func TestToArticleViews(t *testing.T) {
	articles := []database.Article{
		{ID: 1, Title: "Mine", Author: "alice01", Content: "a"},
		{ID: 2, Title: "Theirs", Author: "bobby01", Content: "b"},
	}

	views := ToArticleViews(articles, "alice01")
	assert.Len(t, views, 2)
	assert.True(t, views[0].CanManage)
	assert.False(t, views[1].CanManage)

	anon := ToArticleViews(articles, "")
	assert.False(t, anon[0].CanManage)
	assert.False(t, anon[1].CanManage)
}

func TestToUserEntries(t *testing.T) {
	users := []database.User{
		{ID: 1, Username: "alice01"},
		{ID: 2, Username: "bobby01"},
	}

	entries := ToUserEntries(users, "bobby01")
	assert.Equal(t, StatusOffline, entries[0].Status)
	assert.Equal(t, StatusOnline, entries[1].Status)
	assert.Equal(t, uint(2), entries[1].ID)

	for _, e := range ToUserEntries(users, "") {
		assert.Equal(t, StatusOffline, e.Status)
	}
}
