package pages

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigitates17/Article-App/internal/api/flash"
	"github.com/yigitates17/Article-App/internal/forms"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestAllTemplatesParsed(t *testing.T) {
	for name, tmpl := range templates {
		assert.NotNil(t, tmpl, "layout missing for %s", name)
	}
}

func TestHome_Navigation(t *testing.T) {
	anon := renderString(t, Home(Layout{}))
	assert.Contains(t, anon, `href="/login"`)
	assert.NotContains(t, anon, `href="/logout"`)

	user := renderString(t, Home(Layout{Username: "alice01"}))
	assert.Contains(t, user, `href="/logout"`)
	assert.Contains(t, user, "alice01")
}

func TestLayout_Flashes(t *testing.T) {
	out := renderString(t, About(Layout{Flashes: []flash.Message{{Category: flash.Success, Text: "Signed up successfully."}}}))
	assert.Contains(t, out, `class="alert alert-success"`)
	assert.Contains(t, out, "Signed up successfully.")
}

func TestArticle_EscapesContent(t *testing.T) {
	out := renderString(t, Article(Layout{}, &ArticleView{ID: 1, Title: "<script>x</script>", Author: "alice01", Content: "body"}, "1"))
	assert.NotContains(t, out, "<script>x</script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestArticle_EmptyState(t *testing.T) {
	out := renderString(t, Article(Layout{}, nil, "42"))
	assert.Contains(t, out, "There is no article with number 42.")
}

func TestRegister_FieldErrors(t *testing.T) {
	out := renderString(t, Register(Layout{}, RegisterFormView{
		Username: "abc",
		Errors:   forms.Errors{"username": "Username must be between 5 and 35 characters long."},
	}))
	assert.Contains(t, out, `data-field="username"`)
	assert.Contains(t, out, "Username must be between 5 and 35 characters long.")
	assert.Contains(t, out, `value="abc"`)
}

func TestArticles_List(t *testing.T) {
	out := renderString(t, Articles(Layout{}, []ArticleView{
		{ID: 1, Title: "Hello World", Author: "alice01", Content: "hi", CreatedAt: time.Now().Add(-time.Hour)},
		{ID: 2, Title: "Goodbye", Author: "bobby01", Content: "bye"},
	}))
	assert.Equal(t, 2, strings.Count(out, `class="article"`))
	assert.Contains(t, out, "2 articles")
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short", excerpt("  short "))
	long := strings.Repeat("é", 200)
	got := excerpt(long)
	assert.Equal(t, 161, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestFormatRelativeTime(t *testing.T) {
	assert.Equal(t, "", FormatRelativeTime(time.Time{}))
	assert.NotEmpty(t, FormatRelativeTime(time.Now().Add(-48*time.Hour)))
}
