// Package pages renders the server-side HTML pages of the blog.
package pages

import (
	"embed"
	"html/template"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/dustin/go-humanize"
	"github.com/mergestat/timediff"
	"github.com/yigitates17/Article-App/internal/api/flash"
	"github.com/yigitates17/Article-App/internal/forms"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Layout is the data shared by every page.
type Layout struct {
	Title    string
	Username string
	Flashes  []flash.Message
}

// LoggedIn reports whether the page is rendered for an authenticated user.
func (l Layout) LoggedIn() bool {
	return l.Username != ""
}

// ArticleView is an article prepared for display.
type ArticleView struct {
	ID        uint
	Title     string
	Author    string
	Content   string
	CreatedAt time.Time
	CanManage bool
}

// ArticleFormView holds the values and errors of an article form.
type ArticleFormView struct {
	Title   string
	Content string
	Errors  forms.Errors
}

// RegisterFormView holds the values and errors of the registration form.
// Passwords are never echoed back.
type RegisterFormView struct {
	Name     string
	Username string
	Email    string
	Errors   forms.Errors
}

// UserEntry is a row of the user directory.
type UserEntry struct {
	ID       uint
	Username string
	Status   string
}

// UserProfile is shown on a user's page. Found is false for the placeholder.
type UserProfile struct {
	RequestedID string
	Found       bool
	Name        string
	Username    string
	AvatarURL   string
	Articles    int
}

var funcs = template.FuncMap{
	"relativeTime": FormatRelativeTime,
	"comma": func(n int) string {
		return humanize.Comma(int64(n))
	},
	"excerpt": excerpt,
}

var templates = parseTemplates(
	"home.html",
	"about.html",
	"register.html",
	"login.html",
	"dashboard.html",
	"articles.html",
	"article.html",
	"addarticle.html",
	"edit_article.html",
	"users.html",
	"user_page.html",
	"error.html",
)

func parseTemplates(names ...string) map[string]*template.Template {
	out := make(map[string]*template.Template, len(names))
	for _, name := range names {
		t := template.Must(template.New(name).Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/"+name))
		out[name] = t.Lookup("layout")
	}
	return out
}

func render(name string, data any) templ.Component {
	return templ.FromGoHTML(templates[name], data)
}

// FormatRelativeTime formats a time.Time as a relative time string like "3 days ago".
func FormatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return timediff.TimeDiff(t)
}

func excerpt(s string) string {
	const limit = 160
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= limit {
		return string(runes)
	}
	return string(runes[:limit]) + "…"
}

func Home(l Layout) templ.Component {
	l.Title = "Home"
	return render("home.html", struct{ Layout }{l})
}

func About(l Layout) templ.Component {
	l.Title = "About"
	return render("about.html", struct{ Layout }{l})
}

func Register(l Layout, form RegisterFormView) templ.Component {
	l.Title = "Register"
	return render("register.html", struct {
		Layout
		Form RegisterFormView
	}{l, form})
}

func Login(l Layout, username string) templ.Component {
	l.Title = "Login"
	return render("login.html", struct {
		Layout
		LoginUsername string
	}{l, username})
}

func Dashboard(l Layout, articles []ArticleView) templ.Component {
	l.Title = "Dashboard"
	return render("dashboard.html", struct {
		Layout
		Articles []ArticleView
	}{l, articles})
}

func Articles(l Layout, articles []ArticleView) templ.Component {
	l.Title = "Articles"
	return render("articles.html", struct {
		Layout
		Articles []ArticleView
	}{l, articles})
}

// Article renders one article, or the empty state if article is nil.
func Article(l Layout, article *ArticleView, requestedID string) templ.Component {
	l.Title = "Article"
	if article != nil {
		l.Title = article.Title
	}
	return render("article.html", struct {
		Layout
		Article     *ArticleView
		RequestedID string
	}{l, article, requestedID})
}

func AddArticle(l Layout, form ArticleFormView) templ.Component {
	l.Title = "Add Article"
	return render("addarticle.html", struct {
		Layout
		Form ArticleFormView
	}{l, form})
}

// EditArticle renders the edit form, or the empty state if found is false.
func EditArticle(l Layout, id string, found bool, form ArticleFormView) templ.Component {
	l.Title = "Edit Article"
	return render("edit_article.html", struct {
		Layout
		ID    string
		Found bool
		Form  ArticleFormView
	}{l, id, found, form})
}

func Users(l Layout, users []UserEntry) templ.Component {
	l.Title = "Users"
	return render("users.html", struct {
		Layout
		Users []UserEntry
	}{l, users})
}

func UserPage(l Layout, profile UserProfile) templ.Component {
	l.Title = "User"
	return render("user_page.html", struct {
		Layout
		Profile UserProfile
	}{l, profile})
}

func Error(l Layout, message string) templ.Component {
	l.Title = "Error"
	return render("error.html", struct {
		Layout
		Message string
	}{l, message})
}
