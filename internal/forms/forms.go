// Package forms binds, normalizes and validates the HTML forms of the blog.
package forms

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Errors maps a form field name to its error message.
type Errors map[string]string

// Has reports whether field has an error.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// RegisterForm is the user registration form.
type RegisterForm struct {
	Name     string `form:"name" validate:"min=4,max=25"`
	Username string `form:"username" validate:"min=5,max=35"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,eqfield=Confirm"`
	Confirm  string `form:"confirm"`
}

// LoginForm is the login form. Its fields are not validated.
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// ArticleForm is used to create and edit an article.
type ArticleForm struct {
	Title   string `form:"title" validate:"min=3,max=70"`
	Content string `form:"content" validate:"min=2"`
}

// SearchForm holds the search keyword.
type SearchForm struct {
	Keyword string `form:"keyword"`
}

// fieldNames maps struct fields to their form names.
var fieldNames = map[string]string{
	"Name":     "name",
	"Username": "username",
	"Email":    "email",
	"Password": "password",
	"Confirm":  "confirm",
	"Title":    "title",
	"Content":  "content",
}

// messages holds the error message per form field and failed tag.
// An empty tag is the fallback for the field.
var messages = map[string]map[string]string{
	"name": {
		"": "Name must be between 4 and 25 characters long.",
	},
	"username": {
		"": "Username must be between 5 and 35 characters long.",
	},
	"email": {
		"": "Please enter a valid email address.",
	},
	"password": {
		"required": "Please enter a password.",
		"eqfield":  "Your passwords don't match.",
	},
	"title": {
		"": "Title can't be shorter than 3 or longer than 70 characters.",
	},
	"content": {
		"": "Content must be at least 2 characters long.",
	},
}

// Bind decodes the request form into f and trims it. It does not validate.
func Bind(c *gin.Context, f any) error {
	if err := c.ShouldBind(f); err != nil {
		return err
	}
	normalize(f)
	return nil
}

// Validate normalizes f and checks it. It returns nil if f is valid.
// Normalizing twice is harmless, so forms built outside Bind are accepted too.
func Validate(f any) Errors {
	normalize(f)

	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{"": err.Error()}
	}

	out := make(Errors, len(verrs))
	for _, fe := range verrs {
		field := fieldNames[fe.StructField()]
		if field == "" {
			field = strings.ToLower(fe.StructField())
		}
		if out.Has(field) {
			continue
		}
		out[field] = message(field, fe.Tag())
	}
	return out
}

func message(field, tag string) string {
	if byTag, ok := messages[field]; ok {
		if msg, ok := byTag[tag]; ok {
			return msg
		}
		if msg, ok := byTag[""]; ok {
			return msg
		}
	}
	return "This field is invalid."
}

// normalize trims surrounding whitespace from non-secret fields.
func normalize(f any) {
	switch v := f.(type) {
	case *RegisterForm:
		v.Name = strings.TrimSpace(v.Name)
		v.Username = strings.TrimSpace(v.Username)
		v.Email = strings.TrimSpace(v.Email)
	case *LoginForm:
		v.Username = strings.TrimSpace(v.Username)
	case *ArticleForm:
		v.Title = strings.TrimSpace(v.Title)
	case *SearchForm:
		v.Keyword = strings.TrimSpace(v.Keyword)
	}
}
