// Package flash stores one-shot notices in the session until the next rendered page.
// Neither Add nor Pop saves the session; the response writer saves it once.
package flash

import (
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Category is the visual category of a flash message.
type Category string

const (
	Success Category = "success"
	Warning Category = "warning"
	Danger  Category = "danger"
	Info    Category = "info"
)

// Message is a single flash notice.
type Message struct {
	Category Category
	Text     string
}

// Add queues a message in the session.
func Add(c *gin.Context, category Category, text string) {
	sessions.Default(c).AddFlash(string(category) + ":" + text)
}

// Pop returns all queued messages and removes them from the session.
func Pop(c *gin.Context) []Message {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}

	messages := make([]Message, 0, len(raw))
	for _, r := range raw {
		s, ok := r.(string)
		if !ok {
			continue
		}
		messages = append(messages, decode(s))
	}
	return messages
}

func decode(s string) Message {
	category, text, found := strings.Cut(s, ":")
	if !found {
		return Message{Category: Info, Text: s}
	}
	return Message{Category: Category(category), Text: text}
}
