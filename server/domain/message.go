package domain

import (
	"strings"
	"time"
)

// Message is a single recadinho on the mural. ID and CreatedAt are assigned
// by the repository at creation time and never change afterwards.
type Message struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewMessage(id, author, body string, createdAt time.Time) Message {
	return Message{
		ID:        id,
		Author:    author,
		Body:      body,
		CreatedAt: createdAt,
	}
}

// TrimInput normalizes user-supplied author/body before validation.
func TrimInput(author, body string) (string, string) {
	return strings.TrimSpace(author), strings.TrimSpace(body)
}
