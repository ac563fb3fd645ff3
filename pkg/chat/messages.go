package chat

import (
	"strings"
	"time"

	"github.com/foliochat/foliochat/pkg/payload"
	"github.com/google/uuid"
)

// Message is one conversation entry. Entries are immutable once created.
type Message struct {
	ID        string          `json:"id"`
	Role      string          `json:"role"`
	Payload   payload.Payload `json:"-"`
	Intent    string          `json:"intent,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

func NewUserMessage(content string) Message {
	return Message{
		ID:        uuid.New().String(),
		Role:      RoleUser,
		Payload:   payload.Text(strings.TrimSpace(content)),
		Timestamp: time.Now(),
	}
}

func NewAssistantMessage(p payload.Payload, intent string) Message {
	return Message{
		ID:        uuid.New().String(),
		Role:      RoleAssistant,
		Payload:   p,
		Intent:    intent,
		Timestamp: time.Now(),
	}
}

// NewErrorMessage creates an assistant entry carrying an error-variant
// payload. Transport failures surface in the conversation through these.
func NewErrorMessage(content string) Message {
	return NewAssistantMessage(payload.Error(content), "")
}

func (m Message) IsUser() bool {
	return m.Role == RoleUser
}

func (m Message) IsAssistant() bool {
	return m.Role == RoleAssistant
}

func (m Message) IsError() bool {
	return m.Payload.IsError()
}

func (m Message) WithTimestamp(t time.Time) Message {
	m.Timestamp = t
	return m
}
