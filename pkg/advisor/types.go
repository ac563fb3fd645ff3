package advisor

import (
	"encoding/json"

	"github.com/foliochat/foliochat/pkg/payload"
)

// Intent is the backend's interpretation of the user's message.
type Intent struct {
	Action     string         `json:"action"`
	Entities   map[string]any `json:"entities,omitempty"`
	Confidence float64        `json:"confidence"`
}

// ActionShowPortfolio is the intent under which a holdings payload also
// refreshes the dashboard snapshot.
const ActionShowPortfolio = "show_portfolio"

// Reply is one decoded chat response: the classified payload plus the intent
// the backend attached to it.
type Reply struct {
	Payload payload.Payload
	Intent  Intent
}

type chatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type chatResponse struct {
	Response json.RawMessage `json:"response"`
	Intent   Intent          `json:"intent"`
}

type alertsResponse struct {
	Alerts []alertEntry `json:"alerts"`
}

type alertEntry struct {
	Symbol    string  `json:"symbol"`
	Condition string  `json:"condition"`
	Price     float64 `json:"price"`
	Active    bool    `json:"active"`
}
