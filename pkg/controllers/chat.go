package controllers

import (
	"context"
	"strings"

	"github.com/foliochat/foliochat/pkg/advisor"
	"github.com/foliochat/foliochat/pkg/chat"
	"github.com/foliochat/foliochat/pkg/logger"
	"github.com/foliochat/foliochat/pkg/payload"
	"github.com/foliochat/foliochat/pkg/portfolio"
)

// ErrConnectMessage is the fixed user-visible text inserted into the
// conversation when the backend cannot be reached or its reply cannot be
// decoded.
const ErrConnectMessage = "Failed to connect to chatbot service"

// ChatController owns the session state: conversation history, the latest
// portfolio snapshot, alerts, and the loading flag. All mutation goes through
// the transition methods below; no failure ever escapes them unhandled.
type ChatController struct {
	client       advisor.ChatClient
	conversation chat.Conversation
	snapshot     portfolio.Snapshot
	hasSnapshot  bool
	alerts       []portfolio.Alert
	loading      bool
}

func NewChatController(client advisor.ChatClient, userID string) *ChatController {
	return &ChatController{
		client:       client,
		conversation: chat.NewConversation(userID),
	}
}

// BeginSend appends the user entry and moves idle -> loading. It refuses
// empty input and refuses to start a second send while one is pending, which
// is what keeps at most one call in flight.
func (cc *ChatController) BeginSend(text string) (chat.Message, bool) {
	if strings.TrimSpace(text) == "" || cc.loading {
		return chat.Message{}, false
	}

	msg := chat.NewUserMessage(text)
	cc.conversation = chat.AddMessage(cc.conversation, msg)
	cc.loading = true
	return msg, true
}

// CompleteSend settles the in-flight send: loading always clears, and exactly
// one assistant entry is appended regardless of outcome. A transport failure
// becomes an error-variant entry with the fixed connect message.
func (cc *ChatController) CompleteSend(reply advisor.Reply, err error) chat.Message {
	cc.loading = false

	if err != nil {
		logger.Error("chat request failed: %v", err)
		msg := chat.NewErrorMessage(ErrConnectMessage)
		cc.conversation = chat.AddMessage(cc.conversation, msg)
		return msg
	}

	msg := chat.NewAssistantMessage(reply.Payload, reply.Intent.Action)
	cc.conversation = chat.AddMessage(cc.conversation, msg)

	// A holdings payload refreshes the dashboard snapshot, but only when the
	// backend classified the message as a show-portfolio request.
	if reply.Intent.Action == advisor.ActionShowPortfolio && reply.Payload.Kind == payload.KindHoldings {
		cc.snapshot = reply.Payload.Snapshot
		cc.hasSnapshot = true
	}

	return msg
}

// Send runs one full send cycle synchronously. The TUI drives BeginSend and
// CompleteSend separately so the call can settle off the render loop; this is
// for headless use.
func (cc *ChatController) Send(ctx context.Context, text string) (chat.Message, bool) {
	if _, ok := cc.BeginSend(text); !ok {
		return chat.Message{}, false
	}
	reply, err := cc.client.SendMessage(ctx, text, cc.conversation.UserID)
	return cc.CompleteSend(reply, err), true
}

// FetchPortfolio performs the single best-effort snapshot fetch. Failures are
// absorbed: the snapshot stays as it was and history is untouched.
func (cc *ChatController) FetchPortfolio(ctx context.Context) {
	snap, err := cc.client.FetchPortfolio(ctx, cc.conversation.UserID)
	cc.ApplyPortfolio(snap, err)
}

func (cc *ChatController) ApplyPortfolio(snap portfolio.Snapshot, err error) {
	if err != nil {
		logger.Debug("portfolio fetch failed: %v", err)
		return
	}
	cc.snapshot = snap
	cc.hasSnapshot = true
}

// FetchAlerts performs the best-effort alerts fetch; failures are absorbed.
func (cc *ChatController) FetchAlerts(ctx context.Context) {
	alerts, err := cc.client.FetchAlerts(ctx, cc.conversation.UserID)
	cc.ApplyAlerts(alerts, err)
}

func (cc *ChatController) ApplyAlerts(alerts []portfolio.Alert, err error) {
	if err != nil {
		logger.Debug("alerts fetch failed: %v", err)
		return
	}
	cc.alerts = alerts
}

func (cc *ChatController) Client() advisor.ChatClient {
	return cc.client
}

func (cc *ChatController) UserID() string {
	return cc.conversation.UserID
}

func (cc *ChatController) IsLoading() bool {
	return cc.loading
}

func (cc *ChatController) History() []chat.Message {
	return chat.GetMessages(cc.conversation)
}

func (cc *ChatController) MessageCount() int {
	return chat.GetMessageCount(cc.conversation)
}

func (cc *ChatController) LastAssistantMessage() (chat.Message, bool) {
	return chat.GetLastAssistantMessage(cc.conversation)
}

// Snapshot returns the latest portfolio snapshot and whether one has been
// received this session.
func (cc *ChatController) Snapshot() (portfolio.Snapshot, bool) {
	return cc.snapshot, cc.hasSnapshot
}

func (cc *ChatController) Alerts() []portfolio.Alert {
	return cc.alerts
}
