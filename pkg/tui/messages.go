package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/foliochat/foliochat/pkg/advisor"
	"github.com/foliochat/foliochat/pkg/portfolio"
)

type replyMsg struct {
	reply advisor.Reply
	err   error
}

type portfolioMsg struct {
	snapshot portfolio.Snapshot
	err      error
}

type alertsMsg struct {
	alerts []portfolio.Alert
	err    error
}

func sendMessageCmd(client advisor.ChatClient, text, userID string) tea.Cmd {
	return func() tea.Msg {
		reply, err := client.SendMessage(context.Background(), text, userID)
		return replyMsg{reply: reply, err: err}
	}
}

func fetchPortfolioCmd(client advisor.ChatClient, userID string) tea.Cmd {
	return func() tea.Msg {
		snapshot, err := client.FetchPortfolio(context.Background(), userID)
		return portfolioMsg{snapshot: snapshot, err: err}
	}
}

func fetchAlertsCmd(client advisor.ChatClient, userID string) tea.Cmd {
	return func() tea.Msg {
		alerts, err := client.FetchAlerts(context.Background(), userID)
		return alertsMsg{alerts: alerts, err: err}
	}
}
