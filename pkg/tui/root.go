package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/foliochat/foliochat/pkg/controllers"
	"github.com/foliochat/foliochat/pkg/tui/theme"
)

// Tab identifies the visible pane.
type Tab int

const (
	TabChat Tab = iota
	TabPortfolio
)

func (t Tab) String() string {
	switch t {
	case TabChat:
		return "Chat"
	case TabPortfolio:
		return "Portfolio"
	default:
		return "Unknown"
	}
}

const headerHeight = 2
const statusHeight = 1

// Model is the root bubbletea model. It owns the controller and the two panes
// and routes every message through Update; the command goroutines never touch
// state directly.
type Model struct {
	controller *controllers.ChatController
	styles     *theme.Styles

	activeTab Tab
	chat      chatView
	dashboard portfolioView

	width  int
	height int
}

func NewModel(controller *controllers.ChatController) Model {
	styles := theme.DefaultStyles()
	return Model{
		controller: controller,
		styles:     styles,
		activeTab:  TabChat,
		chat:       newChatView(controller, styles),
		dashboard:  newPortfolioView(controller, styles),
	}
}

// Init starts cursor blinking and kicks off the one-time portfolio and alert
// fetches for the session.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.chat.Init(),
		fetchPortfolioCmd(m.controller.Client(), m.controller.UserID()),
		fetchAlertsCmd(m.controller.Client(), m.controller.UserID()),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		inner := tea.WindowSizeMsg{
			Width:  msg.Width,
			Height: msg.Height - headerHeight - statusHeight,
		}
		m.chat.resize(inner.Width, inner.Height)
		m.dashboard.resize(inner.Width, inner.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.SwitchView):
			// Tab switching stays available even mid-request.
			if m.activeTab == TabChat {
				m.activeTab = TabPortfolio
			} else {
				m.activeTab = TabChat
			}
			return m, nil
		}
		if m.activeTab == TabChat {
			var cmd tea.Cmd
			m.chat, cmd = m.chat.Update(msg)
			return m, cmd
		}
		return m, nil

	case portfolioMsg:
		m.controller.ApplyPortfolio(msg.snapshot, msg.err)
		return m, nil

	case alertsMsg:
		m.controller.ApplyAlerts(msg.alerts, msg.err)
		return m, nil
	}

	// Everything else (reply settlement, spinner ticks, blink) belongs to the
	// chat pane regardless of which tab is showing.
	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := m.renderTabs()

	var body string
	if m.activeTab == TabChat {
		body = m.chat.View()
	} else {
		body = m.dashboard.View()
	}

	return header + "\n\n" + body + "\n" + m.renderStatusBar()
}

func (m Model) renderTabs() string {
	tabs := []Tab{TabChat, TabPortfolio}
	parts := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		label := " " + tab.String() + " "
		if tab == m.activeTab {
			parts = append(parts, m.styles.TabActive.Render(label))
		} else {
			parts = append(parts, m.styles.TabMuted.Render(label))
		}
	}
	return strings.Join(parts, m.styles.MutedText.Render("|"))
}

func (m Model) renderStatusBar() string {
	status := "tab: switch view  •  ctrl+c: quit"
	if m.controller.IsLoading() {
		status = "contacting advisor...  •  " + status
	}
	return m.styles.StatusBar.Render(status)
}
