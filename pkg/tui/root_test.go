package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliochat/foliochat/pkg/advisor"
	"github.com/foliochat/foliochat/pkg/controllers"
	"github.com/foliochat/foliochat/pkg/payload"
	"github.com/foliochat/foliochat/pkg/portfolio"
	"github.com/foliochat/foliochat/pkg/testutil"
)

func newTestModel() (Model, *controllers.ChatController) {
	client := testutil.NewFakeAdvisorClient("hello")
	controller := controllers.NewChatController(client, "test_user")
	return NewModel(controller), controller
}

func testSnapshot() portfolio.Snapshot {
	return portfolio.Snapshot{
		TotalValue:         10000,
		TotalProfitLoss:    500,
		TotalProfitLossPct: 5,
		Holdings: []portfolio.Holding{
			{Symbol: "AAPL", Quantity: 10, CurrentPrice: 150, CurrentValue: 1500, ProfitLoss: 100},
			{Symbol: "TSLA", Quantity: 5, CurrentPrice: 1700, CurrentValue: 8500, ProfitLoss: 400},
		},
	}
}

func TestTabKeyTogglesActiveView(t *testing.T) {
	m, _ := newTestModel()
	assert.Equal(t, TabChat, m.activeTab)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.Equal(t, TabPortfolio, m.activeTab)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.Equal(t, TabChat, m.activeTab)
}

func TestTabTogglesWhileLoading(t *testing.T) {
	m, controller := newTestModel()
	_, ok := controller.BeginSend("show my portfolio")
	require.True(t, ok)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.Equal(t, TabPortfolio, m.activeTab)
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newTestModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestPortfolioMsgUpdatesSnapshot(t *testing.T) {
	m, controller := newTestModel()

	m.Update(portfolioMsg{snapshot: testSnapshot()})

	snap, ok := controller.Snapshot()
	require.True(t, ok)
	assert.Equal(t, float64(10000), snap.TotalValue)
}

func TestPortfolioMsgFailureKeepsEmptyState(t *testing.T) {
	m, controller := newTestModel()

	m.Update(portfolioMsg{err: assert.AnError})

	_, ok := controller.Snapshot()
	assert.False(t, ok)
}

func TestAlertsMsgStoresAlerts(t *testing.T) {
	m, controller := newTestModel()

	m.Update(alertsMsg{alerts: []portfolio.Alert{{Symbol: "AAPL", Condition: "above", Price: 200, Active: true}}})

	assert.Len(t, controller.Alerts(), 1)
}

func TestReplyMsgSettlesPendingSend(t *testing.T) {
	m, controller := newTestModel()
	_, ok := controller.BeginSend("hi")
	require.True(t, ok)

	reply := advisor.Reply{Payload: payload.Text("hello back")}
	m.Update(replyMsg{reply: reply})

	assert.False(t, controller.IsLoading())
	assert.Equal(t, 2, controller.MessageCount())
}

func TestSubmitBeginsSendAndReturnsCmd(t *testing.T) {
	_, controller := newTestModel()
	v := newChatView(controller, testStyles)
	v.textarea.SetValue("show my portfolio")

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.NotNil(t, cmd)
	assert.True(t, controller.IsLoading())
	assert.Equal(t, 1, controller.MessageCount())
	assert.Empty(t, v.textarea.Value())
}

func TestSubmitEmptyInputIsNoop(t *testing.T) {
	_, controller := newTestModel()
	v := newChatView(controller, testStyles)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, controller.IsLoading())
	assert.Equal(t, 0, controller.MessageCount())
}

func TestChatInputIgnoredWhileLoading(t *testing.T) {
	_, controller := newTestModel()
	v := newChatView(controller, testStyles)
	_, ok := controller.BeginSend("first")
	require.True(t, ok)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	assert.Empty(t, v.textarea.Value())

	// A second enter must not start another request.
	v.textarea.SetValue("second")
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, controller.MessageCount())
}

func TestPortfolioViewEmptyState(t *testing.T) {
	_, controller := newTestModel()
	v := newPortfolioView(controller, testStyles)

	assert.Contains(t, v.View(), "No portfolio data")
}

func TestPortfolioViewRendersSnapshot(t *testing.T) {
	_, controller := newTestModel()
	controller.ApplyPortfolio(testSnapshot(), nil)
	controller.ApplyAlerts([]portfolio.Alert{{Symbol: "NVDA", Condition: "above", Price: 500, Active: true}}, nil)
	v := newPortfolioView(controller, testStyles)

	out := v.View()
	assert.Contains(t, out, "$10000")
	assert.Contains(t, out, "+$500")
	assert.Contains(t, out, "AAPL")
	assert.Contains(t, out, "TSLA")
	assert.Contains(t, out, "Allocation")
	assert.Contains(t, out, "Profit / Loss")
	assert.Contains(t, out, "85.0%")
	assert.Contains(t, out, "Alerts")
	assert.Contains(t, out, "NVDA")
}

func TestRootViewShowsActivePane(t *testing.T) {
	m, controller := newTestModel()
	controller.ApplyPortfolio(testSnapshot(), nil)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(Model)
	assert.Contains(t, m.View(), "Start the conversation")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.Contains(t, m.View(), "Holdings")
}

func TestTabString(t *testing.T) {
	assert.Equal(t, "Chat", TabChat.String())
	assert.Equal(t, "Portfolio", TabPortfolio.String())
}
