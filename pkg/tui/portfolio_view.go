package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/foliochat/foliochat/pkg/controllers"
	"github.com/foliochat/foliochat/pkg/portfolio"
	"github.com/foliochat/foliochat/pkg/tui/theme"
)

const allocationBarWidth = 30

// portfolioView is the dashboard pane. It renders entirely from the
// controller's current snapshot, so every Update is a no-op; the root model
// re-renders it whenever state changes.
type portfolioView struct {
	controller *controllers.ChatController
	styles     *theme.Styles

	width  int
	height int
}

func newPortfolioView(controller *controllers.ChatController, styles *theme.Styles) portfolioView {
	return portfolioView{
		controller: controller,
		styles:     styles,
	}
}

func (v *portfolioView) resize(width, height int) {
	v.width = width
	v.height = height
}

func (v portfolioView) View() string {
	snap, ok := v.controller.Snapshot()
	if !ok || !snap.HasHoldings() {
		return v.styles.MutedText.Render("No portfolio data yet. Ask the advisor to show your portfolio.")
	}

	sections := []string{
		v.renderTotals(snap),
		v.renderHoldingsTable(snap),
		v.renderAllocation(snap),
		v.renderProfitLoss(snap),
	}
	if alerts := v.controller.Alerts(); len(alerts) > 0 {
		sections = append(sections, v.renderAlerts(alerts))
	}
	return strings.Join(sections, "\n\n")
}

func (v portfolioView) renderTotals(snap portfolio.Snapshot) string {
	var b strings.Builder
	b.WriteString(v.styles.CardTitle.Render("Portfolio"))
	b.WriteString(fmt.Sprintf("\nTotal value: %s", portfolio.Money(snap.TotalValue)))
	b.WriteString(fmt.Sprintf("\nTotal P&L:   %s (%s)",
		renderSigned(snap.TotalProfitLoss, v.styles),
		portfolio.Percent(snap.TotalProfitLossPct)))
	return b.String()
}

func (v portfolioView) renderHoldingsTable(snap portfolio.Snapshot) string {
	var b strings.Builder
	b.WriteString(v.styles.CardTitle.Render("Holdings"))
	b.WriteString("\n")
	b.WriteString(v.styles.MutedText.Render(fmt.Sprintf("%-6s %10s %12s %12s %12s",
		"Symbol", "Qty", "Price", "Value", "P&L")))

	for _, h := range snap.Holdings {
		b.WriteString(fmt.Sprintf("\n%-6s %10s %12s %12s %12s",
			h.Symbol,
			trimQuantity(h.Quantity),
			portfolio.Money(h.CurrentPrice),
			portfolio.Money(h.CurrentValue),
			renderSigned(h.ProfitLoss, v.styles)))
	}
	return b.String()
}

// renderAllocation draws one colored bar per holding, scaled by its share of
// total value. Colors cycle through the chart palette by row index.
func (v portfolioView) renderAllocation(snap portfolio.Snapshot) string {
	slices := portfolio.Allocation(snap)
	if len(slices) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(v.styles.CardTitle.Render("Allocation"))
	for i, slice := range slices {
		width := int(slice.Fraction*allocationBarWidth + 0.5)
		if width < 1 {
			width = 1
		}
		bar := lipgloss.NewStyle().
			Foreground(theme.ChartColor(i)).
			Render(strings.Repeat("█", width))
		b.WriteString(fmt.Sprintf("\n%-6s %s %5.1f%%", slice.Symbol, bar, slice.Fraction*100))
	}
	return b.String()
}

func (v portfolioView) renderProfitLoss(snap portfolio.Snapshot) string {
	points := portfolio.ProfitLossSeries(snap)
	if len(points) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(v.styles.CardTitle.Render("Profit / Loss"))
	for _, p := range points {
		b.WriteString(fmt.Sprintf("\n%-6s %12s  %s",
			p.Symbol,
			renderSigned(p.ProfitLoss, v.styles),
			portfolio.Percent(p.ProfitLossPct)))
	}
	return b.String()
}

func (v portfolioView) renderAlerts(alerts []portfolio.Alert) string {
	var b strings.Builder
	b.WriteString(v.styles.CardTitle.Render("Alerts"))
	for _, a := range alerts {
		state := "active"
		if !a.Active {
			state = "triggered"
		}
		b.WriteString(fmt.Sprintf("\n%-6s %s %s  %s",
			a.Symbol, a.Condition, portfolio.Money(a.Price),
			v.styles.MutedText.Render(state)))
	}
	return b.String()
}
