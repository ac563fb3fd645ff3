package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/foliochat/foliochat/pkg/chat"
	"github.com/foliochat/foliochat/pkg/payload"
	"github.com/foliochat/foliochat/pkg/portfolio"
	"github.com/foliochat/foliochat/pkg/tui/theme"
)

// compactHoldingsLimit caps how many holding rows the in-chat portfolio
// summary shows; the dashboard view shows the full list.
const compactHoldingsLimit = 3

// RenderPayload maps a decoded payload to its display form. The switch is
// exhaustive over payload.Kind and never panics; unknown kinds degrade to a
// diagnostic dump.
func RenderPayload(p payload.Payload, st *theme.Styles) string {
	switch p.Kind {
	case payload.KindText, payload.KindMessage:
		return p.Text
	case payload.KindError:
		return st.ErrorMessage.Render(p.Text)
	case payload.KindStock:
		return renderStockCard(p.Stock, st)
	case payload.KindComparison:
		return renderComparison(p.Comparison, st)
	case payload.KindSimulation:
		return renderSimulation(p.Simulation, st)
	case payload.KindHoldings:
		return renderHoldingsSummary(p.Snapshot, st)
	case payload.KindRaw:
		return st.MutedText.Render(p.Raw)
	default:
		return st.MutedText.Render(fmt.Sprintf("%+v", p))
	}
}

// RenderMessage renders one conversation entry with its role prefix.
func RenderMessage(msg chat.Message, st *theme.Styles) string {
	if msg.IsUser() {
		return st.UserMessage.Render("You: ") + msg.Payload.Text
	}

	body := RenderPayload(msg.Payload, st)
	prefix := st.AssistantMessage.Render("Advisor: ")
	if strings.Contains(body, "\n") {
		return prefix + "\n" + body
	}
	return prefix + body
}

func stockTitle(info payload.StockInfo) string {
	if info.Name != "" && info.Symbol != "" {
		return fmt.Sprintf("%s (%s)", info.Name, info.Symbol)
	}
	if info.Symbol != "" {
		return info.Symbol
	}
	return info.Name
}

func renderStockCard(info payload.StockInfo, st *theme.Styles) string {
	var b strings.Builder
	b.WriteString(st.CardTitle.Render(stockTitle(info)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Price: %s", portfolio.Money(info.CurrentPrice)))
	b.WriteString(fmt.Sprintf("  Day: %s", renderSigned(info.DayChange, st)))
	if info.Sector != "" {
		b.WriteString(fmt.Sprintf("\nSector: %s", info.Sector))
	}
	return b.String()
}

func renderComparison(cmp map[string]payload.StockInfo, st *theme.Styles) string {
	if len(cmp) == 0 {
		return st.MutedText.Render("Nothing to compare")
	}

	symbols := make([]string, 0, len(cmp))
	for symbol := range cmp {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	cards := make([]string, 0, len(symbols))
	for _, symbol := range symbols {
		info := cmp[symbol]
		var b strings.Builder
		b.WriteString(st.CardTitle.Render(stockTitle(info)))
		b.WriteString(fmt.Sprintf("\nPrice: %s", portfolio.Money(info.CurrentPrice)))
		if info.Sector != "" {
			b.WriteString(fmt.Sprintf("  Sector: %s", info.Sector))
		}
		cards = append(cards, b.String())
	}
	return strings.Join(cards, "\n\n")
}

func renderSimulation(sim payload.Simulation, st *theme.Styles) string {
	var b strings.Builder
	b.WriteString(st.CardTitle.Render(fmt.Sprintf("What if: buy %s x %s", trimQuantity(sim.Quantity), sim.Symbol)))
	b.WriteString(fmt.Sprintf("\nPrice per share: %s", portfolio.Money(sim.PricePerShare)))
	b.WriteString(fmt.Sprintf("\nTotal cost: %s", portfolio.Money(sim.TotalCost)))
	b.WriteString(fmt.Sprintf("\nPortfolio value: %s -> %s",
		portfolio.Money(sim.CurrentPortfolioValue),
		portfolio.Money(sim.NewPortfolioValue)))
	return b.String()
}

func renderHoldingsSummary(snap portfolio.Snapshot, st *theme.Styles) string {
	var b strings.Builder
	b.WriteString(st.CardTitle.Render("Portfolio summary"))
	b.WriteString(fmt.Sprintf("\nTotal value: %s", portfolio.Money(snap.TotalValue)))
	b.WriteString(fmt.Sprintf("\nTotal P&L: %s (%s)",
		renderSigned(snap.TotalProfitLoss, st),
		portfolio.Percent(snap.TotalProfitLossPct)))

	shown := snap.Holdings
	if len(shown) > compactHoldingsLimit {
		shown = shown[:compactHoldingsLimit]
	}
	for _, h := range shown {
		b.WriteString(fmt.Sprintf("\n  %-6s %s  %s",
			h.Symbol,
			portfolio.Money(h.CurrentValue),
			renderSigned(h.ProfitLoss, st)))
	}
	if rest := len(snap.Holdings) - len(shown); rest > 0 {
		b.WriteString("\n")
		b.WriteString(st.MutedText.Render(fmt.Sprintf("  … and %d more", rest)))
	}
	return b.String()
}

// renderSigned styles a money delta by sign: non-negative values get the
// positive style, negative ones the negative style.
func renderSigned(v float64, st *theme.Styles) string {
	s := portfolio.SignedMoney(v)
	if v < 0 {
		return st.NegativeValue.Render(s)
	}
	return st.PositiveValue.Render(s)
}

func trimQuantity(q float64) string {
	s := fmt.Sprintf("%.2f", q)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
