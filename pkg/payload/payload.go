package payload

import (
	"encoding/json"

	"github.com/foliochat/foliochat/pkg/portfolio"
)

// Kind identifies the render variant of a backend response. Exactly one kind
// applies per payload; classification order is fixed and first-match-wins.
type Kind int

const (
	KindText Kind = iota
	KindError
	KindMessage
	KindStock
	KindComparison
	KindSimulation
	KindHoldings
	KindRaw
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindError:
		return "error"
	case KindMessage:
		return "message"
	case KindStock:
		return "stock"
	case KindComparison:
		return "comparison"
	case KindSimulation:
		return "simulation"
	case KindHoldings:
		return "holdings"
	case KindRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// StockInfo is the backend's single-stock quote shape.
type StockInfo struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	CurrentPrice float64 `json:"current_price"`
	Currency     string  `json:"currency,omitempty"`
	Sector       string  `json:"sector,omitempty"`
	MarketCap    float64 `json:"market_cap,omitempty"`
	DayChange    float64 `json:"day_change"`
}

// Simulation is the backend's what-if purchase shape.
type Simulation struct {
	Symbol                string  `json:"symbol"`
	Quantity              float64 `json:"quantity"`
	PricePerShare         float64 `json:"price_per_share"`
	TotalCost             float64 `json:"total_cost"`
	CurrentPortfolioValue float64 `json:"current_portfolio_value"`
	NewPortfolioValue     float64 `json:"new_portfolio_value"`
}

// Payload is the decoded form of one backend chat response. The zero value is
// an empty text payload. Only the field matching Kind is populated.
type Payload struct {
	Kind       Kind
	Text       string
	Stock      StockInfo
	Comparison map[string]StockInfo
	Simulation Simulation
	Snapshot   portfolio.Snapshot
	Raw        string
}

func Text(s string) Payload  { return Payload{Kind: KindText, Text: s} }
func Error(s string) Payload { return Payload{Kind: KindError, Text: s} }

func (p Payload) IsError() bool { return p.Kind == KindError }

// Decode classifies one backend response value into a Payload. The predicates
// are tested in a fixed priority order and the first match wins; later fields
// are not consulted even when present. Decode never fails: anything it cannot
// make sense of becomes a Raw diagnostic dump of the original JSON.
func Decode(raw json.RawMessage) Payload {
	if len(raw) == 0 {
		return Text("")
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return Text(s)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return rawDump(raw)
	}

	if v, ok := fields["error"]; ok {
		return Payload{Kind: KindError, Text: decodeString(v)}
	}
	if v, ok := fields["message"]; ok {
		return Payload{Kind: KindMessage, Text: decodeString(v)}
	}
	if v, ok := fields["stock_info"]; ok {
		var info StockInfo
		if err := json.Unmarshal(v, &info); err != nil {
			return rawDump(raw)
		}
		// The backend wraps per-symbol errors inside stock_info.
		if nested := decodeNestedError(v); nested != "" {
			return Payload{Kind: KindError, Text: nested}
		}
		return Payload{Kind: KindStock, Stock: info}
	}
	if v, ok := fields["comparison"]; ok {
		var cmp map[string]StockInfo
		if err := json.Unmarshal(v, &cmp); err != nil {
			return rawDump(raw)
		}
		return Payload{Kind: KindComparison, Comparison: cmp}
	}
	if v, ok := fields["simulation"]; ok {
		var sim Simulation
		if err := json.Unmarshal(v, &sim); err != nil {
			return rawDump(raw)
		}
		return Payload{Kind: KindSimulation, Simulation: sim}
	}
	if _, ok := fields["holdings"]; ok {
		var snap portfolio.Snapshot
		if err := json.Unmarshal(raw, &snap); err != nil {
			return rawDump(raw)
		}
		return Payload{Kind: KindHoldings, Snapshot: snap}
	}

	return rawDump(raw)
}

func rawDump(raw json.RawMessage) Payload {
	return Payload{Kind: KindRaw, Raw: string(raw)}
}

func decodeString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return string(raw)
	}
	return s
}

func decodeNestedError(raw json.RawMessage) string {
	var wrapped struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return ""
	}
	return wrapped.Error
}
