package portfolio

// Holding is one position inside a snapshot. Identity is the symbol within a
// single snapshot; the backend may in principle repeat a symbol and we keep
// whatever it sends.
type Holding struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name,omitempty"`
	Quantity      float64 `json:"quantity"`
	BuyPrice      float64 `json:"buy_price"`
	CurrentPrice  float64 `json:"current_price"`
	CurrentValue  float64 `json:"current_value"`
	CostBasis     float64 `json:"cost_basis,omitempty"`
	ProfitLoss    float64 `json:"profit_loss"`
	ProfitLossPct float64 `json:"profit_loss_pct"`
}

// Snapshot is the full portfolio state as of the last successful fetch.
// It is always replaced wholesale, never patched.
type Snapshot struct {
	TotalValue         float64   `json:"total_value"`
	TotalCost          float64   `json:"total_cost"`
	TotalProfitLoss    float64   `json:"total_profit_loss"`
	TotalProfitLossPct float64   `json:"total_profit_loss_pct"`
	Holdings           []Holding `json:"holdings"`
}

// Alert is a price alert registered with the backend.
type Alert struct {
	Symbol    string  `json:"symbol"`
	Condition string  `json:"condition"`
	Price     float64 `json:"price"`
	Active    bool    `json:"active"`
}

func (s Snapshot) HasHoldings() bool {
	return len(s.Holdings) > 0
}

// AllocationSlice is one holding's share of the portfolio by current value.
type AllocationSlice struct {
	Symbol   string
	Value    float64
	Fraction float64
}

// Allocation derives the value breakdown for the current snapshot, one slice
// per holding in holdings order. It is a pure function of the snapshot and is
// recomputed on every call.
func Allocation(s Snapshot) []AllocationSlice {
	if len(s.Holdings) == 0 {
		return nil
	}

	total := 0.0
	for _, h := range s.Holdings {
		total += h.CurrentValue
	}

	slices := make([]AllocationSlice, len(s.Holdings))
	for i, h := range s.Holdings {
		fraction := 0.0
		if total > 0 {
			fraction = h.CurrentValue / total
		}
		slices[i] = AllocationSlice{
			Symbol:   h.Symbol,
			Value:    h.CurrentValue,
			Fraction: fraction,
		}
	}
	return slices
}

// PLPoint is one holding's profit/loss in holdings order.
type PLPoint struct {
	Symbol        string
	ProfitLoss    float64
	ProfitLossPct float64
}

// ProfitLossSeries derives the per-holding profit/loss series in the same
// order as the snapshot's holdings. Pure, recomputed on every call.
func ProfitLossSeries(s Snapshot) []PLPoint {
	if len(s.Holdings) == 0 {
		return nil
	}

	points := make([]PLPoint, len(s.Holdings))
	for i, h := range s.Holdings {
		points[i] = PLPoint{
			Symbol:        h.Symbol,
			ProfitLoss:    h.ProfitLoss,
			ProfitLossPct: h.ProfitLossPct,
		}
	}
	return points
}
