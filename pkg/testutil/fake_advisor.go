package testutil

import (
	"context"
	"fmt"

	"github.com/foliochat/foliochat/pkg/advisor"
	"github.com/foliochat/foliochat/pkg/payload"
	"github.com/foliochat/foliochat/pkg/portfolio"
)

// FakeAdvisorClient implements advisor.ChatClient for tests. Replies are
// consumed in order; when they run out the last one repeats.
type FakeAdvisorClient struct {
	Replies   []advisor.Reply
	SendErr   error
	Snapshot  portfolio.Snapshot
	FetchErr  error
	AlertList []portfolio.Alert
	AlertsErr error
	StockInfo payload.StockInfo
	StockErr  error

	SentMessages   []string
	PortfolioCalls int
	AlertCalls     int

	replyIndex int
}

var _ advisor.ChatClient = (*FakeAdvisorClient)(nil)

// NewFakeAdvisorClient creates a fake that answers every send with the given
// plain-text replies.
func NewFakeAdvisorClient(responses ...string) *FakeAdvisorClient {
	replies := make([]advisor.Reply, len(responses))
	for i, r := range responses {
		replies[i] = advisor.Reply{Payload: payload.Text(r)}
	}
	return &FakeAdvisorClient{Replies: replies}
}

func (f *FakeAdvisorClient) SendMessage(_ context.Context, text, _ string) (advisor.Reply, error) {
	f.SentMessages = append(f.SentMessages, text)
	if f.SendErr != nil {
		return advisor.Reply{}, f.SendErr
	}
	if len(f.Replies) == 0 {
		return advisor.Reply{Payload: payload.Text("ok")}, nil
	}

	reply := f.Replies[f.replyIndex]
	if f.replyIndex < len(f.Replies)-1 {
		f.replyIndex++
	}
	return reply, nil
}

func (f *FakeAdvisorClient) FetchPortfolio(_ context.Context, _ string) (portfolio.Snapshot, error) {
	f.PortfolioCalls++
	if f.FetchErr != nil {
		return portfolio.Snapshot{}, f.FetchErr
	}
	return f.Snapshot, nil
}

func (f *FakeAdvisorClient) FetchAlerts(_ context.Context, _ string) ([]portfolio.Alert, error) {
	f.AlertCalls++
	if f.AlertsErr != nil {
		return nil, f.AlertsErr
	}
	return f.AlertList, nil
}

func (f *FakeAdvisorClient) FetchStock(_ context.Context, symbol string) (payload.StockInfo, error) {
	if f.StockErr != nil {
		return payload.StockInfo{}, f.StockErr
	}
	if f.StockInfo.Symbol == "" {
		return payload.StockInfo{}, fmt.Errorf("No data found for %s", symbol)
	}
	return f.StockInfo, nil
}
