package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/foliochat/foliochat/pkg/payload"
	"github.com/foliochat/foliochat/pkg/portfolio"
)

// ChatClient is the surface the session controller talks to. Every call is a
// single best-effort attempt; there are no retries.
type ChatClient interface {
	SendMessage(ctx context.Context, text, userID string) (Reply, error)
	FetchPortfolio(ctx context.Context, userID string) (portfolio.Snapshot, error)
	FetchAlerts(ctx context.Context, userID string) ([]portfolio.Alert, error)
	FetchStock(ctx context.Context, symbol string) (payload.StockInfo, error)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SendMessage posts one chat message and decodes the response payload exactly
// once at this boundary. The returned Reply carries the classified payload.
func (c *Client) SendMessage(ctx context.Context, text, userID string) (Reply, error) {
	reqBody, err := json.Marshal(chatRequest{Message: text, UserID: userID})
	if err != nil {
		return Reply{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/chat", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(reqBody))
	if err != nil {
		return Reply{}, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Reply{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Reply{}, fmt.Errorf("chat request failed with status %d", resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return Reply{}, fmt.Errorf("failed to decode chat response: %w", err)
	}

	return Reply{
		Payload: payload.Decode(chatResp.Response),
		Intent:  chatResp.Intent,
	}, nil
}

// FetchPortfolio reads the current portfolio snapshot. A body that is not a
// holdings shape (backend error, "no holdings" message) yields an error and
// no snapshot; callers absorb it without touching conversation history.
func (c *Client) FetchPortfolio(ctx context.Context, userID string) (portfolio.Snapshot, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/portfolio/%s", c.baseURL, userID))
	if err != nil {
		return portfolio.Snapshot{}, err
	}

	p := payload.Decode(body)
	switch p.Kind {
	case payload.KindHoldings:
		return p.Snapshot, nil
	case payload.KindError:
		return portfolio.Snapshot{}, fmt.Errorf("portfolio unavailable: %s", p.Text)
	default:
		return portfolio.Snapshot{}, fmt.Errorf("no portfolio data")
	}
}

// FetchAlerts reads the user's active price alerts.
func (c *Client) FetchAlerts(ctx context.Context, userID string) ([]portfolio.Alert, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/alerts/%s", c.baseURL, userID))
	if err != nil {
		return nil, err
	}

	var alertsResp alertsResponse
	if err := json.Unmarshal(body, &alertsResp); err != nil {
		return nil, fmt.Errorf("failed to decode alerts response: %w", err)
	}

	alerts := make([]portfolio.Alert, len(alertsResp.Alerts))
	for i, a := range alertsResp.Alerts {
		alerts[i] = portfolio.Alert{
			Symbol:    a.Symbol,
			Condition: a.Condition,
			Price:     a.Price,
			Active:    a.Active,
		}
	}
	return alerts, nil
}

// FetchStock reads a single quote. The backend reports per-symbol failures
// in-band with an error field.
func (c *Client) FetchStock(ctx context.Context, symbol string) (payload.StockInfo, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/stock/%s", c.baseURL, symbol))
	if err != nil {
		return payload.StockInfo{}, err
	}

	var errBody struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &errBody); err != nil {
		return payload.StockInfo{}, fmt.Errorf("failed to decode stock response: %w", err)
	}
	if errBody.Error != "" {
		return payload.StockInfo{}, fmt.Errorf("%s", errBody.Error)
	}

	var info payload.StockInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return payload.StockInfo{}, fmt.Errorf("failed to decode stock response: %w", err)
	}
	return info, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}
