package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"faregateway/internal/domain"
)

// HTTPGateway talks to a Razorpay-style REST gateway.
type HTTPGateway struct {
	baseURL   string
	keyID     string
	keySecret string
	client    *http.Client
}

// NewHTTPGateway creates a gateway client authenticated with the key pair.
func NewHTTPGateway(baseURL, keyID, keySecret string, timeout time.Duration) *HTTPGateway {
	return &HTTPGateway{
		baseURL:   baseURL,
		keyID:     keyID,
		keySecret: keySecret,
		client:    &http.Client{Timeout: timeout},
	}
}

type gatewayOrderPayload struct {
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	Receipt        string `json:"receipt"`
	PaymentCapture int    `json:"payment_capture"`
}

type gatewayOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// CreateOrder submits an order to the gateway and returns the created order.
func (g *HTTPGateway) CreateOrder(ctx context.Context, req GatewayOrderRequest) (*domain.PaymentOrder, error) {
	payload := gatewayOrderPayload{
		Amount:   req.AmountMinorUnits,
		Currency: req.Currency,
		Receipt:  req.Receipt,
	}
	if req.AutoCapture {
		payload.PaymentCapture = 1
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.SetBasicAuth(g.keyID, g.keySecret)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain without echoing the gateway's body into the error chain.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var created gatewayOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, err
	}

	return &domain.PaymentOrder{
		ID:               created.ID,
		AmountMinorUnits: created.Amount,
		Currency:         created.Currency,
		Receipt:          created.Receipt,
		Status:           domain.OrderStatus(created.Status),
	}, nil
}
