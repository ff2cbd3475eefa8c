package tests

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"faregateway/internal/domain"
	"faregateway/internal/service"
)

// ──────────────────────────────────────────────
// MOCK PAYMENT GATEWAY
// ──────────────────────────────────────────────

// MockGateway is a mock implementation of service.PaymentGateway.
type MockGateway struct {
	mu          sync.Mutex
	LastRequest service.GatewayOrderRequest

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
}

// NewMockGateway creates a new mock payment gateway.
func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (m *MockGateway) CreateOrder(ctx context.Context, req service.GatewayOrderRequest) (*domain.PaymentOrder, error) {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return nil, m.CreateError
	}
	m.mu.Lock()
	m.LastRequest = req
	m.mu.Unlock()
	return &domain.PaymentOrder{
		ID:               "order_test_1",
		AmountMinorUnits: req.AmountMinorUnits,
		Currency:         req.Currency,
		Receipt:          req.Receipt,
		Status:           domain.OrderStatusCreated,
	}, nil
}

// Request returns the last submitted order request.
func (m *MockGateway) Request() service.GatewayOrderRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.LastRequest
}

// ──────────────────────────────────────────────
// MOCK BOT CHECKER
// ──────────────────────────────────────────────

// MockBotChecker is a mock implementation of service.BotChecker.
type MockBotChecker struct {
	VerifyCallCount int32

	// Error injection
	VerifyError error
}

// NewMockBotChecker creates a bot checker that accepts every token.
func NewMockBotChecker() *MockBotChecker {
	return &MockBotChecker{}
}

func (m *MockBotChecker) Verify(ctx context.Context, token string) error {
	atomic.AddInt32(&m.VerifyCallCount, 1)
	return m.VerifyError
}

// ──────────────────────────────────────────────
// MOCK NOTIFIER
// ──────────────────────────────────────────────

// MockNotifier records delivered enquiries.
type MockNotifier struct {
	mu        sync.Mutex
	Enquiries []*domain.Enquiry

	// Error injection
	NotifyError error
}

// NewMockNotifier creates a new mock notifier.
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) NotifyEnquiry(ctx context.Context, enquiry *domain.Enquiry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.NotifyError != nil {
		return m.NotifyError
	}
	m.Enquiries = append(m.Enquiries, enquiry)
	return nil
}

// Delivered returns the recorded enquiries.
func (m *MockNotifier) Delivered() []*domain.Enquiry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.Enquiry(nil), m.Enquiries...)
}

// ──────────────────────────────────────────────
// MOCK RESPONSE CACHE
// ──────────────────────────────────────────────

// MockResponseCache is an in-memory implementation of middleware.ResponseCache.
type MockResponseCache struct {
	mu      sync.Mutex
	entries map[string][]byte

	// Error injection
	GetError error
	SetError error
}

// NewMockResponseCache creates a new mock response cache.
func NewMockResponseCache() *MockResponseCache {
	return &MockResponseCache{
		entries: make(map[string][]byte),
	}
}

func (m *MockResponseCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.entries[key]
	if !ok {
		return nil, nil
	}
	return data, nil
}

func (m *MockResponseCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if m.SetError != nil {
		return m.SetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = data
	return nil
}

// testDistances builds the distance table used across fare tests. Each pair
// is registered in one direction only.
func testDistances() *domain.StaticDistanceTable {
	return domain.NewStaticDistanceTable(map[domain.Stop]map[domain.Stop]float64{
		"varanasi": {
			"prayagraj": 120,
			"sarnath":   12,
		},
		"prayagraj": {
			"ayodhya": 165,
		},
	})
}
