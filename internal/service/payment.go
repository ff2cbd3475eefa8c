package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"faregateway/internal/domain"
)

// PaymentGateway is the interface to the external payment provider.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, req GatewayOrderRequest) (*domain.PaymentOrder, error)
}

// GatewayOrderRequest contains the parameters submitted to the gateway.
type GatewayOrderRequest struct {
	AmountMinorUnits int64
	Currency         string
	Receipt          string
	AutoCapture      bool
}

// PaymentService creates payment orders and verifies completed payments.
type PaymentService struct {
	gateway   PaymentGateway
	keySecret string
}

// NewPaymentService creates a new PaymentService. keySecret is the gateway
// shared secret used for signature verification.
func NewPaymentService(gateway PaymentGateway, keySecret string) *PaymentService {
	return &PaymentService{
		gateway:   gateway,
		keySecret: keySecret,
	}
}

// CreateOrder creates a payment intent for the given amount in major currency
// units. Non-positive amounts are rejected outright, never substituted with a
// default. Auto-capture is always enabled: capture happens on successful
// payment with no manual step.
func (s *PaymentService) CreateOrder(ctx context.Context, amountMajor float64, currency, receipt string) (*domain.PaymentOrder, error) {
	if amountMajor <= 0 {
		return nil, ErrInvalidAmount
	}

	if currency == "" {
		currency = "INR"
	}
	if receipt == "" {
		receipt = generateReceipt()
	}

	order, err := s.gateway.CreateOrder(ctx, GatewayOrderRequest{
		AmountMinorUnits: roundHalfUp(amountMajor * 100),
		Currency:         currency,
		Receipt:          receipt,
		AutoCapture:      true,
	})
	if err != nil {
		return nil, &GatewayError{Op: "create order", Err: err}
	}
	return order, nil
}

// VerifySignature checks a post-checkout confirmation against the shared
// secret. All three fields are mandatory; an absent field is a precondition
// failure, not a mismatch. Only the boolean outcome is ever logged.
func (s *PaymentService) VerifySignature(confirmation domain.PaymentConfirmation) error {
	if confirmation.OrderID == "" || confirmation.PaymentID == "" || confirmation.Signature == "" {
		return ErrMissingParameters
	}

	mac := hmac.New(sha256.New, []byte(s.keySecret))
	mac.Write([]byte(confirmation.OrderID + "|" + confirmation.PaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(confirmation.Signature)) {
		log.Printf("payment signature verification failed: order=%s", confirmation.OrderID)
		return ErrSignatureMismatch
	}
	return nil
}

// generateReceipt builds a collision-resistant receipt identifier.
func generateReceipt() string {
	return fmt.Sprintf("rcpt_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
