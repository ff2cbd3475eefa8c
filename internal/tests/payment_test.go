package tests

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"faregateway/internal/domain"
	"faregateway/internal/service"
)

const testKeySecret = "test_key_secret"

func signConfirmation(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestCreateOrder_RejectsNonPositiveAmount(t *testing.T) {
	gateway := NewMockGateway()
	paymentService := service.NewPaymentService(gateway, testKeySecret)

	for _, amount := range []float64{0, -5, -0.01} {
		_, err := paymentService.CreateOrder(context.Background(), amount, "INR", "")
		if !errors.Is(err, service.ErrInvalidAmount) {
			t.Errorf("amount %v: expected ErrInvalidAmount, got %v", amount, err)
		}
	}

	if gateway.CreateCallCount != 0 {
		t.Error("invalid amounts must never reach the gateway")
	}
}

func TestCreateOrder_ConvertsToMinorUnits(t *testing.T) {
	gateway := NewMockGateway()
	paymentService := service.NewPaymentService(gateway, testKeySecret)

	order, err := paymentService.CreateOrder(context.Background(), 499.99, "", "rcpt_abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := gateway.Request()
	if req.AmountMinorUnits != 49999 {
		t.Errorf("expected 49999 minor units, got %d", req.AmountMinorUnits)
	}
	if req.Currency != "INR" {
		t.Errorf("expected default currency INR, got %s", req.Currency)
	}
	if !req.AutoCapture {
		t.Error("orders must be submitted with auto-capture enabled")
	}
	if order.Receipt != "rcpt_abc" {
		t.Errorf("caller-supplied receipt must be preserved, got %s", order.Receipt)
	}
}

func TestCreateOrder_GeneratesReceiptWhenAbsent(t *testing.T) {
	gateway := NewMockGateway()
	paymentService := service.NewPaymentService(gateway, testKeySecret)

	first, err := paymentService.CreateOrder(context.Background(), 100, "INR", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := paymentService.CreateOrder(context.Background(), 100, "INR", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(first.Receipt, "rcpt_") {
		t.Errorf("generated receipt should carry the rcpt_ prefix, got %s", first.Receipt)
	}
	if first.Receipt == second.Receipt {
		t.Error("generated receipts must not collide")
	}
}

func TestCreateOrder_WrapsGatewayFailure(t *testing.T) {
	gateway := NewMockGateway()
	gateway.CreateError = errors.New("connection refused")
	paymentService := service.NewPaymentService(gateway, testKeySecret)

	_, err := paymentService.CreateOrder(context.Background(), 100, "INR", "")
	var gatewayErr *service.GatewayError
	if !errors.As(err, &gatewayErr) {
		t.Fatalf("expected GatewayError, got %T: %v", err, err)
	}
}

func TestVerifySignature_AcceptsValidSignature(t *testing.T) {
	paymentService := service.NewPaymentService(NewMockGateway(), testKeySecret)

	err := paymentService.VerifySignature(domain.PaymentConfirmation{
		OrderID:   "order_123",
		PaymentID: "pay_456",
		Signature: signConfirmation(testKeySecret, "order_123", "pay_456"),
	})
	if err != nil {
		t.Errorf("expected verification to pass, got %v", err)
	}
}

func TestVerifySignature_RejectsTamperedFields(t *testing.T) {
	paymentService := service.NewPaymentService(NewMockGateway(), testKeySecret)
	signature := signConfirmation(testKeySecret, "order_123", "pay_456")

	testCases := []struct {
		name      string
		orderID   string
		paymentID string
	}{
		{"flipped order id", "order_124", "pay_456"},
		{"flipped payment id", "order_123", "pay_457"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := paymentService.VerifySignature(domain.PaymentConfirmation{
				OrderID:   tc.orderID,
				PaymentID: tc.paymentID,
				Signature: signature,
			})
			if !errors.Is(err, service.ErrSignatureMismatch) {
				t.Errorf("expected ErrSignatureMismatch, got %v", err)
			}
		})
	}
}

func TestVerifySignature_RejectsWrongSecret(t *testing.T) {
	paymentService := service.NewPaymentService(NewMockGateway(), testKeySecret)

	err := paymentService.VerifySignature(domain.PaymentConfirmation{
		OrderID:   "order_123",
		PaymentID: "pay_456",
		Signature: signConfirmation("other_secret", "order_123", "pay_456"),
	})
	if !errors.Is(err, service.ErrSignatureMismatch) {
		t.Errorf("expected ErrSignatureMismatch, got %v", err)
	}
}

func TestVerifySignature_MissingFieldsAreNotAMismatch(t *testing.T) {
	paymentService := service.NewPaymentService(NewMockGateway(), testKeySecret)
	signature := signConfirmation(testKeySecret, "order_123", "pay_456")

	testCases := []struct {
		name         string
		confirmation domain.PaymentConfirmation
	}{
		{"empty signature", domain.PaymentConfirmation{OrderID: "order_123", PaymentID: "pay_456"}},
		{"empty order id", domain.PaymentConfirmation{PaymentID: "pay_456", Signature: signature}},
		{"empty payment id", domain.PaymentConfirmation{OrderID: "order_123", Signature: signature}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := paymentService.VerifySignature(tc.confirmation)
			if !errors.Is(err, service.ErrMissingParameters) {
				t.Errorf("expected ErrMissingParameters, got %v", err)
			}
			if errors.Is(err, service.ErrSignatureMismatch) {
				t.Error("a missing field must not be reported as a mismatch")
			}
		})
	}
}
