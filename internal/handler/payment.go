package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"faregateway/internal/domain"
	"faregateway/internal/service"
)

// PaymentHandler handles HTTP requests for payment orders and verification.
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreateOrderRequest is the HTTP request body for creating a payment order.
// Amount is in major currency units (rupees).
type CreateOrderRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Receipt  string  `json:"receipt"`
}

// OrderResponse is the HTTP response for a created payment order.
type OrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// CreateOrder handles POST /v1/payments/orders
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	order, err := h.paymentService.CreateOrder(c.Request.Context(), req.Amount, req.Currency, req.Receipt)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, OrderResponse{
		ID:       order.ID,
		Amount:   order.AmountMinorUnits,
		Currency: order.Currency,
		Receipt:  order.Receipt,
		Status:   string(order.Status),
	})
}

// VerifyPaymentRequest is the HTTP request body for the post-checkout callback.
type VerifyPaymentRequest struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}

// VerifyPayment handles POST /v1/payments/verify
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	err := h.paymentService.VerifySignature(domain.PaymentConfirmation{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		if errors.Is(err, service.ErrSignatureMismatch) {
			c.JSON(http.StatusBadRequest, gin.H{"verified": false, "reason": "mismatch"})
			return
		}
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"verified": true})
}
