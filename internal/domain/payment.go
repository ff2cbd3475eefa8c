package domain

// OrderStatus represents the gateway-side status of a payment order.
type OrderStatus string

const (
	OrderStatusCreated OrderStatus = "created"
	OrderStatusPaid    OrderStatus = "paid"
)

// PaymentOrder is a payment intent created against the gateway before
// checkout. Immutable after creation.
type PaymentOrder struct {
	ID               string
	AmountMinorUnits int64
	Currency         string
	Receipt          string
	Status           OrderStatus
}

// PaymentConfirmation is the post-checkout callback payload. It is verified
// once and either accepted or rejected, never partially trusted.
type PaymentConfirmation struct {
	OrderID   string
	PaymentID string
	Signature string
}
