package service

import (
	"errors"
	"fmt"

	"faregateway/internal/domain"
)

var (
	// ErrEmptyRoute is returned when a fare is requested for a route with no stops.
	ErrEmptyRoute = errors.New("route must contain at least one stop")

	// ErrUnknownVehicleClass is returned when the vehicle class id is not in the fixed set.
	ErrUnknownVehicleClass = errors.New("unknown vehicle class")

	// ErrForbiddenOrigin is returned when the request origin is not allow-listed.
	ErrForbiddenOrigin = errors.New("forbidden origin")

	// ErrRateLimitExceeded is returned when a client key exhausts its window budget.
	ErrRateLimitExceeded = errors.New("too many requests")

	// ErrInvalidAmount is returned when a payment order amount is not positive.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrMissingParameters is returned when a payment confirmation omits a required field.
	ErrMissingParameters = errors.New("missing required parameters")

	// ErrSignatureMismatch is returned when a payment signature fails verification.
	ErrSignatureMismatch = errors.New("invalid signature")
)

// ValidationError reports a rejected enquiry field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s", e.Field)
}

// MissingDistanceError reports the specific leg for which no distance is
// registered. Fare computation aborts entirely; no partial breakdown exists.
type MissingDistanceError struct {
	From domain.Stop
	To   domain.Stop
}

func (e *MissingDistanceError) Error() string {
	return fmt.Sprintf("distance not found for leg %s -> %s", e.From, e.To)
}

// BotRejectReason classifies why a bot verification was rejected.
type BotRejectReason string

const (
	BotRejectMissingToken       BotRejectReason = "MISSING_TOKEN"
	BotRejectInvalid            BotRejectReason = "INVALID"
	BotRejectLowScore           BotRejectReason = "LOW_SCORE"
	BotRejectServiceUnavailable BotRejectReason = "SERVICE_UNAVAILABLE"
)

// BotVerificationError reports a failed bot-score verification. An unreachable
// verifier is reported as ServiceUnavailable, never treated as a pass.
type BotVerificationError struct {
	Reason BotRejectReason
}

func (e *BotVerificationError) Error() string {
	return fmt.Sprintf("bot verification failed: %s", e.Reason)
}

// GatewayError wraps a payment gateway failure. The cause is kept for logs
// and never exposed at the HTTP boundary.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway %s failed: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
