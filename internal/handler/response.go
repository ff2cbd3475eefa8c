package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"faregateway/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
// Gateway causes and other internal detail never reach the body.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal error"
	}
	if code == http.StatusBadGateway {
		message = "payment gateway error"
	}
	c.JSON(code, ErrorResponse{Error: message})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	var validationErr *service.ValidationError
	var missingDistErr *service.MissingDistanceError
	var botErr *service.BotVerificationError
	var gatewayErr *service.GatewayError

	switch {
	// Validation errors - Bad Request
	case errors.As(err, &validationErr),
		errors.Is(err, service.ErrEmptyRoute),
		errors.Is(err, service.ErrUnknownVehicleClass),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrMissingParameters),
		errors.Is(err, service.ErrSignatureMismatch):
		return http.StatusBadRequest

	// A quote for an unregistered pair is well-formed but unpriceable.
	case errors.As(err, &missingDistErr):
		return http.StatusUnprocessableEntity

	case errors.Is(err, service.ErrForbiddenOrigin):
		return http.StatusForbidden

	case errors.Is(err, service.ErrRateLimitExceeded):
		return http.StatusTooManyRequests

	// Bot rejections are client errors except when the verifier itself is down.
	case errors.As(err, &botErr):
		if botErr.Reason == service.BotRejectServiceUnavailable {
			return http.StatusServiceUnavailable
		}
		return http.StatusBadRequest

	case errors.As(err, &gatewayErr):
		return http.StatusBadGateway

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
