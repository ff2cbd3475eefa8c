package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// BotVerifier validates a client-supplied anti-abuse token against an
// external scoring service. Any failure to reach or parse the service is a
// rejection: the check fails closed.
type BotVerifier struct {
	endpoint  string
	secret    string
	threshold float64
	client    *http.Client
}

// NewBotVerifier creates a new BotVerifier. The timeout bounds the external
// call; a timed-out verification is rejected as ServiceUnavailable.
func NewBotVerifier(endpoint, secret string, threshold float64, timeout time.Duration) *BotVerifier {
	return &BotVerifier{
		endpoint:  endpoint,
		secret:    secret,
		threshold: threshold,
		client:    &http.Client{Timeout: timeout},
	}
}

// verifyResponse is the scoring service's answer. Score is optional.
type verifyResponse struct {
	Success bool     `json:"success"`
	Score   *float64 `json:"score"`
}

// Verify checks the token and returns nil when the client is verified.
// An empty token is rejected without a network call.
func (v *BotVerifier) Verify(ctx context.Context, token string) error {
	if token == "" {
		return &BotVerificationError{Reason: BotRejectMissingToken}
	}

	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return &BotVerificationError{Reason: BotRejectServiceUnavailable}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return &BotVerificationError{Reason: BotRejectServiceUnavailable}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &BotVerificationError{Reason: BotRejectServiceUnavailable}
	}

	var result verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return &BotVerificationError{Reason: BotRejectServiceUnavailable}
	}

	if !result.Success {
		return &BotVerificationError{Reason: BotRejectInvalid}
	}
	if result.Score != nil && *result.Score < v.threshold {
		return &BotVerificationError{Reason: BotRejectLowScore}
	}
	return nil
}
