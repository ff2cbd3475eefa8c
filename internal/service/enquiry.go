package service

import (
	"context"
	"regexp"

	"faregateway/internal/domain"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9+\-\s]{7,15}$`)
)

// BotChecker validates an anti-abuse token. Implemented by BotVerifier.
type BotChecker interface {
	Verify(ctx context.Context, token string) error
}

// EnquiryService validates and accepts booking enquiries from the public
// contact form.
type EnquiryService struct {
	botChecker BotChecker
	notifier   Notifier
}

// NewEnquiryService creates a new EnquiryService.
func NewEnquiryService(botChecker BotChecker, notifier Notifier) *EnquiryService {
	return &EnquiryService{
		botChecker: botChecker,
		notifier:   notifier,
	}
}

// SubmitEnquiryRequest contains the parameters for an enquiry submission.
type SubmitEnquiryRequest struct {
	Name     string
	Email    string
	Phone    string
	Message  string
	Price    int64
	BotToken string
}

// Submit validates the enquiry and its bot token, then hands it to the
// notifier. Validation and verification failures are terminal; nothing is
// partially processed.
func (s *EnquiryService) Submit(ctx context.Context, req SubmitEnquiryRequest) (*domain.Enquiry, error) {
	if req.Name == "" {
		return nil, &ValidationError{Field: "name"}
	}
	if req.Email == "" || !emailPattern.MatchString(req.Email) {
		return nil, &ValidationError{Field: "email"}
	}
	if req.Phone == "" || !phonePattern.MatchString(req.Phone) {
		return nil, &ValidationError{Field: "phone"}
	}
	if req.Message == "" {
		return nil, &ValidationError{Field: "message"}
	}
	if req.Price < 0 {
		return nil, &ValidationError{Field: "price"}
	}

	if err := s.botChecker.Verify(ctx, req.BotToken); err != nil {
		return nil, err
	}

	enquiry := &domain.Enquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
		Price:   req.Price,
	}

	// Delivery is best effort; the enquiry is already accepted.
	_ = s.notifier.NotifyEnquiry(ctx, enquiry)

	return enquiry, nil
}
