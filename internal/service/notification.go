package service

import (
	"context"
	"log"

	"faregateway/internal/domain"
)

// Notifier delivers accepted enquiries to the operations team.
type Notifier interface {
	NotifyEnquiry(ctx context.Context, enquiry *domain.Enquiry) error
}

// LogNotifier writes enquiry notifications to the process log.
// In a real deployment this would be backed by:
// - Email client (SendGrid)
// - WhatsApp Business API
type LogNotifier struct{}

// NewLogNotifier creates a new LogNotifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// NotifyEnquiry logs the enquiry. Contact details are kept out of the log;
// only minimal PII is recorded.
func (n *LogNotifier) NotifyEnquiry(ctx context.Context, enquiry *domain.Enquiry) error {
	log.Printf("[NOTIFY] enquiry received: name=%s price=%d", enquiry.Name, enquiry.Price)
	return nil
}
