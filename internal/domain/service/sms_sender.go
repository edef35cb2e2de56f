package service

import (
	"context"
)

// SMSJob is the payload handed to queue- or HTTP-based SMS gateways.
type SMSJob struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Phone     string `json:"phone"`
	Message   string `json:"message"`
}

// SMSSender delivers a plain-text message to a phone number.
type SMSSender interface {
	// SendSMS hands the message to the provider and returns the provider's message ID.
	// It does not wait for handset delivery.
	SendSMS(ctx context.Context, phone, message string) (string, error)

	// Close releases any resources held by the sender
	Close() error
}
