package webhook

import "errors"

var (
	ErrDeliveryFailed   = errors.New("webhook delivery failed")
	ErrPermanentFailure = errors.New("webhook rejected the event")
	ErrCircuitOpen      = errors.New("webhook circuit breaker is open")
	ErrInvalidURL       = errors.New("invalid webhook URL")
	ErrInvalidPayload   = errors.New("invalid webhook payload")
	ErrInvalidSignature = errors.New("invalid webhook signature")
)
