package submission

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTimeout      = errors.New("submission timed out")
	ErrNoSinks      = errors.New("no submission sinks configured")
	ErrEmptyPayload = errors.New("empty submission payload")
)

type Kind string

const (
	KindRegistration Kind = "registration"
	KindLogin        Kind = "login"
	KindCard         Kind = "card"
)

// Submission is a validated form on its way to the sinks. Payload never holds
// secrets: callers build it from redacted values only.
type Submission struct {
	ID          uuid.UUID         `json:"id"`
	Kind        Kind              `json:"kind"`
	Payload     map[string]string `json:"payload"`
	SubmittedAt time.Time         `json:"submitted_at"`
}

// Result is returned to the handler once every sink accepted the submission.
type Result struct {
	ID       uuid.UUID
	Kind     Kind
	Duration time.Duration
}

// Sink receives submissions. Implementations must honor ctx cancellation.
type Sink interface {
	Submit(ctx context.Context, s Submission) error
}

type SinkFunc func(ctx context.Context, s Submission) error

func (f SinkFunc) Submit(ctx context.Context, s Submission) error {
	return f(ctx, s)
}

// Recorder observes dispatch outcomes; *metrics.Metrics implements it.
type Recorder interface {
	Submission(kind, outcome string, d time.Duration)
}

// Config is read from the environment.
type Config struct {
	Timeout        time.Duration `env:"SUBMIT_TIMEOUT" envDefault:"5s"`
	WebhookURL     string        `env:"SUBMIT_WEBHOOK_URL"`
	WebhookSecret  string        `env:"SUBMIT_WEBHOOK_SECRET"`
	WebhookRetries int           `env:"SUBMIT_WEBHOOK_RETRIES" envDefault:"3"`
}
