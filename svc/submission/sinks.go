package submission

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/dmitrymomot/signup/pkg/logger"
	"github.com/dmitrymomot/signup/pkg/webhook"
)

// LogSink writes each submission as one structured log record.
type LogSink struct {
	log *slog.Logger
}

func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Submit(ctx context.Context, sub Submission) error {
	attrs := make([]any, 0, len(sub.Payload))
	for _, k := range slices.Sorted(maps.Keys(sub.Payload)) {
		attrs = append(attrs, slog.String(k, sub.Payload[k]))
	}
	s.log.LogAttrs(ctx, slog.LevelInfo, "form submitted",
		logger.SubmissionID(sub.ID),
		logger.Kind(string(sub.Kind)),
		logger.Event("form_submitted"),
		slog.Group("payload", attrs...),
	)
	return nil
}

// WebhookSink posts submissions as "signup.<kind>" events.
type WebhookSink struct {
	client *webhook.Client
}

func NewWebhookSink(c *webhook.Client) *WebhookSink {
	return &WebhookSink{client: c}
}

func (s *WebhookSink) Submit(ctx context.Context, sub Submission) error {
	_, err := s.client.Send(ctx, "signup."+string(sub.Kind), sub)
	return err
}

// MemorySink keeps submissions in memory. Development runs and tests read
// them back with All.
type MemorySink struct {
	mu   sync.Mutex
	subs []Submission
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Submit(ctx context.Context, sub Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	s.subs = append(s.subs, sub)
	s.mu.Unlock()
	return nil
}

func (s *MemorySink) All() []Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.subs)
}
