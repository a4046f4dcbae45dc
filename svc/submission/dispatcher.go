package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/signup/pkg/async"
	"github.com/dmitrymomot/signup/pkg/logger"
)

const (
	outcomeDelivered = "delivered"
	outcomeFailed    = "failed"
	outcomeTimeout   = "timeout"
)

// Dispatcher fans a submission out to every sink concurrently and waits for
// all of them within the configured timeout.
type Dispatcher struct {
	sinks    []Sink
	timeout  time.Duration
	log      *slog.Logger
	recorder Recorder
	now      func() time.Time
}

type Option func(*Dispatcher)

func WithTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) {
		if timeout > 0 {
			d.timeout = timeout
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.log = l
		}
	}
}

func WithRecorder(r Recorder) Option {
	return func(d *Dispatcher) { d.recorder = r }
}

func NewDispatcher(sinks []Sink, opts ...Option) (*Dispatcher, error) {
	if len(sinks) == 0 {
		return nil, ErrNoSinks
	}
	d := &Dispatcher{
		sinks:   sinks,
		timeout: 5 * time.Second,
		log:     slog.New(slog.DiscardHandler),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Dispatch copies payload into a new Submission and delivers it. Sink errors
// are joined; a deadline hit while waiting yields ErrTimeout.
func (d *Dispatcher) Dispatch(ctx context.Context, kind Kind, payload map[string]string) (Result, error) {
	if len(payload) == 0 {
		return Result{}, ErrEmptyPayload
	}

	sub := Submission{
		ID:          uuid.New(),
		Kind:        kind,
		Payload:     maps.Clone(payload),
		SubmittedAt: d.now().UTC(),
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	start := time.Now()
	futures := make([]*async.Future[struct{}], len(d.sinks))
	for i, sink := range d.sinks {
		futures[i] = async.Run(ctx, sub, func(ctx context.Context, s Submission) (struct{}, error) {
			return struct{}{}, sink.Submit(ctx, s)
		})
	}
	_, err := async.All(ctx, futures...)
	elapsed := time.Since(start)

	outcome := outcomeDelivered
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		outcome = outcomeTimeout
		err = fmt.Errorf("%w after %s: %w", ErrTimeout, d.timeout, err)
	case err != nil:
		outcome = outcomeFailed
	}
	if d.recorder != nil {
		d.recorder.Submission(string(kind), outcome, elapsed)
	}

	attrs := []slog.Attr{
		logger.SubmissionID(sub.ID),
		logger.Kind(string(kind)),
		logger.Duration(elapsed),
		logger.Component("submission"),
	}
	if err != nil {
		d.log.LogAttrs(ctx, slog.LevelError, "submission failed", append(attrs, logger.Error(err))...)
		return Result{}, err
	}
	d.log.LogAttrs(ctx, slog.LevelInfo, "submission delivered", attrs...)
	return Result{ID: sub.ID, Kind: kind, Duration: elapsed}, nil
}
