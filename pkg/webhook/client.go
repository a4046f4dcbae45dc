package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Event is the JSON envelope posted to the endpoint.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	Data      any       `json:"data"`
}

// Attempt describes one HTTP round trip of a delivery.
type Attempt struct {
	EventID    string
	Number     int
	StatusCode int
	Duration   time.Duration
	Err        error
}

// Client delivers events to a single endpoint with retries, HMAC signing
// and an optional circuit breaker.
type Client struct {
	url        string
	secret     string
	http       *http.Client
	timeout    time.Duration
	maxRetries int
	backoff    Backoff
	breaker    *Breaker
	userAgent  string
	onAttempt  func(Attempt)
}

type Option func(*Client)

// WithSecret enables signing. Without it no signature headers are sent.
func WithSecret(secret string) Option {
	return func(c *Client) { c.secret = secret }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds each attempt, not the whole delivery.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithMaxRetries(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.maxRetries = n
		}
	}
}

func WithBackoff(b Backoff) Option {
	return func(c *Client) {
		if b != nil {
			c.backoff = b
		}
	}
}

func WithBreaker(b *Breaker) Option {
	return func(c *Client) { c.breaker = b }
}

func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// OnAttempt registers a callback invoked after every round trip.
func OnAttempt(fn func(Attempt)) Option {
	return func(c *Client) { c.onAttempt = fn }
}

// New returns a Client for endpoint, which must be an absolute http(s) URL.
func New(endpoint string, opts ...Option) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, endpoint)
	}

	c := &Client{
		url:        endpoint,
		http:       &http.Client{},
		timeout:    10 * time.Second,
		maxRetries: 3,
		backoff:    Exponential(500*time.Millisecond, 10*time.Second, 0.1),
		userAgent:  "signup-webhook/1.0",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Send wraps data in an Event of the given type and delivers it. It returns
// the event id, which receivers can use for deduplication across retries.
func (c *Client) Send(ctx context.Context, eventType string, data any) (string, error) {
	ev := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		CreatedAt: time.Now().UTC(),
		Data:      data,
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	if c.breaker != nil && !c.breaker.Allow() {
		return ev.ID, ErrCircuitOpen
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			timer := time.NewTimer(c.backoff(attempt))
			select {
			case <-ctx.Done():
				timer.Stop()
				return ev.ID, ctx.Err()
			case <-timer.C:
			}
		}

		status, err := c.do(ctx, ev.ID, payload, attempt+1)
		if c.breaker != nil {
			if err == nil {
				c.breaker.Success()
			} else {
				c.breaker.Failure()
			}
		}
		if err == nil {
			return ev.ID, nil
		}
		lastErr = err
		if permanent(status) {
			return ev.ID, fmt.Errorf("%w: %w", ErrPermanentFailure, err)
		}
	}
	return ev.ID, fmt.Errorf("%w after %d attempts: %w", ErrDeliveryFailed, c.maxRetries+1, lastErr)
}

func (c *Client) do(ctx context.Context, id string, payload []byte, n int) (int, error) {
	start := time.Now()
	status, err := c.roundTrip(ctx, id, payload)
	if c.onAttempt != nil {
		c.onAttempt(Attempt{EventID: id, Number: n, StatusCode: status, Duration: time.Since(start), Err: err})
	}
	return status, err
}

func (c *Client) roundTrip(ctx context.Context, id string, payload []byte) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(HeaderID, id)
	if c.secret != "" {
		ts := time.Now().Unix()
		req.Header.Set(HeaderTimestamp, strconv.FormatInt(ts, 10))
		req.Header.Set(HeaderSignature, Sign(c.secret, ts, payload))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return resp.StatusCode, nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	snippet := strings.TrimSpace(strings.ReplaceAll(string(body), "\n", " "))
	if len(snippet) > 200 {
		snippet = snippet[:200] + "..."
	}
	return resp.StatusCode, fmt.Errorf("endpoint returned %d: %s", resp.StatusCode, snippet)
}

// permanent reports 4xx answers that a retry cannot fix.
func permanent(status int) bool {
	switch status {
	case http.StatusRequestTimeout, http.StatusTooEarly, http.StatusTooManyRequests:
		return false
	}
	return status >= 400 && status < 500
}
