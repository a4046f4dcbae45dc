// Package webhook posts signed JSON events to an HTTP endpoint.
//
// A Client targets one URL. Send wraps the data in an Event envelope with a
// fresh id, signs it with HMAC-SHA256 when a secret is configured and retries
// network errors and 5xx answers with backoff. 4xx answers other than 408,
// 425 and 429 fail immediately with ErrPermanentFailure. An optional Breaker
// stops sending to an endpoint that keeps failing.
//
//	c, err := webhook.New(cfg.URL,
//		webhook.WithSecret(cfg.Secret),
//		webhook.WithMaxRetries(cfg.Retries),
//		webhook.WithBreaker(webhook.NewBreaker(5, 30*time.Second)),
//	)
//	id, err := c.Send(ctx, "account.registered", profile)
//
// Receivers check deliveries with VerifyRequest.
package webhook
