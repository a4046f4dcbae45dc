// Package ratelimiter implements token bucket rate limiting with pluggable
// storage.
//
// A Bucket holds the Config and delegates state to a Store. MemoryStore keeps
// buckets in process; RedisStore keeps them in Redis so that several app
// instances share limits. Both refill whole intervals only and never let a
// rejected request consume tokens.
//
//	bucket, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), cfg)
//	r.With(ratelimiter.Middleware(bucket, ratelimiter.Composite(ratelimiter.Route(), clientip.Key))).
//		Post("/register", ...)
package ratelimiter
