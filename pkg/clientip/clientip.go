// Package clientip resolves the address of the client behind a request.
//
// Forwarding headers are trusted only when listed, since any client can set
// them when the app is exposed directly.
package clientip

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Common proxy headers, most specific first.
var ProxyHeaders = []string{"CF-Connecting-IP", "DO-Connecting-IP", "X-Real-IP", "X-Forwarded-For"}

// Resolver extracts client addresses. The zero value uses RemoteAddr only.
type Resolver struct {
	// TrustedHeaders are consulted in order before RemoteAddr.
	TrustedHeaders []string
}

// Resolve returns the normalized client IP, or "" when none parses.
// X-Forwarded-For yields its leftmost valid entry.
func (res Resolver) Resolve(r *http.Request) string {
	for _, h := range res.TrustedHeaders {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}
		for part := range strings.SplitSeq(v, ",") {
			if ip := parse(part); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parse(r.RemoteAddr)
	}
	return parse(host)
}

func parse(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}

type contextKey struct{}

func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// Middleware stores the resolved IP in the request context.
func Middleware(res Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), res.Resolve(r))))
		})
	}
}

// Key returns the IP stored by Middleware. It matches ratelimiter.KeyFunc.
func Key(r *http.Request) string {
	return FromContext(r.Context())
}
