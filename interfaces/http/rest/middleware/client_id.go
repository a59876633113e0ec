package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
)

// ClientIDHeader lets callers behind a shared address identify themselves
// to the search rate limiter.
const ClientIDHeader = "X-Client-Id"

type contextKey string

const clientIDKey contextKey = "clientID"

// ClientID resolves the caller's identity and stores it on the request
// context. The header wins; otherwise the remote host is used without its
// port so that reconnects from the same machine share a window.
func ClientID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(ClientIDHeader))
		if id == "" {
			id = remoteHost(r.RemoteAddr)
		}
		ctx := context.WithValue(r.Context(), clientIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClientIDFromContext returns the id set by ClientID, or "unknown"
func ClientIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(clientIDKey).(string); ok && id != "" {
		return id
	}
	return "unknown"
}

func remoteHost(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
