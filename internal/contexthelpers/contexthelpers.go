// Package contexthelpers provides typed accessors for request-scoped values.
package contexthelpers

import (
	"context"
	"net/http"
)

type contextKey string

const CspNonceContextKey = contextKey("cspNonce")
const CurrentPathContextKey = contextKey("currentPath")

// CSPNonce returns the per-request Content-Security-Policy nonce.
func CSPNonce(ctx context.Context) string {
	cspNonce, ok := ctx.Value(CspNonceContextKey).(string)
	if !ok {
		return ""
	}

	return cspNonce
}

// CurrentPath returns the path of the request being handled.
func CurrentPath(ctx context.Context) string {
	currentPath, ok := ctx.Value(CurrentPathContextKey).(string)
	if !ok {
		return ""
	}

	return currentPath
}

// SetCSPNonce stores the CSP nonce on the request context.
func SetCSPNonce(r *http.Request, cspNonce string) *http.Request {
	ctx := context.WithValue(r.Context(), CspNonceContextKey, cspNonce)
	return r.WithContext(ctx)
}

// SetCurrentPath stores the request path on the request context.
func SetCurrentPath(r *http.Request, currentPath string) *http.Request {
	ctx := context.WithValue(r.Context(), CurrentPathContextKey, currentPath)
	return r.WithContext(ctx)
}
