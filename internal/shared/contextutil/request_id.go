package contextutil

import "context"

// unexported key type so context keys cannot collide with other packages
type contextKey string

const requestIDKey contextKey = "request_id"

// GetRequestID reads the request id injected by the RequestID middleware.
func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// WithRequestID injects a request id into the context (also used by tests).
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}
