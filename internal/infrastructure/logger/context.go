package logger

import "context"

type contextKey struct{}

var requestIDKey contextKey

// ContextWithRequestID stamps the request ID onto a context so that layers
// below the HTTP handlers (the gorm logger in particular) can correlate
// their entries with the request log line.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext returns the stamped request ID, empty if none
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
