package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
)

// ContextKey is the key type used for context values.
type ContextKey string

// TraceIDKey is the key for the trace ID in the request context.
const TraceIDKey ContextKey = "traceID"

// traceIDLength is the number of random bytes in a trace ID.
const traceIDLength = 16

// SetTraceID adds a fresh trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

func generateTraceID() string {
	b := make([]byte, traceIDLength)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing is effectively fatal elsewhere; an absent
		// trace ID only degrades log correlation.
		return ""
	}
	return hex.EncodeToString(b)
}
