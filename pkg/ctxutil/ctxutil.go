package ctxutil

import "context"

type ctxKey string

const (
	identityKey  ctxKey = "identity"
	requestIDKey ctxKey = "request_id"
)

// WithIdentity stores the chat identity (phone-like string) in the context.
func WithIdentity(ctx context.Context, phone string) context.Context {
	return context.WithValue(ctx, identityKey, phone)
}

// IdentityFromCtx extracts the chat identity from the context.
// Returns an empty string and false if absent.
func IdentityFromCtx(ctx context.Context) (string, bool) {
	phone, ok := ctx.Value(identityKey).(string)
	if !ok || phone == "" {
		return "", false
	}
	return phone, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
