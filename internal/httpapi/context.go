package httpapi

import "context"

type contextKey string

const userIDContextKey contextKey = "userID"

// WithUserID injects the authenticated user id into the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

// UserIDFromContext returns the authenticated user id, or "" when the
// request never passed the auth gate.
func UserIDFromContext(ctx context.Context) string {
	v := ctx.Value(userIDContextKey)
	if v == nil {
		return ""
	}
	id, _ := v.(string)
	return id
}
