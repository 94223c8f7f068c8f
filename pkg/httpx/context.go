package httpx

import (
	"context"
)

type ctxKey string

const CtxKeyUserID ctxKey = "user_id"

// UserIDFromContext returns the verified subject placed by AuthnMiddleware.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(CtxKeyUserID).(string)
	return id, ok && id != ""
}

// WithUserID stores a user id without claims. Used by tests and internal
// callers that have already authenticated the request some other way.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, CtxKeyUserID, userID)
}
