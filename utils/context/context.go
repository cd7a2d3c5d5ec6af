package context

import (
	"context"

	"github.com/srisatyasai136/review/constant"
)

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

func GetSessionID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(constant.SessionIDKey).(string)
	return v, ok && v != ""
}

// WithSession stores the authenticated account and its session id.
func WithSession(ctx context.Context, userID uint64, sessionID string) context.Context {
	ctx = context.WithValue(ctx, constant.UserIDKey, userID)
	return context.WithValue(ctx, constant.SessionIDKey, sessionID)
}
