package api

import "context"

type contextKey string

const userContextKey contextKey = "game_user"

// UserFromContext extracts the platform username from context, "" if absent
func UserFromContext(ctx context.Context) string {
	user, ok := ctx.Value(userContextKey).(string)
	if !ok {
		return ""
	}
	return user
}

// ContextWithUser adds the platform username to context
func ContextWithUser(ctx context.Context, user string) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}
