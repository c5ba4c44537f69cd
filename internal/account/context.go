package account

import (
	"context"
	"strings"
)

type ctxKey string

const (
	userIDKey ctxKey = "account_user_id"
	roleKey   ctxKey = "account_role"
)

// ContextWithUser stores the authenticated account identity in the context.
func ContextWithUser(ctx context.Context, accountID, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, strings.TrimSpace(accountID))
	if role = strings.TrimSpace(role); role != "" {
		ctx = context.WithValue(ctx, roleKey, role)
	}
	return ctx
}

// UserIDFromContext extracts the authenticated account ID from context.
func UserIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(userIDKey).(string)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

// RoleFromContext returns the role label stored in context, if any.
func RoleFromContext(ctx context.Context) string {
	v, _ := ctx.Value(roleKey).(string)
	return v
}
