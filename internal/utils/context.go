// Package utils holds small helpers shared by the diary server and client:
// typed context keys, HMAC request signing, JSON and attachment responses,
// JWT issuing and verification, id generation and time-zone aware dates.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so they cannot collide with
// string keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the context key of the authenticated user id (int64).
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext retrieves the user identifier from the context.
// ok is false when the value is missing or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
