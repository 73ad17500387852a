package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetUserIDFromContext(t *testing.T) {
	userID, ok := GetUserIDFromContext(WithUserID(context.Background(), 7))
	assert.True(t, ok)
	assert.Equal(t, int64(7), userID)

	_, ok = GetUserIDFromContext(context.Background())
	assert.False(t, ok)

	_, ok = GetUserIDFromContext(context.WithValue(context.Background(), UserIDCtxKey, "7"))
	assert.False(t, ok)
}
