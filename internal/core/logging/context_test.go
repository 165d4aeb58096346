package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetSessionID(ctx))
	assert.Empty(t, GetCommand(ctx))
	assert.Empty(t, GetRejection(ctx))

	ctx = WithSessionID(ctx, "session-1")
	ctx = WithCommand(ctx, "todo")

	assert.Equal(t, "session-1", GetSessionID(ctx))
	assert.Equal(t, "todo", GetCommand(ctx))
	assert.Empty(t, GetRejection(ctx))

	ctx = WithRejection(ctx, "missing_description")
	assert.Equal(t, "missing_description", GetRejection(ctx))
}
