package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx))

	ctx = SetTraceID(ctx)
	first := GetTraceID(ctx)
	assert.Len(t, first, 36)

	// A new trace ID replaces the old one.
	second := GetTraceID(SetTraceID(ctx))
	assert.NotEqual(t, first, second)
}
