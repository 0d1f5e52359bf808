package correlation

import (
	"context"
	"strings"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
)

func TestEnsureCorrelationIDGeneratesULID(t *testing.T) {
	ctx, id := EnsureCorrelationID(context.Background())
	assert.NotEmpty(t, id)
	_, err := ulid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, ExtractCorrelationID(ctx))
}

func TestEnsureCorrelationIDKeepsExisting(t *testing.T) {
	ctx := ContextWithCorrelationID(context.Background(), "abc-123")
	ctx, id := EnsureCorrelationID(ctx)
	assert.Equal(t, "abc-123", id)
	assert.Equal(t, "abc-123", ExtractCorrelationID(ctx))
}

func TestContextWithCorrelationIDRejectsUnsafeValues(t *testing.T) {
	base := context.Background()
	assert.Empty(t, ExtractCorrelationID(ContextWithCorrelationID(base, "")))
	assert.Empty(t, ExtractCorrelationID(ContextWithCorrelationID(base, "has space")))
	assert.Empty(t, ExtractCorrelationID(ContextWithCorrelationID(base, strings.Repeat("a", 65))))
}
