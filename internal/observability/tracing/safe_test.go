package tracing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestSafeAttributesDropsClientData(t *testing.T) {
	attrs := SafeAttributes(
		attribute.String("report", "income"),
		attribute.String("client_name", "Jane Doe"),
		attribute.String("range.start", "2023-01-01"),
	)
	assert.Len(t, attrs, 2)
	for _, attr := range attrs {
		assert.NotEqual(t, attribute.Key("client_name"), attr.Key)
	}
}

func TestSafeError(t *testing.T) {
	assert.Nil(t, SafeError(nil))
	err := SafeError(errors.New("load income lines: pq: relation payments does not exist"))
	assert.EqualError(t, err, "load income lines")
}
