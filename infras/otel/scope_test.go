package otel_test

import (
	"errors"
	"testing"
	"time"

	"careerday/infras/otel"
	"careerday/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestAttribute(t *testing.T) {
	at := time.Date(2026, 3, 12, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value any
		want  attribute.Value
	}{
		{"bool", true, attribute.BoolValue(true)},
		{"string", "slot", attribute.StringValue("slot")},
		{"int", 15, attribute.IntValue(15)},
		{"int64", int64(42), attribute.Int64Value(42)},
		{"float", 0.5, attribute.Float64Value(0.5)},
		{"string slice", []string{"a", "b"}, attribute.StringSliceValue([]string{"a", "b"})},
		{"time", at, attribute.StringValue("2026-03-12T09:30:00Z")},
		{"duration", 90 * time.Second, attribute.StringValue("1m30s")},
		{"fallback", struct{ N int }{3}, attribute.StringValue("{3}")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := otel.Attribute("key", tt.value)

			assert.Equal(t, attribute.Key("key"), kv.Key)
			assert.Equal(t, tt.want, kv.Value)
		})
	}
}

func TestRecorder(t *testing.T) {
	recorder := mocks.NewOtel()

	_, scope := recorder.NewScope(t.Context(), "service", "service.booking.Book")
	scope.SetAttributes(map[string]any{"slot": "11:30"})
	scope.AddEvent("conflict")
	scope.TraceIfError(nil)
	scope.TraceError(errors.New("slot taken"))
	scope.End()

	spans := recorder.Spans()
	assert.Len(t, spans, 1)
	assert.Equal(t, "service.booking.Book", spans[0].Name)
	assert.Equal(t, "11:30", spans[0].Attributes["slot"])
	assert.Equal(t, []string{"conflict"}, spans[0].Events)
	assert.True(t, spans[0].Ended)
	assert.EqualError(t, recorder.Errors()[0], "slot taken")
}
