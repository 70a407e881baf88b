package otel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func recordScope(t *testing.T, fn func(Scope)) trace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	o := &otelImpl{TracerProvider: provider}
	_, scope := o.NewScope(context.Background(), "service", "service.Create")

	fn(scope)
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	return spans[0]
}

func TestScope_Attributes(t *testing.T) {
	span := recordScope(t, func(s Scope) {
		s.SetAttribute("event.id", "event-1")
		s.SetAttributes(map[string]any{
			"gallery.count": 3,
			"cache.hit":     true,
			"tiers":         []string{"regular", "vip"},
			"price":         2.5,
		})
		s.AddEvent("cache.miss")
	})

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value
	}

	assert.Equal(t, "event-1", attrs["event.id"].AsString())
	assert.Equal(t, int64(3), attrs["gallery.count"].AsInt64())
	assert.True(t, attrs["cache.hit"].AsBool())
	assert.Equal(t, []string{"regular", "vip"}, attrs["tiers"].AsStringSlice())
	assert.InDelta(t, 2.5, attrs["price"].AsFloat64(), 0)
	require.Len(t, span.Events(), 1)
	assert.Equal(t, "cache.miss", span.Events()[0].Name)
}

func TestScope_TraceIfError(t *testing.T) {
	t.Run("nil leaves status unset", func(t *testing.T) {
		span := recordScope(t, func(s Scope) { s.TraceIfError(nil) })

		assert.Equal(t, codes.Unset, span.Status().Code)
	})

	t.Run("error marks span", func(t *testing.T) {
		span := recordScope(t, func(s Scope) { s.TraceIfError(errors.New("db down")) })

		assert.Equal(t, codes.Error, span.Status().Code)
		assert.Equal(t, "db down", span.Status().Description)
	})
}

func TestScope_TraceIfErrorDeferred(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	o := &otelImpl{TracerProvider: trace.NewTracerProvider(trace.WithSpanProcessor(recorder))}

	update := func() (err error) {
		_, scope := o.NewScope(context.Background(), "service", "service.Update")
		defer scope.End()
		defer func() { scope.TraceIfError(err) }()

		return errors.New("gallery image not found")
	}

	require.Error(t, update())

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "gallery image not found", spans[0].Status().Description)
}
