package otel

import (
	"context"
	"haven/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleRatio(t *testing.T) {
	assert.InDelta(t, 1.0, sampleRatio(0), 0)
	assert.InDelta(t, 1.0, sampleRatio(2), 0)
	assert.InDelta(t, 0.25, sampleRatio(0.25), 0)
}

func TestNew_WithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "haven"

	o := New(cfg)

	ctx, scope := o.NewScope(context.Background(), "test", "test.span")
	defer scope.End()

	assert.NotNil(t, ctx)
}
