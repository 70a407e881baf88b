// Package mocks provides a no-op tracer for service and middleware tests.
package mocks

import (
	"context"
	"haven/infras/otel"
)

type otelImpl struct{}

func NewOtel() otel.Otel {
	return otelImpl{}
}

func (otelImpl) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

type scopeImpl struct{}

func NewScope() otel.Scope {
	return scopeImpl{}
}

func (scopeImpl) End() {}
func (scopeImpl) TraceError(error) {}
func (scopeImpl) TraceIfError(error) {}
func (scopeImpl) AddEvent(string) {}
func (scopeImpl) SetAttribute(string, any) {}
func (scopeImpl) SetAttributes(map[string]any) {}
