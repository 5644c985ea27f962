package otel

import "context"

type noopImpl struct{}

// NewScope implements Otel without recording anything.
func (o *noopImpl) NewScope(ctx context.Context, _, _ string) (context.Context, Scope) {
	return ctx, noopScope{}
}

// NewNoop returns an Otel implementation used when no OTLP endpoint is configured.
func NewNoop() Otel {
	return &noopImpl{}
}

type noopScope struct{}

func (noopScope) End()                         {}
func (noopScope) TraceError(error)             {}
func (noopScope) TraceIfError(error)           {}
func (noopScope) AddEvent(string)              {}
func (noopScope) SetAttribute(string, any)     {}
func (noopScope) SetAttributes(map[string]any) {}
