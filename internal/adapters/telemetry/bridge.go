package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/peek/internal/core/domain"
	"go.trai.ch/peek/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor to bridge recover_byte spans to a
// Renderer. Every other span is ignored.
type Bridge struct {
	renderer ports.Renderer
}

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// NewBridge returns a new Bridge.
func NewBridge(renderer ports.Renderer) *Bridge {
	return &Bridge{renderer: renderer}
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if b.renderer == nil || s.Name() != domain.SpanRecoverByte {
		return
	}
	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	res := resultFromAttributes(s.Attributes())
	b.renderer.OnByteStart(sc.SpanID().String(), res.Offset, s.StartTime())
}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.renderer == nil || s.Name() != domain.SpanRecoverByte {
		return
	}
	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	var err error
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "recovery failed"
		}
		err = errors.New(desc)
	}

	b.renderer.OnByteRecovered(sc.SpanID().String(), resultFromAttributes(s.Attributes()), s.EndTime(), err)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

// resultFromAttributes rebuilds a RecoveryResult from span attributes.
// Attributes not set yet keep their zero value.
func resultFromAttributes(attrs []attribute.KeyValue) domain.RecoveryResult {
	var res domain.RecoveryResult
	for _, kv := range attrs {
		switch string(kv.Key) {
		case domain.AttrOffset:
			res.Offset = int(kv.Value.AsInt64())
		case domain.AttrByte:
			res.Byte = byte(kv.Value.AsInt64())
		case domain.AttrRunnerUp:
			res.RunnerUp = byte(kv.Value.AsInt64())
		case domain.AttrBestScore:
			res.BestScore = int(kv.Value.AsInt64())
		case domain.AttrRunnerUpScore:
			res.RunnerUpScore = int(kv.Value.AsInt64())
		case domain.AttrRounds:
			res.Rounds = int(kv.Value.AsInt64())
		case domain.AttrConfident:
			res.Confident = kv.Value.AsBool()
		}
	}
	return res
}
