package ports

import (
	"context"
	"time"

	"go.trai.ch/peek/internal/core/domain"
)

// Renderer is the abstraction for output rendering.
// It decouples telemetry collection from presentation, so the same span stream
// drives either the TUI or linear CI logs.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer and begins its lifecycle.
	Start(ctx context.Context) error

	// Stop signals the renderer to stop accepting events and flush.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	Wait() error

	// OnPlanEmit is called once with every offset that will be recovered.
	OnPlanEmit(offsets []int)

	// OnByteStart is called when recovery of an offset begins.
	OnByteStart(spanID string, offset int, startTime time.Time)

	// OnByteRecovered is called when recovery of an offset ends.
	// err is non-nil only when the offset could not be attempted.
	OnByteRecovered(spanID string, result domain.RecoveryResult, endTime time.Time, err error)
}
