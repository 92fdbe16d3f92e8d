package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/peek/internal/core/domain"
	"go.trai.ch/peek/internal/core/ports"
)

// Renderer wraps the Bubble Tea model as a ports.Renderer.
type Renderer struct {
	program *tea.Program
	errCh   chan error
}

var _ ports.Renderer = (*Renderer)(nil)

// NewRenderer creates a new TUI renderer.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	return &Renderer{
		program: tea.NewProgram(model, opts...),
		errCh:   make(chan error, 1),
	}
}

// Start launches the TUI in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		final, err := r.program.Run()
		if m, ok := final.(*Model); ok && err == nil && m.Interrupted() {
			err = domain.ErrInterrupted
		}
		r.errCh <- err
	}()
	return nil
}

// Stop signals the TUI to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the TUI has terminated. A user quit yields
// domain.ErrInterrupted so the leak run stops at the next offset.
func (r *Renderer) Wait() error {
	return <-r.errCh
}

// OnPlanEmit forwards the plan to the TUI.
func (r *Renderer) OnPlanEmit(offsets []int) {
	r.program.Send(MsgInitPlan{Offsets: offsets})
}

// OnByteStart forwards the start of an offset to the TUI.
func (r *Renderer) OnByteStart(spanID string, offset int, startTime time.Time) {
	r.program.Send(MsgByteStart{SpanID: spanID, Offset: offset, StartTime: startTime})
}

// OnByteRecovered forwards the outcome of an offset to the TUI.
func (r *Renderer) OnByteRecovered(spanID string, result domain.RecoveryResult, endTime time.Time, err error) {
	r.program.Send(MsgByteRecovered{SpanID: spanID, Result: result, EndTime: endTime, Err: err})
}
