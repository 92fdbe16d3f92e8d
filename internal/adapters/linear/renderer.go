// Package linear provides a synchronous, line-per-byte renderer for CI
// environments and pipes.
package linear

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/peek/internal/core/domain"
	"go.trai.ch/peek/internal/core/ports"
	"go.trai.ch/peek/internal/ui/output"
)

// Renderer implements ports.Renderer with one line per recovered byte.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu      sync.Mutex
	pending map[string]int // spanID -> offset
}

var _ ports.Renderer = (*Renderer)(nil)

// NewRenderer creates a Renderer. Nil writers default to os.Stdout and os.Stderr.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Renderer{
		stdout:  stdout,
		stderr:  stderr,
		output:  output.NewWithProfile(stdout, output.ColorProfileANSI),
		pending: make(map[string]int),
	}
}

// Start is a no-op for the linear renderer.
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop reports offsets that started but never finished.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for spanID, offset := range r.pending {
		_, _ = fmt.Fprintf(r.stderr, "Reading at offset %d... interrupted\n", offset)
		delete(r.pending, spanID)
	}
	return nil
}

// Wait is a no-op for the linear renderer.
func (r *Renderer) Wait() error {
	return nil
}

// OnPlanEmit prints how many bytes will be read.
func (r *Renderer) OnPlanEmit(offsets []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(offsets) == 0 {
		_, _ = fmt.Fprintln(r.stderr, "Nothing to read")
		return
	}
	_, _ = fmt.Fprintf(r.stderr, "Reading %d byte(s) at offsets %d..%d\n",
		len(offsets), offsets[0], offsets[len(offsets)-1])
}

// OnByteStart remembers the offset of spanID.
func (r *Renderer) OnByteStart(spanID string, offset int, _ time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pending[spanID] = offset
}

// OnByteRecovered prints the outcome of one offset.
func (r *Renderer) OnByteRecovered(spanID string, res domain.RecoveryResult, _ time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pending[spanID]; !ok {
		return
	}
	delete(r.pending, spanID)

	_, _ = fmt.Fprintf(r.stdout, "Reading at offset %d... %s\n", res.Offset, r.describe(res, err))
}

func (r *Renderer) describe(res domain.RecoveryResult, err error) string {
	if err != nil {
		return r.output.String("Failed: " + err.Error()).Foreground(termenv.ANSIRed).String()
	}

	label := r.output.String("Success:").Foreground(termenv.ANSIGreen).String()
	if !res.Confident {
		label = r.output.String("Unclear:").Foreground(termenv.ANSIYellow).String()
	}

	line := fmt.Sprintf("%s 0x%02X='%c' score=%d", label, res.Byte, res.Printable(), res.BestScore)
	if res.RunnerUpScore > 0 {
		line += fmt.Sprintf(" (second best: 0x%02X='%c' score=%d)", res.RunnerUp, res.RunnerUpPrintable(), res.RunnerUpScore)
	}
	return line + fmt.Sprintf(" rounds=%d", res.Rounds)
}
