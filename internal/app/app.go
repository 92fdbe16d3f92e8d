// Package app implements the application layer for peek.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/peek/internal/adapters/affinity"  //nolint:depguard // Wired in app layer
	"go.trai.ch/peek/internal/adapters/detector"  //nolint:depguard // Wired in app layer
	"go.trai.ch/peek/internal/adapters/linear"    //nolint:depguard // Wired in app layer
	"go.trai.ch/peek/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/peek/internal/adapters/tui"       //nolint:depguard // Wired in app layer
	"go.trai.ch/peek/internal/core/domain"
	"go.trai.ch/peek/internal/core/ports"
	"go.trai.ch/peek/internal/engine/recovery"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	reports      ports.ReportStore
	newMachine   MachineFactory
	teaOptions   []tea.ProgramOption
	stdout       io.Writer
	stderr       io.Writer
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, log ports.Logger, reports ports.ReportStore) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		reports:      reports,
		newMachine:   NewMachine,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithMachineFactory replaces the machine selection.
func (a *App) WithMachineFactory(f MachineFactory) *App {
	a.newMachine = f
	return a
}

// WithOutput redirects the renderers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// Overrides are command line values applied over the config file.
// Zero values keep the configured setting.
type Overrides struct {
	Platform  string
	MaxRounds int
	Margin    int
}

// LeakOptions configuration for the Leak method.
type LeakOptions struct {
	ConfigPath string
	Public     string
	Secret     string
	// Offset and Length select a range of the victim buffer; Length 0 reads
	// the whole secret.
	Offset     int
	Length     int
	OutputMode string
	Overrides  Overrides
	// ReportDir receives a JSON report of the run when set.
	ReportDir string
}

// Leak recovers the secret placed after the public bytes, one offset at a time.
func (a *App) Leak(ctx context.Context, opts LeakOptions) (domain.Recovery, error) {
	settings, err := a.settings(opts.ConfigPath, opts.Overrides)
	if err != nil {
		return nil, err
	}

	target, err := domain.NewTarget([]byte(opts.Public), []byte(opts.Secret))
	if err != nil {
		return nil, err
	}

	offsets, err := plan(target, opts.Offset, opts.Length)
	if err != nil {
		return nil, err
	}

	if !settings.Environment.MitigationsAssumedDisabled {
		a.logger.Warn("speculation mitigations are assumed active, expect no signal")
	}

	var machine string
	recoverByte := func(loop *recovery.Loop, offset int) (domain.RecoveryResult, error) {
		machine = loop.Machine()
		return loop.RecoverByte(offset)
	}

	recovered, err := a.run(ctx, settings, target, opts.OutputMode, offsets, recoverByte)
	if err != nil {
		return recovered, err
	}

	a.report(recovered)

	if opts.ReportDir != "" {
		path, err := a.reports.Put(opts.ReportDir, domain.NewReport(machine, target, recovered, time.Now()))
		if err != nil {
			return recovered, err
		}
		a.logger.Info("report written to " + path)
	}
	return recovered, nil
}

// ShowReport prints a saved leak run through the linear renderer without
// touching the machine again.
func (a *App) ShowReport(path string) (domain.Report, error) {
	saved, err := a.reports.Get(path)
	if err != nil {
		return domain.Report{}, err
	}
	if saved == nil {
		return domain.Report{}, zerr.With(domain.ErrReportNotFound, "path", path)
	}

	a.logger.Info(fmt.Sprintf("%s run from %s, public bound %d",
		saved.Machine, saved.Timestamp.Format(time.RFC3339), saved.KnownSize))

	renderer := linear.NewRenderer(a.stdout, a.stderr)
	offsets := make([]int, len(saved.Results))
	for i, res := range saved.Results {
		offsets[i] = res.Offset
	}
	renderer.OnPlanEmit(offsets)
	for i, res := range saved.Results {
		spanID := strconv.Itoa(i)
		renderer.OnByteStart(spanID, res.Offset, saved.Timestamp)
		renderer.OnByteRecovered(spanID, res, saved.Timestamp, nil)
	}

	a.report(saved.Results)
	return *saved, nil
}

// CalibrateOptions configuration for the Calibrate method.
type CalibrateOptions struct {
	ConfigPath string
	Text       string
	Samples    int
	OutputMode string
	Overrides  Overrides
}

// Calibration is the outcome of a calibration run.
type Calibration struct {
	Machine    string
	HitMedian  domain.Cycles
	MissMedian domain.Cycles
	Separated  bool
	Recovery   domain.Recovery
}

// Calibrate measures hit and miss latencies, then reads Text back with plain
// flush+reload. A machine that fails here cannot leak anything speculatively.
func (a *App) Calibrate(ctx context.Context, opts CalibrateOptions) (Calibration, error) {
	settings, err := a.settings(opts.ConfigPath, opts.Overrides)
	if err != nil {
		return Calibration{}, err
	}

	if opts.Samples <= 0 {
		return Calibration{}, zerr.With(zerr.With(domain.ErrInvalidAttackConfig, "field", "samples"), "value", opts.Samples)
	}

	text := []byte(opts.Text)
	target := domain.Target{Data: text, KnownSize: len(text)}
	if err := target.Validate(); err != nil {
		return Calibration{}, err
	}

	var result Calibration
	reload := func(loop *recovery.Loop, offset int) (domain.RecoveryResult, error) {
		if result.Machine == "" {
			p := loop.Profile(opts.Samples)
			result.Machine = loop.Machine()
			result.HitMedian, result.MissMedian, result.Separated = p.HitMedian, p.MissMedian, p.Separated()

			a.logger.Info(fmt.Sprintf("%s: hit median %d cycles, miss median %d cycles over %d samples",
				result.Machine, p.HitMedian, p.MissMedian, p.Samples))
			if !result.Separated {
				a.logger.Warn("hits and misses are not separated, the channel will not work")
			}
		}
		return loop.ReloadByte(offset)
	}

	offsets, err := plan(target, 0, len(text))
	if err != nil {
		return result, err
	}
	result.Recovery, err = a.run(ctx, settings, target, opts.OutputMode, offsets, reload)
	if err != nil {
		return result, err
	}

	a.report(result.Recovery)
	return result, nil
}

func (a *App) settings(path string, o Overrides) (domain.Settings, error) {
	if path == "" {
		path = domain.ConfigFileName
	}
	settings, err := a.configLoader.Load(path)
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to load configuration")
	}

	if o.Platform != "" {
		settings.Platform = o.Platform
	}
	if o.MaxRounds != 0 {
		settings.Attack.MaxRounds = o.MaxRounds
	}
	if o.Margin != 0 {
		settings.Attack.Margin = o.Margin
	}
	return settings, settings.Validate()
}

// plan returns the offsets to read. length 0 selects every secret offset.
func plan(target domain.Target, offset, length int) ([]int, error) {
	if length == 0 {
		return target.SecretOffsets(), nil
	}
	if length < 0 || !target.Contains(offset) || !target.Contains(offset+length-1) {
		err := zerr.With(domain.ErrOffsetOutOfRange, "offset", offset)
		err = zerr.With(err, "length", length)
		return nil, zerr.With(err, "data_len", len(target.Data))
	}
	offsets := make([]int, length)
	for i := range offsets {
		offsets[i] = offset + i
	}
	return offsets, nil
}

type readFunc func(loop *recovery.Loop, offset int) (domain.RecoveryResult, error)

// run drives the renderer and the pinned recovery goroutine concurrently.
//
//nolint:cyclop // orchestration function
func (a *App) run(
	ctx context.Context,
	settings domain.Settings,
	target domain.Target,
	outputMode string,
	offsets []int,
	read readFunc,
) (domain.Recovery, error) {
	machine, err := a.newMachine(settings)
	if err != nil {
		return nil, err
	}

	renderer := a.renderer(ctx, outputMode)
	setupOTel(telemetry.NewBridge(renderer))
	tracer := telemetry.NewOTelTracer("peek").WithRenderer(renderer)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := renderer.Start(ctx); err != nil {
			return err
		}
		return renderer.Wait()
	})

	out := make(domain.Recovery, 0, len(offsets))
	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = zerr.With(domain.ErrLeakFailed, "panic", fmt.Sprint(r))
			}
			_ = renderer.Stop()
		}()

		cpu := settings.Environment.CPU
		if machine.Name() != domain.PlatformHardware {
			cpu = domain.CPUUnpinned
		}
		release, err := affinity.Pin(cpu)
		if err != nil {
			return err
		}
		defer release()

		loop, err := recovery.New(machine, target, settings.Attack)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := loop.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()

		ctx, leakSpan := tracer.Start(ctx, domain.SpanLeak, ports.WithAttribute(domain.AttrMachine, machine.Name()))
		defer leakSpan.End()

		a.logger.Info(fmt.Sprintf("reading %d byte(s) on %s", len(offsets), machine.Name()))
		tracer.EmitPlan(ctx, offsets)

		for _, offset := range offsets {
			if ctx.Err() != nil {
				return errors.Join(domain.ErrLeakFailed, ctx.Err())
			}

			_, span := tracer.Start(ctx, domain.SpanRecoverByte, ports.WithAttribute(domain.AttrOffset, offset))
			res, err := read(loop, offset)
			if err != nil {
				span.RecordError(err)
				span.End()
				return errors.Join(domain.ErrLeakFailed, err)
			}
			for key, value := range res.Attributes() {
				span.SetAttribute(key, value)
			}
			if !res.Confident {
				_, _ = fmt.Fprintf(span, "below margin after %d rounds: %d vs %d", res.Rounds, res.BestScore, res.RunnerUpScore)
			}
			span.End()

			out = append(out, res)
		}
		return nil
	})

	return out, g.Wait()
}

func (a *App) renderer(ctx context.Context, outputMode string) ports.Renderer {
	mode := detector.ResolveMode(detector.DetectEnvironment(), outputMode)
	if mode == detector.ModeTUI {
		opts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(a.stderr)}, a.teaOptions...)
		return tui.NewRenderer(tui.NewModel(a.stderr), opts...)
	}
	return linear.NewRenderer(a.stdout, a.stderr)
}

func (a *App) report(r domain.Recovery) {
	a.logger.Info(fmt.Sprintf("recovered %q", r.Bytes()))
	if unclear := len(r) - r.ConfidentCount(); unclear > 0 {
		a.logger.Warn(fmt.Sprintf("%d of %d byte(s) below the confidence margin", unclear, len(r)))
	}
}

// setupOTel registers a global tracer provider that feeds the renderer bridge.
func setupOTel(bridge *telemetry.Bridge) {
	otel.SetTracerProvider(sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(bridge),
	))
}
