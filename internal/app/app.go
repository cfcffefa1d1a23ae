package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/agbru/nttparams/internal/artifact"
	"github.com/agbru/nttparams/internal/config"
	apperrors "github.com/agbru/nttparams/internal/errors"
	"github.com/agbru/nttparams/internal/logging"
	"github.com/agbru/nttparams/internal/metrics"
	"github.com/agbru/nttparams/internal/roots"
	"github.com/agbru/nttparams/internal/table"
	"github.com/agbru/nttparams/internal/ui"
)

// ProgramName names the generator in usage text and generated banners.
const ProgramName = "gen-params"

// Application represents one gen-params run.
type Application struct {
	// Config holds the parsed configuration.
	Config config.AppConfig
	// Params are the field and orders the roots are derived from.
	Params roots.Params
	// Engine derives the roots with the configured backend.
	Engine *roots.Engine
	// Logger receives structured diagnostics. It never writes to the
	// artifact stream.
	Logger logging.Logger
	// Metrics collects statistics about the run.
	Metrics *metrics.Recorder
	// ErrWriter is the writer for diagnostics (typically os.Stderr).
	ErrWriter io.Writer
}

// Result describes a successfully generated artifact.
type Result struct {
	// Source is the rendered artifact.
	Source []byte
	// Roots is the number of table entries.
	Roots int
	// Width is the hex width of each entry.
	Width int
	// TableBytes is the size of the packed table.
	TableBytes int
	// Generator is the derived generator of the target subgroup.
	Generator string
}

// New creates an Application by parsing command-line arguments.
//
// Parameters:
//   - args: The command-line arguments including the program name (os.Args).
//   - errWriter: The writer for usage, errors and log lines.
//
// Returns:
//   - *Application: A ready-to-run application.
//   - error: A ConfigError, flag.ErrHelp or a flag parsing error.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := ProgramName
	var cmdArgs []string
	if len(args) > 0 {
		programName = filepath.Base(args[0])
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, artifact.Formats(), roots.Backends(), ui.Themes())
	if err != nil {
		return nil, err
	}

	engine, err := roots.NewEngineByName(cfg.Backend)
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:    cfg,
		Params:    roots.DefaultParams(),
		Engine:    engine,
		Logger:    logging.NewLogger(errWriter, cfg.EffectiveLogLevel()),
		Metrics:   metrics.NewRecorder(),
		ErrWriter: errWriter,
	}, nil
}

// Run executes the generator and returns the process exit code. The artifact
// goes to the configured file, or to out when no file is configured. Nothing
// is written to the artifact destination unless every stage succeeded.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Version {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}

	ctx, stop := SetupSignals(ctx)
	defer stop()

	res, err := a.Generate(ctx)
	if err == nil {
		err = a.emit(res.Source, out)
	}
	a.Metrics.RecordOutcome(err == nil)
	a.writeMetrics()

	if err != nil {
		a.Logger.Error("generation failed", err, logging.String("backend", a.Engine.Backend()))
		ui.InitTheme(a.Config.NoColor, a.Config.Theme, a.ErrWriter)
		return apperrors.HandleGenerationError(err, a.ErrWriter, ui.Colors{})
	}

	a.Logger.Info("artifact written",
		logging.String("format", a.Config.Format),
		logging.String("destination", a.destination()),
		logging.Int("roots", res.Roots),
		logging.Int("width", res.Width),
		logging.Int("bytes", len(res.Source)),
	)
	if !a.Config.Quiet {
		a.printSummary(res, a.statusWriter(out))
	}
	return apperrors.ExitSuccess
}

// Generate derives, verifies, serializes and renders the roots table into
// memory.
func (a *Application) Generate(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	d, err := a.derive(ctx)
	a.Metrics.ObserveStage(metrics.StageDerive, start)
	if err != nil {
		return nil, apperrors.WrapError(err, "deriving roots")
	}
	a.Logger.Debug("roots derived",
		logging.String("generator", d.Generator.Text(16)),
		logging.Int("roots", d.Size()),
	)

	start = time.Now()
	err = roots.Verify(d)
	a.Metrics.ObserveStage(metrics.StageVerify, start)
	if err != nil {
		return nil, apperrors.WrapError(err, "verifying derivation")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start = time.Now()
	tbl, err := table.Encode(d.Roots)
	a.Metrics.ObserveStage(metrics.StageEncode, start)
	if err != nil {
		return nil, apperrors.WrapError(err, "serializing roots")
	}
	a.Metrics.RecordTable(tbl.Len(), tbl.Width, len(tbl.Data))
	a.Logger.Debug("table encoded",
		logging.Int("width", tbl.Width),
		logging.Int("stride", tbl.Stride()),
		logging.Int("bytes", len(tbl.Data)),
	)

	renderer, err := artifact.Lookup(a.Config.Format)
	if err != nil {
		return nil, err
	}
	start = time.Now()
	var buf bytes.Buffer
	err = renderer.Render(&buf, artifact.Artifact{
		Modulus:   d.Params.Modulus,
		Generator: d.Generator,
		Order:     d.Params.TargetOrder,
		Table:     tbl,
		Package:   a.Config.Package,
		Source:    ProgramName,
	})
	a.Metrics.ObserveStage(metrics.StageRender, start)
	if err != nil {
		return nil, apperrors.WrapError(err, "rendering %s artifact", renderer.Name())
	}

	return &Result{
		Source:     buf.Bytes(),
		Roots:      tbl.Len(),
		Width:      tbl.Width,
		TableBytes: len(tbl.Data),
		Generator:  d.Generator.Text(16),
	}, nil
}

func (a *Application) derive(ctx context.Context) (*roots.Derivation, error) {
	_, span := otel.Tracer("nttparams").Start(ctx, "Derive")
	defer span.End()
	span.SetAttributes(
		attribute.String("backend", a.Engine.Backend()),
		attribute.Int("source_order", int(a.Params.SourceOrder)),
		attribute.Int("target_order", int(a.Params.TargetOrder)),
	)

	d, err := a.Engine.Derive(a.Params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "derivation failed")
		return nil, err
	}
	return d, nil
}

// emit writes the rendered artifact to the configured file or to out.
func (a *Application) emit(src []byte, out io.Writer) error {
	start := time.Now()
	defer a.Metrics.ObserveStage(metrics.StageWrite, start)

	if a.Config.OutputFile == "" {
		_, err := out.Write(src)
		return err
	}
	return WriteArtifact(a.Config.OutputFile, src)
}

// WriteArtifact writes src to path, creating parent directories as needed.
// The data is written to a temporary file in the same directory and renamed
// into place, so readers never observe a partial artifact.
func WriteArtifact(path string, src []byte) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(src); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set output file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move output file into place: %w", err)
	}
	return nil
}

func (a *Application) writeMetrics() {
	if a.Config.MetricsFile == "" {
		return
	}
	if err := a.Metrics.WriteTextfile(a.Config.MetricsFile); err != nil {
		a.Logger.Warn("could not write metrics", logging.Err(err), logging.String("path", a.Config.MetricsFile))
	}
}

func (a *Application) destination() string {
	if a.Config.OutputFile == "" {
		return "stdout"
	}
	return a.Config.OutputFile
}

// statusWriter returns where the summary goes: out, unless the artifact
// itself went to out.
func (a *Application) statusWriter(out io.Writer) io.Writer {
	if a.Config.OutputFile == "" {
		return a.ErrWriter
	}
	return out
}

// printSummary reports the generated artifact on w, colored according to
// whether w is a terminal.
func (a *Application) printSummary(res *Result, w io.Writer) {
	ui.InitTheme(a.Config.NoColor, a.Config.Theme, w)
	ui.PrintStatus(w, "Wrote %d roots of unity to %s.", res.Roots, a.destination())
	ui.PrintDetail(w, "format", a.Config.Format)
	ui.PrintDetail(w, "generator", res.Generator)
	ui.PrintDetail(w, "record width", res.Width)
	ui.PrintDetail(w, "table bytes", res.TableBytes)
}
