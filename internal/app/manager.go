package app

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/AndresGarciaEscovar/latexlattices/internal/fixture"
	"github.com/AndresGarciaEscovar/latexlattices/internal/lattice"
	"github.com/AndresGarciaEscovar/latexlattices/internal/loader"
	"github.com/AndresGarciaEscovar/latexlattices/internal/render"
	"github.com/AndresGarciaEscovar/latexlattices/internal/report"
)

// Manager defines the business logic behind the CLI commands.
type Manager interface {
	ValidateDocument(ctx context.Context, path, format string, verbose, useColour bool) error
	WatchValidation(ctx context.Context, path, format string, verbose, useColour bool,
		readyChan chan<- struct{}) error
	RenderDocument(ctx context.Context, path string) ([]byte, error)
	RunFixtures(ctx context.Context, manifestPath string, jobs int, format string,
		verbose, useColour bool) error
	WriteDefaultConfig(path string, force bool) error
}

// Ensure the interface is satisfied.
var _ Manager = (*LazyManager)(nil)

// LazyManager acts as a placeholder for a real Manager implementation, allowing
// for deferred initialization of dependencies.
type LazyManager struct {
	inner Manager
}

func (l *LazyManager) SetInner(m Manager) {
	l.inner = m
}

// HasInner returns true if the inner manager has been set.
// This is used by PersistentPreRunE to skip initialization if already configured (e.g., in tests).
func (l *LazyManager) HasInner() bool {
	return l.inner != nil
}

func (l *LazyManager) check() Manager {
	if l.inner == nil {
		panic("LazyManager accessed before initialization; check command wiring.")
	}
	return l.inner
}

func (l *LazyManager) ValidateDocument(ctx context.Context, path, format string, verbose, useColour bool) error {
	return l.check().ValidateDocument(ctx, path, format, verbose, useColour)
}

func (l *LazyManager) WatchValidation(ctx context.Context, path, format string, verbose, useColour bool,
	readyChan chan<- struct{},
) error {
	return l.check().WatchValidation(ctx, path, format, verbose, useColour, readyChan)
}

func (l *LazyManager) RenderDocument(ctx context.Context, path string) ([]byte, error) {
	return l.check().RenderDocument(ctx, path)
}

func (l *LazyManager) RunFixtures(ctx context.Context, manifestPath string, jobs int, format string,
	verbose, useColour bool,
) error {
	return l.check().RunFixtures(ctx, manifestPath, jobs, format, verbose, useColour)
}

func (l *LazyManager) WriteDefaultConfig(path string, force bool) error {
	return l.check().WriteDefaultConfig(path, force)
}

// Ensure the interface is satisfied.
var _ Manager = (*CLIManager)(nil)

// CLIManager is the concrete implementation of the Manager interface.
type CLIManager struct {
	logger         *slog.Logger
	renderer       *render.Renderer
	reporterWriter io.Writer
}

func NewCLIManager(l *slog.Logger, r *render.Renderer) *CLIManager {
	return &CLIManager{
		logger:         l,
		renderer:       r,
		reporterWriter: os.Stdout,
	}
}

// ValidateDocument loads a parameter document, overlays it on the built-in
// defaults, validates it and writes a report.
func (m *CLIManager) ValidateDocument(_ context.Context, path, format string, verbose, useColour bool) error {
	m.logger.Debug("validating document", "path", path, "format", format, "verbose", verbose)

	rep, err := m.validate(path)
	if err != nil {
		return err
	}

	if wErr := m.writeValidation(path, rep, format, verbose, useColour); wErr != nil {
		return wErr
	}
	if !rep.IsValid() {
		return &InvalidDocumentError{Path: path, Diagnostics: len(rep.Diagnostics)}
	}
	return nil
}

// WatchValidation revalidates the document every time the file changes.
// If you want to know when the watcher is ready to start listening to changes,
// pass a non-nil readyChan to be notified.
func (m *CLIManager) WatchValidation(ctx context.Context, path, format string, verbose, useColour bool,
	readyChan chan<- struct{},
) error {
	m.logger.Debug("watching document", "path", path, "format", format)

	run := func() {
		rep, err := m.validate(path)
		if err != nil {
			m.logger.Error("Validation failed", "error", err)
			return
		}
		if wErr := m.writeValidation(path, rep, format, verbose, useColour); wErr != nil {
			m.logger.Error("Failed to write report", "error", wErr)
		}
	}

	// Validate once up front so the user sees the current state immediately.
	run()

	watcher := NewWatcher(path, m.logger)
	if readyChan != nil {
		go func() {
			<-watcher.Ready
			readyChan <- struct{}{}
		}()
	}
	return watcher.Watch(ctx, run)
}

// RenderDocument validates a parameter document and renders it to LaTeX.
func (m *CLIManager) RenderDocument(_ context.Context, path string) ([]byte, error) {
	m.logger.Debug("rendering document", "path", path)

	doc, err := loader.LoadFileWithDefaults(path)
	if err != nil {
		return nil, err
	}
	rep, err := lattice.Validate(doc)
	if err != nil {
		return nil, err
	}
	if !rep.IsValid() {
		if wErr := m.writeValidation(path, rep, "text", false, false); wErr != nil {
			return nil, wErr
		}
		return nil, &InvalidDocumentError{Path: path, Diagnostics: len(rep.Diagnostics)}
	}

	cfg, err := lattice.Decode(doc)
	if err != nil {
		return nil, err
	}
	return m.renderer.Render(rep, cfg)
}

// RunFixtures executes a fixture manifest and writes a report.
func (m *CLIManager) RunFixtures(ctx context.Context, manifestPath string, jobs int, format string,
	verbose, useColour bool,
) error {
	m.logger.Debug("running fixtures", "manifest", manifestPath, "jobs", jobs)

	manifest, err := fixture.ParseManifestFile(manifestPath)
	if err != nil {
		return err
	}
	m.logger.Debug("manifest parsed", "substitutions", len(manifest.Invalid), "cases", manifest.Cases())

	runReport, err := fixture.NewRunner(jobs).Run(ctx, manifest)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		err = (&report.JSONReporter{}).WriteFixtures(m.reporterWriter, runReport)
	default:
		tr := &report.TextReporter{Verbose: verbose, UseColour: useColour}
		err = tr.WriteFixtures(m.reporterWriter, runReport)
	}
	if err != nil {
		return err
	}

	if !runReport.OK() {
		return &FixturesFailedError{Failed: len(runReport.Failed)}
	}
	return nil
}

// WriteDefaultConfig writes the built-in default parameter document to path.
func (m *CLIManager) WriteDefaultConfig(path string, force bool) error {
	m.logger.Debug("writing default config", "path", path, "force", force)

	if !force {
		if _, err := os.Stat(path); err == nil {
			return &OutputExistsError{Path: path}
		}
	}
	return os.WriteFile(path, loader.DefaultDocument(), 0o644)
}

func (m *CLIManager) validate(path string) (lattice.Report, error) {
	doc, err := loader.LoadFileWithDefaults(path)
	if err != nil {
		return lattice.Report{}, err
	}
	return lattice.Validate(doc)
}

func (m *CLIManager) writeValidation(path string, rep lattice.Report, format string,
	verbose, useColour bool,
) error {
	switch format {
	case "json":
		return (&report.JSONReporter{}).WriteValidation(m.reporterWriter, path, rep)
	default:
		tr := &report.TextReporter{Verbose: verbose, UseColour: useColour}
		return tr.WriteValidation(m.reporterWriter, path, rep)
	}
}
