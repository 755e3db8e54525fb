package app

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndresGarciaEscovar/latexlattices/internal/loader"
	"github.com/AndresGarciaEscovar/latexlattices/internal/render"
)

const testManifest = `
valid:
  box:
    position_top: [0, 15]
    height: 15
    width: 15
  box_label:
    height: 2
    width: 2
  lattice:
    offsets: [1, 0]
    position_start: [1, 4]
    position_end: [13, 4]
    vertical_spacing: 1
  lattice_elements:
    arrow_height: 1
    circle_radius: 0.4
    tick_height: 0.5
    vacancies_visible: true
  lattice_parameters:
    nticks: 10
    nmers: 1
    adsorbing: [2]
    desorbing: [7]
    fixed: [5]
    jumping: [[4, 2, 2]]
invalid:
  - fieldPath: box.height
    values: [-3]
  - fieldPath: lattice_parameters.nticks
    values: [0]
`

const lyingManifest = `
valid:
  box:
    position_top: [0, 15]
    height: 15
    width: 15
  box_label:
    height: 2
    width: 2
  lattice:
    offsets: [1, 0]
    position_start: [1, 4]
    position_end: [13, 4]
    vertical_spacing: 1
  lattice_elements:
    arrow_height: 1
    circle_radius: 0.4
    tick_height: 0.5
    vacancies_visible: true
  lattice_parameters:
    nticks: 10
    nmers: 1
    adsorbing: [2]
    desorbing: [7]
    fixed: [5]
    jumping: [[4, 2, 2]]
invalid:
  - fieldPath: lattice_parameters.nmers
    values: [1]
`

func newTestManager() (*CLIManager, *bytes.Buffer) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := NewCLIManager(logger, render.New())
	var buf bytes.Buffer
	m.reporterWriter = &buf
	return m, &buf
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateDocument(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()
		m, buf := newTestManager()
		path := writeTempFile(t, "good.yaml", goodDocument)

		err := m.ValidateDocument(context.Background(), path, "text", false, false)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "[VALID] "+path)
	})

	t.Run("invalid document", func(t *testing.T) {
		t.Parallel()
		m, buf := newTestManager()
		path := writeTempFile(t, "bad.yaml", badDocument)

		err := m.ValidateDocument(context.Background(), path, "text", false, false)
		var want *InvalidDocumentError
		require.ErrorAs(t, err, &want)
		assert.Equal(t, path, want.Path)
		assert.Equal(t, 1, want.Diagnostics)
		assert.Contains(t, buf.String(), "[INVALID]")
		assert.Contains(t, buf.String(), "box.height")
	})

	t.Run("json format", func(t *testing.T) {
		t.Parallel()
		m, buf := newTestManager()
		path := writeTempFile(t, "good.yaml", goodDocument)

		require.NoError(t, m.ValidateDocument(context.Background(), path, "json", false, false))
		assert.Contains(t, buf.String(), `"valid": true`)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		m, _ := newTestManager()
		err := m.ValidateDocument(context.Background(), "no-such-file.yaml", "text", false, false)
		require.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestRenderDocument(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()
		m, _ := newTestManager()
		path := writeTempFile(t, "good.yaml", goodDocument)

		out, err := m.RenderDocument(context.Background(), path)
		require.NoError(t, err)
		assert.Contains(t, string(out), `\documentclass[tikz]{standalone}`)
		assert.Contains(t, string(out), `\begin{tikzpicture}`)
	})

	t.Run("invalid document reports before refusing", func(t *testing.T) {
		t.Parallel()
		m, buf := newTestManager()
		path := writeTempFile(t, "bad.yaml", badDocument)

		_, err := m.RenderDocument(context.Background(), path)
		var want *InvalidDocumentError
		require.ErrorAs(t, err, &want)
		assert.Contains(t, buf.String(), "[INVALID]")
	})
}

func TestRunFixtures(t *testing.T) {
	t.Parallel()

	t.Run("all cases pass", func(t *testing.T) {
		t.Parallel()
		m, buf := newTestManager()
		path := writeTempFile(t, "manifest.yaml", testManifest)

		err := m.RunFixtures(context.Background(), path, 2, "text", false, false)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "2 passed, 0 failed")
	})

	t.Run("manifest promises a failure that never happens", func(t *testing.T) {
		t.Parallel()
		m, buf := newTestManager()
		path := writeTempFile(t, "manifest.yaml", lyingManifest)

		err := m.RunFixtures(context.Background(), path, 1, "text", false, false)
		var want *FixturesFailedError
		require.ErrorAs(t, err, &want)
		assert.Equal(t, 1, want.Failed)
		assert.Contains(t, buf.String(), "0 passed, 1 failed")
	})

	t.Run("json format", func(t *testing.T) {
		t.Parallel()
		m, buf := newTestManager()
		path := writeTempFile(t, "manifest.yaml", testManifest)

		require.NoError(t, m.RunFixtures(context.Background(), path, 0, "json", false, false))
		assert.Contains(t, buf.String(), `"totalPassed": 2`)
	})

	t.Run("missing manifest", func(t *testing.T) {
		t.Parallel()
		m, _ := newTestManager()
		err := m.RunFixtures(context.Background(), "no-such-manifest.yaml", 1, "text", false, false)
		require.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestWriteDefaultConfig(t *testing.T) {
	t.Parallel()

	m, _ := newTestManager()
	path := filepath.Join(t.TempDir(), "parameters.yaml")

	require.NoError(t, m.WriteDefaultConfig(path, false))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, loader.DefaultDocument(), data)

	t.Run("refuses to overwrite", func(t *testing.T) {
		err := m.WriteDefaultConfig(path, false)
		var want *OutputExistsError
		require.ErrorAs(t, err, &want)
		assert.Equal(t, path, want.Path)
	})

	t.Run("force overwrites", func(t *testing.T) {
		require.NoError(t, m.WriteDefaultConfig(path, true))
	})
}
