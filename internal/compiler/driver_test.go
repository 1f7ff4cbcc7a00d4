package compiler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompiler writes a shell script standing in for pdflatex. The
// script honors -output-directory and either drops a PDF artifact or
// not, with a chosen exit code.
func fakeCompiler(t *testing.T, producePDF bool, exitCode int) string {
	t.Helper()
	script := "#!/bin/sh\n" +
		"out=.\n" +
		"while [ $# -gt 0 ]; do\n" +
		"  if [ \"$1\" = \"-output-directory\" ]; then out=$2; shift; fi\n" +
		"  shift\n" +
		"done\n" +
		"echo 'This is a fake TeX log'\n"
	if producePDF {
		script += "printf '%s' '%PDF-1.4 fake' > \"$out/current_resume.pdf\"\n"
	}
	script += fmt.Sprintf("exit %d\n", exitCode)

	path := filepath.Join(t.TempDir(), "fakelatex")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestDriverCompileSuccess(t *testing.T) {
	InvalidateProbe()
	ws, err := NewWorkspace(t.TempDir(), "ok")
	require.NoError(t, err)

	d := NewDriver(ws, fakeCompiler(t, true, 0), 0, nil)
	artifact, diag, err := d.Compile(context.Background(), `\documentclass{article}`)
	require.NoError(t, err)
	assert.Equal(t, ws.ArtifactPath(), artifact)
	assert.Empty(t, diag)

	src, err := os.ReadFile(ws.SourcePath())
	require.NoError(t, err)
	assert.Equal(t, `\documentclass{article}`, string(src))
}

func TestDriverNonzeroExitWithArtifactSucceeds(t *testing.T) {
	// pdflatex reports warnings through its exit code while still
	// producing a usable PDF.
	InvalidateProbe()
	ws, err := NewWorkspace(t.TempDir(), "warn")
	require.NoError(t, err)

	d := NewDriver(ws, fakeCompiler(t, true, 1), 0, nil)
	artifact, _, err := d.Compile(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, ws.ArtifactPath(), artifact)
}

func TestDriverFailureCarriesLogTail(t *testing.T) {
	InvalidateProbe()
	ws, err := NewWorkspace(t.TempDir(), "fail")
	require.NoError(t, err)

	d := NewDriver(ws, fakeCompiler(t, false, 1), 0, nil)
	artifact, diag, err := d.Compile(context.Background(), "x")
	require.Error(t, err)
	assert.Empty(t, artifact)
	assert.Contains(t, diag, "fake TeX log")
}

func TestDriverStaleArtifactNotReused(t *testing.T) {
	InvalidateProbe()
	ws, err := NewWorkspace(t.TempDir(), "stale")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(ws.ArtifactPath(), []byte("%PDF-1.4 old"), 0o644))

	d := NewDriver(ws, fakeCompiler(t, false, 0), 0, nil)
	artifact, _, err := d.Compile(context.Background(), "x")
	require.Error(t, err)
	assert.Empty(t, artifact)
	assert.False(t, ws.HasArtifact())
}

func TestDriverMissingCompiler(t *testing.T) {
	InvalidateProbe()
	ws, err := NewWorkspace(t.TempDir(), "missing")
	require.NoError(t, err)

	d := NewDriver(ws, "definitely-not-a-latex-binary", 0, nil)
	_, _, err = d.Compile(context.Background(), "x")
	assert.ErrorIs(t, err, ErrCompilerMissing)
}

func TestDriverProbeCaching(t *testing.T) {
	InvalidateProbe()
	cmd := fakeCompiler(t, true, 0)
	ws, err := NewWorkspace(t.TempDir(), "probe")
	require.NoError(t, err)

	d := NewDriver(ws, cmd, 0, nil)
	require.True(t, d.Available())

	// Removing the binary is invisible until the probe is invalidated.
	require.NoError(t, os.Remove(cmd))
	assert.True(t, d.Available())

	InvalidateProbe()
	assert.False(t, d.Available())
}

func TestDriverTimeout(t *testing.T) {
	InvalidateProbe()
	script := "#!/bin/sh\nsleep 5\n"
	path := filepath.Join(t.TempDir(), "slowlatex")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))

	ws, err := NewWorkspace(t.TempDir(), "slow")
	require.NoError(t, err)

	d := NewDriver(ws, path, 100*time.Millisecond, nil)
	_, _, err = d.Compile(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}
