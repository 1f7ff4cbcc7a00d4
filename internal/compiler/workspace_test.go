package compiler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkspaceSessionDirectory(t *testing.T) {
	base := t.TempDir()

	ws, err := NewWorkspace(base, "abc123")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "cv_builder_abc123"), ws.Dir())
	assert.Equal(t, filepath.Join(ws.Dir(), "current_resume.tex"), ws.SourcePath())
	assert.Equal(t, filepath.Join(ws.Dir(), "current_resume.pdf"), ws.ArtifactPath())

	// Same session resolves to the same directory.
	again, err := NewWorkspace(base, "abc123")
	require.NoError(t, err)
	assert.Equal(t, ws.Dir(), again.Dir())
}

func TestNewWorkspaceAnonymous(t *testing.T) {
	base := t.TempDir()

	a, err := NewWorkspace(base, "")
	require.NoError(t, err)
	b, err := NewWorkspace(base, "")
	require.NoError(t, err)
	assert.NotEqual(t, a.Dir(), b.Dir())
}

func TestWorkspaceSourceOverwrite(t *testing.T) {
	ws, err := NewWorkspace(t.TempDir(), "s1")
	require.NoError(t, err)

	require.NoError(t, ws.WriteSource("first"))
	require.NoError(t, ws.WriteSource("second"))

	data, err := os.ReadFile(ws.SourcePath())
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestWorkspaceArtifactAndCleanup(t *testing.T) {
	ws, err := NewWorkspace(t.TempDir(), "s2")
	require.NoError(t, err)

	assert.False(t, ws.HasArtifact())
	require.NoError(t, os.WriteFile(ws.ArtifactPath(), []byte("%PDF-1.4"), 0o644))
	assert.True(t, ws.HasArtifact())

	require.NoError(t, ws.Cleanup())
	assert.NoDirExists(t, ws.Dir())
	assert.NoError(t, ws.Cleanup())
}

func TestWorkspaceEmptyArtifactIgnored(t *testing.T) {
	ws, err := NewWorkspace(t.TempDir(), "s3")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(ws.ArtifactPath(), nil, 0o644))
	assert.False(t, ws.HasArtifact())
}
