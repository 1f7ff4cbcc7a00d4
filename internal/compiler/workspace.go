// Package compiler drives the external LaTeX toolchain and the HTML
// fallback renderer. All filesystem state lives in per-session
// workspaces so concurrent renders never share files.
package compiler

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	workspacePrefix = "cv_builder_"
	baseName        = "current_resume"
)

// Workspace is a session-scoped working directory for one render
// pipeline. Source and artifact use fixed names, so a re-render for the
// same session overwrites the previous pair instead of accumulating
// files.
type Workspace struct {
	dir string
}

// NewWorkspace creates (or reuses) the directory for a session under
// baseDir. An empty baseDir falls back to the system temp directory; an
// empty sessionID gets an anonymous single-use directory.
func NewWorkspace(baseDir, sessionID string) (*Workspace, error) {
	if baseDir == "" {
		baseDir = os.TempDir()
	}
	if sessionID == "" {
		dir, err := os.MkdirTemp(baseDir, workspacePrefix)
		if err != nil {
			return nil, fmt.Errorf("create workspace: %w", err)
		}
		return &Workspace{dir: dir}, nil
	}

	dir := filepath.Join(baseDir, workspacePrefix+sessionID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	return &Workspace{dir: dir}, nil
}

// Dir returns the workspace directory path.
func (w *Workspace) Dir() string { return w.dir }

// SourcePath is where the LaTeX source is written.
func (w *Workspace) SourcePath() string {
	return filepath.Join(w.dir, baseName+".tex")
}

// ArtifactPath is where a successful compilation leaves the PDF.
func (w *Workspace) ArtifactPath() string {
	return filepath.Join(w.dir, baseName+".pdf")
}

// WriteSource stores the LaTeX source, replacing any previous version.
func (w *Workspace) WriteSource(latex string) error {
	if err := os.WriteFile(w.SourcePath(), []byte(latex), 0o644); err != nil {
		return fmt.Errorf("write source: %w", err)
	}
	return nil
}

// HasArtifact reports whether a non-empty PDF exists.
func (w *Workspace) HasArtifact() bool {
	info, err := os.Stat(w.ArtifactPath())
	return err == nil && info.Size() > 0
}

// Cleanup removes the whole workspace directory. Safe to call on every
// exit path; a missing directory is not an error.
func (w *Workspace) Cleanup() error {
	if err := os.RemoveAll(w.dir); err != nil {
		return fmt.Errorf("cleanup workspace: %w", err)
	}
	return nil
}
