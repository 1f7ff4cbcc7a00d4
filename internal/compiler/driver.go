package compiler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds one compiler invocation.
const DefaultTimeout = 30 * time.Second

// DefaultCommand is the LaTeX compiler binary probed on PATH.
const DefaultCommand = "pdflatex"

// ErrCompilerMissing reports that the external compiler binary is not
// installed. Callers switch to the fallback renderer on this error.
var ErrCompilerMissing = errors.New("latex compiler not found")

// probeCache remembers per-command availability so the Driver does not
// hit PATH on every construction. InvalidateProbe clears it when the
// environment changes.
var (
	probeMu    sync.Mutex
	probeCache = map[string]bool{}
)

// InvalidateProbe drops all cached compiler-availability results.
func InvalidateProbe() {
	probeMu.Lock()
	defer probeMu.Unlock()
	probeCache = map[string]bool{}
}

func commandAvailable(command string) bool {
	probeMu.Lock()
	defer probeMu.Unlock()
	ok, cached := probeCache[command]
	if !cached {
		_, err := exec.LookPath(command)
		ok = err == nil
		probeCache[command] = ok
	}
	return ok
}

// Driver runs the external LaTeX compiler against one workspace.
type Driver struct {
	ws      *Workspace
	command string
	timeout time.Duration
	log     *zap.Logger
}

// NewDriver builds a Driver for the workspace. Empty command and zero
// timeout take the defaults.
func NewDriver(ws *Workspace, command string, timeout time.Duration, log *zap.Logger) *Driver {
	if command == "" {
		command = DefaultCommand
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Driver{ws: ws, command: command, timeout: timeout, log: log}
}

// Available reports whether the compiler binary can be invoked.
func (d *Driver) Available() bool {
	return commandAvailable(d.command)
}

// Compile writes the source into the workspace and runs the compiler.
// Success is judged solely by the artifact: LaTeX exits nonzero on
// recoverable warnings while still producing a usable PDF, so the exit
// code alone decides nothing. On failure the returned diagnostic carries
// the tail of the compiler log.
func (d *Driver) Compile(ctx context.Context, latex string) (string, string, error) {
	if !d.Available() {
		return "", "", ErrCompilerMissing
	}

	if err := d.ws.WriteSource(latex); err != nil {
		return "", "", err
	}
	// A stale artifact from the previous run must not masquerade as this
	// run's output.
	_ = os.Remove(d.ws.ArtifactPath())

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, d.command,
		"-interaction=nonstopmode",
		"-output-directory", d.ws.Dir(),
		d.ws.SourcePath(),
	)
	out, runErr := cmd.CombinedOutput()

	if ctx.Err() == context.DeadlineExceeded {
		return "", logTail(out), fmt.Errorf("compilation timed out after %s", d.timeout)
	}

	if d.ws.HasArtifact() {
		if runErr != nil {
			d.log.Debug("compiler exited nonzero but produced the artifact",
				zap.String("command", d.command),
				zap.Error(runErr))
		}
		return d.ws.ArtifactPath(), "", nil
	}

	diag := logTail(out)
	if runErr != nil {
		return "", diag, fmt.Errorf("compilation failed: %w", runErr)
	}
	return "", diag, errors.New("compilation produced no output file")
}

// logTail keeps the last portion of the compiler log, where LaTeX puts
// its error summary.
func logTail(out []byte) string {
	const max = 1000
	s := strings.TrimSpace(string(out))
	if len(s) > max {
		s = s[len(s)-max:]
	}
	return s
}
