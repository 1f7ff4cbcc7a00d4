package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"cv-builder/internal/compiler"
	"cv-builder/internal/config"
	"cv-builder/internal/domain"
	"cv-builder/internal/latex"
	"cv-builder/internal/model"
)

// ResumeLoader fetches the stored resume aggregate for a user.
type ResumeLoader interface {
	LoadResume(ctx context.Context, userID string) (*model.Resume, error)
}

// JobsRepo persists render job state transitions.
type JobsRepo interface {
	Save(ctx context.Context, j *domain.RenderJob) error
}

// Optimizer tailors resume content to a job description.
type Optimizer interface {
	Enabled() bool
	Optimize(ctx context.Context, r *model.Resume, jobDescription string)
}

// RenderResult is the outcome of one render pipeline run.
type RenderResult struct {
	LaTeX      string
	PDFPath    string
	Diagnostic string
	// Fallback marks a PDF produced by the HTML renderer instead of the
	// LaTeX toolchain.
	Fallback bool
}

// Generator runs the full pipeline: assemble LaTeX, compile, and when no
// toolchain is installed, render the fallback.
type Generator struct {
	repo     ResumeLoader
	jobs     JobsRepo
	fallback *compiler.FallbackRenderer
	cfg      *config.Config
	opt      Optimizer
	log      *zap.Logger
}

func NewGenerator(repo ResumeLoader, jobs JobsRepo, fallback *compiler.FallbackRenderer, opt Optimizer, cfg *config.Config, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{repo: repo, jobs: jobs, fallback: fallback, cfg: cfg, opt: opt, log: log}
}

func (g *Generator) options() latex.Options {
	return latex.Options{
		Placeholders: g.cfg.Placeholders,
		StrictStyle:  g.cfg.StrictStyle,
	}
}

// GenerateLaTeX assembles the document without compiling it.
func (g *Generator) GenerateLaTeX(r *model.Resume, spec latex.LayoutSpec) (string, error) {
	asm, err := latex.NewAssembler(spec, g.options())
	if err != nil {
		return "", err
	}
	return asm.Generate(r), nil
}

// Render assembles and compiles the resume inside the session workspace.
// The workspace is kept when an artifact was produced so the caller can
// serve the file; it is cleaned up on failure.
func (g *Generator) Render(ctx context.Context, r *model.Resume, spec latex.LayoutSpec, sessionID string) (*RenderResult, error) {
	source, err := g.GenerateLaTeX(r, spec)
	if err != nil {
		return nil, err
	}

	ws, err := compiler.NewWorkspace(g.cfg.WorkDir, sessionID)
	if err != nil {
		return nil, err
	}

	driver := compiler.NewDriver(ws, g.cfg.LatexCommand, g.cfg.LatexTimeout, g.log)
	artifact, diag, err := driver.Compile(ctx, source)
	if err == nil {
		return &RenderResult{LaTeX: source, PDFPath: artifact}, nil
	}

	if errors.Is(err, compiler.ErrCompilerMissing) && g.fallback != nil {
		g.log.Warn("latex compiler unavailable, using html fallback",
			zap.String("session", sessionID))
		pdf, ferr := g.fallback.Render(ctx, r, ws)
		if ferr != nil {
			cleanupWorkspace(ws, g.log)
			return nil, fmt.Errorf("fallback render: %w", ferr)
		}
		return &RenderResult{LaTeX: source, PDFPath: pdf, Fallback: true}, nil
	}

	cleanupWorkspace(ws, g.log)
	return &RenderResult{LaTeX: source, Diagnostic: diag}, err
}

// Process drives one async render job through its status transitions.
// Persistence is best-effort: a database outage never blocks rendering.
func (g *Generator) Process(ctx context.Context, job *domain.RenderJob) error {
	job.Status = domain.StatusRendering
	job.UpdatedAt = time.Now()
	g.saveJob(ctx, job)

	resume := job.Resume
	if resume == nil {
		if g.repo == nil {
			return g.failJob(ctx, job, "no resume supplied and no repository configured", nil)
		}
		var err error
		resume, err = g.repo.LoadResume(ctx, job.UserID.String())
		if err != nil {
			return g.failJob(ctx, job, "loading resume failed", err)
		}
	}

	if g.opt != nil && g.opt.Enabled() && job.JobDescription != "" {
		g.opt.Optimize(ctx, resume, job.JobDescription)
	}

	result, err := g.Render(ctx, resume, job.Layout, job.SessionID)
	if err != nil {
		diag := ""
		if result != nil {
			diag = result.Diagnostic
		}
		return g.failJob(ctx, job, diag, err)
	}

	if job.Metadata == nil {
		job.Metadata = map[string]interface{}{}
	}
	job.Metadata["pdf_path"] = result.PDFPath
	job.Metadata["fallback"] = result.Fallback
	job.Status = domain.StatusCompleted
	job.UpdatedAt = time.Now()
	g.saveJob(ctx, job)
	return nil
}

func (g *Generator) failJob(ctx context.Context, job *domain.RenderJob, diag string, cause error) error {
	job.Status = domain.StatusFailed
	job.Diagnostic = diag
	if cause != nil {
		if diag != "" {
			job.Diagnostic = fmt.Sprintf("%v: %s", cause, diag)
		} else {
			job.Diagnostic = cause.Error()
		}
	}
	job.UpdatedAt = time.Now()
	g.saveJob(ctx, job)
	g.log.Error("render job failed",
		zap.String("job", job.ID.String()),
		zap.String("diagnostic", job.Diagnostic))
	if cause != nil {
		return cause
	}
	return errors.New(diag)
}

func (g *Generator) saveJob(ctx context.Context, job *domain.RenderJob) {
	if g.jobs == nil {
		return
	}
	if err := g.jobs.Save(ctx, job); err != nil {
		g.log.Warn("persisting job state failed",
			zap.String("job", job.ID.String()),
			zap.Error(err))
	}
}

func cleanupWorkspace(ws *compiler.Workspace, log *zap.Logger) {
	if err := ws.Cleanup(); err != nil {
		log.Warn("workspace cleanup failed", zap.Error(err))
	}
}
