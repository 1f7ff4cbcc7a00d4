package compiler

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"os"

	"go.uber.org/zap"

	"cv-builder/internal/latex"
	"cv-builder/internal/model"
)

//go:embed fallback.html.tmpl
var fallbackTemplate string

// Renderer prints an HTML document to PDF bytes. Implemented by the
// headless-Chrome renderer in pkg/infrastructure.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// FallbackRenderer produces a PDF without a LaTeX toolchain. It walks
// the resume record directly rather than parsing the generated LaTeX, so
// its output is a plain single-column document regardless of the
// requested style.
type FallbackRenderer struct {
	renderer Renderer
	tmpl     *template.Template
	log      *zap.Logger
}

func NewFallbackRenderer(renderer Renderer, log *zap.Logger) (*FallbackRenderer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	tmpl, err := template.New("resume").Funcs(template.FuncMap{
		"bullets":   latex.SplitBullets,
		"dateRange": latex.FormatDateRange,
	}).Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse fallback template: %w", err)
	}
	return &FallbackRenderer{renderer: renderer, tmpl: tmpl, log: log}, nil
}

// Render writes the fallback PDF to the workspace artifact path and
// returns it, mirroring the Driver contract so callers treat both paths
// alike.
func (f *FallbackRenderer) Render(ctx context.Context, r *model.Resume, ws *Workspace) (string, error) {
	var buf bytes.Buffer
	if err := f.tmpl.Execute(&buf, r); err != nil {
		return "", fmt.Errorf("render fallback html: %w", err)
	}

	f.log.Info("rendering resume through the html fallback")
	pdf, err := f.renderer.RenderHTMLToPDF(ctx, buf.String())
	if err != nil {
		return "", fmt.Errorf("html to pdf: %w", err)
	}

	if err := os.WriteFile(ws.ArtifactPath(), pdf, 0o644); err != nil {
		return "", fmt.Errorf("write fallback artifact: %w", err)
	}
	return ws.ArtifactPath(), nil
}
