package http

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"cv-builder/internal/domain"
	"cv-builder/internal/latex"
	"cv-builder/internal/model"
	"cv-builder/internal/usecase"
)

// JobFinder resolves persisted render jobs for status polling.
type JobFinder interface {
	Get(ctx context.Context, id string) (*domain.RenderJob, error)
}

type Handler struct {
	generator *usecase.Generator
	jobs      JobFinder
	log       *zap.Logger
}

func NewHandler(g *usecase.Generator, jobs JobFinder, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{generator: g, jobs: jobs, log: log}
}

// Register mounts the resume routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Post("/resumes/compile", h.StartCompile)
	app.Get("/resumes/jobs/:id", h.JobStatus)
	app.Post("/resumes/render", h.Render)
	app.Post("/latex/validate", h.ValidateLaTeX)
	app.Get("/resumes/template", h.Template)
}

type compileReq struct {
	UserID         string           `json:"userId"`
	SessionID      string           `json:"sessionId"`
	JobDescription string           `json:"jobDescription,omitempty"`
	Layout         latex.LayoutSpec `json:"layout"`
	Resume         json.RawMessage  `json:"resume,omitempty"`
}

// StartCompile accepts a render job and processes it in the background.
// When the request carries a resume document it is validated and used
// directly; otherwise the stored aggregate for userId is loaded.
func (h *Handler) StartCompile(c *fiber.Ctx) error {
	var req compileReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	uid, err := uuid.Parse(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid userId"})
	}

	var resume *model.Resume
	if len(req.Resume) > 0 {
		if err := model.ValidateResume(req.Resume); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		resume = &model.Resume{}
		if err := json.Unmarshal(req.Resume, resume); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid resume document"})
		}
	}

	job := &domain.RenderJob{
		ID:             uuid.New(),
		UserID:         uid,
		SessionID:      req.SessionID,
		JobDescription: req.JobDescription,
		Layout:         req.Layout,
		Status:         domain.StatusPending,
		Resume:         resume,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	go func(j *domain.RenderJob) {
		if err := h.generator.Process(context.Background(), j); err != nil {
			h.log.Error("background job failed",
				zap.String("job", j.ID.String()),
				zap.Error(err))
		}
	}(job)

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"jobId":  job.ID.String(),
		"status": "started",
	})
}

// JobStatus resolves the jobId handed out by StartCompile. Jobs live in
// the database, so lookups need persistence configured.
func (h *Handler) JobStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid job id"})
	}
	if h.jobs == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "job tracking is not configured"})
	}

	job, err := h.jobs.Get(c.Context(), id.String())
	if err != nil {
		h.log.Error("job lookup failed", zap.String("job", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "job lookup failed"})
	}
	if job == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "job not found"})
	}

	resp := fiber.Map{
		"jobId":     job.ID.String(),
		"status":    job.Status,
		"updatedAt": job.UpdatedAt,
	}
	if job.Diagnostic != "" {
		resp["diagnostic"] = job.Diagnostic
	}
	if job.Metadata != nil {
		resp["metadata"] = job.Metadata
	}
	return c.JSON(resp)
}

type renderReq struct {
	SessionID string           `json:"sessionId"`
	Layout    latex.LayoutSpec `json:"layout"`
	Resume    json.RawMessage  `json:"resume"`
}

// Render compiles synchronously and reports the outcome, including the
// generated LaTeX so editors can show it.
func (h *Handler) Render(c *fiber.Ctx) error {
	var req renderReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if len(req.Resume) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "resume document is required"})
	}
	if err := model.ValidateResume(req.Resume); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var resume model.Resume
	if err := json.Unmarshal(req.Resume, &resume); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid resume document"})
	}

	result, err := h.generator.Render(c.Context(), &resume, req.Layout, req.SessionID)
	if err != nil {
		status := fiber.StatusInternalServerError
		resp := fiber.Map{"error": err.Error()}
		if result != nil {
			resp["latex"] = result.LaTeX
			resp["diagnostic"] = result.Diagnostic
		}
		return c.Status(status).JSON(resp)
	}

	return c.JSON(fiber.Map{
		"latex":    result.LaTeX,
		"pdfPath":  result.PDFPath,
		"fallback": result.Fallback,
	})
}

type validateReq struct {
	LaTeX string `json:"latex"`
}

// ValidateLaTeX runs the structural checks over raw markup.
func (h *Handler) ValidateLaTeX(c *fiber.Ctx) error {
	var req validateReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	ok, diags := latex.ValidateStructure(req.LaTeX)
	if diags == nil {
		diags = []string{}
	}
	return c.JSON(fiber.Map{"valid": ok, "diagnostics": diags})
}

// Template returns the assembled LaTeX for the sample resume, letting
// clients preview a style without any stored data.
func (h *Handler) Template(c *fiber.Ctx) error {
	spec := latex.LayoutSpec{
		TemplateStyle: c.Query("style", latex.StyleTwoColumn),
		FontSize:      c.Query("fontSize"),
		OnePage:       c.QueryBool("onePage"),
	}

	source, err := h.generator.GenerateLaTeX(usecase.SampleResume(), spec)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"latex": source})
}
