package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-builder/internal/config"
	"cv-builder/internal/domain"
	"cv-builder/internal/usecase"
)

type stubJobFinder struct {
	jobs map[string]*domain.RenderJob
	err  error
}

func (s *stubJobFinder) Get(_ context.Context, id string) (*domain.RenderJob, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.jobs[id], nil
}

func testApp(t *testing.T, jobs JobFinder) *fiber.App {
	t.Helper()
	cfg := &config.Config{
		WorkDir:      t.TempDir(),
		LatexCommand: "pdflatex",
		LatexTimeout: 5 * time.Second,
		Placeholders: true,
	}
	g := usecase.NewGenerator(nil, nil, nil, nil, cfg, nil)

	app := fiber.New()
	NewHandler(g, jobs, nil).Register(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp.StatusCode, out
}

func TestValidateLaTeXEndpoint(t *testing.T) {
	app := testApp(t, nil)

	t.Run("valid markup", func(t *testing.T) {
		status, body := postJSON(t, app, "/latex/validate", map[string]string{
			"latex": `\documentclass{article}\begin{document}hi\end{document}`,
		})
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, true, body["valid"])
		assert.Empty(t, body["diagnostics"])
	})

	t.Run("broken markup", func(t *testing.T) {
		status, body := postJSON(t, app, "/latex/validate", map[string]string{
			"latex": `\begin{document}{`,
		})
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, false, body["valid"])
		assert.NotEmpty(t, body["diagnostics"])
	})
}

func TestTemplateEndpoint(t *testing.T) {
	app := testApp(t, nil)

	req := httptest.NewRequest("GET", "/resumes/template?style=single-column", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	latexSrc, _ := body["latex"].(string)
	assert.Contains(t, latexSrc, `\begin{document}`)
	assert.Contains(t, latexSrc, "John Doe")
}

func TestStartCompileRejectsBadInput(t *testing.T) {
	app := testApp(t, nil)

	t.Run("invalid user id", func(t *testing.T) {
		status, body := postJSON(t, app, "/resumes/compile", map[string]interface{}{
			"userId": "not-a-uuid",
		})
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "invalid userId", body["error"])
	})

	t.Run("invalid resume document", func(t *testing.T) {
		status, _ := postJSON(t, app, "/resumes/compile", map[string]interface{}{
			"userId": "a2f4a8d0-95cc-4c9a-8f30-9e2f3f1a6f1e",
			"resume": map[string]interface{}{"projects": "not a list"},
		})
		assert.Equal(t, fiber.StatusBadRequest, status)
	})
}

func TestJobStatusEndpoint(t *testing.T) {
	getJSON := func(t *testing.T, app *fiber.App, path string) (int, map[string]interface{}) {
		t.Helper()
		req := httptest.NewRequest("GET", path, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var out map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &out))
		return resp.StatusCode, out
	}

	jobID := uuid.New()
	finder := &stubJobFinder{jobs: map[string]*domain.RenderJob{
		jobID.String(): {
			ID:       jobID,
			Status:   domain.StatusCompleted,
			Metadata: map[string]interface{}{"fallback": false},
		},
	}}

	t.Run("known job", func(t *testing.T) {
		status, body := getJSON(t, testApp(t, finder), "/resumes/jobs/"+jobID.String())
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, jobID.String(), body["jobId"])
		assert.Equal(t, domain.StatusCompleted, body["status"])
		assert.NotNil(t, body["metadata"])
	})

	t.Run("unknown job", func(t *testing.T) {
		status, body := getJSON(t, testApp(t, finder), "/resumes/jobs/"+uuid.NewString())
		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Equal(t, "job not found", body["error"])
	})

	t.Run("invalid id", func(t *testing.T) {
		status, body := getJSON(t, testApp(t, finder), "/resumes/jobs/not-a-uuid")
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "invalid job id", body["error"])
	})

	t.Run("no persistence configured", func(t *testing.T) {
		status, _ := getJSON(t, testApp(t, nil), "/resumes/jobs/"+jobID.String())
		assert.Equal(t, fiber.StatusNotFound, status)
	})
}

func TestRenderRequiresResume(t *testing.T) {
	app := testApp(t, nil)

	status, body := postJSON(t, app, "/resumes/render", map[string]interface{}{
		"sessionId": "s1",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "resume document is required", body["error"])
}
