package domain

import (
	"time"

	"github.com/google/uuid"

	"cv-builder/internal/latex"
	"cv-builder/internal/model"
)

// Render job states.
const (
	StatusPending   = "pending"
	StatusRendering = "rendering"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

type RenderJob struct {
	ID             uuid.UUID              `json:"id"`
	UserID         uuid.UUID              `json:"user_id"`
	SessionID      string                 `json:"session_id"`
	JobDescription string                 `json:"job_description,omitempty"`
	Layout         latex.LayoutSpec       `json:"layout"`
	Status         string                 `json:"status"`
	Diagnostic     string                 `json:"diagnostic,omitempty"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
	Resume         *model.Resume          `json:"resume,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}
