package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"cv-builder/internal/domain"
)

type JobsRepo struct {
	pool *pgxpool.Pool
}

func NewJobsRepo(pool *pgxpool.Pool) *JobsRepo {
	return &JobsRepo{pool: pool}
}

// Save upserts the job row. A nil pool turns persistence into a no-op so
// the render pipeline keeps working without a database.
func (r *JobsRepo) Save(ctx context.Context, j *domain.RenderJob) error {
	if r.pool == nil {
		return nil
	}

	metaB, _ := json.Marshal(j.Metadata)
	layoutB, _ := json.Marshal(j.Layout)

	_, err := r.pool.Exec(ctx, `INSERT INTO render_jobs (id, user_id, session_id, job_description, layout, status, diagnostic, metadata, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (id) DO UPDATE SET session_id = EXCLUDED.session_id, job_description = EXCLUDED.job_description, layout = EXCLUDED.layout, status = EXCLUDED.status, diagnostic = EXCLUDED.diagnostic, metadata = EXCLUDED.metadata, updated_at = EXCLUDED.updated_at`,
		j.ID, j.UserID, j.SessionID, j.JobDescription, layoutB, j.Status, j.Diagnostic, metaB, j.CreatedAt, j.UpdatedAt)
	return err
}

// Get fetches one job row by id. An unknown id and a nil pool both
// report a nil job rather than an error.
func (r *JobsRepo) Get(ctx context.Context, id string) (*domain.RenderJob, error) {
	if r.pool == nil {
		return nil, nil
	}

	raw, err := queryJSON(ctx, r.pool, `SELECT to_jsonb(j) FROM render_jobs j WHERE j.id::text=$1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	var job domain.RenderJob
	if err := json.Unmarshal(raw, &job); err != nil {
		return nil, err
	}
	return &job, nil
}
