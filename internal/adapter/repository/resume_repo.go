package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"cv-builder/internal/model"
)

// ResumeRepo loads the per-user resume aggregate from PostgreSQL. Each
// section table is queried as JSON so the database shape and the wire
// shape stay the same document.
type ResumeRepo struct {
	pool *pgxpool.Pool
}

func NewResumeRepo(pool *pgxpool.Pool) *ResumeRepo {
	return &ResumeRepo{pool: pool}
}

// queryJSON runs a SQL statement returning a single json value.
func queryJSON(ctx context.Context, pool *pgxpool.Pool, sql string, args ...interface{}) (json.RawMessage, error) {
	var raw []byte
	if err := pool.QueryRow(ctx, sql, args...).Scan(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// sectionQueries maps the resume document keys to their table queries.
// Summaries come newest-first so the latest tailored summary renders.
var sectionQueries = map[string]string{
	"professional_summaries":  `SELECT coalesce(json_agg(row_to_json(s) ORDER BY s.created_at DESC), '[]') FROM professional_summaries s WHERE s.user_id::text=$1`,
	"projects":                `SELECT coalesce(json_agg(row_to_json(p)), '[]') FROM projects p WHERE p.user_id::text=$1`,
	"professional_experience": `SELECT coalesce(json_agg(row_to_json(e)), '[]') FROM professional_experience e WHERE e.user_id::text=$1`,
	"research_experience":     `SELECT coalesce(json_agg(row_to_json(r)), '[]') FROM research_experience r WHERE r.user_id::text=$1`,
	"academic_collaborations": `SELECT coalesce(json_agg(row_to_json(c)), '[]') FROM academic_collaborations c WHERE c.user_id::text=$1`,
	"education":               `SELECT coalesce(json_agg(row_to_json(ed)), '[]') FROM education ed WHERE ed.user_id::text=$1`,
	"technical_skills":        `SELECT coalesce(json_agg(row_to_json(t)), '[]') FROM technical_skills t WHERE t.user_id::text=$1`,
	"certifications":          `SELECT coalesce(json_agg(row_to_json(cert)), '[]') FROM certifications cert WHERE cert.user_id::text=$1`,
}

// LoadResume collects the user row and every section table into one
// Resume. Section queries are best-effort: a missing table is skipped
// and the section stays empty.
func (r *ResumeRepo) LoadResume(ctx context.Context, userID string) (*model.Resume, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("no database pool configured")
	}

	doc := map[string]json.RawMessage{}

	user, err := queryJSON(ctx, r.pool, `SELECT to_jsonb(u) FROM users u WHERE u.id::text=$1 LIMIT 1`, userID)
	if err != nil {
		return nil, fmt.Errorf("load user %s: %w", userID, err)
	}
	doc["user"] = user

	for key, sql := range sectionQueries {
		if v, err := queryJSON(ctx, r.pool, sql, userID); err == nil {
			doc[key] = v
		}
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	var resume model.Resume
	if err := json.Unmarshal(raw, &resume); err != nil {
		return nil, fmt.Errorf("decode resume aggregate: %w", err)
	}
	return &resume, nil
}
