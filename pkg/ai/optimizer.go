package ai

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"cv-builder/internal/model"
)

// maxSelectedProjects bounds how many projects a tailored resume keeps.
const maxSelectedProjects = 3

// ContentGenerator is the single capability the Optimizer needs from the
// Gemini client.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Optimizer rewrites parts of a resume to match a job description. Every
// step is best effort: a failed call leaves the section untouched.
type Optimizer struct {
	gen ContentGenerator
	log *zap.Logger
}

func NewOptimizer(gen ContentGenerator, log *zap.Logger) *Optimizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Optimizer{gen: gen, log: log}
}

// Enabled reports whether AI tailoring can run.
func (o *Optimizer) Enabled() bool {
	return o != nil && o.gen != nil
}

// Optimize tailors the resume in place for the job description: a fresh
// professional summary, a relevance-ranked project subset, and rewritten
// experience descriptions. A blank job description is a no-op.
func (o *Optimizer) Optimize(ctx context.Context, r *model.Resume, jobDescription string) {
	if !o.Enabled() || strings.TrimSpace(jobDescription) == "" {
		return
	}

	if summary, err := o.GenerateSummary(ctx, r, jobDescription); err != nil {
		o.log.Warn("summary generation failed, keeping stored summary", zap.Error(err))
	} else {
		r.Summaries = append([]model.Summary{{
			GeneratedSummary: summary,
			JobDescription:   jobDescription,
		}}, r.Summaries...)
	}

	if len(r.Projects) > maxSelectedProjects {
		if selected, err := o.SelectProjects(ctx, r.Projects, jobDescription, maxSelectedProjects); err != nil {
			o.log.Warn("project selection failed, keeping all projects", zap.Error(err))
		} else {
			r.Projects = selected
		}
	}

	for i := range r.Experience {
		if strings.TrimSpace(r.Experience[i].Description) == "" {
			continue
		}
		rewritten, err := o.RewriteExperience(ctx, r.Experience[i], jobDescription)
		if err != nil {
			o.log.Warn("experience rewrite failed, keeping stored description",
				zap.Error(err), zap.String("position", r.Experience[i].Position))
			continue
		}
		if rewritten != "" {
			r.Experience[i].Description = rewritten
		}
	}
}

// GenerateSummary asks for a short professional summary aligned with the
// job description.
func (o *Optimizer) GenerateSummary(ctx context.Context, r *model.Resume, jobDescription string) (string, error) {
	var b strings.Builder
	b.WriteString("Write a professional resume summary for the following candidate.\n\nCANDIDATE:\n")
	if r.User.Name != "" {
		fmt.Fprintf(&b, "Name: %s\n", r.User.Name)
	}
	for i, p := range r.Projects {
		if i == 3 {
			break
		}
		fmt.Fprintf(&b, "Project: %s: %s\n", p.Title, p.Description)
	}
	for i, e := range r.Experience {
		if i == 2 {
			break
		}
		fmt.Fprintf(&b, "Experience: %s at %s: %s\n", e.Position, e.Company, e.Description)
	}
	for _, s := range r.Skills {
		fmt.Fprintf(&b, "Skills: %s: %s\n", s.Category, s.Skills)
	}
	fmt.Fprintf(&b, "\nTARGET JOB DESCRIPTION:\n%s\n", jobDescription)
	b.WriteString("\nRequirements: 80-90 words, 2-3 sentences, action-oriented language. Respond with the summary text only, no preamble.")

	out, err := o.gen.GenerateContent(ctx, b.String())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// SelectProjects asks for the most relevant projects, ranked. On any
// parse trouble the leading projects are returned instead.
func (o *Optimizer) SelectProjects(ctx context.Context, projects []model.Project, jobDescription string, max int) ([]model.Project, error) {
	if len(projects) <= max {
		return projects, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Select the %d projects most relevant to this job description, ranked by relevance.\n\nJOB DESCRIPTION:\n%s\n\nPROJECTS:\n", max, jobDescription)
	for i, p := range projects {
		fmt.Fprintf(&b, "%d. %s (%s): %s\n", i, p.Title, p.Technologies, p.Description)
	}
	fmt.Fprintf(&b, "\nRespond with only the indices, comma-separated, e.g. 0,2,1")

	out, err := o.gen.GenerateContent(ctx, b.String())
	if err != nil {
		return nil, err
	}

	indices := parseIndices(out, len(projects))
	if len(indices) == 0 {
		return projects[:max], nil
	}
	if len(indices) > max {
		indices = indices[:max]
	}

	selected := make([]model.Project, 0, len(indices))
	for _, i := range indices {
		selected = append(selected, projects[i])
	}
	return selected, nil
}

// RewriteExperience asks for a description rewrite that emphasizes the
// job description's requirements while keeping a similar length.
func (o *Optimizer) RewriteExperience(ctx context.Context, exp model.Experience, jobDescription string) (string, error) {
	var b strings.Builder
	b.WriteString("Rewrite this professional experience description to better align with the job requirements.\n\n")
	fmt.Fprintf(&b, "JOB DESCRIPTION:\n%s\n\n", jobDescription)
	fmt.Fprintf(&b, "ROLE: %s at %s\nCURRENT DESCRIPTION:\n%s\n", exp.Position, exp.Company, exp.Description)
	b.WriteString("\nRequirements: stay truthful, emphasize relevant skills and achievements, use keywords from the job description naturally, keep a similar length. Respond with the rewritten description only, no preamble.")

	out, err := o.gen.GenerateContent(ctx, b.String())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// parseIndices extracts in-range integers from a model response,
// tolerating code fences and surrounding prose.
func parseIndices(response string, total int) []int {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")

	var out []int
	seen := map[int]bool{}
	for _, field := range strings.FieldsFunc(response, func(r rune) bool {
		return r < '0' || r > '9'
	}) {
		n, err := strconv.Atoi(field)
		if err != nil || n < 0 || n >= total || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
