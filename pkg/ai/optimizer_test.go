package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-builder/internal/model"
)

type stubGenerator struct {
	response string
	err      error
	prompts  []string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

func fourProjects() []model.Project {
	return []model.Project{
		{Title: "Alpha"}, {Title: "Beta"}, {Title: "Gamma"}, {Title: "Delta"},
	}
}

func TestParseIndices(t *testing.T) {
	tests := []struct {
		name     string
		response string
		total    int
		want     []int
	}{
		{"plain list", "0,2,1", 4, []int{0, 2, 1}},
		{"with prose", "The best projects are: 2, 0 and 3.", 4, []int{2, 0, 3}},
		{"code fence", "```\n1,3\n```", 4, []int{1, 3}},
		{"out of range dropped", "0,7,2", 4, []int{0, 2}},
		{"duplicates dropped", "1,1,2", 4, []int{1, 2}},
		{"garbage", "no indices here", 4, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseIndices(tt.response, tt.total))
		})
	}
}

func TestSelectProjects(t *testing.T) {
	t.Run("ranked selection", func(t *testing.T) {
		o := NewOptimizer(&stubGenerator{response: "2,0,3"}, nil)
		selected, err := o.SelectProjects(context.Background(), fourProjects(), "job", 3)
		require.NoError(t, err)
		require.Len(t, selected, 3)
		assert.Equal(t, "Gamma", selected[0].Title)
		assert.Equal(t, "Alpha", selected[1].Title)
		assert.Equal(t, "Delta", selected[2].Title)
	})

	t.Run("unparseable response keeps leading projects", func(t *testing.T) {
		o := NewOptimizer(&stubGenerator{response: "sorry, cannot help"}, nil)
		selected, err := o.SelectProjects(context.Background(), fourProjects(), "job", 3)
		require.NoError(t, err)
		require.Len(t, selected, 3)
		assert.Equal(t, "Alpha", selected[0].Title)
	})

	t.Run("few projects skip the call", func(t *testing.T) {
		gen := &stubGenerator{}
		o := NewOptimizer(gen, nil)
		projects := fourProjects()[:2]
		selected, err := o.SelectProjects(context.Background(), projects, "job", 3)
		require.NoError(t, err)
		assert.Equal(t, projects, selected)
		assert.Empty(t, gen.prompts)
	})
}

func TestRewriteExperience(t *testing.T) {
	t.Run("returns trimmed rewrite", func(t *testing.T) {
		gen := &stubGenerator{response: "  Led the platform rebuild.  "}
		o := NewOptimizer(gen, nil)
		exp := model.Experience{Company: "ACME", Position: "Backend Engineer", Description: "Wrote services."}

		out, err := o.RewriteExperience(context.Background(), exp, "platform role")
		require.NoError(t, err)
		assert.Equal(t, "Led the platform rebuild.", out)

		require.Len(t, gen.prompts, 1)
		assert.Contains(t, gen.prompts[0], "Backend Engineer at ACME")
		assert.Contains(t, gen.prompts[0], "Wrote services.")
		assert.Contains(t, gen.prompts[0], "platform role")
	})

	t.Run("propagates generation errors", func(t *testing.T) {
		o := NewOptimizer(&stubGenerator{err: errors.New("quota exceeded")}, nil)
		_, err := o.RewriteExperience(context.Background(), model.Experience{Description: "d"}, "role")
		assert.Error(t, err)
	})
}

func TestOptimize(t *testing.T) {
	t.Run("prepends tailored summary", func(t *testing.T) {
		o := NewOptimizer(&stubGenerator{response: "A tailored summary."}, nil)
		r := &model.Resume{
			Summaries: []model.Summary{{GeneratedSummary: "Old generic summary."}},
		}
		o.Optimize(context.Background(), r, "backend engineer role")

		require.Len(t, r.Summaries, 2)
		assert.Equal(t, "A tailored summary.", r.Summaries[0].GeneratedSummary)
		assert.Equal(t, "backend engineer role", r.Summaries[0].JobDescription)
	})

	t.Run("rewrites experience descriptions in place", func(t *testing.T) {
		o := NewOptimizer(&stubGenerator{response: "Shipped the payments platform."}, nil)
		r := &model.Resume{
			Experience: []model.Experience{
				{Company: "ACME", Position: "Backend Engineer", Description: "Wrote services."},
				{Company: "Initech", Position: "Intern"},
			},
		}
		o.Optimize(context.Background(), r, "payments role")

		assert.Equal(t, "Shipped the payments platform.", r.Experience[0].Description)
		assert.Empty(t, r.Experience[1].Description)
	})

	t.Run("failure leaves resume untouched", func(t *testing.T) {
		o := NewOptimizer(&stubGenerator{err: errors.New("quota exceeded")}, nil)
		r := &model.Resume{
			Summaries:  []model.Summary{{GeneratedSummary: "Old"}},
			Projects:   fourProjects(),
			Experience: []model.Experience{{Position: "Engineer", Description: "Wrote services."}},
		}
		o.Optimize(context.Background(), r, "role")

		assert.Len(t, r.Summaries, 1)
		assert.Len(t, r.Projects, 4)
		assert.Equal(t, "Wrote services.", r.Experience[0].Description)
	})

	t.Run("blank job description is a no-op", func(t *testing.T) {
		gen := &stubGenerator{}
		o := NewOptimizer(gen, nil)
		o.Optimize(context.Background(), &model.Resume{}, "  ")
		assert.Empty(t, gen.prompts)
	})

	t.Run("nil optimizer disabled", func(t *testing.T) {
		var o *Optimizer
		assert.False(t, o.Enabled())
	})
}
