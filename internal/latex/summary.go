package latex

import (
	"strings"

	"cv-builder/internal/model"
)

// summaryBlock renders the most recent generated summary. With several
// stored summaries the first entry wins (the repository orders newest
// first).
type summaryBlock struct {
	style Style
	opt   Options
}

func (b summaryBlock) Generate(r *model.Resume) string {
	if len(r.Summaries) == 0 {
		return ""
	}
	text := fallback(r.Summaries[0].GeneratedSummary, defaultSummaryText, b.opt)
	if text == "" {
		return ""
	}
	return strings.Join([]string{
		b.style.Heading("Professional Summary"),
		Escape(text),
		"",
	}, "\n")
}

const defaultSummaryText = "Experienced professional with a track record of delivering " +
	"well-engineered software and clear technical communication."
