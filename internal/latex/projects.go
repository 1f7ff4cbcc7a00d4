package latex

import (
	"fmt"
	"strings"

	"cv-builder/internal/model"
)

type projectsBlock struct {
	style Style
	opt   Options
}

func (b projectsBlock) Generate(r *model.Resume) string {
	if len(r.Projects) == 0 {
		return ""
	}

	parts := []string{b.style.Heading("Projects")}
	for _, p := range r.Projects {
		title := Escape(fallback(p.Title, "Project Title", b.opt))
		// Only the full-width rendering links the title; the compact
		// rendering keeps the line short.
		if b.style.Name() == StyleSingleColumn && p.ProjectURL != "" {
			title = fmt.Sprintf(`\href{%s}{%s}`, EscapeURL(p.ProjectURL), title)
		}
		parts = append(parts, b.style.ItemLine(title, FormatDateRange(p.StartDate, p.EndDate)))

		if b.style.Name() == StyleSingleColumn && p.Technologies != "" {
			parts = append(parts, fmt.Sprintf(`\textit{Technologies: %s}`, Escape(p.Technologies)))
		}

		desc := fallback(p.Description, "Project description", b.opt)
		if frag := itemize(SplitBullets(desc)); frag != "" {
			parts = append(parts, frag)
		}
		parts = append(parts, "")
	}
	return strings.Join(parts, "\n")
}
