package latex

import (
	"fmt"
	"strings"

	"cv-builder/internal/model"
)

// collaborationBlock renders academic collaborations. The section has one
// rendering for both designs; only the heading differs per style.
type collaborationBlock struct {
	style Style
	opt   Options
}

func (b collaborationBlock) Generate(r *model.Resume) string {
	if len(r.Collaborations) == 0 {
		return ""
	}

	parts := []string{b.style.Heading("Academic Collaborations")}
	for _, c := range r.Collaborations {
		title := Escape(fallback(c.ProjectTitle, "Collaboration Title", b.opt))
		if c.PublicationURL != "" {
			title = fmt.Sprintf(`\href{%s}{%s}`, EscapeURL(c.PublicationURL), title)
		}
		parts = append(parts, b.style.ItemLine(title, FormatDateRange(c.StartDate, c.EndDate)))

		var typeInst []string
		if c.CollaborationType != "" {
			typeInst = append(typeInst, fmt.Sprintf(`\textit{%s}`, Escape(c.CollaborationType)))
		}
		if c.Institution != "" {
			typeInst = append(typeInst, "at "+Escape(c.Institution))
		}
		if len(typeInst) > 0 {
			parts = append(parts, strings.Join(typeInst, " "))
		}

		if c.Role != "" {
			parts = append(parts, `\textbf{Role:} `+Escape(c.Role))
		}
		if c.Collaborators != "" {
			parts = append(parts, `\textbf{Collaborators:} `+Escape(c.Collaborators))
		}
		if frag := itemize(SplitBullets(c.Description)); frag != "" {
			parts = append(parts, frag)
		}
		parts = append(parts, "")
	}
	return strings.Join(parts, "\n")
}
