package latex

import (
	"fmt"
	"strings"

	"cv-builder/internal/model"
)

type skillsBlock struct {
	style Style
	opt   Options
}

func (b skillsBlock) Generate(r *model.Resume) string {
	if len(r.Skills) == 0 {
		return ""
	}

	if b.style.Name() == StyleTwoColumn {
		parts := []string{b.style.SidebarHeading("Technical Skills")}
		for _, c := range r.Skills {
			parts = append(parts, fmt.Sprintf(`\textbf{%s:} \\`, Escape(fallback(c.Category, "Skills", b.opt))))
			parts = append(parts, Escape(c.Skills)+` \\[5pt]`)
		}
		parts = append(parts, `\vspace{10pt}`, "")
		return strings.Join(parts, "\n")
	}

	parts := []string{b.style.Heading("Technical Skills")}
	for _, c := range r.Skills {
		parts = append(parts, fmt.Sprintf(`\textbf{%s:} %s`, Escape(fallback(c.Category, "Skills", b.opt)), Escape(c.Skills)))
		parts = append(parts, "")
	}
	return strings.Join(parts, "\n")
}
