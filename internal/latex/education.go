package latex

import (
	"fmt"
	"strings"

	"cv-builder/internal/model"
)

type educationBlock struct {
	style Style
	opt   Options
}

func (b educationBlock) Generate(r *model.Resume) string {
	if len(r.Education) == 0 {
		return ""
	}
	if b.style.Name() == StyleTwoColumn {
		return b.sidebar(r.Education)
	}
	return b.fullWidth(r.Education)
}

func (b educationBlock) sidebar(items []model.Education) string {
	parts := []string{b.style.SidebarHeading("Education")}
	for _, e := range items {
		parts = append(parts, fmt.Sprintf(`\textbf{%s} \\`, Escape(fallback(e.Degree, "Degree", b.opt))))
		parts = append(parts, Escape(fallback(e.Institution, "Institution", b.opt))+` \\`)

		var info []string
		if e.GPAPercentage != "" {
			info = append(info, Escape(e.GPAPercentage))
		}
		if e.GraduationDate != "" {
			info = append(info, Escape(e.GraduationDate))
		}
		if len(info) > 0 {
			parts = append(parts, fmt.Sprintf(`\textit{%s}`, strings.Join(info, " | ")))
		}
		parts = append(parts, `\vspace{10pt}`, "")
	}
	return strings.Join(parts, "\n")
}

func (b educationBlock) fullWidth(items []model.Education) string {
	parts := []string{b.style.Heading("Education")}
	for _, e := range items {
		parts = append(parts, b.style.ItemLine(Escape(fallback(e.Degree, "Degree", b.opt)), Escape(e.GraduationDate)))
		parts = append(parts, fmt.Sprintf(`\textit{%s}`, Escape(fallback(e.Institution, "Institution", b.opt))))
		if e.GPAPercentage != "" {
			parts = append(parts, "GPA/Percentage: "+Escape(e.GPAPercentage))
		}
		parts = append(parts, "")
	}
	return strings.Join(parts, "\n")
}
