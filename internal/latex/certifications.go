package latex

import (
	"fmt"
	"strings"

	"cv-builder/internal/model"
)

type certificationsBlock struct {
	style Style
	opt   Options
}

func (b certificationsBlock) Generate(r *model.Resume) string {
	if len(r.Certifications) == 0 {
		return ""
	}

	if b.style.Name() == StyleTwoColumn {
		parts := []string{b.style.SidebarHeading("Certifications")}
		for _, c := range r.Certifications {
			parts = append(parts, fmt.Sprintf(`\textbf{%s} \\`, Escape(fallback(c.Title, "Certification Title", b.opt))))
			if c.Issuer != "" {
				parts = append(parts, Escape(c.Issuer)+` \\`)
			}
			if c.DateObtained != "" {
				parts = append(parts, fmt.Sprintf(`\textit{%s} \\`, Escape(c.DateObtained)))
			}
			parts = append(parts, `\vspace{5pt}`)
		}
		parts = append(parts, "")
		return strings.Join(parts, "\n")
	}

	parts := []string{b.style.Heading("Certifications")}
	for _, c := range r.Certifications {
		parts = append(parts, b.style.ItemLine(Escape(fallback(c.Title, "Certification Title", b.opt)), Escape(c.DateObtained)))
		if c.Issuer != "" {
			parts = append(parts, fmt.Sprintf(`\textit{%s}`, Escape(c.Issuer)))
		}
		parts = append(parts, "")
	}
	return strings.Join(parts, "\n")
}
