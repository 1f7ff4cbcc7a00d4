package latex

import (
	"fmt"
	"strings"

	"cv-builder/internal/model"
)

// experienceKind selects between the two experience sections. They share
// all rendering logic; professional entries carry company+position where
// research entries carry a single title.
type experienceKind int

const (
	experienceProfessional experienceKind = iota
	experienceResearch
)

type experienceBlock struct {
	style Style
	opt   Options
	kind  experienceKind
}

type experienceEntry struct {
	title       string // research title, or position/company composed per style
	subtitle    string // company line in the full-width professional rendering
	description string
	start, end  string
}

func (b experienceBlock) entries(r *model.Resume) (string, []experienceEntry) {
	if b.kind == experienceResearch {
		out := make([]experienceEntry, 0, len(r.Research))
		for _, e := range r.Research {
			out = append(out, experienceEntry{
				title:       fallback(e.Title, "Research Title", b.opt),
				description: e.Description,
				start:       e.StartDate,
				end:         e.EndDate,
			})
		}
		return "Research Experience", out
	}

	out := make([]experienceEntry, 0, len(r.Experience))
	for _, e := range r.Experience {
		position := fallback(e.Position, "Position", b.opt)
		company := fallback(e.Company, "Company", b.opt)
		entry := experienceEntry{
			description: e.Description,
			start:       e.StartDate,
			end:         e.EndDate,
		}
		if b.style.Name() == StyleTwoColumn {
			entry.title = position + " -- " + company
		} else {
			entry.title = position
			entry.subtitle = company
		}
		out = append(out, entry)
	}
	return "Professional Experience", out
}

func (b experienceBlock) Generate(r *model.Resume) string {
	title, entries := b.entries(r)
	if len(entries) == 0 {
		return ""
	}

	parts := []string{b.style.Heading(title)}
	for _, e := range entries {
		parts = append(parts, b.style.ItemLine(Escape(e.title), FormatDateRange(e.start, e.end)))
		if e.subtitle != "" {
			parts = append(parts, fmt.Sprintf(`\textit{%s}`, Escape(e.subtitle)))
		}
		desc := fallback(e.description, "Experience description", b.opt)
		if frag := itemize(SplitBullets(desc)); frag != "" {
			parts = append(parts, frag)
		}
		parts = append(parts, "")
	}
	return strings.Join(parts, "\n")
}
