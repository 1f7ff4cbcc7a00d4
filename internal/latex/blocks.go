package latex

import (
	"strings"

	"cv-builder/internal/model"
)

// Block renders one resume section into a self-contained LaTeX fragment.
// A Block returns the empty string when its section has nothing to show;
// the Assembler then omits the section entirely.
type Block interface {
	Generate(r *model.Resume) string
}

// Options tunes rendering policy shared by all Blocks and the Assembler.
type Options struct {
	// Placeholders substitutes generic text ("Project Title", "Degree") for
	// missing fields instead of omitting the line. This preserves the
	// original demo-friendly behavior; turn it off for real documents.
	Placeholders bool
	// StrictStyle makes an unknown template style an error instead of a
	// silent downgrade to the single-column design.
	StrictStyle bool
}

// fallback picks the field value, the placeholder, or nothing, depending
// on policy.
func fallback(value, placeholder string, opt Options) string {
	if value != "" {
		return value
	}
	if opt.Placeholders {
		return placeholder
	}
	return ""
}

// blocksFor builds the section-name → Block table for one render pass.
// Header is not listed: it is unconditional and emitted by the Assembler.
func blocksFor(style Style, opt Options) map[string]Block {
	return map[string]Block{
		SectionSummary:        summaryBlock{style, opt},
		SectionProjects:       projectsBlock{style, opt},
		SectionExperience:     experienceBlock{style, opt, experienceProfessional},
		SectionResearch:       experienceBlock{style, opt, experienceResearch},
		SectionCollaborations: collaborationBlock{style, opt},
		SectionEducation:      educationBlock{style, opt},
		SectionSkills:         skillsBlock{style, opt},
		SectionCertifications: certificationsBlock{style, opt},
		SectionSocialLinks:    socialLinksBlock{style},
	}
}

// itemize wraps escaped bullets in an itemize environment. Empty input
// yields no environment at all.
func itemize(bullets []string) string {
	if len(bullets) == 0 {
		return ""
	}
	parts := make([]string, 0, len(bullets)+2)
	parts = append(parts, `\begin{itemize}`)
	for _, b := range bullets {
		parts = append(parts, `    \item `+Escape(b))
	}
	parts = append(parts, `\end{itemize}`)
	return strings.Join(parts, "\n")
}
