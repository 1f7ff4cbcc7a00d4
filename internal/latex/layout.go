package latex

// Section names form a closed set; unknown names in a layout request are
// ignored, never errors.
const (
	SectionSummary        = "professional_summary"
	SectionProjects       = "projects"
	SectionExperience     = "professional_experience"
	SectionResearch       = "research_experience"
	SectionCollaborations = "academic_collaborations"
	SectionEducation      = "education"
	SectionSkills         = "technical_skills"
	SectionCertifications = "certifications"
	SectionSocialLinks    = "social_links"
)

// sidebarPriority is the fixed render order of the narrow region in the
// two-column design. Social links are appended afterwards whether or not
// the caller listed them.
var sidebarPriority = []string{SectionEducation, SectionSkills, SectionCertifications}

// LayoutSpec is one layout request: which design, which sections, in what
// order, and the page policy.
type LayoutSpec struct {
	TemplateStyle   string   `json:"template_style"`
	ActiveSections  []string `json:"active_sections"`
	SectionOrder    []string `json:"section_order,omitempty"`
	SidebarSections []string `json:"sidebar_sections,omitempty"`
	FontSize        string   `json:"font_size,omitempty"`
	OnePage         bool     `json:"one_page_limit"`
}

// DefaultSectionOrder lists every renderable section in the order the
// original templates present them.
func DefaultSectionOrder() []string {
	return []string{
		SectionSummary,
		SectionProjects,
		SectionExperience,
		SectionResearch,
		SectionCollaborations,
		SectionEducation,
		SectionSkills,
		SectionCertifications,
	}
}

// Normalize returns a copy of the spec with duplicates dropped from the
// active list, the section order defaulted, the sidebar reduced to the
// subset of active sections in fixed priority order, and the font size
// defaulted. After Normalize, SidebarSections ⊆ ActiveSections holds.
func (s LayoutSpec) Normalize() LayoutSpec {
	out := s

	out.ActiveSections = dedupe(s.ActiveSections)
	if len(out.ActiveSections) == 0 {
		out.ActiveSections = DefaultSectionOrder()
	}

	out.SectionOrder = dedupe(s.SectionOrder)
	if len(out.SectionOrder) == 0 {
		out.SectionOrder = append([]string(nil), out.ActiveSections...)
	}

	requested := s.SidebarSections
	if requested == nil {
		requested = sidebarPriority
	}
	out.SidebarSections = nil
	for _, name := range sidebarPriority {
		if contains(requested, name) && contains(out.ActiveSections, name) {
			out.SidebarSections = append(out.SidebarSections, name)
		}
	}

	if out.FontSize == "" {
		out.FontSize = DefaultFontSize
	}
	return out
}

// MainSections returns the wide-region sections of a normalized spec:
// caller order, sidebar members filtered out, inactive sections dropped.
func (s LayoutSpec) MainSections() []string {
	var out []string
	for _, name := range s.SectionOrder {
		if contains(s.SidebarSections, name) {
			continue
		}
		if contains(s.ActiveSections, name) {
			out = append(out, name)
		}
	}
	return out
}

func dedupe(in []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, s := range in {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
