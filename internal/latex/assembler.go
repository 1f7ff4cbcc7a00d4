package latex

import (
	"fmt"
	"strings"

	"cv-builder/internal/model"
)

// ErrUnknownStyle is returned in strict mode when the requested template
// style is not in the closed set.
var ErrUnknownStyle = fmt.Errorf("unknown template style")

// Assembler turns a resume record into one complete LaTeX document for a
// fixed layout. An Assembler is built per request and holds no state
// beyond its configuration; it never validates item content, only
// guarantees structural well-formedness of what it emits.
type Assembler struct {
	spec   LayoutSpec
	style  Style
	opt    Options
	blocks map[string]Block
	header headerBlock
}

// NewAssembler normalizes the layout spec and resolves its style. An
// unrecognized style falls back to the single-column design unless
// opt.StrictStyle is set, in which case ErrUnknownStyle is returned.
func NewAssembler(spec LayoutSpec, opt Options) (*Assembler, error) {
	style, known := styleFor(spec.TemplateStyle)
	if !known && opt.StrictStyle {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, spec.TemplateStyle)
	}
	spec.TemplateStyle = style.Name()
	spec = spec.Normalize()

	return &Assembler{
		spec:   spec,
		style:  style,
		opt:    opt,
		blocks: blocksFor(style, opt),
		header: headerBlock{style, opt},
	}, nil
}

// Spec returns the normalized layout spec the Assembler operates on.
func (a *Assembler) Spec() LayoutSpec { return a.spec }

// Generate emits the complete document: preamble, header, the arranged
// section fragments, and the closing footer. Every construct opened here
// is closed here; the output always contains exactly one
// \begin{document}/\end{document} pair.
func (a *Assembler) Generate(r *model.Resume) string {
	parts := []string{
		a.style.Preamble(a.spec.FontSize, a.spec.OnePage),
		`\begin{document}`,
		a.header.Generate(r),
	}

	if a.style.Name() == StyleTwoColumn {
		parts = append(parts, a.twoColumnBody(r))
	} else {
		parts = append(parts, a.singleColumnBody(r))
	}

	parts = append(parts, `\end{document}`)
	return strings.Join(compact(parts), "\n")
}

// twoColumnBody partitions the active sections into the narrow sidebar
// (fixed priority order, social links always last) and the wide main
// region (caller order). One-page mode pins both regions into a minipage
// pair; multi-page mode lets them flow through paracol columns.
func (a *Assembler) twoColumnBody(r *model.Resume) string {
	var sidebar []string
	for _, name := range a.spec.SidebarSections {
		if frag := a.blocks[name].Generate(r); frag != "" {
			sidebar = append(sidebar, frag)
		}
	}
	if frag := a.blocks[SectionSocialLinks].Generate(r); frag != "" {
		sidebar = append(sidebar, frag)
	}

	var main []string
	for _, name := range a.spec.MainSections() {
		block, ok := a.blocks[name]
		if !ok {
			continue
		}
		if frag := block.Generate(r); frag != "" {
			main = append(main, frag)
		}
	}

	var parts []string
	if a.spec.OnePage {
		parts = append(parts, `\begin{minipage}[t]{0.3\textwidth}`, `    \sffamily`)
		parts = append(parts, sidebar...)
		parts = append(parts,
			`\end{minipage}`,
			`\hspace{0.05\textwidth}`,
			`\begin{minipage}[t]{0.65\textwidth}`,
			`    \sffamily`,
		)
		parts = append(parts, main...)
		parts = append(parts, `\end{minipage}`)
	} else {
		parts = append(parts, `\columnratio{0.3}`, `\begin{paracol}{2}`, `\sffamily`)
		parts = append(parts, sidebar...)
		parts = append(parts, `\switchcolumn`)
		parts = append(parts, main...)
		parts = append(parts, `\end{paracol}`)
	}
	return strings.Join(parts, "\n")
}

// singleColumnBody emits every active section strictly in caller order.
func (a *Assembler) singleColumnBody(r *model.Resume) string {
	var parts []string
	for _, name := range a.spec.SectionOrder {
		if !contains(a.spec.ActiveSections, name) {
			continue
		}
		block, ok := a.blocks[name]
		if !ok {
			continue
		}
		if frag := block.Generate(r); frag != "" {
			parts = append(parts, frag)
		}
	}
	return strings.Join(parts, "\n")
}

func compact(parts []string) []string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
