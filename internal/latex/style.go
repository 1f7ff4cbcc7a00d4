package latex

import (
	"fmt"
	"strings"
)

// Template style tokens accepted in layout requests.
const (
	StyleTwoColumn    = "two-column"
	StyleSingleColumn = "single-column"
)

// DefaultFontSize is used when a layout request leaves font_size empty.
const DefaultFontSize = "10pt"

// Style is the capability interface a Block uses to emit style-specific
// markup. Adding another template style means writing one implementation
// here instead of another branch inside every Block.
type Style interface {
	Name() string
	// Preamble emits the document head matter. onePage selects the fixed
	// non-flowing two-region variant where the style distinguishes the two.
	Preamble(fontSize string, onePage bool) string
	// Heading opens a full-width section.
	Heading(title string) string
	// SidebarHeading opens a compact narrow-region section.
	SidebarHeading(title string) string
	// ItemLine renders one entry header with a right-aligned date label.
	ItemLine(title, dates string) string
}

// styleFor resolves a style token. The second return value reports whether
// the token was recognized; callers decide between fallback and error.
func styleFor(name string) (Style, bool) {
	switch name {
	case StyleTwoColumn:
		return twoColumnStyle{}, true
	case StyleSingleColumn:
		return singleColumnStyle{}, true
	default:
		return singleColumnStyle{}, false
	}
}

type twoColumnStyle struct{}

func (twoColumnStyle) Name() string { return StyleTwoColumn }

func (twoColumnStyle) Preamble(fontSize string, onePage bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\\documentclass[%s,a4paper]{article}\n\n", fontSize)
	b.WriteString(`\usepackage[utf8]{inputenc}
\usepackage[margin=0.5in,top=0.6in,bottom=0.6in]{geometry}
\usepackage{enumitem}
\usepackage[explicit]{titlesec}
\usepackage{hyperref}
\usepackage{xcolor}
\usepackage{helvet}
\usepackage{fontawesome5}
`)
	if !onePage {
		// paracol is the flowing two-column construct: unlike the minipage
		// pair, its columns continue across page breaks.
		b.WriteString("\\usepackage{paracol}\n")
	}
	b.WriteString(`
\definecolor{darkblue}{RGB}{0, 51, 102}
\definecolor{graytext}{RGB}{80, 80, 80}
\hypersetup{
    colorlinks=true,
    linkcolor=darkblue,
    urlcolor=darkblue,
    citecolor=darkblue,
    pdftitle={Resume},
    pdfauthor={CV Builder}
}

\pagestyle{empty}
\renewcommand{\familydefault}{\sfdefault}
\setlength{\parindent}{0pt}

\titleformat{\section}
  {\large\bfseries\sffamily\color{darkblue}}
  {}
  {0em}
  {#1}
  [\vspace{2pt}\noindent\rule{\linewidth}{0.8pt}]
\titlespacing*{\section}{0pt}{12pt}{12pt}

\titleformat{\subsection}
  {\sffamily\bfseries\color{black}}
  {}
  {0em}
  {#1}
\titlespacing*{\subsection}{0pt}{10pt}{4pt}

\setlist[itemize]{
    noitemsep,
    topsep=2pt,
    leftmargin=*,
    itemsep=2pt,
    parsep=2pt
}
`)
	return b.String()
}

func (twoColumnStyle) Heading(title string) string {
	return fmt.Sprintf("\\section{%s}", title)
}

func (twoColumnStyle) SidebarHeading(title string) string {
	return fmt.Sprintf("\\subsection*{%s}", title)
}

func (twoColumnStyle) ItemLine(title, dates string) string {
	if dates == "" {
		return fmt.Sprintf("\\textbf{%s}", title)
	}
	return fmt.Sprintf("\\textbf{%s} \\hfill %s", title, dates)
}

type singleColumnStyle struct{}

func (singleColumnStyle) Name() string { return StyleSingleColumn }

func (singleColumnStyle) Preamble(fontSize string, _ bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\\documentclass[%s,a4paper]{article}\n\n", fontSize)
	b.WriteString(`\usepackage[utf8]{inputenc}
\usepackage[margin=0.75in]{geometry}
\usepackage{enumitem}
\usepackage{titlesec}
\usepackage{hyperref}
\usepackage{xcolor}

\definecolor{darkblue}{RGB}{0, 51, 102}
\hypersetup{
    colorlinks=true,
    linkcolor=darkblue,
    urlcolor=darkblue,
    citecolor=darkblue
}

\pagestyle{empty}
\setlength{\parindent}{0pt}

\titleformat{\section}
  {\large\bfseries\color{darkblue}}
  {}
  {0em}
  {#1}
  [\vspace{2pt}\noindent\rule{\linewidth}{0.5pt}]
\titlespacing*{\section}{0pt}{15pt}{10pt}

\setlist[itemize]{
    noitemsep,
    topsep=3pt,
    leftmargin=15pt,
    itemsep=3pt
}
`)
	return b.String()
}

func (singleColumnStyle) Heading(title string) string {
	return fmt.Sprintf("\\section{%s}", title)
}

// The single-column design has no narrow region; compact headings render
// as regular sections.
func (singleColumnStyle) SidebarHeading(title string) string {
	return fmt.Sprintf("\\section{%s}", title)
}

func (singleColumnStyle) ItemLine(title, dates string) string {
	if dates == "" {
		return fmt.Sprintf("\\textbf{%s}", title)
	}
	return fmt.Sprintf("\\textbf{%s} \\hfill %s", title, dates)
}
