package latex

import "strings"

// latexEscaper rewrites the ten reserved LaTeX characters into their
// literal-producing commands. A single Replacer pass never rescans the text
// it inserts, so the braces of \textbackslash{} are not mangled by the
// brace rules that follow it.
var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"^", `\textasciicircum{}`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\textasciitilde{}`,
)

// Escape sanitizes user text for insertion into LaTeX source. Empty input
// yields an empty string.
func Escape(text string) string {
	if text == "" {
		return ""
	}
	return latexEscaper.Replace(text)
}

// urlEscaper percent-encodes the characters that would close or unbalance
// an \href argument group.
var urlEscaper = strings.NewReplacer(
	`\`, "%5C",
	"{", "%7B",
	"}", "%7D",
)

// EscapeURL sanitizes a URL for use as the target argument of \href.
// Ordinary URL characters pass through unchanged.
func EscapeURL(url string) string {
	return urlEscaper.Replace(url)
}

// SplitBullets breaks free text into bullet items. Text that already
// carries manual bullet glyphs keeps that structure; otherwise newlines
// split it, and plain text becomes a single bullet.
func SplitBullets(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var parts []string
	switch {
	case strings.Contains(text, "•"):
		parts = strings.Split(text, "•")
	case strings.Contains(text, "\n"):
		parts = strings.Split(text, "\n")
	default:
		return []string{text}
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// FormatDateRange renders a start/end pair for a right-aligned date label.
// An open end date reads as "Present". The double dash is the LaTeX en
// dash.
func FormatDateRange(start, end string) string {
	switch {
	case start == "" && end == "":
		return ""
	case start == "":
		return end
	case end == "" || strings.EqualFold(end, "present"):
		return start + " -- Present"
	default:
		return start + " -- " + end
	}
}
