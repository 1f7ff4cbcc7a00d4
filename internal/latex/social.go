package latex

import (
	"fmt"
	"strings"

	"cv-builder/internal/model"
)

// socialLinksBlock renders the LinkedIn/GitHub links. It omits itself only
// when both profile URLs are absent; placeholders never apply here.
type socialLinksBlock struct {
	style Style
}

func (b socialLinksBlock) Generate(r *model.Resume) string {
	linkedin := r.User.LinkedinURL
	github := r.User.GithubURL
	if linkedin == "" && github == "" {
		return ""
	}

	if b.style.Name() == StyleTwoColumn {
		parts := []string{b.style.SidebarHeading("Social Links")}
		if linkedin != "" {
			parts = append(parts, `\textbf{LinkedIn:} \\`)
			parts = append(parts, fmt.Sprintf(`\href{%s}{%s}`, EscapeURL(linkedin), Escape("linkedin.com/in/"+cleanLinkedinURL(linkedin))))
			parts = append(parts, "")
		}
		if github != "" {
			parts = append(parts, `\textbf{GitHub:} \\`)
			parts = append(parts, fmt.Sprintf(`\href{%s}{%s}`, EscapeURL(github), Escape("github.com/"+cleanGithubURL(github))))
			parts = append(parts, "")
		}
		return strings.Join(parts, "\n")
	}

	parts := []string{b.style.Heading("Social Links")}
	if linkedin != "" {
		parts = append(parts, fmt.Sprintf(`\textbf{LinkedIn:} \href{%s}{%s}`, EscapeURL(linkedin), Escape("linkedin.com/in/"+cleanLinkedinURL(linkedin))))
	}
	if github != "" {
		parts = append(parts, fmt.Sprintf(`\textbf{GitHub:} \href{%s}{%s}`, EscapeURL(github), Escape("github.com/"+cleanGithubURL(github))))
	}
	parts = append(parts, "")
	return strings.Join(parts, "\n")
}

// cleanLinkedinURL reduces a LinkedIn profile URL to its username.
func cleanLinkedinURL(url string) string {
	url = strings.TrimSpace(url)
	if !strings.Contains(url, "linkedin.com") {
		return url
	}
	for _, prefix := range []string{
		"https://www.linkedin.com/in/",
		"https://linkedin.com/in/",
		"http://www.linkedin.com/in/",
		"http://linkedin.com/in/",
		"www.linkedin.com/in/",
		"linkedin.com/in/",
	} {
		url = strings.ReplaceAll(url, prefix, "")
	}
	url = strings.ReplaceAll(url, "https://", "")
	url = strings.ReplaceAll(url, "http://", "")
	return strings.TrimSuffix(url, "/")
}

// cleanGithubURL reduces a GitHub profile URL to its username.
func cleanGithubURL(url string) string {
	url = strings.TrimSpace(url)
	if !strings.Contains(url, "github.com") {
		return url
	}
	for _, prefix := range []string{
		"https://github.com/",
		"https://www.github.com/",
		"http://github.com/",
		"http://www.github.com/",
		"www.github.com/",
		"github.com/",
	} {
		url = strings.ReplaceAll(url, prefix, "")
	}
	url = strings.ReplaceAll(url, "https://", "")
	url = strings.ReplaceAll(url, "http://", "")
	return strings.TrimSuffix(url, "/")
}
