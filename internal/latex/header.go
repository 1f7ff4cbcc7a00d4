package latex

import (
	"fmt"
	"strings"

	"cv-builder/internal/model"
)

// headerBlock renders the name/contact banner. Unlike every other block it
// never omits itself: a resume without a header is not a resume.
type headerBlock struct {
	style Style
	opt   Options
}

func (b headerBlock) Generate(r *model.Resume) string {
	name := fallback(r.User.Name, "Your Name", b.opt)
	email := fallback(r.User.Email, "your.email@example.com", b.opt)
	phone := fallback(r.User.Phone, "Your Phone", b.opt)
	location := fallback(r.User.Location, "Your Location", b.opt)

	if b.style.Name() == StyleTwoColumn {
		return b.compactHeader(name, email, phone)
	}
	return b.fullHeader(name, email, phone, location, r.User.LinkedinURL, r.User.GithubURL)
}

// compactHeader keeps the banner to name, email and phone; location and
// social links live in the sidebar of the two-column design.
func (b headerBlock) compactHeader(name, email, phone string) string {
	parts := []string{`\begin{center}`}
	parts = append(parts, fmt.Sprintf(`    {\Large\bfseries\sffamily %s}`, Escape(strings.ToUpper(name))))
	parts = append(parts, `    \\`, `    \vspace{2pt}`)

	var contact []string
	if email != "" {
		contact = append(contact, fmt.Sprintf(`\href{mailto:%s}{%s}`, EscapeURL(email), Escape(email)))
	}
	if phone != "" {
		contact = append(contact, Escape(phone))
	}
	if len(contact) > 0 {
		parts = append(parts, fmt.Sprintf(`    {\small %s}`, strings.Join(contact, ` $\bullet$ `)))
	}

	parts = append(parts,
		`    \vspace{4pt}`,
		`    \noindent\rule{\linewidth}{0.8pt}`,
		`\end{center}`,
		`\vspace{6pt}`,
	)
	return strings.Join(parts, "\n")
}

func (b headerBlock) fullHeader(name, email, phone, location, linkedin, github string) string {
	parts := []string{
		`\begin{center}`,
		fmt.Sprintf(`    {\LARGE\bfseries %s}`, Escape(name)),
		`\end{center}`,
		`\vspace{8pt}`,
	}

	var contact []string
	if email != "" {
		contact = append(contact, fmt.Sprintf(`\href{mailto:%s}{%s}`, EscapeURL(email), Escape(email)))
	}
	if phone != "" {
		contact = append(contact, Escape(phone))
	}
	if location != "" {
		contact = append(contact, Escape(location))
	}
	if len(contact) > 0 {
		parts = append(parts,
			`\begin{center}`,
			"    "+strings.Join(contact, ` $\bullet$ `),
			`\end{center}`,
		)
	}

	var social []string
	if linkedin != "" {
		social = append(social, fmt.Sprintf(`\href{%s}{LinkedIn: %s}`, EscapeURL(linkedin), Escape(cleanLinkedinURL(linkedin))))
	}
	if github != "" {
		social = append(social, fmt.Sprintf(`\href{%s}{GitHub: %s}`, EscapeURL(github), Escape(cleanGithubURL(github))))
	}
	if len(social) > 0 {
		parts = append(parts,
			`\begin{center}`,
			"    "+strings.Join(social, ` $\bullet$ `),
			`\end{center}`,
		)
	}

	parts = append(parts, `\vspace{12pt}`)
	return strings.Join(parts, "\n")
}
