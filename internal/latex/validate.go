package latex

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	beginEnvRe = regexp.MustCompile(`\\begin\{([a-zA-Z*]+)\}`)
	endEnvRe   = regexp.MustCompile(`\\end\{([a-zA-Z*]+)\}`)

	// Commands that read or write arbitrary files have no place in a
	// resume document.
	dangerousCommands = []string{`\input`, `\include`, `\write`, `\immediate`}
)

// ValidateStructure checks a raw LaTeX document for structural
// well-formedness: balanced braces, the presence of a document
// environment, matched begin/end pairs per environment, and the absence
// of filesystem commands. It does not attempt full parsing; diagnostics
// are meant for a human editing raw markup.
func ValidateStructure(markup string) (bool, []string) {
	var errors []string

	open := strings.Count(markup, "{")
	closed := strings.Count(markup, "}")
	if open != closed {
		errors = append(errors, fmt.Sprintf("unbalanced braces: %d opening vs %d closing", open, closed))
	}

	if !strings.Contains(markup, `\begin{document}`) {
		errors = append(errors, `missing \begin{document}`)
	}
	if !strings.Contains(markup, `\end{document}`) {
		errors = append(errors, `missing \end{document}`)
	}

	begins := map[string]int{}
	for _, m := range beginEnvRe.FindAllStringSubmatch(markup, -1) {
		begins[m[1]]++
	}
	ends := map[string]int{}
	for _, m := range endEnvRe.FindAllStringSubmatch(markup, -1) {
		ends[m[1]]++
	}
	for env, n := range begins {
		if ends[env] != n {
			errors = append(errors, fmt.Sprintf("environment %q opened %d times but closed %d times", env, n, ends[env]))
		}
	}
	for env, n := range ends {
		if _, ok := begins[env]; !ok {
			errors = append(errors, fmt.Sprintf("environment %q closed %d times but never opened", env, n))
		}
	}

	for _, cmd := range dangerousCommands {
		if strings.Contains(markup, cmd) {
			errors = append(errors, fmt.Sprintf("potentially dangerous command found: %s", cmd))
		}
	}

	return len(errors) == 0, errors
}
