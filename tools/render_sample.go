package main

import (
	"context"
	"fmt"
	"os"

	"cv-builder/internal/compiler"
	"cv-builder/internal/latex"
	"cv-builder/internal/usecase"
)

// Renders the sample resume to LaTeX and, when pdflatex is installed,
// compiles it. Useful for eyeballing template changes.
func main() {
	style := latex.StyleTwoColumn
	if len(os.Args) > 1 {
		style = os.Args[1]
	}

	asm, err := latex.NewAssembler(latex.LayoutSpec{TemplateStyle: style}, latex.Options{Placeholders: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "assembler: %v\n", err)
		os.Exit(2)
	}
	source := asm.Generate(usecase.SampleResume())

	ws, err := compiler.NewWorkspace("", "sample")
	if err != nil {
		fmt.Fprintf(os.Stderr, "workspace: %v\n", err)
		os.Exit(2)
	}

	if err := ws.WriteSource(source); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", ws.SourcePath())

	driver := compiler.NewDriver(ws, "", 0, nil)
	artifact, diag, err := driver.Compile(context.Background(), source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "compile: %v\n%s\n", err, diag)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", artifact)
}
