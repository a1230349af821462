package main

import (
	"fmt"

	mermaidfix "github.com/alnah/go-mermaidfix"
)

// runFix reads a diagram (or markdown document), repairs it, and writes the
// result to the output path or stdout.
func runFix(positional []string, flags *fixFlags, env *Environment) error {
	if err := loadCommandConfig(&flags.common, env); err != nil {
		return err
	}

	kind, err := resolveKind(&flags.common, env)
	if err != nil {
		return err
	}

	source, err := readInput(positional, env)
	if err != nil {
		return err
	}

	var fixed string
	if flags.markdown {
		fixed = mermaidfix.NormalizeMarkdown(source, kind)
	} else {
		fixed = mermaidfix.Fix(source, kind)
		if fixed == "" {
			return mermaidfix.ErrEmptySource
		}
	}

	if err := writeOutput(flags.output, fixed, env); err != nil {
		return err
	}

	if flags.output != "" && !flags.common.quiet {
		fmt.Fprintf(env.Stderr, "Wrote %s\n", flags.output)
	}
	return nil
}
