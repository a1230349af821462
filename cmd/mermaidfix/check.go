package main

import (
	"fmt"

	mermaidfix "github.com/alnah/go-mermaidfix"
)

// runCheck validates the diagram header against the expected form for the
// kind hint. A mismatch is reported on stderr and exits with ExitCheckFailed.
func runCheck(positional []string, flags *checkFlags, env *Environment) error {
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
	if source == "" {
		return mermaidfix.ErrEmptySource
	}

	ok, detail := mermaidfix.CheckHeader(source, kind)
	if !ok {
		return fmt.Errorf("%w: %s", ErrCheckFailed, detail)
	}

	if !flags.common.quiet {
		fmt.Fprintln(env.Stdout, "OK")
	}
	return nil
}
