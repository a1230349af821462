package main

import (
	"fmt"
	"text/tabwriter"

	mermaidfix "github.com/alnah/go-mermaidfix"
	"github.com/alnah/go-mermaidfix/internal/hints"
	"github.com/alnah/go-mermaidfix/internal/store"
)

// runLib dispatches the library subcommands: list, get, save, rm.
func runLib(positional []string, flags *libFlags, env *Environment) error {
	if err := loadCommandConfig(&flags.common, env); err != nil {
		return err
	}

	path, err := env.Config.LibraryPath()
	if err != nil {
		return err
	}
	lib := store.Open(path)

	if len(positional) == 0 {
		printLibUsage(env.Stderr)
		return fmt.Errorf("%w: lib needs a subcommand", ErrUnknownCommand)
	}

	switch positional[0] {
	case "list":
		return runLibList(lib, env)
	case "get":
		return runLibGet(positional[1:], lib, env)
	case "save":
		return runLibSave(positional[1:], flags, lib, env)
	case "rm":
		return runLibRemove(positional[1:], lib, env)
	default:
		printLibUsage(env.Stderr)
		return fmt.Errorf("%w: lib %s", ErrUnknownCommand, positional[0])
	}
}

// runLibList prints all stored diagrams as a table.
func runLibList(lib *store.Library, env *Environment) error {
	diagrams, err := lib.List()
	if err != nil {
		return err
	}
	if len(diagrams) == 0 {
		fmt.Fprintln(env.Stdout, "Library is empty")
		return nil
	}

	w := tabwriter.NewWriter(env.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tKIND\tUPDATED")
	for _, d := range diagrams {
		kind := d.Kind
		if kind == "" {
			kind = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.ID, d.Name, kind, d.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

// runLibGet prints the stored source of one diagram.
func runLibGet(args []string, lib *store.Library, env *Environment) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: lib get needs a diagram id", ErrNoInput)
	}
	d, err := lib.Get(args[0])
	if err != nil {
		return err
	}
	return writeOutput("", d.Source, env)
}

// runLibSave repairs a diagram and stores it under the given name.
// The source comes from the optional file argument or stdin.
func runLibSave(args []string, flags *libFlags, lib *store.Library, env *Environment) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: lib save needs a diagram name", ErrNoInput)
	}
	name := args[0]

	kind, err := resolveKind(&flags.common, env)
	if err != nil {
		return err
	}

	source, err := readInput(args[1:], env)
	if err != nil {
		return err
	}

	fixed := mermaidfix.Fix(source, kind)
	saved, err := lib.Save(store.Diagram{
		Name:   name,
		Kind:   kind.String(),
		Source: fixed,
	})
	if err != nil {
		return fmt.Errorf("saving diagram: %w%s", err, hints.ForLibraryWrite())
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Saved %s\n", saved.ID)
	}
	return nil
}

// runLibRemove deletes a stored diagram.
func runLibRemove(args []string, lib *store.Library, env *Environment) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: lib rm needs a diagram id", ErrNoInput)
	}
	return lib.Delete(args[0])
}
