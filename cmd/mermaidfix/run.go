package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	mermaidfix "github.com/alnah/go-mermaidfix"
	"github.com/alnah/go-mermaidfix/internal/config"
	"github.com/alnah/go-mermaidfix/internal/fileutil"
	"github.com/alnah/go-mermaidfix/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput        = errors.New("no input specified")
	ErrReadInput      = errors.New("failed to read input")
	ErrWriteOutput    = errors.New("failed to write output")
	ErrCheckFailed    = errors.New("header check failed")
	ErrUnknownCommand = errors.New("unknown command")
)

// File permission constants.
const (
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// run dispatches to the requested command. fix is the default: a bare
// invocation, leading flags, or a first argument that is not a command word
// all go through the fix path, so "mermaidfix < diagram.mmd" and
// "mermaidfix diagram.mmd" repair without the command being spelled out.
func run(ctx context.Context, args []string, env *Environment) error {
	if len(args) < 2 {
		return runFixArgs(nil, env)
	}

	cmd := args[1]
	rest := args[2:]

	switch cmd {
	case "fix":
		return runFixArgs(rest, env)
	case "check":
		flags, positional, err := parseCheckFlags(rest)
		if err != nil {
			return err
		}
		return runCheck(positional, flags, env)
	case "render":
		flags, positional, err := parseRenderFlags(rest)
		if err != nil {
			return err
		}
		return runRender(ctx, positional, flags, env)
	case "lib":
		flags, positional, err := parseLibFlags(rest)
		if err != nil {
			return err
		}
		return runLib(positional, flags, env)
	case "version":
		fmt.Fprintf(env.Stdout, "mermaidfix %s\n", Version)
		return nil
	case "help":
		runHelp(rest, env)
		return nil
	default:
		return runFixArgs(args[1:], env)
	}
}

// runFixArgs parses fix flags and runs the fix command.
func runFixArgs(args []string, env *Environment) error {
	flags, positional, err := parseFixFlags(args)
	if err != nil {
		return err
	}
	return runFix(positional, flags, env)
}

// loadCommandConfig loads the config named by the common flags into env,
// leaving the defaults in place when no config is given.
func loadCommandConfig(common *commonFlags, env *Environment) error {
	if common.config == "" {
		return nil
	}
	cfg, err := config.LoadConfig(common.config)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(nil))
		}
		return fmt.Errorf("loading config: %w", err)
	}
	env.Config = cfg
	return nil
}

// resolveKind merges the kind flag with the configured default.
func resolveKind(common *commonFlags, env *Environment) (mermaidfix.Kind, error) {
	name := common.kind
	if name == "" {
		name = env.Config.Fix.Kind
	}
	kind, err := mermaidfix.ParseKind(name)
	if err != nil {
		return mermaidfix.KindUnspecified, fmt.Errorf("%w%s", err, hints.ForKindNotFound(mermaidfix.KindNames()))
	}
	return kind, nil
}

// readInput reads the diagram source from the positional argument, or from
// stdin when the argument is absent or "-".
func readInput(positional []string, env *Environment) (string, error) {
	if len(positional) == 0 || positional[0] == "-" {
		data, err := io.ReadAll(env.Stdin)
		if err != nil {
			return "", fmt.Errorf("%w: stdin: %v", ErrReadInput, err)
		}
		return string(data), nil
	}

	path := positional[0]
	data, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrReadInput, path, err)
	}
	return string(data), nil
}

// writeOutput writes content to the given path, or to stdout when the path
// is empty.
func writeOutput(path, content string, env *Environment) error {
	if path == "" {
		fmt.Fprint(env.Stdout, content)
		if !strings.HasSuffix(content, "\n") {
			fmt.Fprintln(env.Stdout)
		}
		return nil
	}
	if err := fileutil.WriteFileAtomic(path, []byte(content), filePermissions); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, path, err)
	}
	return nil
}
