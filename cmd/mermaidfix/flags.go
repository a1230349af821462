package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	kind    string
	quiet   bool
	verbose bool
}

// fixFlags holds flags for the fix command.
type fixFlags struct {
	common   commonFlags
	output   string
	markdown bool
}

// checkFlags holds flags for the check command.
type checkFlags struct {
	common commonFlags
}

// renderFlags holds flags for the render command.
type renderFlags struct {
	common   commonFlags
	output   string
	htmlPath string
	htmlOnly bool
	theme    string
	timeout  string
	title    string
	workers  int
}

// libFlags holds flags for the lib command.
type libFlags struct {
	common commonFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.kind, "kind", "k", "", "diagram kind hint: usecase, activity, sequence, class")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show details")
}

// parseFixFlags parses fix command flags and returns positional args.
func parseFixFlags(args []string) (*fixFlags, []string, error) {
	fs := flag.NewFlagSet("fix", flag.ContinueOnError)
	f := &fixFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.BoolVarP(&f.markdown, "markdown", "m", false, "treat input as a markdown document, repairing every mermaid fence")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printFixUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseCheckFlags parses check command flags and returns positional args.
func parseCheckFlags(args []string) (*checkFlags, []string, error) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	f := &checkFlags{}

	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printCheckUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string) (*renderFlags, []string, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	f := &renderFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output PNG file (default: diagram.png)")
	fs.StringVar(&f.htmlPath, "html", "", "also write the HTML preview to this path")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "skip the browser; write HTML only")
	fs.StringVar(&f.theme, "theme", "", "preview theme: light, dark")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "render timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.title, "title", "", "preview page title")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel renderers for multiple inputs (default: CPU-based)")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printRenderUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseLibFlags parses lib command flags and returns positional args.
func parseLibFlags(args []string) (*libFlags, []string, error) {
	fs := flag.NewFlagSet("lib", flag.ContinueOnError)
	f := &libFlags{}

	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printLibUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
