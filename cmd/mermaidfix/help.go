package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mermaidfix [command] [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  fix        Repair quasi-valid Mermaid diagram source (default)")
	fmt.Fprintln(w, "  check      Validate the diagram header for a kind")
	fmt.Fprintln(w, "  render     Render a repaired diagram to PNG or HTML")
	fmt.Fprintln(w, "  lib        Manage the diagram library (list, get, save, rm)")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mermaidfix help <command>' for details on a specific command.")
}

// printFixUsage prints usage for the fix command.
func printFixUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mermaidfix fix [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Repair quasi-valid Mermaid diagram source.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Diagram file (\"-\" or absent = stdin)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>   Output file (default: stdout)")
	fmt.Fprintln(w, "  -k, --kind <s>        Kind hint: usecase, activity, sequence, class")
	fmt.Fprintln(w, "  -m, --markdown        Treat input as markdown, repairing every mermaid fence")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet           Only show errors")
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mermaidfix check [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Validate the diagram header for a kind.")
	fmt.Fprintln(w, "Exits 0 when the header matches, 5 when it does not.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -k, --kind <s>        Kind hint: usecase, activity, sequence, class")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet           Only show errors")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mermaidfix render [input...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Repair a diagram and render it with headless Chrome.")
	fmt.Fprintln(w, "With multiple inputs, files render in parallel and outputs")
	fmt.Fprintln(w, "are derived from the input names.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>   Output PNG file (default: diagram.png)")
	fmt.Fprintln(w, "  -w, --workers <n>     Parallel renderers for multiple inputs")
	fmt.Fprintln(w, "      --html <path>     Also write the HTML preview")
	fmt.Fprintln(w, "      --html-only       Skip the browser; write HTML only")
	fmt.Fprintln(w, "      --theme <s>       Preview theme: light, dark")
	fmt.Fprintln(w, "      --title <s>       Preview page title")
	fmt.Fprintln(w, "  -t, --timeout <d>     Render timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "  -k, --kind <s>        Kind hint: usecase, activity, sequence, class")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet           Only show errors")
}

// printLibUsage prints usage for the lib command.
func printLibUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mermaidfix lib <subcommand> [args] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Manage the diagram library.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Subcommands:")
	fmt.Fprintln(w, "  list                  List stored diagrams")
	fmt.Fprintln(w, "  get <id>              Print a stored diagram's source")
	fmt.Fprintln(w, "  save <name> [input]   Repair and store a diagram (input = file or stdin)")
	fmt.Fprintln(w, "  rm <id>               Delete a stored diagram")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -k, --kind <s>        Kind hint for save")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet           Only show errors")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "fix":
		printFixUsage(env.Stdout)
	case "check":
		printCheckUsage(env.Stdout)
	case "render":
		printRenderUsage(env.Stdout)
	case "lib":
		printLibUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mermaidfix version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mermaidfix help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
