package pipeline

import (
	"regexp"
	"strings"
)

// Reference and declaration patterns for the terminal aliases.
var (
	startRef  = regexp.MustCompile(`\b` + StartAlias + `\b`)
	endRef    = regexp.MustCompile(`\b` + EndAlias + `\b`)
	startDecl = regexp.MustCompile(`\b` + StartAlias + `\(\(`)
	endDecl   = regexp.MustCompile(`\b` + EndAlias + `\(\(`)
)

// Injected declarations, terminal-styled. Start precedes end when both are
// missing.
var terminalDecls = []struct {
	ref  *regexp.Regexp
	decl *regexp.Regexp
	line string
}{
	{startRef, startDecl, "    " + StartAlias + "((Start)):::terminal"},
	{endRef, endDecl, "    " + EndAlias + "((End)):::terminal"},
}

// InjectTerminalDecls declares the start/end aliases when an edge references
// them but no declaration exists, inserting the declaration lines immediately
// after the flowchart header. Sources without a recognized flow-graph header
// pass through unchanged.
func InjectTerminalDecls(source string) string {
	lines := strings.Split(source, "\n")
	h := HeaderLine(lines)
	if h < 0 || !flowHeader.MatchString(strings.TrimSpace(lines[h])) {
		return source
	}

	var missing []string
	for _, d := range terminalDecls {
		if d.ref.MatchString(source) && !d.decl.MatchString(source) {
			missing = append(missing, d.line)
		}
	}
	if len(missing) == 0 {
		return source
	}

	out := make([]string, 0, len(lines)+len(missing))
	out = append(out, lines[:h+1]...)
	out = append(out, missing...)
	out = append(out, lines[h+1:]...)
	return strings.Join(out, "\n")
}
