package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled header patterns.
var (
	// Diagram-kind tokens Mermaid does not actually have. Generators emit
	// them anyway when asked for use-case or activity diagrams.
	bogusHeader = regexp.MustCompile(`^(usecaseDiagram|activityDiagram)\b`)

	// Flow-graph headers accepted by the renderer.
	flowHeader = regexp.MustCompile(`^(flowchart|graph)\b`)
)

// Flow-graph directions mandated by the diagram-kind aliases.
const (
	directionLR = "LR"
	directionTD = "TD"
)

// HeaderLine returns the first semantically meaningful line of the source:
// non-empty, not a %% comment, not a residual fence marker, and not an HTML
// comment opener. Returns -1 when no such line exists.
func HeaderLine(lines []string) int {
	for i, line := range lines {
		t := strings.TrimSpace(line)
		switch {
		case t == "":
		case strings.HasPrefix(t, "%%"):
		case strings.HasPrefix(t, "```"):
		case strings.HasPrefix(t, "<!--"):
		default:
			return i
		}
	}
	return -1
}

// CorrectHeader rewrites a non-existent diagram-kind token on the header line
// to the canonical flowchart header with the direction mandated by the kind
// hint. Legal headers are left untouched, as is everything below the header.
func CorrectHeader(source string, kind Kind) string {
	lines := strings.Split(source, "\n")
	i := HeaderLine(lines)
	if i < 0 {
		return source
	}

	m := bogusHeader.FindStringSubmatch(strings.TrimSpace(lines[i]))
	if m == nil {
		return source
	}

	dir := directionTD
	switch kind {
	case KindUsecase:
		dir = directionLR
	case KindActivity:
		dir = directionTD
	default:
		// No usable hint: derive the direction from the bogus token itself.
		if m[1] == "usecaseDiagram" {
			dir = directionLR
		}
	}

	lines[i] = "flowchart " + dir
	return strings.Join(lines, "\n")
}

// IsFlowGraph reports whether the source should receive the full flow-graph
// treatment (reserved-word rewriting, identifier allocation, declaration and
// style injection). True when the kind hint is one of the flowchart aliases,
// or when the effective header is already a flowchart/graph header.
func IsFlowGraph(source string, kind Kind) bool {
	if kind == KindUsecase || kind == KindActivity {
		return true
	}
	lines := strings.Split(source, "\n")
	i := HeaderLine(lines)
	return i >= 0 && flowHeader.MatchString(strings.TrimSpace(lines[i]))
}
