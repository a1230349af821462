package pipeline

import "regexp"

// Malformed conditional-edge label syntax. The correct Mermaid form is
// sourceId -->|Label| targetId; generators frequently emit the label glued
// between two dash runs instead. The leading alternation rejects a third
// dash before the pair, so the valid open-link form A ---|Label| B keeps
// its arrowless edge.
var (
	// A --|Label|--> B
	branchLabelArrow = regexp.MustCompile(`(^|[^-])--\|([^|\n]*)\|[ \t]*-->`)

	// A --|Label| B (no arrow after the label at all).
	branchLabelBare = regexp.MustCompile(`(^|[^-])--\|([^|\n]*)\|([ \t]*)([A-Za-z0-9_]+)`)
)

// FixBranchLabels rewrites malformed conditional-edge labels into the
// canonical arrow+label form, preserving the target token and any separating
// whitespace. The arrow variant is corrected first; its output contains no
// "--|" sequence, so the passes cannot feed each other.
func FixBranchLabels(source string) string {
	s := branchLabelArrow.ReplaceAllString(source, `$1-->|$2|`)
	s = branchLabelBare.ReplaceAllString(s, `$1-->|$2|$3$4`)
	return s
}
