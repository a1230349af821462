// Package validate checks normalized diagram text against the header grammar
// expected for a diagram kind. It only ever inspects the first meaningful
// line and never mutates the text; mismatches are reported as human-readable
// descriptions for user-facing warnings, not as errors.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alnah/go-mermaidfix/internal/pipeline"
)

// Headers accepted when the caller gave no kind hint.
var knownHeader = regexp.MustCompile(`^(flowchart|graph|sequenceDiagram|classDiagram)\b`)

// CheckHeader reports whether the first meaningful line of text matches the
// header grammar expected for kind, plus a description of the mismatch when
// it does not. The empty description means the header is acceptable.
func CheckHeader(text string, kind pipeline.Kind) (bool, string) {
	lines := strings.Split(text, "\n")
	i := pipeline.HeaderLine(lines)
	if i < 0 {
		return false, "no header line found"
	}
	header := strings.TrimSpace(lines[i])

	switch kind {
	case pipeline.KindUsecase:
		return expectExact(header, "flowchart LR")
	case pipeline.KindActivity:
		return expectExact(header, "flowchart TD")
	case pipeline.KindSequence:
		return expectExact(header, "sequenceDiagram")
	case pipeline.KindClass:
		return expectExact(header, "classDiagram")
	default:
		if knownHeader.MatchString(header) {
			return true, ""
		}
		return false, fmt.Sprintf("unrecognized header %q", header)
	}
}

// expectExact compares the header against a single expected form.
func expectExact(header, want string) (bool, string) {
	if header == want {
		return true, ""
	}
	return false, fmt.Sprintf("expected header %q, found %q", want, header)
}
