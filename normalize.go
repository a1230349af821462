package mermaidfix

import (
	"github.com/alnah/go-mermaidfix/internal/pipeline"
	"github.com/alnah/go-mermaidfix/internal/validate"
)

// Fix repairs a single diagram source. The transform is total: malformed
// input yields best-effort output, never an error. Applying Fix to its own
// output is a no-op.
func Fix(source string, kind Kind) string {
	return pipeline.Normalize(source, toPipelineKind(kind))
}

// CheckHeader reports whether the first significant line of source is a
// well-formed diagram header for the given kind. The returned detail names
// the expected header when the check fails.
func CheckHeader(source string, kind Kind) (bool, string) {
	return validate.CheckHeader(source, toPipelineKind(kind))
}
