package pipeline

import (
	"regexp"
	"strings"
)

// ASCII double-angle stereotype markers, case-insensitive, with optional
// internal whitespace: <<actor>>, << Include >>, <<EXTEND>>.
var stereotypePattern = regexp.MustCompile(`(?i)<<\s*(actor|include|extend)\s*>>`)

// NormalizeStereotypes rewrites ASCII double-angle stereotype markers to the
// canonical guillemet form Mermaid renders: <<actor>> becomes «actor».
// Must run before any stage that pattern-matches on label contents.
func NormalizeStereotypes(source string) string {
	return stereotypePattern.ReplaceAllStringFunc(source, func(m string) string {
		inner := stereotypePattern.FindStringSubmatch(m)[1]
		return "«" + strings.ToLower(inner) + "»"
	})
}
