package pipeline

import (
	"regexp"
	"strings"
)

// Style-class detection patterns.
var (
	// The four style tags the pipeline may emit or the generator may use.
	styleTagPattern = regexp.MustCompile(`:::(terminal|step|decision|parallel)\b`)

	// Any existing class-definition block disables injection.
	classDefPattern = regexp.MustCompile(`(?m)^[ \t]*classDef\b`)
)

// DefaultClassDefs is the block of default style-class definitions appended
// when style tags are used but no classDef exists anywhere in the text.
const DefaultClassDefs = `classDef terminal fill:#2dd4bf,stroke:#0f766e,color:#042f2e
classDef step fill:#e0e7ff,stroke:#4338ca,color:#1e1b4b
classDef decision fill:#fef3c7,stroke:#b45309,color:#451a03
classDef parallel fill:#fbcfe8,stroke:#be185d,color:#500724`

// InjectClassDefs appends the default class-definition block, separated by a
// blank line, when any of the four style tags is used and the text defines no
// classes of its own. A second pass never duplicates the block.
func InjectClassDefs(source string) string {
	if !styleTagPattern.MatchString(source) {
		return source
	}
	if classDefPattern.MatchString(source) {
		return source
	}
	return strings.TrimRight(source, "\n") + "\n\n" + DefaultClassDefs
}
