package pipeline

import "regexp"

// Fixed aliases for the reserved flowchart words. Every renamed occurrence of
// the same reserved word resolves to the same alias so edges stay connected.
const (
	StartAlias = "startNode"
	EndAlias   = "endNode"
)

// Reserved-identifier patterns. Mermaid treats bare "start" and "end"
// specially ("end" terminates subgraphs), so neither may be used as a node
// identifier. A line consisting only of "end" is a legitimate subgraph
// terminator and is never touched: only declaration-adjacent and
// arrow-adjacent occurrences are renamed.
var (
	// start((Start)) or end((End)), standalone or inline after an arrow.
	reservedDecl = regexp.MustCompile(`\b(start|end)\(\(`)

	// Bare reference as an edge target: --> end, -.-> end, ==> end.
	reservedAfterArrow = regexp.MustCompile(`(-->|-\.->|==>)([ \t]*)(start|end)\b`)

	// Bare reference as an edge source: end -->, start -.->.
	reservedBeforeArrow = regexp.MustCompile(`(?m)(^|[ \t])(start|end)([ \t]*)(-->|-\.->|==>)`)
)

// aliasFor maps a reserved word to its fixed alias.
func aliasFor(word string) string {
	if word == "start" {
		return StartAlias
	}
	return EndAlias
}

// RenameReservedIDs renames every node reference that collides with the
// reserved "start"/"end" words, across shape declarations, inline
// declarations after an arrow, and bare edge endpoints in all three arrow
// styles. Labels and all other text are preserved exactly. Declarations are
// rewritten first so the bare-endpoint patterns cannot misfire on them.
func RenameReservedIDs(source string) string {
	s := reservedDecl.ReplaceAllStringFunc(source, func(m string) string {
		return aliasFor(reservedDecl.FindStringSubmatch(m)[1]) + "(("
	})
	s = reservedAfterArrow.ReplaceAllStringFunc(s, func(m string) string {
		sub := reservedAfterArrow.FindStringSubmatch(m)
		return sub[1] + sub[2] + aliasFor(sub[3])
	})
	s = reservedBeforeArrow.ReplaceAllStringFunc(s, func(m string) string {
		sub := reservedBeforeArrow.FindStringSubmatch(m)
		return sub[1] + aliasFor(sub[2]) + sub[3] + sub[4]
	})
	return s
}
