package pipeline

// Normalize rewrites quasi-valid Mermaid source into renderable text. It is a
// pure, total function: it never fails, empty input yields empty output, and
// re-running it on its own output is a no-op.
//
// Stage order is a contract, not an implementation detail. Fence stripping
// must precede header detection; header correction must precede the
// flow-graph gate; reserved-word rewriting must precede identifier
// allocation, which must precede declaration injection.
func Normalize(source string, kind Kind) string {
	s := StripFence(source)
	if s == "" {
		return ""
	}

	s = CorrectHeader(s, kind)
	s = NormalizeStereotypes(s)

	// The full repair treatment applies to the flow-graph dialect only.
	// sequenceDiagram and classDiagram sources keep their own grammar.
	if IsFlowGraph(s, kind) {
		s = RenameReservedIDs(s)
		s = FixBranchLabels(s)
		s = AssignNodeIDs(s)
		s = InjectTerminalDecls(s)
		s = InjectClassDefs(s)
	}
	return s
}
