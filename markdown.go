package mermaidfix

import (
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// mermaidLanguage is the fence info string that marks a diagram block.
const mermaidLanguage = "mermaid"

// splice is a byte range of the document to replace with repaired source.
type splice struct {
	start int
	stop  int
	fixed string
}

// NormalizeMarkdown repairs every ```mermaid code fence in a markdown
// document, leaving all surrounding prose and other code blocks byte-for-byte
// intact. Documents without mermaid fences are returned unchanged.
func NormalizeMarkdown(document string, kind Kind) string {
	src := []byte(document)
	reader := text.NewReader(src)
	root := goldmark.DefaultParser().Parse(reader)

	var splices []splice

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fence, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		lang := strings.TrimSpace(strings.ToLower(string(fence.Language(src))))
		if lang != mermaidLanguage {
			return ast.WalkSkipChildren, nil
		}

		lines := fence.Lines()
		if lines.Len() == 0 {
			return ast.WalkSkipChildren, nil
		}

		start := lines.At(0).Start
		stop := lines.At(lines.Len() - 1).Stop

		content := string(src[start:stop])
		fixed := Fix(content, kind)
		if fixed != "" && !strings.HasSuffix(fixed, "\n") {
			fixed += "\n"
		}
		if fixed != content {
			splices = append(splices, splice{start: start, stop: stop, fixed: fixed})
		}
		return ast.WalkSkipChildren, nil
	})

	if len(splices) == 0 {
		return document
	}

	sort.Slice(splices, func(i, j int) bool { return splices[i].start < splices[j].start })

	var b strings.Builder
	b.Grow(len(document))
	prev := 0
	for _, s := range splices {
		b.WriteString(document[prev:s.start])
		b.WriteString(s.fixed)
		prev = s.stop
	}
	b.WriteString(document[prev:])
	return b.String()
}
