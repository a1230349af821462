package validate

import (
	"strings"
	"testing"

	"github.com/alnah/go-mermaidfix/internal/pipeline"
)

func TestCheckHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		text       string
		kind       pipeline.Kind
		expectOK   bool
		expectWord string // substring of the description, "" means no check
	}{
		{
			name:     "usecase matches flowchart LR",
			text:     "flowchart LR\na --> b",
			kind:     pipeline.KindUsecase,
			expectOK: true,
		},
		{
			name:       "usecase rejects TD direction",
			text:       "flowchart TD\na --> b",
			kind:       pipeline.KindUsecase,
			expectOK:   false,
			expectWord: `expected header "flowchart LR"`,
		},
		{
			name:     "activity matches flowchart TD",
			text:     "flowchart TD",
			kind:     pipeline.KindActivity,
			expectOK: true,
		},
		{
			name:     "sequence matches sequenceDiagram",
			text:     "sequenceDiagram\nAlice->>Bob: hi",
			kind:     pipeline.KindSequence,
			expectOK: true,
		},
		{
			name:       "sequence rejects flowchart",
			text:       "flowchart TD",
			kind:       pipeline.KindSequence,
			expectOK:   false,
			expectWord: `found "flowchart TD"`,
		},
		{
			name:     "class matches classDiagram",
			text:     "classDiagram",
			kind:     pipeline.KindClass,
			expectOK: true,
		},
		{
			name:     "unspecified accepts any known header",
			text:     "graph LR\na --> b",
			kind:     pipeline.KindUnspecified,
			expectOK: true,
		},
		{
			name:       "unspecified rejects unknown header",
			text:       "pieChart\na: 1",
			kind:       pipeline.KindUnspecified,
			expectOK:   false,
			expectWord: "unrecognized header",
		},
		{
			name:     "comments before header skipped",
			text:     "%% generated\nflowchart TD",
			kind:     pipeline.KindActivity,
			expectOK: true,
		},
		{
			name:       "empty text has no header",
			text:       "",
			kind:       pipeline.KindActivity,
			expectOK:   false,
			expectWord: "no header line",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ok, detail := CheckHeader(tt.text, tt.kind)
			if ok != tt.expectOK {
				t.Errorf("CheckHeader() ok = %v, want %v (detail %q)", ok, tt.expectOK, detail)
			}
			if ok && detail != "" {
				t.Errorf("CheckHeader() ok with non-empty detail %q", detail)
			}
			if tt.expectWord != "" && !strings.Contains(detail, tt.expectWord) {
				t.Errorf("CheckHeader() detail = %q, want substring %q", detail, tt.expectWord)
			}
		})
	}
}

// The validator never mutates the text it inspects.
func TestCheckHeaderPure(t *testing.T) {
	t.Parallel()

	text := "flowchart TD\na --> b"
	normalized := pipeline.Normalize(text, pipeline.KindActivity)
	CheckHeader(normalized, pipeline.KindActivity)
	if again := pipeline.Normalize(text, pipeline.KindActivity); again != normalized {
		t.Errorf("validation altered normalization result: %q vs %q", normalized, again)
	}
}
