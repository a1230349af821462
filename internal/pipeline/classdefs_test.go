package pipeline

import (
	"strings"
	"testing"
)

func TestInjectClassDefs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "terminal tag triggers injection",
			input:    "flowchart TD\n    endNode((End)):::terminal",
			expected: "flowchart TD\n    endNode((End)):::terminal\n\n" + DefaultClassDefs,
		},
		{
			name:     "decision tag triggers injection",
			input:    "flowchart TD\ndec_ok{OK?}:::decision",
			expected: "flowchart TD\ndec_ok{OK?}:::decision\n\n" + DefaultClassDefs,
		},
		{
			name:     "existing classDef disables injection",
			input:    "flowchart TD\na[Go]:::step\nclassDef step fill:#fff",
			expected: "flowchart TD\na[Go]:::step\nclassDef step fill:#fff",
		},
		{
			name:     "indented classDef disables injection",
			input:    "flowchart TD\na[Go]:::step\n    classDef step fill:#fff",
			expected: "flowchart TD\na[Go]:::step\n    classDef step fill:#fff",
		},
		{
			name:     "no style tags no injection",
			input:    "flowchart TD\na --> b",
			expected: "flowchart TD\na --> b",
		},
		{
			name:     "unknown tag no injection",
			input:    "flowchart TD\na[Go]:::custom",
			expected: "flowchart TD\na[Go]:::custom",
		},
		{
			name:     "trailing newlines collapsed before block",
			input:    "a:::parallel\n\n",
			expected: "a:::parallel\n\n" + DefaultClassDefs,
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := InjectClassDefs(tt.input)
			if got != tt.expected {
				t.Errorf("InjectClassDefs():\ngot:  %q\nwant: %q", got, tt.expected)
			}
		})
	}
}

func TestInjectClassDefsOnce(t *testing.T) {
	t.Parallel()

	input := "flowchart TD\n    endNode((End)):::terminal"
	once := InjectClassDefs(input)
	twice := InjectClassDefs(once)
	if once != twice {
		t.Errorf("InjectClassDefs duplicated the block:\nfirst:  %q\nsecond: %q", once, twice)
	}
	if n := strings.Count(twice, "classDef terminal"); n != 1 {
		t.Errorf("expected exactly one terminal classDef, got %d", n)
	}
}
