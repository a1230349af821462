package pipeline

import "testing"

func TestStripFence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    "  \n\t\n",
			expected: "",
		},
		{
			name:     "no fence unchanged",
			input:    "flowchart TD\nA-->B",
			expected: "flowchart TD\nA-->B",
		},
		{
			name:     "bare fence stripped",
			input:    "```\nflowchart TD\nA-->B\n```",
			expected: "flowchart TD\nA-->B",
		},
		{
			name:     "language-tagged fence stripped",
			input:    "```mermaid\nflowchart TD\nA-->B\n```",
			expected: "flowchart TD\nA-->B",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "\n\n```mermaid\nflowchart TD\n```\n\n",
			expected: "flowchart TD",
		},
		{
			name:     "leading fence only left alone",
			input:    "```mermaid\nflowchart TD\nA-->B",
			expected: "```mermaid\nflowchart TD\nA-->B",
		},
		{
			name:     "trailing fence only left alone",
			input:    "flowchart TD\nA-->B\n```",
			expected: "flowchart TD\nA-->B\n```",
		},
		{
			name:     "single layer stripped from double fence",
			input:    "```\n```mermaid\nflowchart TD\n```\n```",
			expected: "```mermaid\nflowchart TD\n```",
		},
		{
			name:     "fence with trailing content on open line left alone",
			input:    "```mermaid extra words\nflowchart TD\n```",
			expected: "```mermaid extra words\nflowchart TD\n```",
		},
		{
			name:     "lone fence line left alone",
			input:    "```",
			expected: "```",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := StripFence(tt.input)
			if got != tt.expected {
				t.Errorf("StripFence() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestStripFenceIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"```mermaid\nflowchart TD\nA-->B\n```",
		"flowchart TD\nA-->B",
		"",
		"```",
	}

	for _, in := range inputs {
		once := StripFence(in)
		twice := StripFence(once)
		if once != twice {
			t.Errorf("StripFence not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
