package pipeline

import "testing"

func TestFixBranchLabels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "dash pipe arrow form",
			input:    "A--|Yes|-->B",
			expected: "A-->|Yes|B",
		},
		{
			name:     "space before arrow",
			input:    "A--|No| -->B",
			expected: "A-->|No|B",
		},
		{
			name:     "bare target form",
			input:    "A--|Yes| B",
			expected: "A-->|Yes| B",
		},
		{
			name:     "bare target no space",
			input:    "A--|Yes|B",
			expected: "A-->|Yes|B",
		},
		{
			name:     "target whitespace preserved",
			input:    "check --|Retry|   fetch",
			expected: "check -->|Retry|   fetch",
		},
		{
			name:     "multiple edges corrected",
			input:    "a--|Yes|-->b\nc--|No| d",
			expected: "a-->|Yes|b\nc-->|No| d",
		},
		{
			name:     "empty label",
			input:    "A--||-->B",
			expected: "A-->||B",
		},
		{
			name:     "canonical form untouched",
			input:    "A-->|Yes|B",
			expected: "A-->|Yes|B",
		},
		{
			name:     "labeled open link untouched",
			input:    "A ---|Label| B",
			expected: "A ---|Label| B",
		},
		{
			name:     "labeled open link at line start untouched",
			input:    "---|Label| B",
			expected: "---|Label| B",
		},
		{
			name:     "plain arrow untouched",
			input:    "A-->B",
			expected: "A-->B",
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

			got := FixBranchLabels(tt.input)
			if got != tt.expected {
				t.Errorf("FixBranchLabels():\ngot:  %q\nwant: %q", got, tt.expected)
			}
		})
	}
}

func TestFixBranchLabelsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"A--|Yes|-->B",
		"A--|Yes| B",
		"A-->|Yes|B",
	}

	for _, in := range inputs {
		once := FixBranchLabels(in)
		twice := FixBranchLabels(once)
		if once != twice {
			t.Errorf("FixBranchLabels not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
