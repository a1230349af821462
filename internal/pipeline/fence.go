package pipeline

import (
	"regexp"
	"strings"
)

// Opening fence: three backticks plus an optional language tag, nothing else.
var fenceOpenLine = regexp.MustCompile("^```[A-Za-z0-9_-]*$")

// StripFence removes one layer of triple-backtick fencing around the source,
// along with surrounding whitespace. The fence is stripped only when both the
// first and last lines look fence-shaped; a lone leading or trailing fence
// marker leaves the content untouched rather than corrupting it.
func StripFence(source string) string {
	s := strings.TrimSpace(source)
	if s == "" {
		return ""
	}
	if !strings.HasPrefix(s, "```") {
		return s
	}

	lines := strings.Split(s, "\n")
	if len(lines) < 2 {
		return s
	}
	if !fenceOpenLine.MatchString(strings.TrimSpace(lines[0])) {
		return s
	}
	if strings.TrimSpace(lines[len(lines)-1]) != "```" {
		return s
	}

	return strings.TrimSpace(strings.Join(lines[1:len(lines)-1], "\n"))
}
