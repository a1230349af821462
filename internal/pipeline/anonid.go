package pipeline

import (
	"regexp"
	"strings"
)

// Decision nodes get a fixed prefix so they never collide with a step node
// sharing a similar label and are recognizable in the output.
const decisionPrefix = "dec_"

// Anonymous node declarations: a bracket shape with no identifier in front.
// The leading alternation rejects occurrences preceded by a word character,
// which indicates an identifier is present and must not be double-prefixed,
// and occurrences preceded by the shape's own opening bracket, so doubled
// shapes like subroutines [[S]] and hexagons {{H}} pass through untouched.
// Shapes are processed in fixed order: rectangular, circular, diamond.
var (
	anonRect    = regexp.MustCompile(`(^|[^A-Za-z0-9_\[])\[([^\[\]\n]+)\]`)
	anonCircle  = regexp.MustCompile(`(^|[^A-Za-z0-9_(])\(\(([^()\n]+)\)\)`)
	anonDiamond = regexp.MustCompile(`(^|[^A-Za-z0-9_{])\{([^{}\n]+)\}`)

	// Identifiers already declared in the source, seeded into the table so
	// slug allocation cannot collide with them.
	declaredID = regexp.MustCompile(`([A-Za-z0-9_]+)(\[|\(\(|\{)`)
)

// shapeRule describes how one bracket shape is keyed, identified, and
// rewritten.
type shapeRule struct {
	pattern *regexp.Regexp
	tag     string // NodeKey shape tag
	open    string
	close   string

	// id computes the base identifier for a label, or "" to fall back to a
	// sequential placeholder.
	id func(label string) string
}

var shapeRules = []shapeRule{
	{
		pattern: anonRect,
		tag:     "[]",
		open:    "[",
		close:   "]",
		id:      Slugify,
	},
	{
		pattern: anonCircle,
		tag:     "(())",
		open:    "((",
		close:   "))",
		id:      Slugify,
	},
	{
		pattern: anonDiamond,
		tag:     "{}",
		open:    "{",
		close:   "}",
		id: func(label string) string {
			if s := Slugify(label); s != "" {
				return decisionPrefix + s
			}
			return ""
		},
	},
}

// AssignNodeIDs allocates stable, collision-free identifiers for label-only
// node declarations. Two occurrences of the same label in the same shape
// resolve to the same identifier, so a generator that repeats a node by label
// still produces one connected node. Distinct labels never share an
// identifier; collisions on the slug are resolved with _2, _3, ... suffixes.
// Circular labels containing "start" or "end" converge onto the reserved
// aliases so organically introduced terminals join the explicitly declared
// ones. Trailing :::class tags survive untouched.
func AssignNodeIDs(source string) string {
	t := newIDTable()
	for _, m := range declaredID.FindAllStringSubmatch(source, -1) {
		t.markUsed(m[1])
	}

	// Per shape, in bracket-shape order, over the whole text so identifier
	// reuse works across lines. Comment lines (%% and %%{init}%% directives)
	// are carried through untouched.
	for _, rule := range shapeRules {
		lines := strings.Split(source, "\n")
		for i, line := range lines {
			if strings.HasPrefix(strings.TrimSpace(line), "%%") {
				continue
			}
			lines[i] = assignShape(line, t, rule)
		}
		source = strings.Join(lines, "\n")
	}
	return source
}

// assignShape rewrites every anonymous occurrence of one bracket shape on a
// single line.
func assignShape(line string, t *idTable, rule shapeRule) string {
	return rule.pattern.ReplaceAllStringFunc(line, func(m string) string {
		sub := rule.pattern.FindStringSubmatch(m)
		prefix, label := sub[1], sub[2]

		key := rule.tag + ":" + label
		id, ok := t.lookup(key)
		if !ok {
			id = assignID(t, rule, key, label)
		}
		return prefix + id + rule.open + label + rule.close
	})
}
// assignID picks the identifier for a fresh NodeKey.
func assignID(t *idTable, rule shapeRule, key, label string) string {
	// Circular terminals converge onto the reserved aliases regardless of
	// what the slug would have been.
	if rule.tag == "(())" {
		lower := strings.ToLower(label)
		if strings.Contains(lower, "end") {
			return t.assign(key, EndAlias)
		}
		if strings.Contains(lower, "start") {
			return t.assign(key, StartAlias)
		}
	}

	base := rule.id(label)
	if base == "" {
		base = t.placeholder()
	}
	return t.allocate(key, base)
}
