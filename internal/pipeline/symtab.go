package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// Runs of characters that cannot appear in an identifier slug.
var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// idTable allocates collision-free identifiers for anonymous nodes within a
// single Normalize call. It maps a NodeKey (shape tag + raw label) to the
// identifier assigned to it, and tracks every identifier in use, both real
// ones found in the source and slug-derived ones it issued. It is never
// shared across calls.
type idTable struct {
	byKey map[string]string
	used  map[string]bool
	seq   int
}

func newIDTable() *idTable {
	return &idTable{
		byKey: make(map[string]string),
		used:  make(map[string]bool),
	}
}

// markUsed records an identifier that already exists in the source so the
// allocator never collides with it.
func (t *idTable) markUsed(id string) {
	t.used[id] = true
}

// lookup returns the identifier previously assigned to key, if any.
func (t *idTable) lookup(key string) (string, bool) {
	id, ok := t.byKey[key]
	return id, ok
}

// assign binds key to exactly id, reusing it even if another key holds it.
// Used for the forced start/end aliases, where convergence is the point.
func (t *idTable) assign(key, id string) string {
	t.byKey[key] = id
	t.used[id] = true
	return id
}

// allocate binds key to base, suffixing _2, _3, ... until the identifier is
// free of collisions with identifiers held by other keys.
func (t *idTable) allocate(key, base string) string {
	id := base
	for n := 2; t.used[id]; n++ {
		id = base + "_" + strconv.Itoa(n)
	}
	return t.assign(key, id)
}

// placeholder returns the next sequential fallback identifier (n1, n2, ...)
// for labels whose slug comes out empty.
func (t *idTable) placeholder() string {
	t.seq++
	return "n" + strconv.Itoa(t.seq)
}

// Slugify derives an identifier-safe slug from a human-readable label:
// lowercase, every run of non-alphanumerics collapsed to one underscore,
// leading and trailing underscores trimmed. May return "".
func Slugify(label string) string {
	s := strings.ToLower(label)
	s = nonSlugRun.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}
