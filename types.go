package mermaidfix

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-mermaidfix/internal/pipeline"
)

// Kind is an optional hint about what diagram the source is meant to be.
// The hint disambiguates header correction; KindUnspecified derives the
// diagram family from the source itself.
type Kind int

// Diagram kind hints.
const (
	KindUnspecified Kind = iota
	KindUsecase
	KindActivity
	KindSequence
	KindClass
)

// kindNames maps kinds to their canonical string form.
var kindNames = map[Kind]string{
	KindUnspecified: "",
	KindUsecase:     "usecase",
	KindActivity:    "activity",
	KindSequence:    "sequence",
	KindClass:       "class",
}

// String returns the canonical name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// KindNames returns the parseable kind names, in declaration order.
func KindNames() []string {
	return []string{"usecase", "activity", "sequence", "class"}
}

// ParseKind converts a kind name to a Kind. The empty string parses to
// KindUnspecified. Matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return KindUnspecified, nil
	case "usecase":
		return KindUsecase, nil
	case "activity":
		return KindActivity, nil
	case "sequence":
		return KindSequence, nil
	case "class":
		return KindClass, nil
	default:
		return KindUnspecified, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// toPipelineKind converts the public Kind to the internal pipeline kind.
func toPipelineKind(k Kind) pipeline.Kind {
	switch k {
	case KindUsecase:
		return pipeline.KindUsecase
	case KindActivity:
		return pipeline.KindActivity
	case KindSequence:
		return pipeline.KindSequence
	case KindClass:
		return pipeline.KindClass
	default:
		return pipeline.KindUnspecified
	}
}

// Input contains render parameters.
type Input struct {
	Source   string // Diagram source (required); repaired before rendering
	Kind     Kind   // Optional kind hint
	Title    string // Preview page title (optional, default "Diagram")
	HTMLOnly bool   // Skip the browser screenshot; result.PNG stays nil
}

// RenderResult holds the outcome of a render.
type RenderResult struct {
	Fixed string // Repaired diagram source
	HTML  string // Standalone preview HTML
	PNG   []byte // Screenshot of the rendered diagram; nil when HTMLOnly
}

// Option configures a Renderer.
type Option func(*Renderer)

// rendererConfig holds internal configuration for Renderer.
type rendererConfig struct {
	timeout time.Duration
	theme   string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the render timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mermaidfix: WithTimeout duration must be positive")
	}
	return func(r *Renderer) {
		r.cfg.timeout = d
	}
}

// WithTheme sets the preview theme. The name is validated at render time
// against the embedded themes.
func WithTheme(name string) Option {
	return func(r *Renderer) {
		r.cfg.theme = name
	}
}
