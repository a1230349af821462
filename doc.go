// Package mermaidfix repairs quasi-valid Mermaid flowchart markup, the kind
// language models emit: stray code fences, PlantUML-style headers and
// stereotypes, reserved node identifiers, malformed branch labels, and
// anonymous nodes without identifiers.
//
// # Quick Start
//
// Repair a single diagram:
//
//	fixed := mermaidfix.Fix(source, mermaidfix.KindActivity)
//
// The repair is a pure string transform: total (never fails), deterministic,
// and idempotent. Unknown constructs pass through untouched.
//
// # Repair Pipeline
//
// Fix applies these stages in order:
//
//  1. Strip surrounding markdown code fences
//  2. Correct PlantUML-style headers to flowchart headers
//  3. Normalize <<stereotype>> markers to guillemets
//  4. Rename reserved node identifiers (start, end)
//  5. Repair malformed branch labels (--|Yes| to -->|Yes|)
//  6. Assign identifiers to anonymous nodes
//  7. Inject start/end declarations for referenced aliases
//  8. Append classDef styling when style tags are present
//
// Stages 4-8 only apply to flowchart-style diagrams; sequence and class
// diagrams receive stages 1-3 and pass through otherwise.
//
// # Markdown Documents
//
// NormalizeMarkdown repairs every ```mermaid fence inside a markdown
// document, leaving surrounding prose untouched:
//
//	fixed := mermaidfix.NormalizeMarkdown(document, mermaidfix.KindUnspecified)
//
// # Previews
//
// Renderer produces an HTML preview and, with headless Chrome available, a
// PNG image of the repaired diagram:
//
//	r := mermaidfix.NewRenderer(mermaidfix.WithTheme("dark"))
//	defer r.Close()
//
//	result, err := r.Render(ctx, mermaidfix.Input{Source: source})
//
// # Browser Requirements
//
// PNG rendering requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package mermaidfix
