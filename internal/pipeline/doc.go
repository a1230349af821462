// Package pipeline repairs quasi-valid Mermaid source produced by language
// models into syntactically correct, renderable diagram text.
//
// The pipeline is a fixed sequence of pure string transforms. Order is
// significant: each stage assumes the invariants established by the stages
// before it (for example, anonymous-node allocation assumes reserved-word
// rewriting already resolved the start/end aliases). Every stage is total:
// constructs that match no rewrite pattern pass through unchanged, and no
// stage can fail.
//
// Normalize is idempotent: running it on its own output is a no-op.
package pipeline
