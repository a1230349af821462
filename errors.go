package mermaidfix

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptySource    = errors.New("diagram source cannot be empty")
	ErrUnknownKind    = errors.New("unknown diagram kind")
	ErrPreviewBuild   = errors.New("preview build failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrRenderFailed   = errors.New("diagram render failed")
)
