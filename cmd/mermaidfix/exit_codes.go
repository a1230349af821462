package main

import (
	"errors"
	"os"

	mermaidfix "github.com/alnah/go-mermaidfix"
	"github.com/alnah/go-mermaidfix/internal/config"
	"github.com/alnah/go-mermaidfix/internal/store"
)

// Exit codes for the mermaidfix CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess     = 0 // Successful run
	ExitGeneral     = 1 // General/unexpected error
	ExitUsage       = 2 // Invalid flags, config, or validation
	ExitIO          = 3 // File not found, permission denied
	ExitBrowser     = 4 // Browser/Chrome errors
	ExitCheckFailed = 5 // Header check reported a mismatch
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Header check mismatch (exit 5)
	if errors.Is(err, ErrCheckFailed) {
		return ExitCheckFailed
	}

	// Browser errors (exit 4)
	if errors.Is(err, mermaidfix.ErrBrowserConnect) ||
		errors.Is(err, mermaidfix.ErrPageCreate) ||
		errors.Is(err, mermaidfix.ErrPageLoad) ||
		errors.Is(err, mermaidfix.ErrRenderFailed) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, store.ErrCorrupt) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrBatchOutputFlags) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, mermaidfix.ErrEmptySource) ||
		errors.Is(err, mermaidfix.ErrUnknownKind) ||
		errors.Is(err, mermaidfix.ErrPreviewBuild) ||
		errors.Is(err, store.ErrNotFound) ||
		errors.Is(err, store.ErrEmptyName) ||
		errors.Is(err, store.ErrEmptySource) {
		return ExitUsage
	}

	return ExitGeneral
}
