package mermaidfix

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-mermaidfix/internal/fileutil"
)

// pngRenderer abstracts screenshotting an HTML file to enable testing
// without a browser.
type pngRenderer interface {
	RenderFromFile(ctx context.Context, filePath string) ([]byte, error)
	Close() error
}

// Compile-time interface check.
var _ pngRenderer = (*rodRenderer)(nil)

// previewReadyScript waits for Mermaid.js hydration to finish before the
// screenshot is taken.
const previewReadyScript = `() => window.__previewReady === true`

// rodRenderer implements pngRenderer using go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodRenderer struct {
	browser *rod.Browser
	timeout time.Duration
}

// newRodRenderer creates a rodRenderer with the given timeout.
func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources.
func (r *rodRenderer) Close() error {
	if r.browser != nil {
		err := r.browser.Close()
		r.browser = nil
		return err
	}
	return nil
}

// RenderFromFile opens a local HTML file in headless Chrome, waits for the
// diagram to hydrate, and captures a PNG screenshot of the page.
// Returns explicit errors instead of panicking when browser operations fail.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + filePath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	// Wait for page to load with timeout from context or default
	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	page = page.Timeout(timeout)
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	// Mermaid.js hydrates asynchronously after load.
	if err := page.Wait(rod.Eval(previewReadyScript)); err != nil {
		return nil, fmt.Errorf("%w: waiting for diagram hydration: %v", ErrRenderFailed, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	png, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	return png, nil
}

// Renderer repairs a diagram, builds an HTML preview, and optionally
// renders it to PNG with headless Chrome.
type Renderer struct {
	cfg     rendererConfig
	builder *previewBuilder
	png     pngRenderer
}

// NewRenderer creates a Renderer with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithTheme).
func NewRenderer(opts ...Option) (*Renderer, error) {
	builder, err := newPreviewBuilder()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		cfg:     rendererConfig{timeout: defaultTimeout},
		builder: builder,
	}

	for _, opt := range opts {
		opt(r)
	}

	// Create PNG renderer if not injected (e.g., by tests)
	if r.png == nil {
		r.png = newRodRenderer(r.cfg.timeout)
	}

	return r, nil
}

// Render repairs input.Source, builds the HTML preview, and captures a PNG
// unless input.HTMLOnly is set. The context is used for cancellation and
// timeout.
func (r *Renderer) Render(ctx context.Context, input Input) (*RenderResult, error) {
	if input.Source == "" {
		return nil, ErrEmptySource
	}

	fixed := Fix(input.Source, input.Kind)
	if fixed == "" {
		return nil, ErrEmptySource
	}

	htmlContent, err := r.builder.Build(fixed, input.Title, r.cfg.theme)
	if err != nil {
		return nil, err
	}

	result := &RenderResult{Fixed: fixed, HTML: htmlContent}
	if input.HTMLOnly {
		return result, nil
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	png, err := r.png.RenderFromFile(ctx, tmpPath)
	if err != nil {
		return nil, err
	}
	result.PNG = png

	return result, nil
}

// Close releases resources (headless Chrome browser).
func (r *Renderer) Close() error {
	if r.png != nil {
		return r.png.Close()
	}
	return nil
}
