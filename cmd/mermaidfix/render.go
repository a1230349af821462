package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	mermaidfix "github.com/alnah/go-mermaidfix"
	"github.com/alnah/go-mermaidfix/internal/fileutil"
	"github.com/alnah/go-mermaidfix/internal/hints"
)

// defaultPNGOutput is used when render gets no output path.
const defaultPNGOutput = "diagram.png"

// ErrBatchOutputFlags rejects explicit output paths in batch mode, where
// output names are derived from the input names.
var ErrBatchOutputFlags = errors.New("-o and --html apply to a single input")

// runRender repairs the diagram, builds the HTML preview, and renders a PNG
// with headless Chrome unless --html-only is set. Multiple input files are
// rendered in parallel through a renderer pool.
func runRender(ctx context.Context, positional []string, flags *renderFlags, env *Environment) error {
	if err := loadCommandConfig(&flags.common, env); err != nil {
		return err
	}

	kind, err := resolveKind(&flags.common, env)
	if err != nil {
		return err
	}

	theme := flags.theme
	if theme == "" {
		theme = env.Config.Preview.Theme
	}

	timeout, err := resolveTimeout(flags.timeout, env)
	if err != nil {
		return err
	}

	if len(positional) > 1 {
		return runRenderBatch(ctx, positional, flags, kind, theme, timeout, env)
	}

	source, err := readInput(positional, env)
	if err != nil {
		return err
	}

	renderer, err := mermaidfix.NewRenderer(
		mermaidfix.WithTimeout(timeout),
		mermaidfix.WithTheme(theme),
	)
	if err != nil {
		return err
	}
	defer renderer.Close()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err := renderer.Render(ctx, mermaidfix.Input{
		Source:   source,
		Kind:     kind,
		Title:    flags.title,
		HTMLOnly: flags.htmlOnly,
	})
	if err != nil {
		if errors.Is(err, mermaidfix.ErrBrowserConnect) {
			return fmt.Errorf("%w%s", err, hints.ForBrowserConnect())
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("render timed out: %w%s", err, hints.ForTimeout())
		}
		if errors.Is(err, mermaidfix.ErrPreviewBuild) {
			return fmt.Errorf("%w%s", err, hints.ForThemeNotFound(mermaidfix.Themes()))
		}
		return err
	}

	if flags.htmlPath != "" || flags.htmlOnly {
		htmlPath := flags.htmlPath
		if htmlPath == "" {
			htmlPath = "diagram.html"
		}
		if err := writeOutput(htmlPath, result.HTML, env); err != nil {
			return err
		}
		if !flags.common.quiet {
			fmt.Fprintf(env.Stderr, "Wrote %s\n", htmlPath)
		}
	}

	if flags.htmlOnly {
		return nil
	}

	output := flags.output
	if output == "" {
		output = defaultPNGOutput
	}
	if err := os.WriteFile(output, result.PNG, filePermissions); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, output, err)
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stderr, "Wrote %s\n", output)
	}
	return nil
}

// runRenderBatch renders several diagram files through a renderer pool, one
// headless browser per worker. Each output path is derived from its input
// path, so explicit -o and --html paths are rejected.
func runRenderBatch(ctx context.Context, inputs []string, flags *renderFlags, kind mermaidfix.Kind, theme string, timeout time.Duration, env *Environment) error {
	if flags.output != "" || flags.htmlPath != "" {
		return fmt.Errorf("%w: got %d inputs", ErrBatchOutputFlags, len(inputs))
	}

	pool := mermaidfix.NewRendererPool(
		mermaidfix.ResolvePoolSize(flags.workers),
		mermaidfix.WithTimeout(timeout),
		mermaidfix.WithTheme(theme),
	)
	defer pool.Close()

	concurrency := pool.Size()
	if concurrency > len(inputs) {
		concurrency = len(inputs)
	}

	// Fixed worker set over a jobs channel; each slot of the results slice
	// belongs to exactly one job, so no lock is needed.
	type batchResult struct {
		wrote string
		err   error
	}
	results := make([]batchResult, len(inputs))
	jobs := make(chan int, len(inputs))

	var wg sync.WaitGroup
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					results[i] = batchResult{err: ctx.Err()}
					continue
				}
				wrote, err := renderBatchFile(ctx, pool, inputs[i], flags, kind, timeout)
				results[i] = batchResult{wrote: wrote, err: err}
			}
		}()
	}

	for i := range inputs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var errs []error
	for i, r := range results {
		if r.err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", inputs[i], r.err))
			continue
		}
		if !flags.common.quiet {
			fmt.Fprintf(env.Stderr, "Wrote %s\n", r.wrote)
		}
	}
	return errors.Join(errs...)
}

// renderBatchFile renders one input file with a pooled renderer and returns
// the path it wrote.
func renderBatchFile(ctx context.Context, pool *mermaidfix.RendererPool, input string, flags *renderFlags, kind mermaidfix.Kind, timeout time.Duration) (string, error) {
	data, err := os.ReadFile(input) // #nosec G304 -- input path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	renderer, err := pool.Acquire()
	if err != nil {
		return "", err
	}
	defer pool.Release(renderer)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	stem := strings.TrimSuffix(input, filepath.Ext(input))
	result, err := renderer.Render(ctx, mermaidfix.Input{
		Source:   string(data),
		Kind:     kind,
		Title:    filepath.Base(stem),
		HTMLOnly: flags.htmlOnly,
	})
	if err != nil {
		return "", err
	}

	if flags.htmlOnly {
		out := stem + ".html"
		if err := fileutil.WriteFileAtomic(out, []byte(result.HTML), filePermissions); err != nil {
			return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return out, nil
	}

	out := stem + ".png"
	if err := os.WriteFile(out, result.PNG, filePermissions); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return out, nil
}

// resolveTimeout merges the timeout flag with the configured default.
func resolveTimeout(flagValue string, env *Environment) (time.Duration, error) {
	if flagValue != "" {
		d, err := time.ParseDuration(flagValue)
		if err != nil || d <= 0 {
			return 0, fmt.Errorf("invalid timeout %q (use formats like 30s, 2m)", flagValue)
		}
		return d, nil
	}
	if s := env.Config.Render.TimeoutSeconds; s > 0 {
		return time.Duration(s) * time.Second, nil
	}
	return 30 * time.Second, nil
}
