package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-mermaidfix/internal/config"
)

// testEnv returns an Environment with buffered I/O for assertions.
func testEnv(stdin string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
		Config: config.DefaultConfig(),
	}
	return env, &stdout, &stderr
}

func TestRunBareInvocationRepairsStdin(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv("flowchart TD\n[Measure]-->((End))")
	if err := run(context.Background(), []string{"mermaidfix"}, env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := stdout.String()
	if !strings.Contains(out, "measure[Measure]") {
		t.Errorf("anonymous node must get an identifier, got %q", out)
	}
	if !strings.Contains(out, "endNode((End))") {
		t.Errorf("circular terminal must converge on the alias, got %q", out)
	}
}

func TestRunLeadingFlagsDefaultToFix(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv("usecaseDiagram\n(User) --> [Login]")
	err := run(context.Background(), []string{"mermaidfix", "-k", "usecase"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(stdout.String(), "flowchart LR") {
		t.Errorf("got %q", stdout.String())
	}
}

func TestRunBareArgumentIsFixInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "in.mmd")
	if err := os.WriteFile(input, []byte("activityDiagram\n[Measure] --> end"), 0o644); err != nil {
		t.Fatal(err)
	}

	env, stdout, _ := testEnv("")
	if err := run(context.Background(), []string{"mermaidfix", input, "-k", "activity"}, env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout.String(), "endNode") {
		t.Errorf("reserved id must be renamed, got %q", stdout.String())
	}

	env, _, _ = testEnv("")
	err := run(context.Background(), []string{"mermaidfix", "/nonexistent/in.mmd"}, env)
	if !errors.Is(err, ErrReadInput) {
		t.Errorf("got %v, want ErrReadInput", err)
	}
}

func TestRunVersion(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv("")
	if err := run(context.Background(), []string{"mermaidfix", "version"}, env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout.String(), "mermaidfix") {
		t.Errorf("got %q", stdout.String())
	}
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv("")
	if err := run(context.Background(), []string{"mermaidfix", "help", "fix"}, env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout.String(), "mermaidfix fix") {
		t.Errorf("got %q", stdout.String())
	}
}

func TestFixFromStdinToStdout(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv("usecaseDiagram\n(User) --> [Login]")
	err := run(context.Background(), []string{"mermaidfix", "fix", "-k", "usecase"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := stdout.String()
	if !strings.HasPrefix(out, "flowchart LR") {
		t.Errorf("got %q", out)
	}
	if !strings.Contains(out, "login[Login]") {
		t.Errorf("anonymous node must get an identifier, got %q", out)
	}
}

func TestFixFileToFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "in.mmd")
	output := filepath.Join(dir, "out.mmd")
	if err := os.WriteFile(input, []byte("activityDiagram\n[Measure] --> end"), 0o644); err != nil {
		t.Fatal(err)
	}

	env, _, stderr := testEnv("")
	err := run(context.Background(), []string{"mermaidfix", "fix", input, "-o", output, "-k", "activity"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "endNode") {
		t.Errorf("reserved id must be renamed, got %q", data)
	}
	if !strings.Contains(stderr.String(), "Wrote") {
		t.Error("expected write confirmation on stderr")
	}
}

func TestFixMarkdownMode(t *testing.T) {
	t.Parallel()

	doc := "# Doc\n\n```mermaid\nusecaseDiagram\n(User) --> [Login]\n```\n"
	env, stdout, _ := testEnv(doc)
	err := run(context.Background(), []string{"mermaidfix", "fix", "--markdown", "-k", "usecase"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := stdout.String()
	if !strings.Contains(out, "# Doc") {
		t.Error("prose must survive")
	}
	if !strings.Contains(out, "flowchart LR") {
		t.Errorf("fence must be repaired, got %q", out)
	}
}

func TestFixMissingInputFile(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv("")
	err := run(context.Background(), []string{"mermaidfix", "fix", "/nonexistent/in.mmd"}, env)
	if !errors.Is(err, ErrReadInput) {
		t.Errorf("got %v, want ErrReadInput", err)
	}
	if exitCodeFor(err) != ExitIO {
		t.Errorf("exit code %d, want %d", exitCodeFor(err), ExitIO)
	}
}

func TestFixUnknownKind(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv("flowchart TD\na-->b")
	err := run(context.Background(), []string{"mermaidfix", "fix", "-k", "mindmap"}, env)
	if err == nil {
		t.Fatal("expected error")
	}
	if exitCodeFor(err) != ExitUsage {
		t.Errorf("exit code %d, want %d", exitCodeFor(err), ExitUsage)
	}
	if !strings.Contains(err.Error(), "hint:") {
		t.Errorf("error %q should carry a hint", err)
	}
}

func TestCheckPassAndFail(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv("flowchart TD\na-->b")
	err := run(context.Background(), []string{"mermaidfix", "check", "-k", "activity"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout.String(), "OK") {
		t.Errorf("got %q", stdout.String())
	}

	env, _, _ = testEnv("usecaseDiagram\na-->b")
	err = run(context.Background(), []string{"mermaidfix", "check", "-k", "usecase"}, env)
	if !errors.Is(err, ErrCheckFailed) {
		t.Errorf("got %v, want ErrCheckFailed", err)
	}
	if exitCodeFor(err) != ExitCheckFailed {
		t.Errorf("exit code %d, want %d", exitCodeFor(err), ExitCheckFailed)
	}
}

func TestRenderHTMLOnly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	htmlPath := filepath.Join(dir, "out.html")

	env, _, _ := testEnv("activityDiagram\n[Measure] --> end")
	err := run(context.Background(), []string{
		"mermaidfix", "render", "--html-only", "--html", htmlPath, "-k", "activity",
	}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(htmlPath)
	if err != nil {
		t.Fatal(err)
	}
	html := string(data)
	if !strings.Contains(html, `<div class="mermaid">`) {
		t.Error("preview must contain the hydration div")
	}
	if !strings.Contains(html, "endNode") {
		t.Error("preview must contain the repaired source")
	}
}

func TestRenderBatchHTMLOnly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inputs := []string{filepath.Join(dir, "a.mmd"), filepath.Join(dir, "b.mmd")}
	sources := []string{
		"activityDiagram\n[Measure] --> end",
		"usecaseDiagram\n(User) --> [Login]",
	}
	for i, path := range inputs {
		if err := os.WriteFile(path, []byte(sources[i]), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	env, _, stderr := testEnv("")
	err := run(context.Background(), []string{
		"mermaidfix", "render", "--html-only", inputs[0], inputs[1],
	}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, path := range inputs {
		htmlPath := strings.TrimSuffix(path, ".mmd") + ".html"
		data, err := os.ReadFile(htmlPath)
		if err != nil {
			t.Fatalf("expected %s: %v", htmlPath, err)
		}
		if !strings.Contains(string(data), `<div class="mermaid">`) {
			t.Errorf("%s must contain the hydration div", htmlPath)
		}
	}
	if strings.Count(stderr.String(), "Wrote") != 2 {
		t.Errorf("expected two write confirmations, got %q", stderr.String())
	}
}

func TestRenderBatchRejectsOutputFlags(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv("")
	err := run(context.Background(), []string{
		"mermaidfix", "render", "a.mmd", "b.mmd", "-o", "out.png",
	}, env)
	if !errors.Is(err, ErrBatchOutputFlags) {
		t.Errorf("got %v, want ErrBatchOutputFlags", err)
	}
}

func TestRenderInvalidTimeout(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv("flowchart TD\na-->b")
	err := run(context.Background(), []string{"mermaidfix", "render", "--html-only", "-t", "banana"}, env)
	if err == nil || !strings.Contains(err.Error(), "invalid timeout") {
		t.Errorf("got %v, want invalid timeout error", err)
	}
}

func TestConfigDefaultKindApplies(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("fix:\n  kind: usecase\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	env, stdout, _ := testEnv("usecaseDiagram\n(User) --> [Login]")
	err := run(context.Background(), []string{"mermaidfix", "fix", "-c", cfgPath}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(stdout.String(), "flowchart LR") {
		t.Errorf("configured kind must drive header correction, got %q", stdout.String())
	}
}
