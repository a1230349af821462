package mermaidfix

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-mermaidfix/internal/assets"
)

// Themes returns the names of the embedded preview themes.
func Themes() []string {
	return assets.Themes()
}

// previewData feeds the embedded preview page template.
type previewData struct {
	Title        string
	CSS          htmltemplate.CSS
	Body         htmltemplate.HTML
	MermaidTheme string
}

// mermaidThemes maps preview themes to Mermaid.js theme names.
var mermaidThemes = map[string]string{
	"light": "default",
	"dark":  "dark",
}

// previewBuilder turns repaired diagram source into a standalone HTML page
// that hydrates the diagram with Mermaid.js.
type previewBuilder struct {
	md   goldmark.Markdown
	page *htmltemplate.Template
}

// newPreviewBuilder creates a previewBuilder with GFM extensions, syntax
// highlighting, and mermaid fence hydration.
func newPreviewBuilder() (*previewBuilder, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes keep styling in the theme stylesheet
				),
				highlighting.WithWrapperRenderer(mermaidWrapper),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)

	page, err := htmltemplate.New("preview").Parse(assets.PreviewTemplate())
	if err != nil {
		return nil, fmt.Errorf("%w: parsing page template: %v", ErrPreviewBuild, err)
	}

	return &previewBuilder{md: md, page: page}, nil
}

// Build renders the repaired diagram into a complete HTML document using the
// named theme.
func (b *previewBuilder) Build(fixed, title, theme string) (string, error) {
	if theme == "" {
		theme = assets.DefaultTheme
	}
	css, err := assets.Theme(theme)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPreviewBuild, err)
	}
	if title == "" {
		title = "Diagram"
	}

	// Route the diagram through the markdown renderer as a mermaid fence so
	// the wrapper emits the hydration div.
	doc := "```mermaid\n" + fixed + "\n```\n"

	var body bytes.Buffer
	if err := b.md.Convert([]byte(doc), &body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPreviewBuild, err)
	}

	mermaidTheme, ok := mermaidThemes[theme]
	if !ok {
		mermaidTheme = "default"
	}

	var out bytes.Buffer
	data := previewData{
		Title:        title,
		CSS:          htmltemplate.CSS(css),
		Body:         htmltemplate.HTML(body.String()), // #nosec G203 -- body is our own renderer output
		MermaidTheme: mermaidTheme,
	}
	if err := b.page.Execute(&out, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPreviewBuild, err)
	}
	return out.String(), nil
}

// mermaidWrapper converts ```mermaid fences into divs Mermaid.js can hydrate,
// while delegating to the default fallback for other code blocks.
func mermaidWrapper(w util.BufWriter, ctx highlighting.CodeBlockContext, entering bool) {
	if ctx.Highlighted() {
		// Let the highlighter handle its own wrappers for highlighted blocks.
		return
	}

	lang, _ := ctx.Language()
	normalized := strings.TrimSpace(strings.ToLower(string(lang)))
	if normalized == mermaidLanguage {
		if entering {
			_, _ = w.WriteString(`<div class="mermaid">`)
		} else {
			_, _ = w.WriteString("</div>\n")
		}
		return
	}

	if entering {
		_, _ = w.WriteString("<pre><code")
		if len(bytes.TrimSpace(lang)) > 0 {
			_, _ = w.WriteString(` class="language-`)
			_, _ = w.Write(util.EscapeHTML(lang))
			_, _ = w.WriteString(`"`)
		}
		_, _ = w.WriteString(">")
		return
	}
	_, _ = w.WriteString("</code></pre>\n")
}
