package assets

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed themes/*.css
var themes embed.FS

//go:embed templates/preview.html
var templates embed.FS

// DefaultTheme is used when no theme is configured.
const DefaultTheme = "light"

// Theme returns the CSS for the named theme.
// The name should not include the .css extension.
// Returns ErrThemeNotFound if the theme does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func Theme(name string) (string, error) {
	if err := validateAssetName(name); err != nil {
		return "", err
	}

	content, err := themes.ReadFile("themes/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}

	return string(content), nil
}

// Themes returns the names of all embedded themes, sorted.
func Themes() []string {
	entries, err := themes.ReadDir("themes")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".css"))
	}
	sort.Strings(names)
	return names
}

// PreviewTemplate returns the HTML page template for diagram previews.
func PreviewTemplate() string {
	content, err := templates.ReadFile("templates/preview.html")
	if err != nil {
		// Embedded at build time; a missing template is a packaging bug.
		panic(fmt.Sprintf("assets: preview template missing: %v", err))
	}
	return string(content)
}

// validateAssetName checks that an asset name is safe for use as a filename.
func validateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
