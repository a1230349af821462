// Package assets provides CSS themes and the HTML template for diagram
// previews. Assets are embedded at build time.
package assets
