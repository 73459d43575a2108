// Package web holds the HTML page served by cookieserver.
//
// The page is embedded into the binary at build time and has a single
// {message} placeholder that is filled by literal substitution.
package web

import (
	_ "embed"
	"strings"
)

// MessagePlaceholder marks where the greeting goes in the page.
const MessagePlaceholder = "{message}"

//go:embed page.html
var page string

// RenderPage returns the page with message substituted for the placeholder.
// The message is inserted verbatim; callers escape anything user-supplied.
func RenderPage(message string) string {
	return strings.Replace(page, MessagePlaceholder, message, 1)
}
