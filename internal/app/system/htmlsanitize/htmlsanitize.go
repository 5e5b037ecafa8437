// Package htmlsanitize cleans HTML entered through the admin editors
// before it is stored or rendered. Rich-text content keeps its
// formatting; anything executable is stripped.
package htmlsanitize

import (
	"html"
	"html/template"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// policy allows the formatting the admin editors produce: headings,
// lists, tables, inline formatting, links, and images. Scripts, event
// handlers, iframes, and form elements are removed.
var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("u", "s", "sub", "sup", "mark", "hr", "br")
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("style").OnElements("table", "thead", "tbody", "tr", "th", "td")
	return p
}

// Sanitize returns s with disallowed HTML removed.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}

// SanitizeToHTML sanitizes s and marks the result safe for templates.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}

// tagPattern matches something that looks like an HTML tag. Bare < and >
// in prose (like "5 < 10") do not match.
var tagPattern = regexp.MustCompile(`</?[A-Za-z][^>]*>`)

// IsPlainText reports whether s contains no HTML tags.
func IsPlainText(s string) bool {
	return !tagPattern.MatchString(s)
}

// PlainTextToHTML escapes s and converts it to a single HTML paragraph,
// turning newlines into <br>.
func PlainTextToHTML(s string) string {
	if s == "" {
		return ""
	}
	escaped := html.EscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	return "<p>" + escaped + "</p>"
}

// PrepareForDisplay renders stored content for display: plain text is
// escaped and paragraph-wrapped, HTML is sanitized.
func PrepareForDisplay(s string) template.HTML {
	if s == "" {
		return ""
	}
	if IsPlainText(s) {
		return template.HTML(PlainTextToHTML(s))
	}
	return SanitizeToHTML(s)
}
