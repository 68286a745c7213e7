// ABOUTME: Markdown rendering for AI-generated advisory text
// ABOUTME: Goldmark with raw HTML omitted, output trusted for templates

package webui

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// renderMarkdown converts model-generated markdown to HTML. Raw HTML in
// the source is omitted by goldmark's default renderer, so the result
// is safe to mark trusted. On conversion failure the text is rendered
// escaped and unformatted rather than dropped.
func renderMarkdown(text string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(text), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(buf.String())
}
