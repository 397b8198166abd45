// Package content renders card text for display.
//
// Card fronts and backs are stored as the user typed them. They are read as
// Markdown and the resulting HTML is sanitized before it leaves the server,
// so stored text is never trusted as markup.
package content

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer turns card text into safe HTML. It is safe for concurrent use.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewRenderer returns a renderer for GitHub flavoured Markdown. Raw HTML
// in the source passes through goldmark and is then filtered by a UGC
// policy.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps(), html.WithUnsafe()),
		),
		policy: bluemonday.UGCPolicy(),
	}
}

// Render converts Markdown to sanitized HTML.
func (r *Renderer) Render(src string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return strings.TrimSpace(r.policy.Sanitize(buf.String())), nil
}

// Sanitize strips anything but safe formatting from an HTML fragment.
func (r *Renderer) Sanitize(fragment string) string {
	return r.policy.Sanitize(fragment)
}
