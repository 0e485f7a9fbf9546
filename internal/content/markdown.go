package content

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

// Renderer converts markdown to sanitized HTML. Raw HTML blocks are passed
// through goldmark and then filtered by the sanitizer policy.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewRenderer returns a Renderer with GFM tables and autolinks enabled.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(goldmarkHTML.WithUnsafe()),
		),
		policy: newPagePolicy(),
	}
}

// Render converts src to sanitized HTML.
func (r *Renderer) Render(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("content: render markdown: %w", err)
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), nil
}

// Sanitize filters an HTML fragment with the page policy.
func (r *Renderer) Sanitize(fragment string) template.HTML {
	return template.HTML(r.policy.Sanitize(fragment))
}

func newPagePolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("figure", "figcaption", "section")
	policy.AllowAttrs("class").OnElements("figure", "figcaption", "p", "span", "div", "section", "ul", "li")
	policy.AllowAttrs("loading").OnElements("img")
	policy.RequireNoFollowOnLinks(true)
	return policy
}
