// Package markdown renders user-written text (artwork descriptions, artist
// bios) to safe HTML.
package markdown

import (
	"bytes"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// Renderer converts markdown to HTML and sanitises the result.
// It is safe for concurrent use.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Strikethrough,
			extension.Linkify,
			extension.Typographer,
		),
		goldmark.WithRendererOptions(
			// Descriptions come from a textarea; keep the line breaks.
			goldmarkhtml.WithHardWraps(),
			goldmarkhtml.WithXHTML(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	return &Renderer{
		md:     md,
		policy: policy,
	}
}

// HTML renders source to sanitised HTML. Raw HTML in the source never
// survives: goldmark drops it and the policy removes anything left.
func (r *Renderer) HTML(source string) (string, error) {
	if strings.TrimSpace(source) == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return r.policy.Sanitize(buf.String()), nil
}

// Excerpt returns the first paragraph of source as plain text, cut to at
// most n runes. Used on cards where markup is not rendered.
func (r *Renderer) Excerpt(source string, n int) string {
	out, err := r.HTML(source)
	if err != nil {
		return ""
	}
	text := strings.Join(strings.Fields(bluemonday.StrictPolicy().Sanitize(out)), " ")
	text = html.UnescapeString(text)

	runes := []rune(text)
	if n <= 0 || len(runes) <= n {
		return text
	}
	return strings.TrimSpace(string(runes[:n])) + "…"
}
