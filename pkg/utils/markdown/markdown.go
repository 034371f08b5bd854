package markdown

import (
	"bytes"
	"html"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

// Markdown wraps markdown source and renders it to sanitized HTML on demand.
type Markdown struct {
	// Source is the markdown source text.
	Source string
	// renderedHTML caches the HTML rendered from Source.
	renderedHTML *template.HTML
	// renderedText caches the plain text rendered from Source.
	renderedText *string
}

var (
	bfRenderer = blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.Safelink | blackfriday.NofollowLinks | blackfriday.HrefTargetBlank | blackfriday.Smartypants | blackfriday.SmartypantsFractions | blackfriday.SmartypantsDashes,
	})
	bfExtensions = blackfriday.NoIntraEmphasis | blackfriday.Tables | blackfriday.Autolink | blackfriday.Strikethrough | blackfriday.SpaceHeadings | blackfriday.NoEmptyLineBeforeBlock
	policy       = bluemonday.UGCPolicy()
)

func NewMarkdown(source string) *Markdown {
	return &Markdown{Source: source}
}

func (m *Markdown) run() []byte {
	return blackfriday.Run([]byte(m.Source),
		blackfriday.WithRenderer(bfRenderer),
		blackfriday.WithExtensions(bfExtensions),
	)
}

// Render converts the Markdown Source into sanitized HTML.
func (m *Markdown) Render() template.HTML {
	if m.renderedHTML != nil {
		return *m.renderedHTML
	}
	if m.Source == "" {
		empty := template.HTML("")
		m.renderedHTML = &empty
		return empty
	}

	safe := policy.SanitizeBytes(m.run())
	html := template.HTML(bytes.TrimSpace(safe))
	m.renderedHTML = &html
	return html
}

// PlainText strips every tag from the rendered markdown and collapses
// whitespace. The result is unescaped text, suitable for attribute values
// such as a meta description.
func (m *Markdown) PlainText() string {
	if m.renderedText != nil {
		return *m.renderedText
	}

	safe := bluemonday.StrictPolicy().SanitizeBytes(m.run())
	text := strings.Join(strings.Fields(html.UnescapeString(string(safe))), " ")
	m.renderedText = &text
	return text
}
