package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMarkdown_Empty(t *testing.T) {
	md := NewMarkdown("")
	require.NotNil(t, md)
	require.Equal(t, "", md.Source)
	require.Equal(t, "", strings.TrimSpace(string(md.Render())))
}

func TestMarkdown_Render_Sanitizes(t *testing.T) {
	md := NewMarkdown("hello <script>alert(1)</script> **world**")

	html := string(md.Render())
	require.NotContains(t, strings.ToLower(html), "<script")
	require.Contains(t, html, "<strong>world</strong>")

	// caching path
	html2 := string(md.Render())
	require.Equal(t, html, html2)
}

func TestMarkdown_Render_Links(t *testing.T) {
	md := NewMarkdown("Data from [Cricinfo](https://www.espncricinfo.com/).")

	html := string(md.Render())
	require.Contains(t, html, `href="https://www.espncricinfo.com/"`)
	require.Contains(t, html, `rel="nofollow`)
}

func TestMarkdown_PlainText(t *testing.T) {
	md := NewMarkdown("hello **world**\n\nScores from [Cricinfo](https://www.espncricinfo.com/) & friends")

	text := md.PlainText()
	require.Equal(t, "hello world Scores from Cricinfo & friends", text)
	require.NotContains(t, text, "<")
	require.NotContains(t, text, "&amp;")

	require.Equal(t, text, md.PlainText())
	require.Equal(t, "", NewMarkdown("").PlainText())
}
