package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTML(t *testing.T) {
	out := string(ToHTML([]byte("# Title\n\nSome *emphasis* here.\n")))
	assert.Contains(t, out, "<h1>Title</h1>")
	assert.Contains(t, out, "<em>emphasis</em>")
}

func TestToHTMLDeterministic(t *testing.T) {
	src := []byte("Text with a footnote[^1].\n\n[^1]: The note.\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")
	first := ToHTML(src)
	assert.Equal(t, string(first), string(ToHTML(src)))
	assert.True(t, strings.Contains(string(first), "<table>"))
}

func TestToHTMLEmpty(t *testing.T) {
	assert.Empty(t, strings.TrimSpace(string(ToHTML(nil))))
}
