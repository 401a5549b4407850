// Package markdown converts post bodies to HTML.
package markdown

import (
	"github.com/russross/blackfriday/v2"
)

// extensions used for every conversion.
const extensions = blackfriday.CommonExtensions | blackfriday.Footnotes

// ToHTML renders Markdown source into an HTML fragment.
func ToHTML(src []byte) []byte {
	return blackfriday.Run(src, blackfriday.WithExtensions(extensions))
}
