/*
Package blog holds the posts of a site and the ordering, navigation, and pagination
rules applied to them during a build.

Posts are loaded from a flat folder of Markdown files (see Loader), ordered newest first
(see NewCollection), and split into fixed-size pages (see Paginator). A Collection is built
once per run and never changes afterwards; pages and navigation only point into it.
*/
package blog

import (
	"html/template"
	"path"
	"strings"

	"github.com/ancientlore/scribe/frontmatter"
)

// Defaults applied when a header leaves out a field.
const (
	DefaultTitle = "Untitled" // used when "title" is absent
	DefaultDate  = ""         // used when "date" is absent; such a post fails to sort
)

// Ext is the file extension of post sources.
const Ext = ".md"

// DateLayout is the layout every post date must follow.
const DateLayout = "2006-01-02"

// Post is one published article.
type Post struct {
	Title       string           // Title of the post
	Date        string           // Publish date as written in the header (YYYY-MM-DD)
	Slug        string           // Source file name without the extension
	ContentHTML template.HTML    // Rendered body
	Meta        frontmatter.Meta // Every header field, including ones we don't use
	Source      string           // Source file name
}

// NewPost builds a post from a parsed header, applying the field defaults.
func NewPost(source string, meta frontmatter.Meta, html []byte) *Post {
	return &Post{
		Title:       meta.Get("title", DefaultTitle),
		Date:        meta.Get("date", DefaultDate),
		Slug:        SlugOf(source),
		ContentHTML: template.HTML(html),
		Meta:        meta,
		Source:      source,
	}
}

// SlugOf derives a slug from a source file name.
func SlugOf(name string) string {
	_, name = path.Split(name)
	return strings.TrimSuffix(name, Ext)
}
