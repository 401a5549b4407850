/*
Package render turns pages and posts into HTML documents and decides where they live.

Output layout:

	index.html              first page of the listing
	page/<n>/index.html     page n of the listing, n > 1
	posts/<slug>.html       one document per post

Templates come from a folder of "*.html" files or from the built-in set. A template set
must define "index.html" and "post.html".

The "index.html" template receives IndexData and "post.html" receives PostData. Both may use
these helpers:

	join(parts ...string) string
		The same as path.Join
	trimspace(string) string
		The same as strings.TrimSpace
	postURL(slug string) string
		Absolute link to a post
	pageURL(n int) string
		Absolute link to page n of the listing
*/
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/ancientlore/scribe/blog"
)

// Site holds settings shared by every document. It is built once per run.
type Site struct {
	BaseURL string // prefix for absolute links, may be empty
	Title   string // site title
}

// base returns the base URL without a trailing slash.
func (s Site) base() string {
	return strings.TrimSuffix(s.BaseURL, "/")
}

// PostURL returns the link to the post with the given slug.
func (s Site) PostURL(slug string) string {
	return s.base() + "/" + PostPath(slug)
}

// PageURL returns the link to listing page n.
func (s Site) PageURL(n int) string {
	if n <= 1 {
		return s.base() + "/"
	}
	return s.base() + "/page/" + strconv.Itoa(n) + "/"
}

// IndexPath returns the output path of listing page n.
func IndexPath(n int) string {
	if n <= 1 {
		return "index.html"
	}
	return "page/" + strconv.Itoa(n) + "/index.html"
}

// PostPath returns the output path of the post with the given slug.
func PostPath(slug string) string {
	return "posts/" + slug + ".html"
}

// Document is a rendered file and where it goes, relative to the output folder.
type Document struct {
	Path string
	Body []byte
}

// PostLink is a post as shown in listings and navigation.
type PostLink struct {
	Title string
	Date  string
	Slug  string
	URL   string
}

// IndexData is passed to the "index.html" template.
type IndexData struct {
	Site    Site
	Page    blog.Page
	Posts   []PostLink
	PrevURL string // newer page, empty on the first page
	NextURL string // older page, empty on the last page
}

// PostData is passed to the "post.html" template.
type PostData struct {
	Site     Site
	Post     *blog.Post
	Previous *PostLink // older post
	Next     *PostLink // newer post
}

// Renderer executes templates for pages and posts.
type Renderer struct {
	site Site
	tpl  *template.Template
}

// New returns a Renderer using tpl. The templates must have been parsed with the
// same site, see LoadTemplates.
func New(site Site, tpl *template.Template) *Renderer {
	return &Renderer{site: site, tpl: tpl}
}

// Site returns the site settings.
func (r *Renderer) Site() Site {
	return r.site
}

// link returns the listing entry for p, or nil.
func (r *Renderer) link(p *blog.Post) *PostLink {
	if p == nil {
		return nil
	}
	return &PostLink{Title: p.Title, Date: p.Date, Slug: p.Slug, URL: r.site.PostURL(p.Slug)}
}

// RenderIndex renders listing page p.
func (r *Renderer) RenderIndex(p blog.Page) (Document, error) {
	d := IndexData{
		Site:  r.site,
		Page:  p,
		Posts: make([]PostLink, 0, len(p.Posts)),
	}
	for _, post := range p.Posts {
		d.Posts = append(d.Posts, *r.link(post))
	}
	if p.HasPrevious() {
		d.PrevURL = r.site.PageURL(p.Previous())
	}
	if p.HasNext() {
		d.NextURL = r.site.PageURL(p.Next())
	}
	b, err := r.execute(IndexTemplate, d)
	if err != nil {
		return Document{}, fmt.Errorf("RenderIndex: page %d: %w", p.Number, err)
	}
	return Document{Path: IndexPath(p.Number), Body: b}, nil
}

// RenderPost renders post p with its neighbors.
func (r *Renderer) RenderPost(p *blog.Post, nav blog.Navigation) (Document, error) {
	d := PostData{
		Site:     r.site,
		Post:     p,
		Previous: r.link(nav.Previous),
		Next:     r.link(nav.Next),
	}
	b, err := r.execute(PostTemplate, d)
	if err != nil {
		return Document{}, fmt.Errorf("RenderPost: %s: %w", p.Slug, err)
	}
	return Document{Path: PostPath(p.Slug), Body: b}, nil
}

func (r *Renderer) execute(name string, data any) ([]byte, error) {
	t := r.tpl.Lookup(name)
	if t == nil {
		return nil, &TemplateError{Name: name}
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
