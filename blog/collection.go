package blog

import (
	"fmt"
	"iter"
	"sort"
	"time"
)

// DateError reports a post whose date cannot be used for ordering.
type DateError struct {
	Slug string
	Date string
	Err  error
}

func (e *DateError) Error() string {
	return fmt.Sprintf("post %q has invalid date %q (want YYYY-MM-DD): %s", e.Slug, e.Date, e.Err)
}

func (e *DateError) Unwrap() error {
	return e.Err
}

// DuplicateSlugError reports two posts that would be written to the same file.
type DuplicateSlugError struct {
	Slug    string
	Sources []string
}

func (e *DuplicateSlugError) Error() string {
	return fmt.Sprintf("slug %q is used by %q and %q", e.Slug, e.Sources[0], e.Sources[1])
}

// Navigation holds the neighbors of a post in a Collection.
type Navigation struct {
	Previous *Post // older post, nil for the oldest
	Next     *Post // newer post, nil for the newest
}

// Collection is the ordered set of posts for one build, newest first.
type Collection struct {
	posts []*Post
	index map[*Post]int
}

// NewCollection orders posts by date, newest first.
// Posts sharing a date keep the order they were given in.
//
// Every post must have a valid YYYY-MM-DD date; otherwise a *DateError is returned and
// nothing is built. Slugs must be unique, or a *DuplicateSlugError is returned.
func NewCollection(posts []*Post) (*Collection, error) {
	type dated struct {
		post *Post
		t    time.Time
	}
	var (
		d     = make([]dated, len(posts))
		slugs = make(map[string]*Post, len(posts))
	)
	for i, p := range posts {
		t, err := time.Parse(DateLayout, p.Date)
		if err != nil {
			return nil, &DateError{Slug: p.Slug, Date: p.Date, Err: err}
		}
		if other, ok := slugs[p.Slug]; ok {
			return nil, &DuplicateSlugError{Slug: p.Slug, Sources: []string{other.Source, p.Source}}
		}
		slugs[p.Slug] = p
		d[i] = dated{post: p, t: t}
	}
	sort.SliceStable(d, func(i, j int) bool { return d[j].t.Before(d[i].t) })

	c := Collection{
		posts: make([]*Post, len(d)),
		index: make(map[*Post]int, len(d)),
	}
	for i := range d {
		c.posts[i] = d[i].post
		c.index[d[i].post] = i
	}
	return &c, nil
}

// Len returns the number of posts.
func (c *Collection) Len() int {
	return len(c.posts)
}

// At returns the post at index i.
func (c *Collection) At(i int) *Post {
	return c.posts[i]
}

// Posts returns the posts in order. The slice is a copy.
func (c *Collection) Posts() []*Post {
	return append([]*Post(nil), c.posts...)
}

// All iterates over the posts in order with their index.
func (c *Collection) All() iter.Seq2[int, *Post] {
	return func(yield func(int, *Post) bool) {
		for i, p := range c.posts {
			if !yield(i, p) {
				return
			}
		}
	}
}

// IndexOf returns the position of p, or -1 if p is not in the collection.
func (c *Collection) IndexOf(p *Post) int {
	if i, ok := c.index[p]; ok {
		return i
	}
	return -1
}

// PreviousOf returns the post just older than p, or nil.
func (c *Collection) PreviousOf(p *Post) *Post {
	i := c.IndexOf(p)
	if i < 0 || i+1 >= len(c.posts) {
		return nil
	}
	return c.posts[i+1]
}

// NextOf returns the post just newer than p, or nil.
func (c *Collection) NextOf(p *Post) *Post {
	i := c.IndexOf(p)
	if i <= 0 {
		return nil
	}
	return c.posts[i-1]
}

// NavigationOf returns both neighbors of p.
func (c *Collection) NavigationOf(p *Post) Navigation {
	return Navigation{Previous: c.PreviousOf(p), Next: c.NextOf(p)}
}

// slice returns posts [lo, hi) clipped to the collection bounds.
func (c *Collection) slice(lo, hi int) []*Post {
	if lo > len(c.posts) {
		lo = len(c.posts)
	}
	if hi > len(c.posts) {
		hi = len(c.posts)
	}
	return c.posts[lo:hi:hi]
}
