package blog

import (
	"errors"
	"iter"
)

// ErrPageSize is returned for a page size below one.
var ErrPageSize = errors.New("page size must be at least 1")

// Page is a window of posts shown on one listing.
type Page struct {
	Number     int     // 1-based page number
	Posts      []*Post // at most the page size; the last page may be shorter
	TotalPages int     // always at least 1
}

// HasPrevious reports whether a newer page exists.
func (p Page) HasPrevious() bool {
	return p.Number > 1
}

// HasNext reports whether an older page exists.
func (p Page) HasNext() bool {
	return p.Number < p.TotalPages
}

// Previous returns the number of the newer page, or 0.
func (p Page) Previous() int {
	if !p.HasPrevious() {
		return 0
	}
	return p.Number - 1
}

// Next returns the number of the older page, or 0.
func (p Page) Next() int {
	if !p.HasNext() {
		return 0
	}
	return p.Number + 1
}

// Paginator splits a Collection into pages of a fixed size.
type Paginator struct {
	c    *Collection
	size int
}

// NewPaginator returns a Paginator over c with size posts per page.
func NewPaginator(c *Collection, size int) (*Paginator, error) {
	if size < 1 {
		return nil, ErrPageSize
	}
	return &Paginator{c: c, size: size}, nil
}

// TotalPages returns the number of pages. An empty collection still has one page
// so that the index always renders.
func (pg *Paginator) TotalPages() int {
	n := (pg.c.Len() + pg.size - 1) / pg.size
	return max(n, 1)
}

// Page returns page k, counting from 1. Pages outside 1..TotalPages are empty.
func (pg *Paginator) Page(k int) Page {
	p := Page{Number: k, TotalPages: pg.TotalPages()}
	if k < 1 {
		return p
	}
	p.Posts = pg.c.slice((k-1)*pg.size, k*pg.size)
	return p
}

// Pages yields every page in order.
func (pg *Paginator) Pages() iter.Seq[Page] {
	return func(yield func(Page) bool) {
		total := pg.TotalPages()
		for k := 1; k <= total; k++ {
			if !yield(pg.Page(k)) {
				return
			}
		}
	}
}
