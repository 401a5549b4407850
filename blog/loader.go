package blog

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/ancientlore/scribe/frontmatter"
)

// Skip records a source file that did not become a post.
type Skip struct {
	Name   string
	Reason string
}

// String formats the skip for diagnostics.
func (s Skip) String() string {
	return s.Name + ": " + s.Reason
}

// LoadResult is what a Loader found in a content folder.
type LoadResult struct {
	Posts   []*Post // in file name order
	Skipped []Skip
}

// Loader turns Markdown files into posts.
type Loader struct {
	// Markdown converts a post body to HTML.
	Markdown func([]byte) []byte
}

// Load reads every top-level ".md" file in fsys.
//
// Files without a header are skipped and reported in the result. An error is returned when
// the folder cannot be listed (wrapping fs.ErrNotExist if it is missing) or a file cannot be read.
func (l *Loader) Load(fsys fs.FS) (*LoadResult, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	var result LoadResult
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Ext) {
			continue
		}
		p, skip, err := l.loadFile(fsys, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("Load: %w", err)
		}
		if p == nil {
			result.Skipped = append(result.Skipped, skip)
			continue
		}
		result.Posts = append(result.Posts, p)
	}
	return &result, nil
}

// loadFile reads a single source file, returning either a post or the reason it was skipped.
func (l *Loader) loadFile(fsys fs.FS, name string) (*Post, Skip, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, Skip{}, err
	}
	meta, body, ok := frontmatter.Parse(string(b))
	if !ok {
		return nil, Skip{Name: name, Reason: "no front matter found"}, nil
	}
	var html []byte
	if l.Markdown != nil {
		html = l.Markdown([]byte(body))
	} else {
		html = []byte(body)
	}
	return NewPost(name, meta, html), Skip{}, nil
}
