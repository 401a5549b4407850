// Package scaffold creates new post source files.
package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/ancientlore/scribe/blog"
	"github.com/ancientlore/scribe/frontmatter"
)

// Post is the input for a new source file.
type Post struct {
	Title string
	Date  string // YYYY-MM-DD, today if empty
	Body  string // Markdown
}

// ErrNoTitle is returned when a post has no title.
var ErrNoTitle = errors.New("title is required")

var now = time.Now

// NewPost writes p into dir as a new Markdown file and returns its path.
// An existing file is never replaced; a numeric suffix is added instead.
func NewPost(dir string, p Post) (string, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return "", fmt.Errorf("NewPost: %w", ErrNoTitle)
	}
	date := strings.TrimSpace(p.Date)
	if date == "" {
		date = now().Format(blog.DateLayout)
	} else if _, err := time.Parse(blog.DateLayout, date); err != nil {
		return "", fmt.Errorf("NewPost: invalid date %q: %w", date, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("NewPost: %w", err)
	}

	meta := frontmatter.Meta{"title": title, "date": date}
	doc := frontmatter.Format(meta, []string{"title", "date"}, "\n"+strings.TrimLeft(p.Body, "\r\n"))

	base := date + "-" + Slugify(title)
	for {
		name, err := UniqueName(dir, base)
		if err != nil {
			return "", fmt.Errorf("NewPost: %w", err)
		}
		f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			// lost a race with another writer
			continue
		}
		if err != nil {
			return "", fmt.Errorf("NewPost: %w", err)
		}
		_, err = f.WriteString(doc)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return "", fmt.Errorf("NewPost: %w", err)
		}
		return name, nil
	}
}

// UniqueName returns the first of dir/base.md, dir/base-1.md, dir/base-2.md, ... that does not exist.
func UniqueName(dir, base string) (string, error) {
	for i := 0; ; i++ {
		name := base
		if i > 0 {
			name += "-" + strconv.Itoa(i)
		}
		p := filepath.Join(dir, name+blog.Ext)
		_, err := os.Lstat(p)
		if errors.Is(err, fs.ErrNotExist) {
			return p, nil
		}
		if err != nil {
			return "", err
		}
	}
}

// Slugify reduces s to lowercase ASCII letters, digits, and single hyphens.
// Accents are dropped, so "Crème Brûlée" becomes "creme-brulee". The result is never empty.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(t, s); err == nil {
		s = out
	}
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if dash && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	if sb.Len() == 0 {
		return "post"
	}
	return sb.String()
}
