package build

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ancientlore/scribe/blog"
	"github.com/ancientlore/scribe/config"
)

type recorder struct {
	lines []string
}

func (r *recorder) add(level, format string, args ...any) {
	r.lines = append(r.lines, level+" "+fmt.Sprintf(format, args...))
}

func (r *recorder) Debugf(format string, args ...any) { r.add("debug", format, args...) }
func (r *recorder) Infof(format string, args ...any)  { r.add("info", format, args...) }
func (r *recorder) Warnf(format string, args ...any)  { r.add("warn", format, args...) }
func (r *recorder) Errorf(format string, args ...any) { r.add("error", format, args...) }

func (r *recorder) count(level string) int {
	n := 0
	for _, l := range r.lines {
		if strings.HasPrefix(l, level+" ") {
			n++
		}
	}
	return n
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := config.Defaults()
	cfg.ContentDir = filepath.Join(root, "content")
	cfg.OutputDir = filepath.Join(root, "public")
	cfg.TemplateDir = filepath.Join(root, "templates")
	cfg.BaseURL = "https://example.com"
	require.NoError(t, os.MkdirAll(cfg.ContentDir, 0o755))
	return cfg
}

func writePost(t *testing.T, dir, name, title, date string) {
	t.Helper()
	doc := fmt.Sprintf("---\ntitle: %s\ndate: %s\n---\n\nHello from *%s*.\n", title, date, title)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(doc), 0o644))
}

// files lists every file below root, slash separated.
func files(t *testing.T, root string) []string {
	t.Helper()
	var names []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			rel, err := filepath.Rel(root, p)
			if err != nil {
				return err
			}
			names = append(names, filepath.ToSlash(rel))
		}
		return nil
	})
	require.NoError(t, err)
	sort.Strings(names)
	return names
}

func read(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(name)
	require.NoError(t, err)
	return string(b)
}

func TestRunSevenPosts(t *testing.T) {
	cfg := testConfig(t)
	for i := 1; i <= 7; i++ {
		writePost(t, cfg.ContentDir, fmt.Sprintf("p%d.md", i), fmt.Sprintf("Post %d", i), fmt.Sprintf("2024-01-%02d", i))
	}
	log := &recorder{}
	sum, err := Run(cfg, log)
	require.NoError(t, err)
	assert.Equal(t, &Summary{Posts: 7, Pages: 2, Files: 9}, sum)

	assert.Equal(t, []string{
		"index.html",
		"page/2/index.html",
		"posts/p1.html", "posts/p2.html", "posts/p3.html", "posts/p4.html",
		"posts/p5.html", "posts/p6.html", "posts/p7.html",
	}, files(t, cfg.OutputDir))

	index := read(t, filepath.Join(cfg.OutputDir, "index.html"))
	for i := 3; i <= 7; i++ {
		assert.Contains(t, index, fmt.Sprintf("posts/p%d.html", i))
	}
	assert.NotContains(t, index, "posts/p2.html")
	assert.Less(t, strings.Index(index, "p7.html"), strings.Index(index, "p3.html"))

	page2 := read(t, filepath.Join(cfg.OutputDir, "page", "2", "index.html"))
	assert.Contains(t, page2, "posts/p2.html")
	assert.Contains(t, page2, "posts/p1.html")

	p4 := read(t, filepath.Join(cfg.OutputDir, "posts", "p4.html"))
	assert.Contains(t, p4, "<em>Post 4</em>")
	assert.Contains(t, p4, `href="https://example.com/posts/p5.html" rel="next"`)
	assert.Contains(t, p4, `href="https://example.com/posts/p3.html" rel="prev"`)

	assert.Zero(t, log.count("warn"))
	assert.Contains(t, log.lines, "info Found and processed 7 posts")
}

func TestRunEmptyContent(t *testing.T) {
	cfg := testConfig(t)
	log := &recorder{}
	sum, err := Run(cfg, log)
	require.NoError(t, err)
	assert.Equal(t, &Summary{Pages: 1, Files: 1}, sum)
	assert.Equal(t, []string{"index.html"}, files(t, cfg.OutputDir))
	assert.Contains(t, read(t, filepath.Join(cfg.OutputDir, "index.html")), "No posts yet.")
	assert.Contains(t, log.lines, "info No posts found to render")
}

func TestRunSkipsFilesWithoutHeader(t *testing.T) {
	cfg := testConfig(t)
	writePost(t, cfg.ContentDir, "a.md", "A", "2024-02-01")
	writePost(t, cfg.ContentDir, "b.md", "B", "2024-02-02")
	require.NoError(t, os.WriteFile(filepath.Join(cfg.ContentDir, "notes.md"), []byte("just text\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.ContentDir, "readme.txt"), []byte("---\ntitle: x\n---\n"), 0o644))

	log := &recorder{}
	sum, err := Run(cfg, log)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Posts)
	assert.Equal(t, 1, sum.Skipped)
	assert.Equal(t, 1, log.count("warn"))
	assert.Equal(t, []string{"index.html", "posts/a.html", "posts/b.html"}, files(t, cfg.OutputDir))
}

func TestRunIdempotent(t *testing.T) {
	cfg := testConfig(t)
	writePost(t, cfg.ContentDir, "a.md", "A", "2024-02-01")
	writePost(t, cfg.ContentDir, "b.md", "B", "2024-02-02")

	_, err := Run(cfg, nil)
	require.NoError(t, err)
	first := map[string]string{}
	for _, name := range files(t, cfg.OutputDir) {
		first[name] = read(t, filepath.Join(cfg.OutputDir, name))
	}

	_, err = Run(cfg, nil)
	require.NoError(t, err)
	second := map[string]string{}
	for _, name := range files(t, cfg.OutputDir) {
		second[name] = read(t, filepath.Join(cfg.OutputDir, name))
	}
	assert.Equal(t, first, second)
}

func TestRunCustomTemplates(t *testing.T) {
	cfg := testConfig(t)
	writePost(t, cfg.ContentDir, "a.md", "A", "2024-02-01")
	require.NoError(t, os.MkdirAll(cfg.TemplateDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.TemplateDir, "index.html"), []byte(`{{range .Posts}}{{.Slug}};{{end}}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.TemplateDir, "post.html"), []byte(`{{.Post.Title}}`), 0o644))

	_, err := Run(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "a;", read(t, filepath.Join(cfg.OutputDir, "index.html")))
	assert.Equal(t, "A", read(t, filepath.Join(cfg.OutputDir, "posts", "a.html")))
}

func TestRunBadDate(t *testing.T) {
	cfg := testConfig(t)
	writePost(t, cfg.ContentDir, "a.md", "A", "2024-02-01")
	writePost(t, cfg.ContentDir, "b.md", "B", "yesterday")
	_, err := Run(cfg, nil)
	var de *blog.DateError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "b", de.Slug)
}

func TestRunMissingContent(t *testing.T) {
	cfg := testConfig(t)
	cfg.ContentDir = filepath.Join(t.TempDir(), "absent")

	log := &recorder{}
	sum, err := Run(cfg, log)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Posts)
	assert.Equal(t, 1, log.count("warn"))
	assert.Equal(t, []string{"index.html"}, files(t, cfg.OutputDir))

	cfg.RequireContent = true
	_, err = Run(cfg, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.PageSize = 0
	_, err := Run(cfg, nil)
	assert.Error(t, err)
}
