// Package build runs one complete, sequential build of a site.
package build

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ancientlore/scribe/blog"
	"github.com/ancientlore/scribe/config"
	"github.com/ancientlore/scribe/logging"
	"github.com/ancientlore/scribe/markdown"
	"github.com/ancientlore/scribe/publish"
	"github.com/ancientlore/scribe/render"
)

// Summary describes what a build produced.
type Summary struct {
	Posts   int // posts published
	Skipped int // source files without a header
	Pages   int // listing pages
	Files   int // files written
}

// Run loads, orders, paginates, renders, and writes the whole site described by cfg.
//
// Files without a header are skipped with a warning. A missing content folder is a warning
// unless cfg.RequireContent is set. Everything else that goes wrong stops the build.
func Run(cfg config.Config, log logging.Logger) (*Summary, error) {
	if log == nil {
		log = logging.Discard
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	var sum Summary
	log.Infof("Starting site build")

	posts, err := load(cfg, log, &sum)
	if err != nil {
		return nil, err
	}

	coll, err := blog.NewCollection(posts)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if coll.Len() > 0 {
		log.Infof("Found and processed %d posts", coll.Len())
	} else {
		log.Infof("No posts found to render")
	}
	sum.Posts = coll.Len()

	site := render.Site{BaseURL: cfg.BaseURL, Title: cfg.SiteTitle}
	tpl, custom, err := render.LoadTemplates(cfg.TemplateDir, site)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if custom {
		log.Infof("Loaded templates from %q", cfg.TemplateDir)
	} else {
		log.Debugf("Template folder %q not found; using built-in templates", cfg.TemplateDir)
	}
	r := render.New(site, tpl)

	w, err := publish.NewWriter(cfg.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	pg, err := blog.NewPaginator(coll, cfg.PageSize)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	for page := range pg.Pages() {
		doc, err := r.RenderIndex(page)
		if err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
		if err = w.Write(doc); err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
		log.Debugf("Wrote %s", doc.Path)
		sum.Pages++
	}
	log.Infof("Rendered %d index pages", sum.Pages)

	for _, p := range coll.All() {
		doc, err := r.RenderPost(p, coll.NavigationOf(p))
		if err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
		if err = w.Write(doc); err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
		log.Debugf("Wrote %s", doc.Path)
	}
	if coll.Len() > 0 {
		log.Infof("All %d posts rendered", coll.Len())
	}

	sum.Files = w.Count()
	log.Infof("Site build complete: %d files written to %q", sum.Files, w.Root())
	return &sum, nil
}

// load reads the posts, applying the missing-folder policy and reporting skipped files.
func load(cfg config.Config, log logging.Logger, sum *Summary) ([]*blog.Post, error) {
	loader := blog.Loader{Markdown: markdown.ToHTML}
	result, err := loader.Load(os.DirFS(cfg.ContentDir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !cfg.RequireContent {
			log.Warnf("Content folder %q not found. No posts to build.", cfg.ContentDir)
			return nil, nil
		}
		return nil, fmt.Errorf("Run: content folder %q: %w", cfg.ContentDir, err)
	}
	for _, s := range result.Skipped {
		log.Warnf("Skipping %s", s)
	}
	sum.Skipped = len(result.Skipped)
	return result.Posts, nil
}
