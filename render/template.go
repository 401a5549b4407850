package render

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path"
	"strings"
)

// Names of the templates every template set must define.
const (
	IndexTemplate = "index.html"
	PostTemplate  = "post.html"
)

//go:embed templates/*.html
var defaultTemplates embed.FS

// TemplateError reports a template that is missing from the template set.
type TemplateError struct {
	Name string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %q not found", e.Name)
}

// funcMap returns the helpers available to templates. URLs are built against site.
func funcMap(site Site) template.FuncMap {
	return template.FuncMap{
		"join":      path.Join,
		"trimspace": strings.TrimSpace,
		"postURL":   site.PostURL,
		"pageURL":   site.PageURL,
	}
}

// LoadTemplates parses the "*.html" files in dir, or the built-in templates when dir
// does not exist. It returns true if custom templates were used.
func LoadTemplates(dir string, site Site) (*template.Template, bool, error) {
	fi, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !fi.IsDir()) {
		tpl, err := ParseTemplates(defaultTemplates, "templates/*.html", site)
		if err != nil {
			return nil, false, fmt.Errorf("LoadTemplates: %w", err)
		}
		return tpl, false, nil
	} else if err != nil {
		return nil, false, fmt.Errorf("LoadTemplates: %w", err)
	}
	tpl, err := ParseTemplates(os.DirFS(dir), "*.html", site)
	if err != nil {
		return nil, true, fmt.Errorf("LoadTemplates: %w", err)
	}
	return tpl, true, nil
}

// ParseTemplates parses the templates in fsys matching pattern and checks that the
// index and post templates are present.
func ParseTemplates(fsys fs.FS, pattern string, site Site) (*template.Template, error) {
	tpl, err := template.New("scribe").Funcs(funcMap(site)).ParseFS(fsys, pattern)
	if err != nil {
		return nil, err
	}
	for _, name := range []string{IndexTemplate, PostTemplate} {
		if tpl.Lookup(name) == nil {
			return nil, &TemplateError{Name: name}
		}
	}
	return tpl, nil
}
