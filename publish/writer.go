// Package publish writes rendered documents into the output folder.
package publish

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ancientlore/scribe/render"
)

// Writer stores documents below a root folder, overwriting existing files.
// A failure part way through leaves whatever was already written; rerun the build.
type Writer struct {
	root  string
	count int
}

// NewWriter creates root if needed and returns a Writer for it.
func NewWriter(root string) (*Writer, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("NewWriter: %w", err)
	}
	return &Writer{root: root}, nil
}

// Root returns the output folder.
func (w *Writer) Root() string {
	return w.root
}

// Count returns the number of documents written so far.
func (w *Writer) Count() int {
	return w.count
}

// Write stores doc at its path, creating intermediate folders.
func (w *Writer) Write(doc render.Document) error {
	name, err := w.resolve(doc.Path)
	if err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	if err := os.WriteFile(name, doc.Body, 0o644); err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	w.count++
	return nil
}

// resolve maps a slash-separated document path to a file below the root.
func (w *Writer) resolve(p string) (string, error) {
	clean := path.Clean("/" + p)
	if p == "" || clean == "/" || strings.Contains(p, "\\") || clean != "/"+p {
		return "", fmt.Errorf("invalid document path %q", p)
	}
	return filepath.Join(w.root, filepath.FromSlash(strings.TrimPrefix(clean, "/"))), nil
}
