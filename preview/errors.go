package preview

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// NotFoundPage is served for missing paths when the site has one.
const NotFoundPage = "404.html"

// ExistsHandler checks that the requested path exists in fsys before calling h,
// answering with a 404 otherwise.
func ExistsHandler(h http.Handler, fsys fs.FS) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := fs.Stat(fsys, fsPath(r.URL.Path))
		if errors.Is(err, fs.ErrNotExist) {
			notFound(w, fsys)
			return
		} else if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// notFound writes the site's 404 page, or plain text if it has none.
func notFound(w http.ResponseWriter, fsys fs.FS) {
	b, err := fs.ReadFile(fsys, NotFoundPage)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write(b)
}

// fsPath maps a URL path to a name usable with fs.FS.
func fsPath(p string) string {
	p = strings.TrimPrefix(path.Clean("/"+p), "/")
	if p == "" {
		return "."
	}
	return p
}
