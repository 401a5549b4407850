/*
Package preview serves a built site for local viewing.

The handler stack, outermost first:

	extra headers
	no-cache headers
	gzip compression
	404 for missing paths
	http.FileServer
*/
package preview

import (
	"io/fs"
	"net/http"

	"github.com/NYTimes/gziphandler"
)

// Handler returns an http.Handler serving the files in fsys with the given extra headers.
func Handler(fsys fs.FS, headers map[string]string) http.Handler {
	return HeaderHandler(
		NoCacheHandler(
			gziphandler.GzipHandler(
				ExistsHandler(
					http.FileServer(http.FS(fsys)),
					fsys,
				),
			),
		),
		headers)
}
