// Package web provides the embedded dashboard frontend.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// StaticFS returns the static assets as a filesystem rooted at the files
// themselves, for serving at /.
func StaticFS() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}
