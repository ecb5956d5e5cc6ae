// Package assets embeds the landing page stylesheet, script and images.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed static
var files embed.FS

// Static returns the asset tree rooted at the static directory, so that
// "styles.css" and "images/check.svg" resolve directly.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
