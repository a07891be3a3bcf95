// Package web embeds the HTML pages and the public static assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed pages/*.html
var pageFiles embed.FS

//go:embed static
var staticFiles embed.FS

// Pages returns the page filesystem rooted at pages/.
func Pages() fs.FS {
	return mustSub(pageFiles, "pages")
}

// Static returns the asset filesystem rooted at static/.
func Static() fs.FS {
	return mustSub(staticFiles, "static")
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic("web: sub filesystem " + dir + ": " + err.Error())
	}
	return sub
}
