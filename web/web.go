// Package web embeds the HTML templates and static assets.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed templates static
var files embed.FS

// Templates returns the template tree rooted at templates/.
func Templates() http.FileSystem {
	return sub("templates")
}

// Static returns the static asset tree rooted at static/.
func Static() http.FileSystem {
	return sub("static")
}

func sub(dir string) http.FileSystem {
	f, err := fs.Sub(files, dir)
	if err != nil {
		// dir is a literal embedded above
		panic(err)
	}

	return http.FS(f)
}
