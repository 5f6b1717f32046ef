// Package assets decodes textures and map images and encodes frame snapshots.
package assets

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed sides/*.png
var embedded embed.FS

// Default returns the embedded texture set.
func Default() fs.FS {
	return embedded
}

// Open returns os-backed assets for dir, or the embedded set when dir is empty.
func Open(dir string) fs.FS {
	if dir == "" {
		return Default()
	}
	return os.DirFS(dir)
}
