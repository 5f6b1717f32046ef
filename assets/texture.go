package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"raycast/model"
	"raycast/render"
)

func decodeImage(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return img, nil
}

// LoadTexture decodes a PNG, BMP or WebP image. A positive size resamples it
// to size x size.
func LoadTexture(fsys fs.FS, name string, size int) (*model.Texture, error) {
	img, err := decodeImage(fsys, name)
	if err != nil {
		return nil, err
	}
	return FromImage(img, size)
}

// LoadTextures loads names in slot order. The first failure aborts the load.
func LoadTextures(fsys fs.FS, names []string, size int) ([]*model.Texture, error) {
	textures := make([]*model.Texture, 0, len(names))
	for _, name := range names {
		tex, err := LoadTexture(fsys, name, size)
		if err != nil {
			return nil, err
		}
		textures = append(textures, tex)
	}
	log.Printf("loaded %d textures", len(textures))
	return textures, nil
}

// FromImage converts img to an ARGB texture, scaling with nearest neighbour
// sampling when size is positive and differs from the image size.
func FromImage(img image.Image, size int) (*model.Texture, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if size > 0 {
		w, h = size, size
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	} else {
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	}

	pixels := make([]uint32, w*h)
	for i := range pixels {
		p := dst.Pix[i*4 : i*4+4]
		pixels[i] = render.ARGB(p[0], p[1], p[2], p[3])
	}
	return model.NewTexture(w, h, pixels)
}
