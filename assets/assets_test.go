package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"golang.org/x/image/bmp"

	"raycast/model"
	"raycast/render"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestLoadDefaultTextures(t *testing.T) {
	names := []string{"sides/brick.png", "sides/wood.png", "sides/eagle.png"}
	textures, err := LoadTextures(Default(), names, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(textures) != 3 {
		t.Fatalf("expected 3 textures, got %d", len(textures))
	}
	for i, tex := range textures {
		if !tex.Valid() || tex.Width != 64 || tex.Height != 64 {
			t.Errorf("texture %d: expected 64x64, got %dx%d", i, tex.Width, tex.Height)
		}
	}
}

func TestLoadTextureResamples(t *testing.T) {
	tex, err := LoadTexture(Default(), "sides/brick.png", 16)
	if err != nil {
		t.Fatal(err)
	}
	if tex.Width != 16 || tex.Height != 16 || len(tex.Pixels) != 256 {
		t.Errorf("expected 16x16, got %dx%d", tex.Width, tex.Height)
	}
}

func TestLoadTextureBMP(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 0, color.RGBA{0x12, 0x34, 0x56, 0xFF})
	img.Set(0, 0, color.RGBA{0, 0, 0, 0xFF})
	img.Set(0, 1, color.RGBA{0, 0, 0, 0xFF})
	img.Set(1, 1, color.RGBA{0, 0, 0, 0xFF})

	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	fsys := fstest.MapFS{"wall.bmp": {Data: buf.Bytes()}}

	tex, err := LoadTexture(fsys, "wall.bmp", 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := tex.At(1, 0); got != 0xFF123456 {
		t.Errorf("expected 0xff123456, got %#x", got)
	}
}

func TestLoadTextureErrors(t *testing.T) {
	fsys := fstest.MapFS{"bad.png": {Data: []byte("not an image")}}

	if _, err := LoadTexture(fsys, "bad.png", 0); err == nil {
		t.Error("expected decode error")
	}
	if _, err := LoadTextures(fsys, []string{"missing.png"}, 0); err == nil {
		t.Error("expected open error")
	}
}

func TestLoadGrid(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	colors := [][]color.RGBA{
		{{0, 0, 0, 255}, {255, 255, 255, 255}, {255, 0, 0, 255}},
		{{0, 255, 0, 255}, {0, 0, 255, 255}, {255, 255, 0, 255}},
	}
	for y, row := range colors {
		for x, c := range row {
			img.Set(x, y, c)
		}
	}
	fsys := fstest.MapFS{"map.png": {Data: encodePNG(t, img)}}

	g, err := LoadGrid(fsys, "map.png")
	if err != nil {
		t.Fatal(err)
	}
	want := [][]int{{1, 0, 2}, {3, 4, 5}}
	for y, row := range want {
		for x, tile := range row {
			if got := g.At(x, y); got != tile {
				t.Errorf("(%d,%d): expected %d, got %d", x, y, tile, got)
			}
		}
	}
}

func TestLoadGridUnknownColour(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{10, 20, 30, 255})
	fsys := fstest.MapFS{"map.png": {Data: encodePNG(t, img)}}

	_, err := LoadGrid(fsys, "map.png")
	if !errors.Is(err, model.ErrInvalidGrid) {
		t.Errorf("expected ErrInvalidGrid, got %v", err)
	}
}

func TestEncodeFrame(t *testing.T) {
	f := render.NewFrame(3, 2)
	for i := range f.Pix {
		f.Pix[i] = 0xFF000000 | uint32(i*40)<<8
	}

	for _, format := range []string{FormatPNG, FormatBMP} {
		var buf bytes.Buffer
		if err := EncodeFrame(&buf, f, format); err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		img, _, err := image.Decode(&buf)
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		tex, err := FromImage(img, 0)
		if err != nil {
			t.Fatal(err)
		}
		for i, want := range f.Pix {
			if tex.Pixels[i] != want {
				t.Errorf("%s pixel %d: expected %#x, got %#x", format, i, want, tex.Pixels[i])
			}
		}
	}

	if err := EncodeFrame(&bytes.Buffer{}, f, "gif"); err == nil {
		t.Error("expected unknown format error")
	}
}

func TestFormatFromPath(t *testing.T) {
	if FormatFromPath("out.BMP") != FormatBMP || FormatFromPath("out.png") != FormatPNG || FormatFromPath("out") != FormatPNG {
		t.Error("unexpected formats")
	}
}
