// Package hud rasterises text overlays with freetype.
package hud

import (
	"fmt"
	"image"
	"image/color"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"raycast/model"
	"raycast/render"
)

const (
	fontSize = 12.0
	padding  = 6
)

var background = color.RGBA{0, 0, 0, 160}

// Panel draws lines of text on a translucent box of fixed size.
type Panel struct {
	img  *image.RGBA
	ctx  *freetype.Context
	font *truetype.Font
}

func NewPanel(width, height int) (*Panel, error) {
	f, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing hud font: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(fontSize)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	return &Panel{img: img, ctx: ctx, font: f}, nil
}

// Draw clears the panel and writes lines top to bottom. Lines that do not fit
// are dropped.
func (p *Panel) Draw(lines []string) *image.RGBA {
	draw.Draw(p.img, p.img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	pt := freetype.Pt(padding, padding+int(p.ctx.PointToFixed(fontSize)>>6))
	for _, line := range lines {
		if pt.Y.Round() > p.img.Bounds().Dy() {
			break
		}
		if _, err := p.ctx.DrawString(line, pt); err != nil {
			break
		}
		pt.Y += p.ctx.PointToFixed(fontSize * 1.4)
	}
	return p.img
}

// Lines formats the camera state shown in the overlay.
func Lines(cam model.Camera, fps float64, textured bool) []string {
	mode := "flat"
	if textured {
		mode = "textured"
	}
	return []string{
		fmt.Sprintf("FPS: %0.2f", fps),
		fmt.Sprintf("pos: %0.2f, %0.2f", cam.Pos.X, cam.Pos.Y),
		fmt.Sprintf("dir: %0.2f, %0.2f  fov: %0.1f", cam.Dir.X, cam.Dir.Y, cam.FOV()),
		"mode: " + mode,
	}
}

// Blend composites src over f with its top left corner at (x, y). Only the
// covered rectangle is converted.
func Blend(f *render.Frame, src *image.RGBA, x, y int) {
	off := image.Pt(x, y).Sub(src.Bounds().Min)
	r := src.Bounds().Add(off).Intersect(image.Rect(0, 0, f.Width, f.Height))
	if r.Empty() {
		return
	}

	dst := image.NewRGBA(r)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			i := dst.PixOffset(px, py)
			dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2], dst.Pix[i+3] = render.Channels(f.Pix[py*f.Width+px])
		}
	}

	draw.Draw(dst, r, src, r.Min.Sub(off), draw.Over)

	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			p := dst.Pix[dst.PixOffset(px, py):]
			f.Pix[py*f.Width+px] = render.ARGB(p[0], p[1], p[2], p[3])
		}
	}
}
