package render

import (
	"golang.org/x/sync/errgroup"

	"raycast/model"
)

const (
	DefaultSkyColor     uint32 = 0xFF1C1F2B
	DefaultGroundColor  uint32 = 0xFF252D2A
	DefaultWallColor    uint32 = 0xFFFFFFFF
	DefaultFloorColor   uint32 = 0xFF444444
	DefaultCeilingColor uint32 = 0xFF222222
)

// DefaultPalette holds the flat wall colours for untextured rendering.
var DefaultPalette = []uint32{0xFF9B1B30, 0xFF2F80ED, 0xFF00B894, 0xFFF2C94C}

// Options controls how a frame is composed. Slots are 1-based indexes into the
// texture set; 0 disables that texture.
type Options struct {
	SkyColor     uint32
	GroundColor  uint32
	WallColor    uint32
	FloorColor   uint32
	CeilingColor uint32
	// Palette colours walls that have no texture, indexed by tile-1.
	Palette     []uint32
	FloorSlot   int
	CeilingSlot int
	Textured    bool
	// Workers above 1 renders column bands concurrently.
	Workers int
}

func DefaultOptions() Options {
	return Options{
		SkyColor:     DefaultSkyColor,
		GroundColor:  DefaultGroundColor,
		WallColor:    DefaultWallColor,
		FloorColor:   DefaultFloorColor,
		CeilingColor: DefaultCeilingColor,
		FloorSlot:    2,
		CeilingSlot:  3,
		Textured:     true,
		Workers:      1,
	}
}

// Renderer composes frames. It keeps no state between frames.
type Renderer struct {
	opts Options
}

func New(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

func (r *Renderer) Options() Options {
	return r.opts
}

func (r *Renderer) SetOptions(opts Options) {
	r.opts = opts
}

// Render writes every pixel of dst for the given view. A nil or empty frame is
// left untouched. Grid and textures are only read.
func (r *Renderer) Render(dst *Frame, cam model.Camera, grid *model.Grid, textures []*model.Texture) {
	if dst.empty() {
		return
	}

	r.clear(dst)

	workers := min(r.opts.Workers, dst.Width)
	if workers <= 1 {
		r.renderColumns(dst, 0, dst.Width, cam, grid, textures)
		return
	}

	band := (dst.Width + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < dst.Width; start += band {
		start, end := start, min(start+band, dst.Width)
		g.Go(func() error {
			r.renderColumns(dst, start, end, cam, grid, textures)
			return nil
		})
	}
	_ = g.Wait()
}

func (r *Renderer) clear(dst *Frame) {
	half := dst.Height / 2 * dst.Width
	for i := range dst.Pix[:dst.Width*dst.Height] {
		if i < half {
			dst.Pix[i] = r.opts.SkyColor
		} else {
			dst.Pix[i] = r.opts.GroundColor
		}
	}
}

func (r *Renderer) renderColumns(dst *Frame, from, to int, cam model.Camera, grid *model.Grid, textures []*model.Texture) {
	for x := from; x < to; x++ {
		h := Cast(cam, grid, x, dst.Width)
		s := projectSlice(h.Distance, dst.Height)
		r.drawWall(dst, x, cam, h, s, textures)
		r.drawFloorCeiling(dst, x, cam, h, s, textures)
	}
}
