package render

import (
	"math"

	"raycast/model"
)

const minDistance = 1e-6

// slice is the vertical extent of one projected wall column. Rows
// drawStart..drawEnd are inclusive.
type slice struct {
	lineHeight int
	drawStart  int
	drawEnd    int
}

func projectSlice(dist float64, height int) slice {
	lh := int(float64(height) / math.Max(dist, minDistance))
	return slice{
		lineHeight: lh,
		drawStart:  max(-lh/2+height/2, 0),
		drawEnd:    min(lh/2+height/2, height-1),
	}
}

// texColumn returns the texture column for a wall hit, mirrored so textures
// read the same way from both sides of a block.
func texColumn(h Hit, wallX float64, texWidth int) int {
	tx := int(wallX * float64(texWidth))
	if h.Side == SideVertical && h.RayX > 0 {
		tx = texWidth - tx - 1
	}
	if h.Side == SideHorizontal && h.RayY < 0 {
		tx = texWidth - tx - 1
	}
	return clampInt(tx, 0, texWidth-1)
}

// texStart returns the texture row position at drawStart and the per row step.
func texStart(s slice, height, texHeight int) (pos, step float64) {
	step = float64(texHeight) / float64(max(s.lineHeight, 1))
	pos = (float64(s.drawStart) - float64(height)/2 + float64(s.lineHeight)/2) * step
	return pos, step
}

func (r *Renderer) wallColor(tile int) uint32 {
	if tile > 0 && len(r.opts.Palette) > 0 {
		return r.opts.Palette[(tile-1)%len(r.opts.Palette)]
	}
	return r.opts.WallColor
}

func (r *Renderer) drawWall(dst *Frame, x int, cam model.Camera, h Hit, s slice, textures []*model.Texture) {
	var tex *model.Texture
	if r.opts.Textured && h.Tile > 0 {
		tex = textureAt(textures, h.Tile)
	}

	if tex == nil {
		c := r.wallColor(h.Tile)
		if h.Side == SideHorizontal {
			c = Shade(c)
		}
		for y := s.drawStart; y <= s.drawEnd; y++ {
			dst.set(x, y, c)
		}
		return
	}

	tx := texColumn(h, h.wallX(cam), tex.Width)
	pos, step := texStart(s, dst.Height, tex.Height)
	for y := s.drawStart; y <= s.drawEnd; y++ {
		ty := clampInt(int(pos), 0, tex.Height-1)
		pos += step
		c := tex.At(tx, ty)
		if h.Side == SideHorizontal {
			c = Shade(c)
		}
		dst.set(x, y, c)
	}
}
