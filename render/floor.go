package render

import (
	"math"

	"raycast/model"
)

// floorWallPoint returns the world position where the hit wall meets the floor.
func floorWallPoint(h Hit, wallX float64) (float64, float64) {
	mx, my := float64(h.MapX), float64(h.MapY)
	switch {
	case h.Side == SideVertical && h.RayX > 0:
		return mx, my + wallX
	case h.Side == SideVertical && h.RayX < 0:
		return mx + 1, my + wallX
	case h.Side == SideHorizontal && h.RayY > 0:
		return mx + wallX, my
	default:
		return mx + wallX, my + 1
	}
}

// rowDistance is the floor distance seen by screen row y.
func rowDistance(y, height int) float64 {
	return float64(height) / math.Max(float64(2*y-height), minDistance)
}

// floorTexel maps a world coordinate onto a texture axis of size n.
func floorTexel(world float64, n int) int {
	v := world * float64(n)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return wrap(int(v), n)
}

func (r *Renderer) drawFloorCeiling(dst *Frame, x int, cam model.Camera, h Hit, s slice, textures []*model.Texture) {
	var floorTex, ceilTex *model.Texture
	if r.opts.Textured {
		floorTex = textureAt(textures, r.opts.FloorSlot)
		ceilTex = textureAt(textures, r.opts.CeilingSlot)
		if ceilTex == nil {
			ceilTex = floorTex
		}
	}

	wallPX, wallPY := floorWallPoint(h, h.wallX(cam))
	dist := math.Max(h.Distance, minDistance)

	for y := s.drawEnd + 1; y < dst.Height; y++ {
		weight := rowDistance(y, dst.Height) / dist
		worldX := weight*wallPX + (1-weight)*cam.Pos.X
		worldY := weight*wallPY + (1-weight)*cam.Pos.Y

		floor, ceil := r.opts.FloorColor, r.opts.CeilingColor
		if floorTex != nil {
			floor = floorTex.At(floorTexel(worldX, floorTex.Width), floorTexel(worldY, floorTex.Height))
		}
		if ceilTex != nil {
			ceil = ceilTex.At(floorTexel(worldX, ceilTex.Width), floorTexel(worldY, ceilTex.Height))
		}

		dst.set(x, y, floor)
		dst.set(x, dst.Height-y-1, ceil)
	}
}
