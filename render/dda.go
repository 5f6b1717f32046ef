package render

import (
	"math"

	"raycast/model"
)

// Side tells which kind of grid line a ray crossed last.
type Side int

const (
	// SideVertical is a crossing of a vertical grid line (an X step).
	SideVertical Side = iota
	// SideHorizontal is a crossing of a horizontal grid line (a Y step).
	SideHorizontal
)

const noDelta = 1e30

// Hit is the result of casting one column's ray. Tile is 0 when the ray left
// the grid without meeting a wall.
type Hit struct {
	MapX, MapY   int
	Tile         int
	Side         Side
	StepX, StepY int
	RayX, RayY   float64
	Distance     float64
	Steps        int
}

// Cast traces the ray for screen column x of width columns through grid and
// returns the first wall cell it enters.
func Cast(cam model.Camera, grid *model.Grid, x, width int) Hit {
	rayX, rayY := cam.RayDir(x, width)
	posX, posY := cam.Pos.X, cam.Pos.Y

	h := Hit{
		MapX: int(math.Floor(posX)),
		MapY: int(math.Floor(posY)),
		RayX: rayX,
		RayY: rayY,
	}

	deltaX, deltaY := noDelta, noDelta
	if rayX != 0 {
		deltaX = math.Abs(1 / rayX)
	}
	if rayY != 0 {
		deltaY = math.Abs(1 / rayY)
	}

	var sideX, sideY float64
	if rayX < 0 {
		h.StepX = -1
		sideX = (posX - float64(h.MapX)) * deltaX
	} else {
		h.StepX = 1
		sideX = (float64(h.MapX) + 1 - posX) * deltaX
	}
	if rayY < 0 {
		h.StepY = -1
		sideY = (posY - float64(h.MapY)) * deltaY
	} else {
		h.StepY = 1
		sideY = (float64(h.MapY) + 1 - posY) * deltaY
	}

	limit := grid.Width() + grid.Height() + 2
	for h.Steps < limit {
		if sideX < sideY {
			sideX += deltaX
			h.MapX += h.StepX
			h.Side = SideVertical
		} else {
			sideY += deltaY
			h.MapY += h.StepY
			h.Side = SideHorizontal
		}
		h.Steps++

		if !grid.Contains(h.MapX, h.MapY) {
			break
		}
		if tile := grid.At(h.MapX, h.MapY); tile > 0 {
			h.Tile = tile
			break
		}
	}

	if h.Side == SideVertical {
		h.Distance = (float64(h.MapX) - posX + float64(1-h.StepX)/2) / rayX
	} else {
		h.Distance = (float64(h.MapY) - posY + float64(1-h.StepY)/2) / rayY
	}
	switch {
	case math.IsNaN(h.Distance) || h.Distance < 0:
		h.Distance = 0
	case math.IsInf(h.Distance, 1):
		h.Distance = noDelta
	}
	return h
}

// wallX is the fractional position along the wall face where the ray landed.
func (h Hit) wallX(cam model.Camera) float64 {
	var w float64
	if h.Side == SideVertical {
		w = cam.Pos.Y + h.Distance*h.RayY
	} else {
		w = cam.Pos.X + h.Distance*h.RayX
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0
	}
	return w - math.Floor(w)
}
