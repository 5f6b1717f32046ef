package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const minimapScale = 6

func (g *Game) generateStaticMinimap() {
	grid := g.session.Grid()
	g.minimap = ebiten.NewImage(grid.Width()*minimapScale, grid.Height()*minimapScale)
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			tileColor := color.RGBA{200, 200, 200, 255}
			if grid.At(x, y) > 0 {
				tileColor = color.RGBA{50, 50, 50, 255}
			}
			vector.DrawFilledRect(g.minimap, float32(x*minimapScale), float32(y*minimapScale), float32(minimapScale), float32(minimapScale), tileColor, false)
		}
	}
}

func (g *Game) drawDynamicMinimap(screen *ebiten.Image) {
	originX := float32(g.screenWidth - g.minimap.Bounds().Dx() - 10)
	originY := float32(10)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(originX), float64(originY))
	screen.DrawImage(g.minimap, op)

	cam := g.session.Camera()
	px := originX + float32(cam.Pos.X*minimapScale)
	py := originY + float32(cam.Pos.Y*minimapScale)

	// view cone edges follow the outermost rays
	for _, side := range []float64{-1, 1} {
		rx, ry := cam.Dir.X+cam.Plane.X*side, cam.Dir.Y+cam.Plane.Y*side
		l := math.Hypot(rx, ry)
		ex := px + float32(rx/l*2*minimapScale)
		ey := py + float32(ry/l*2*minimapScale)
		vector.StrokeLine(screen, px, py, ex, ey, 1, color.RGBA{255, 255, 0, 128}, false)
	}

	vector.DrawFilledCircle(screen, px, py, minimapScale/2, color.RGBA{255, 0, 0, 255}, false)
}
