package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"raycast/hud"
)

func (g *Game) drawUI(screen *ebiten.Image) {
	lines := hud.Lines(g.session.Camera(), ebiten.ActualFPS(), g.session.Textured())
	g.overlay.WritePixels(g.panel.Draw(lines).Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(10, 10)
	screen.DrawImage(g.overlay, op)

	ebitenutil.DebugPrintAt(screen, "arrows turn, WASD move and strafe, T textures, ` debug", 10, g.screenHeight-40)
	ebitenutil.DebugPrintAt(screen, "ESC to exit", 10, g.screenHeight-20)
}

func (g *Game) drawPaused(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, "PAUSED", g.screenWidth/2-20, g.screenHeight/2-8)
}
