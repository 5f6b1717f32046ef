package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"raycast/engine"
)

// handleInput applies one tick of keyboard input and reports whether the game
// should exit.
func (g *Game) handleInput() bool {
	// if escape, exit game
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return true
	}

	// if p, pause game
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.session.SetTextured(!g.session.Textured())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackquote) {
		g.session.SetDebug(!g.session.Debug())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.setVsyncEnabled(!g.vsync)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		g.setFullscreen(!g.fullscreen)
	}

	if g.paused {
		return false
	}

	c := engine.Controls{
		Forward:     ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Backward:    ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		TurnLeft:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		TurnRight:   ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		StrafeLeft:  ebiten.IsKeyPressed(ebiten.KeyA),
		StrafeRight: ebiten.IsKeyPressed(ebiten.KeyD),
		Run:         ebiten.IsKeyPressed(ebiten.KeyShift),
	}
	g.session.Update(1/float64(ebiten.TPS()), c)
	return false
}
