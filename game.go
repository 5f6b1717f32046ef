package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"raycast/config"
	"raycast/engine"
	"raycast/hud"
)

// -- game

const (
	hudWidth  = 260
	hudHeight = 76
)

// Game presents an engine session in an ebiten window.
type Game struct {
	session *engine.Session
	paused  bool

	// window resolution and scaling
	screenWidth  int
	screenHeight int
	renderScale  int
	fullscreen   bool
	vsync        bool

	scene  *ebiten.Image
	pixels []byte

	minimap *ebiten.Image
	panel   *hud.Panel
	overlay *ebiten.Image

	// reloads is filled by the config watcher and drained in Update.
	reloads *config.Mailbox
}

// NewGame sets up the window for the session and builds the static minimap.
func NewGame(cfg *config.Config, session *engine.Session) (*Game, error) {
	fmt.Printf("Initializing Game\n")

	panel, err := hud.NewPanel(hudWidth, hudHeight)
	if err != nil {
		return nil, err
	}

	g := &Game{
		session:     session,
		renderScale: cfg.Window.Scale,
		vsync:       cfg.Window.Vsync,
		panel:       panel,
		overlay:     ebiten.NewImage(hudWidth, hudHeight),
		reloads:     config.NewMailbox(),
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)

	g.setResolution(cfg.Screen.Width, cfg.Screen.Height)
	g.setRenderScale(g.renderScale)
	g.setFullscreen(g.fullscreen)
	g.setVsyncEnabled(g.vsync)

	g.generateStaticMinimap()
	return g, nil
}

// Run is the ebiten run loop caller.
func (g *Game) Run() {
	g.paused = false

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// Layout keeps the logical screen at the render resolution; ebiten scales it
// to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenWidth, g.screenHeight
}

func (g *Game) Update() error {
	if cfg, ok := g.reloads.Take(); ok {
		g.reconfigure(cfg)
	}
	if quit := g.handleInput(); quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	f := g.session.Render()
	g.pixels = f.RGBA(g.pixels)
	g.scene.WritePixels(g.pixels)
	screen.DrawImage(g.scene, nil)

	if g.session.Debug() {
		g.drawDynamicMinimap(screen)
		g.drawUI(screen)
	}
	if g.paused {
		g.drawPaused(screen)
	}
}

// reconfigure applies a reloaded config on the update goroutine. Screen size
// and map changes need a restart.
func (g *Game) reconfigure(cfg *config.Config) {
	if err := g.session.Reconfigure(cfg); err != nil {
		log.Printf("config reload: %v", err)
		return
	}
	g.setVsyncEnabled(cfg.Window.Vsync)
	ebiten.SetTPS(cfg.Window.TPS)
}

func (g *Game) setResolution(screenWidth, screenHeight int) {
	g.screenWidth, g.screenHeight = screenWidth, screenHeight
	g.scene = ebiten.NewImage(screenWidth, screenHeight)
	g.session.Resize(screenWidth, screenHeight)
	ebiten.SetWindowSize(screenWidth*g.renderScale, screenHeight*g.renderScale)
}

func (g *Game) setRenderScale(renderScale int) {
	g.renderScale = max(renderScale, 1)
	ebiten.SetWindowSize(g.screenWidth*g.renderScale, g.screenHeight*g.renderScale)
}

func (g *Game) setFullscreen(fullscreen bool) {
	g.fullscreen = fullscreen
	ebiten.SetFullscreen(fullscreen)
}

func (g *Game) setVsyncEnabled(enableVsync bool) {
	g.vsync = enableVsync
	ebiten.SetVsyncEnabled(enableVsync)
}
