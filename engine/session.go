// Package engine runs a raycaster view: it owns the camera, map, textures and
// frame, applies per tick input and hands rendered frames to a presenter.
package engine

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"raycast/assets"
	"raycast/config"
	"raycast/model"
	"raycast/render"
)

// runModifier scales movement while Run is held.
const runModifier = 2.0

// Controls is the input state for one tick.
type Controls struct {
	Forward     bool
	Backward    bool
	TurnLeft    bool
	TurnRight   bool
	StrafeLeft  bool
	StrafeRight bool
	Run         bool
}

type Session struct {
	mu        sync.Mutex
	camera    model.Camera
	pose      config.CameraConfig
	grid      *model.Grid
	textures  []*model.Texture
	renderer  *render.Renderer
	frame     *render.Frame
	moveSpeed float64
	rotSpeed  float64
	debug     bool
}

// Load builds a session from cfg, reading the map and textures it names.
func Load(cfg *config.Config) (*Session, error) {
	grid, err := loadGrid(cfg.Map)
	if err != nil {
		return nil, err
	}

	textures, err := assets.LoadTextures(assets.Open(cfg.Assets.Dir), cfg.Assets.Textures, cfg.Assets.TextureSize)
	if err != nil {
		return nil, fmt.Errorf("loading textures: %w", err)
	}

	return NewSession(cfg, grid, textures)
}

func loadGrid(m config.MapConfig) (*model.Grid, error) {
	switch {
	case m.File != "":
		g, err := assets.LoadGrid(os.DirFS(filepath.Dir(m.File)), filepath.Base(m.File))
		if err != nil {
			return nil, fmt.Errorf("loading map: %w", err)
		}
		return g, nil
	case len(m.Rows) > 0:
		g, err := model.ParseGrid(m.Rows)
		if err != nil {
			return nil, fmt.Errorf("parsing map rows: %w", err)
		}
		return g, nil
	default:
		return model.DefaultGrid(), nil
	}
}

func NewSession(cfg *config.Config, grid *model.Grid, textures []*model.Texture) (*Session, error) {
	opts, err := cfg.RenderOptions()
	if err != nil {
		return nil, err
	}

	s := &Session{
		camera:    cfg.CameraModel(),
		pose:      cfg.Camera,
		grid:      grid,
		textures:  textures,
		renderer:  render.New(opts),
		frame:     render.NewFrame(cfg.Screen.Width, cfg.Screen.Height),
		moveSpeed: cfg.Movement.MoveSpeed,
		rotSpeed:  cfg.Movement.RotSpeed,
		debug:     cfg.Debug,
	}
	if !grid.Walkable(s.camera.Pos.X, s.camera.Pos.Y) {
		log.Printf("camera starts inside a wall at (%.2f, %.2f)", s.camera.Pos.X, s.camera.Pos.Y)
	}
	return s, nil
}

// Update advances the camera by dt seconds of input.
func (s *Session) Update(dt float64, c Controls) {
	s.mu.Lock()
	defer s.mu.Unlock()

	move := s.moveSpeed * dt
	if c.Run {
		move *= runModifier
	}
	rot := s.rotSpeed * dt

	if c.Forward {
		s.camera.Move(s.grid, move)
	}
	if c.Backward {
		s.camera.Move(s.grid, -move)
	}
	if c.StrafeLeft {
		s.camera.Strafe(s.grid, -move)
	}
	if c.StrafeRight {
		s.camera.Strafe(s.grid, move)
	}
	if c.TurnRight {
		s.camera.Rotate(rot)
	}
	if c.TurnLeft {
		s.camera.Rotate(-rot)
	}
}

// Render draws the current view. The returned frame is reused by the next
// call.
func (s *Session) Render() *render.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.renderer.Render(s.frame, s.camera, s.grid, s.textures)
	return s.frame
}

// WriteSnapshot renders one frame to path as PNG, or BMP for a .bmp path.
func (s *Session) WriteSnapshot(path string) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing snapshot: %w", cerr)
		}
	}()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.renderer.Render(s.frame, s.camera, s.grid, s.textures)
	return assets.EncodeFrame(out, s.frame, assets.FormatFromPath(path))
}

// Resize changes the frame size for later renders.
func (s *Session) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if width == s.frame.Width && height == s.frame.Height {
		return
	}
	s.frame = render.NewFrame(width, height)
}

// Reconfigure applies render options, speeds and the debug flag from cfg. The
// camera is moved to the configured pose only when that pose changed; the map
// and textures are kept.
func (s *Session) Reconfigure(cfg *config.Config) error {
	opts, err := cfg.RenderOptions()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.renderer.SetOptions(opts)
	s.moveSpeed = cfg.Movement.MoveSpeed
	s.rotSpeed = cfg.Movement.RotSpeed
	s.debug = cfg.Debug
	if cfg.Camera != s.pose {
		s.pose = cfg.Camera
		s.camera = cfg.CameraModel()
	}
	return nil
}

func (s *Session) Camera() model.Camera {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.camera
}

func (s *Session) Grid() *model.Grid {
	return s.grid
}

func (s *Session) Textured() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderer.Options().Textured
}

func (s *Session) SetTextured(textured bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	opts := s.renderer.Options()
	opts.Textured = textured
	s.renderer.SetOptions(opts)
}

func (s *Session) Debug() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.debug
}

func (s *Session) SetDebug(debug bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debug = debug
}
