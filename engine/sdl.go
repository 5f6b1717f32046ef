//go:build sdl

package engine

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"raycast/hud"
)

// Window presents a session in an SDL2 window. Frames are uploaded as
// ARGB8888 streaming textures and stretched to the window.
type Window struct {
	session  *Session
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	width    int32
	height   int32
	delay    uint32
	overlay  *hud.Panel
}

// SetOverlay shows panel over the view while debug is on.
func (w *Window) SetOverlay(panel *hud.Panel) {
	w.overlay = panel
}

func NewWindow(s *Session, title string, width, height, scale, tps int) (*Window, error) {
	if err := sdl.Init(uint32(sdl.INIT_VIDEO | sdl.INIT_EVENTS)); err != nil {
		return nil, fmt.Errorf("initializing sdl: %w", err)
	}

	window, err := sdl.CreateWindow(title, int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(width*scale), int32(height*scale), uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("creating window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	w := &Window{
		session:  s,
		window:   window,
		renderer: renderer,
		delay:    uint32(1000 / max(tps, 1)),
	}
	if err := w.resize(int32(width), int32(height)); err != nil {
		w.Destroy()
		return nil, err
	}
	return w, nil
}

func (w *Window) resize(width, height int32) error {
	if w.texture != nil {
		w.texture.Destroy()
	}
	texture, err := w.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ARGB8888), int(sdl.TEXTUREACCESS_STREAMING), width, height)
	if err != nil {
		return fmt.Errorf("creating texture: %w", err)
	}
	w.texture = texture
	w.width, w.height = width, height
	w.session.Resize(int(width), int(height))
	return nil
}

// Run presents frames until the window is closed, Escape is pressed or ctx is
// done.
func (w *Window) Run(ctx context.Context) error {
	last := sdl.GetTicks()
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch ev := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if ev.State != sdl.PRESSED || ev.Repeat != 0 {
					continue
				}
				switch ev.Keysym.Scancode {
				case sdl.SCANCODE_ESCAPE:
					return nil
				case sdl.SCANCODE_T:
					w.session.SetTextured(!w.session.Textured())
				case sdl.SCANCODE_GRAVE:
					w.session.SetDebug(!w.session.Debug())
				}
			}
		}

		now := sdl.GetTicks()
		dt := float64(now-last) / 1000
		last = now
		w.session.Update(dt, keyboardControls())

		f := w.session.Render()
		if len(f.Pix) == 0 {
			continue
		}
		if w.overlay != nil && w.session.Debug() {
			fps := 0.0
			if dt > 0 {
				fps = 1 / dt
			}
			lines := hud.Lines(w.session.Camera(), fps, w.session.Textured())
			hud.Blend(f, w.overlay.Draw(lines), 10, 10)
		}
		if err := w.texture.Update(nil, unsafe.Pointer(&f.Pix[0]), f.Width*4); err != nil {
			return fmt.Errorf("uploading frame: %w", err)
		}
		w.renderer.Clear()
		w.renderer.Copy(w.texture, nil, nil)
		w.renderer.Present()

		sdl.Delay(w.delay)
	}
}

func keyboardControls() Controls {
	keys := sdl.GetKeyboardState()
	down := func(codes ...sdl.Scancode) bool {
		for _, c := range codes {
			if keys[c] == 1 {
				return true
			}
		}
		return false
	}
	return Controls{
		Forward:     down(sdl.SCANCODE_UP, sdl.SCANCODE_W),
		Backward:    down(sdl.SCANCODE_DOWN, sdl.SCANCODE_S),
		TurnLeft:    down(sdl.SCANCODE_LEFT),
		TurnRight:   down(sdl.SCANCODE_RIGHT),
		StrafeLeft:  down(sdl.SCANCODE_A),
		StrafeRight: down(sdl.SCANCODE_D),
		Run:         down(sdl.SCANCODE_LSHIFT, sdl.SCANCODE_RSHIFT),
	}
}

func (w *Window) Destroy() {
	if w.texture != nil {
		w.texture.Destroy()
	}
	w.renderer.Destroy()
	w.window.Destroy()
	sdl.Quit()
}
