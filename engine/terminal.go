package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"raycast/render"
)

// keyHold is how long a press counts as held. Terminals report presses and
// auto repeat but never releases.
const keyHold = 150 * time.Millisecond

type action int

const (
	actNone action = iota
	actForward
	actBackward
	actTurnLeft
	actTurnRight
	actStrafeLeft
	actStrafeRight
	actToggleTextures
	actToggleDebug
	actQuit
)

// Terminal presents a session in a terminal, two frame rows per cell using
// upper half blocks.
type Terminal struct {
	session *Session
	screen  tcell.Screen
	tick    time.Duration
	held    map[action]time.Time
}

func NewTerminal(s *Session, tps int) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal screen: %w", err)
	}
	return newTerminal(s, screen, tps), nil
}

func newTerminal(s *Session, screen tcell.Screen, tps int) *Terminal {
	screen.HideCursor()
	screen.Clear()
	return &Terminal{
		session: s,
		screen:  screen,
		tick:    time.Second / time.Duration(max(tps, 1)),
		held:    make(map[action]time.Time),
	}
}

// Run draws frames until ctx is done or the user quits. The screen is
// released on return.
func (t *Terminal) Run(ctx context.Context) error {
	defer t.screen.Fini()

	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	t.resize()
	ticker := time.NewTicker(t.tick)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || t.handle(ev, time.Now()) {
				return nil
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			t.session.Update(dt, t.controls(now))
			t.draw()
		}
	}
}

// handle applies one event and reports whether the user asked to quit.
func (t *Terminal) handle(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch act := actionFor(ev.Key(), ev.Rune()); act {
		case actQuit:
			return true
		case actToggleTextures:
			t.session.SetTextured(!t.session.Textured())
		case actToggleDebug:
			t.session.SetDebug(!t.session.Debug())
		case actNone:
		default:
			t.held[act] = now
		}
	case *tcell.EventResize:
		t.resize()
		t.screen.Sync()
	}
	return false
}

func actionFor(key tcell.Key, r rune) action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actQuit
	case tcell.KeyUp:
		return actForward
	case tcell.KeyDown:
		return actBackward
	case tcell.KeyLeft:
		return actTurnLeft
	case tcell.KeyRight:
		return actTurnRight
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return actForward
		case 's', 'S':
			return actBackward
		case 'a', 'A':
			return actStrafeLeft
		case 'd', 'D':
			return actStrafeRight
		case 't', 'T':
			return actToggleTextures
		case '`':
			return actToggleDebug
		}
	}
	return actNone
}

func (t *Terminal) controls(now time.Time) Controls {
	on := func(a action) bool {
		at, ok := t.held[a]
		return ok && now.Sub(at) <= keyHold
	}
	return Controls{
		Forward:     on(actForward),
		Backward:    on(actBackward),
		TurnLeft:    on(actTurnLeft),
		TurnRight:   on(actTurnRight),
		StrafeLeft:  on(actStrafeLeft),
		StrafeRight: on(actStrafeRight),
	}
}

func (t *Terminal) resize() {
	w, h := t.screen.Size()
	t.session.Resize(w, h*2)
}

func cellColor(c uint32) tcell.Color {
	r, g, b, _ := render.Channels(c)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (t *Terminal) draw() {
	f := t.session.Render()
	w, h := t.screen.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			style := tcell.StyleDefault.
				Foreground(cellColor(f.At(x, 2*y))).
				Background(cellColor(f.At(x, 2*y+1)))
			t.screen.SetContent(x, y, '▀', nil, style)
		}
	}

	if t.session.Debug() {
		cam := t.session.Camera()
		t.print(0, 0, fmt.Sprintf("pos %.2f,%.2f dir %.2f,%.2f", cam.Pos.X, cam.Pos.Y, cam.Dir.X, cam.Dir.Y))
	}
	t.screen.Show()
}

func (t *Terminal) print(x, y int, s string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}
