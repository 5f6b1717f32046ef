package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"raycast/render"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "raycast.yaml", "debug: false\n")
	cfg, v, err := Load(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if v.ConfigFileUsed() != path {
		t.Errorf("expected config file %s, got %s", path, v.ConfigFileUsed())
	}

	if cfg.Screen.Width != 800 || cfg.Screen.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Movement.MoveSpeed != 2.5 || cfg.Movement.RotSpeed != 1.5 {
		t.Errorf("expected speeds 2.5/1.5, got %v/%v", cfg.Movement.MoveSpeed, cfg.Movement.RotSpeed)
	}
	if len(cfg.Assets.Textures) != 3 {
		t.Errorf("expected 3 default textures, got %v", cfg.Assets.Textures)
	}

	opts, err := cfg.RenderOptions()
	if err != nil {
		t.Fatal(err)
	}
	if opts.SkyColor != render.DefaultSkyColor || opts.FloorColor != render.DefaultFloorColor {
		t.Errorf("unexpected colours %#x %#x", opts.SkyColor, opts.FloorColor)
	}
	for i, c := range render.DefaultPalette {
		if opts.Palette[i] != c {
			t.Errorf("palette[%d]: expected %#x, got %#x", i, c, opts.Palette[i])
		}
	}
	if opts.FloorSlot != 2 || opts.CeilingSlot != 3 {
		t.Errorf("expected slots 2/3, got %d/%d", opts.FloorSlot, opts.CeilingSlot)
	}

	cam := cfg.CameraModel()
	if cam.Pos.X != 2.5 || cam.Plane.Y != 0.66 {
		t.Errorf("unexpected camera %+v", cam)
	}
}

func TestLoadFileEnvAndFlags(t *testing.T) {
	path := writeConfig(t, "raycast.yaml", strings.Join([]string{
		"screen:",
		"  width: 1024",
		"  height: 768",
		"render:",
		"  workers: 4",
		"  sky_color: \"000000\"",
		"map:",
		"  rows: [\"111\", \"101\", \"111\"]",
	}, "\n"))

	t.Setenv("RAYCAST_SCREEN_HEIGHT", "480")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(fs)
	if err := fs.Parse([]string{"--workers=8"}); err != nil {
		t.Fatal(err)
	}

	cfg, _, err := Load(path, fs)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Screen.Width != 1024 {
		t.Errorf("expected width from file, got %d", cfg.Screen.Width)
	}
	if cfg.Screen.Height != 480 {
		t.Errorf("expected height from env, got %d", cfg.Screen.Height)
	}
	if cfg.Render.Workers != 8 {
		t.Errorf("expected workers from flag, got %d", cfg.Render.Workers)
	}
	if len(cfg.Map.Rows) != 3 || cfg.Map.Rows[1] != "101" {
		t.Errorf("unexpected map rows %v", cfg.Map.Rows)
	}

	opts, err := cfg.RenderOptions()
	if err != nil {
		t.Fatal(err)
	}
	if opts.SkyColor != 0xFF000000 {
		t.Errorf("expected black sky, got %#x", opts.SkyColor)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := writeConfig(t, "raycast.yaml", strings.Join([]string{
		"screen:",
		"  width: 0",
		"render:",
		"  workers: -1",
		"  wall_color: \"#nothex\"",
	}, "\n"))

	_, _, err := Load(path, nil)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"screen size", "render workers", "render.wall_color"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected error to mention %q, got %v", want, err)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"#ff0000", 0xFFFF0000},
		{"00b894", 0xFF00B894},
		{"#fff", 0xFFFFFFFF},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q): expected %#x, got %#x", tt.in, tt.want, got)
		}
	}

	if _, err := ParseColor("blue"); err == nil {
		t.Error("expected error for colour name")
	}
}

func TestCloneIsDeep(t *testing.T) {
	path := writeConfig(t, "raycast.yaml", "debug: true\n")
	cfg, _, err := Load(path, nil)
	if err != nil {
		t.Fatal(err)
	}

	c := cfg.Clone()
	c.Render.Palette[0] = "#000000"
	c.Screen.Width = 1

	if cfg.Render.Palette[0] != "#9b1b30" {
		t.Errorf("expected source palette unchanged, got %s", cfg.Render.Palette[0])
	}
	if cfg.Screen.Width != 800 || !c.Debug {
		t.Error("unexpected clone result")
	}
}

func TestDefaultMatchesLoad(t *testing.T) {
	cfg := Default()
	if cfg.Screen.Width != 800 || cfg.Render.FloorSlot != 2 || !cfg.Render.Textured {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Error(err)
	}
}

func TestNotifyHandsOutClones(t *testing.T) {
	cfg := Default()

	var got []*Config
	listener := func(c *Config) {
		c.Render.Palette[0] = "#000000"
		got = append(got, c)
	}
	notify(cfg, []func(*Config){listener, listener})

	if len(got) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(got))
	}
	if got[0] == cfg || got[1] == cfg || got[0] == got[1] {
		t.Error("expected every listener to get its own config")
	}
	if cfg.Render.Palette[0] != "#9b1b30" {
		t.Errorf("expected source palette unchanged, got %s", cfg.Render.Palette[0])
	}
	if &got[0].Render.Palette[0] == &got[1].Render.Palette[0] {
		t.Error("expected listeners not to share the palette slice")
	}
}

func TestMailboxKeepsLatest(t *testing.T) {
	m := NewMailbox()
	if _, ok := m.Take(); ok {
		t.Fatal("expected empty mailbox")
	}

	first, second := Default(), Default()
	second.Debug = true
	m.Put(first)
	m.Put(second)

	got, ok := m.Take()
	if !ok || got != second {
		t.Errorf("expected latest config, got %v", got)
	}
	if _, ok := m.Take(); ok {
		t.Error("expected mailbox drained after take")
	}
}

func TestMailboxConcurrentPut(t *testing.T) {
	m := NewMailbox()
	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				m.Put(Default())
			}
			done <- struct{}{}
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}
	if _, ok := m.Take(); !ok {
		t.Error("expected a pending config")
	}
}
