// Package config loads raycaster settings from defaults, an optional config
// file, RAYCAST_* environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/jinzhu/copier"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"raycast/model"
	"raycast/render"
)

const (
	envPrefix  = "RAYCAST"
	configName = "raycast"
)

type Config struct {
	Screen   ScreenConfig   `mapstructure:"screen"`
	Window   WindowConfig   `mapstructure:"window"`
	Camera   CameraConfig   `mapstructure:"camera"`
	Movement MovementConfig `mapstructure:"movement"`
	Render   RenderConfig   `mapstructure:"render"`
	Assets   AssetsConfig   `mapstructure:"assets"`
	Map      MapConfig      `mapstructure:"map"`
	Debug    bool           `mapstructure:"debug"`
}

type ScreenConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

type WindowConfig struct {
	Title string `mapstructure:"title"`
	Scale int    `mapstructure:"scale"`
	Vsync bool   `mapstructure:"vsync"`
	TPS   int    `mapstructure:"tps"`
}

type CameraConfig struct {
	X      float64 `mapstructure:"x"`
	Y      float64 `mapstructure:"y"`
	DirX   float64 `mapstructure:"dir_x"`
	DirY   float64 `mapstructure:"dir_y"`
	PlaneX float64 `mapstructure:"plane_x"`
	PlaneY float64 `mapstructure:"plane_y"`
}

// MovementConfig speeds are per second and scaled by frame time.
type MovementConfig struct {
	MoveSpeed float64 `mapstructure:"move_speed"`
	RotSpeed  float64 `mapstructure:"rot_speed"`
}

type RenderConfig struct {
	Workers      int      `mapstructure:"workers"`
	Textured     bool     `mapstructure:"textured"`
	SkyColor     string   `mapstructure:"sky_color"`
	GroundColor  string   `mapstructure:"ground_color"`
	WallColor    string   `mapstructure:"wall_color"`
	FloorColor   string   `mapstructure:"floor_color"`
	CeilingColor string   `mapstructure:"ceiling_color"`
	Palette      []string `mapstructure:"palette"`
	FloorSlot    int      `mapstructure:"floor_slot"`
	CeilingSlot  int      `mapstructure:"ceiling_slot"`
}

// AssetsConfig names wall textures in slot order. An empty Dir reads the
// embedded set.
type AssetsConfig struct {
	Dir         string   `mapstructure:"dir"`
	Textures    []string `mapstructure:"textures"`
	TextureSize int      `mapstructure:"texture_size"`
}

// MapConfig holds digit rows such as "1001", or a colour coded map image in
// File which takes precedence.
type MapConfig struct {
	Rows []string `mapstructure:"rows"`
	File string   `mapstructure:"file"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("screen.width", 800)
	v.SetDefault("screen.height", 600)

	v.SetDefault("window.title", "raycast")
	v.SetDefault("window.scale", 1)
	v.SetDefault("window.vsync", true)
	v.SetDefault("window.tps", 60)

	v.SetDefault("camera.x", 2.5)
	v.SetDefault("camera.y", 2.5)
	v.SetDefault("camera.dir_x", 1.0)
	v.SetDefault("camera.dir_y", 0.0)
	v.SetDefault("camera.plane_x", 0.0)
	v.SetDefault("camera.plane_y", 0.66)

	v.SetDefault("movement.move_speed", 2.5)
	v.SetDefault("movement.rot_speed", 1.5)

	v.SetDefault("render.workers", 1)
	v.SetDefault("render.textured", true)
	v.SetDefault("render.sky_color", "#1c1f2b")
	v.SetDefault("render.ground_color", "#252d2a")
	v.SetDefault("render.wall_color", "#ffffff")
	v.SetDefault("render.floor_color", "#444444")
	v.SetDefault("render.ceiling_color", "#222222")
	v.SetDefault("render.palette", []string{"#9b1b30", "#2f80ed", "#00b894", "#f2c94c"})
	v.SetDefault("render.floor_slot", 2)
	v.SetDefault("render.ceiling_slot", 3)

	v.SetDefault("assets.dir", "")
	v.SetDefault("assets.textures", []string{"sides/brick.png", "sides/wood.png", "sides/eagle.png"})
	v.SetDefault("assets.texture_size", 64)

	v.SetDefault("map.rows", []string{})
	v.SetDefault("map.file", "")

	v.SetDefault("debug", false)
}

// flagKeys maps command line flags onto config keys.
var flagKeys = map[string]string{
	"width":    "screen.width",
	"height":   "screen.height",
	"scale":    "window.scale",
	"vsync":    "window.vsync",
	"workers":  "render.workers",
	"textured": "render.textured",
	"assets":   "assets.dir",
	"map":      "map.file",
	"debug":    "debug",
}

// AddFlags registers the flags understood by Load on fs.
func AddFlags(fs *pflag.FlagSet) {
	fs.StringP("config", "c", "", "config file (yaml, toml or json)")
	fs.Int("width", 800, "frame width in pixels")
	fs.Int("height", 600, "frame height in pixels")
	fs.Int("scale", 1, "window scale factor")
	fs.Bool("vsync", true, "enable vsync")
	fs.Int("workers", 1, "concurrent column bands per frame")
	fs.Bool("textured", true, "draw textured walls and floors")
	fs.String("assets", "", "texture directory (embedded textures when empty)")
	fs.String("map", "", "colour coded map image")
	fs.Bool("debug", false, "show debug overlay")
}

// Load reads configuration. An empty path searches for raycast.yaml (or .toml,
// .json) in the working directory and $HOME/.config/raycast; a missing file is
// only an error when path is set. fs may be nil.
func Load(path string, fs *pflag.FlagSet) (*Config, *viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := decode(v)
	if err != nil {
		panic(err)
	}
	return cfg
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Watch calls every listener with its own snapshot each time the config file
// changes. Reloads that fail validation are logged and skipped. It does nothing
// when no file was read.
func Watch(v *viper.Viper, listeners ...func(*Config)) {
	if v == nil || v.ConfigFileUsed() == "" || len(listeners) == 0 {
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := decode(v)
		if err != nil {
			log.Printf("config reload %s: %v", e.Name, err)
			return
		}
		log.Printf("config reloaded from %s", e.Name)
		notify(cfg, listeners)
	})
	v.WatchConfig()
}

// notify hands each listener a private clone of cfg.
func notify(cfg *Config, listeners []func(*Config)) {
	for _, fn := range listeners {
		fn(cfg.Clone())
	}
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height))
	}
	if c.Window.Scale < 1 {
		errs = append(errs, fmt.Errorf("window scale %d must be at least 1", c.Window.Scale))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window tps %d must be positive", c.Window.TPS))
	}
	if c.Camera.DirX == 0 && c.Camera.DirY == 0 {
		errs = append(errs, errors.New("camera direction must be non-zero"))
	}
	if c.Movement.MoveSpeed < 0 || c.Movement.RotSpeed < 0 {
		errs = append(errs, errors.New("movement speeds must not be negative"))
	}
	if c.Render.Workers < 0 {
		errs = append(errs, fmt.Errorf("render workers %d must not be negative", c.Render.Workers))
	}
	if c.Render.FloorSlot < 0 || c.Render.CeilingSlot < 0 {
		errs = append(errs, errors.New("texture slots must not be negative"))
	}
	if c.Assets.TextureSize < 0 {
		errs = append(errs, fmt.Errorf("texture size %d must not be negative", c.Assets.TextureSize))
	}
	if _, err := c.RenderOptions(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// RenderOptions converts the render section into renderer options.
func (c *Config) RenderOptions() (render.Options, error) {
	opts := render.DefaultOptions()
	opts.Textured = c.Render.Textured
	opts.Workers = c.Render.Workers
	opts.FloorSlot = c.Render.FloorSlot
	opts.CeilingSlot = c.Render.CeilingSlot

	colors := []struct {
		name string
		hex  string
		dst  *uint32
	}{
		{"sky_color", c.Render.SkyColor, &opts.SkyColor},
		{"ground_color", c.Render.GroundColor, &opts.GroundColor},
		{"wall_color", c.Render.WallColor, &opts.WallColor},
		{"floor_color", c.Render.FloorColor, &opts.FloorColor},
		{"ceiling_color", c.Render.CeilingColor, &opts.CeilingColor},
	}
	var errs []error
	for _, col := range colors {
		argb, err := ParseColor(col.hex)
		if err != nil {
			errs = append(errs, fmt.Errorf("render.%s: %w", col.name, err))
			continue
		}
		*col.dst = argb
	}

	opts.Palette = make([]uint32, 0, len(c.Render.Palette))
	for i, hex := range c.Render.Palette {
		argb, err := ParseColor(hex)
		if err != nil {
			errs = append(errs, fmt.Errorf("render.palette[%d]: %w", i, err))
			continue
		}
		opts.Palette = append(opts.Palette, argb)
	}

	return opts, errors.Join(errs...)
}

// ParseColor parses "#rrggbb", "rrggbb" or "#rgb" into an opaque ARGB value.
func ParseColor(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("parsing colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return render.ARGB(r, g, b, 0xFF), nil
}

func (c *Config) CameraModel() model.Camera {
	return model.NewCamera(c.Camera.X, c.Camera.Y, c.Camera.DirX, c.Camera.DirY, c.Camera.PlaneX, c.Camera.PlaneY)
}

// Clone returns a deep copy, safe to hand to another goroutine.
func (c *Config) Clone() *Config {
	out := &Config{}
	if err := copier.CopyWithOption(out, c, copier.Option{DeepCopy: true}); err != nil {
		log.Printf("config clone: %v", err)
		*out = *c
	}
	return out
}

// Mailbox holds the most recent reloaded config until a consumer takes it.
// Put never blocks; an untaken config is replaced by a newer one.
type Mailbox struct {
	ch chan *Config
}

func NewMailbox() *Mailbox {
	return &Mailbox{ch: make(chan *Config, 1)}
}

func (m *Mailbox) Put(cfg *Config) {
	for {
		select {
		case m.ch <- cfg:
			return
		default:
		}
		select {
		case <-m.ch:
		default:
		}
	}
}

// Take returns the pending config, if any.
func (m *Mailbox) Take() (*Config, bool) {
	select {
	case cfg := <-m.ch:
		return cfg, true
	default:
		return nil, false
	}
}
