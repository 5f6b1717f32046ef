//go:build sdl

// Command raycast-sdl renders the raycaster in an SDL2 window. Build with
// -tags sdl.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/spf13/pflag"

	"raycast/config"
	"raycast/engine"
	"raycast/hud"
)

func init() {
	// SDL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	flags := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	config.AddFlags(flags)
	_ = flags.Parse(os.Args[1:])

	path, _ := flags.GetString("config")
	cfg, v, err := config.Load(path, flags)
	if err != nil {
		log.Fatal(err)
	}

	session, err := engine.Load(cfg)
	if err != nil {
		log.Fatal(err)
	}
	config.Watch(v, func(c *config.Config) {
		if err := session.Reconfigure(c); err != nil {
			log.Printf("config reload: %v", err)
		}
	})

	panel, err := hud.NewPanel(260, 76)
	if err != nil {
		log.Fatal(err)
	}

	w, err := engine.NewWindow(session, cfg.Window.Title, cfg.Screen.Width, cfg.Screen.Height, cfg.Window.Scale, cfg.Window.TPS)
	if err != nil {
		log.Fatal(err)
	}
	defer w.Destroy()
	w.SetOverlay(panel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := w.Run(ctx); err != nil {
		log.Print(err)
	}
}
