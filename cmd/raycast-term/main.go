// Command raycast-term renders the raycaster in a terminal using half block
// characters.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"raycast/config"
	"raycast/engine"
)

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

	term, err := engine.NewTerminal(session, cfg.Window.TPS)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := term.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
