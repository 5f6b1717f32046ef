package main

import (
	"log"
	"os"

	"github.com/spf13/pflag"

	"raycast/config"
	"raycast/engine"
)

func main() {
	flags := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	config.AddFlags(flags)
	snapshot := flags.String("snapshot", "", "render one frame to a .png or .bmp file and exit")
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

	if *snapshot != "" {
		if err := session.WriteSnapshot(*snapshot); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *snapshot)
		return
	}

	g, err := NewGame(cfg, session)
	if err != nil {
		log.Fatal(err)
	}
	config.Watch(v, g.reloads.Put)
	g.Run()
}
