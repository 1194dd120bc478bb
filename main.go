package main

import (
	"flag"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gravitydash/assets"
	"github.com/milk9111/gravitydash/segments"
)

func main() {
	debug := flag.Bool("debug", false, "enable the debug overlay and template live reload")
	seed := flag.Int64("seed", 0, "run seed for segment selection (0 = time-based)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("gravitydash")

	if err := assets.Load(); err != nil {
		log.Fatal("load assets", "err", err)
	}

	lib, err := segments.LoadLibrary()
	if err != nil {
		log.Fatal("load segment templates", "err", err)
	}

	game := NewGame(lib, *seed, *debug)
	defer game.Close()

	log.Info("starting run", "seed", *seed, "templates", lib.Len(), "debug", *debug)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal("run", "err", err)
	}
}
