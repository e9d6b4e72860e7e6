package main

import (
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pharaoh/levels"
	"github.com/milk9111/pharaoh/prefabs"
	"github.com/milk9111/pharaoh/system"
)

func main() {
	level := flag.Int("level", 1, "level number to start on")
	debug := flag.Bool("debug", false, "draw hitboxes and hot-reload prefab specs")
	prefabDir := flag.String("prefabs", "prefabs", "directory checked for prefab overrides (empty uses embedded only)")
	levelDir := flag.String("levels", "", "load level files from this directory instead of the embedded set")
	scale := flag.Float64("scale", 0.75, "window scale relative to 1600x960")
	flag.Parse()

	prefabs.SetDir(*prefabDir)

	tuning, err := system.LoadTuning()
	if err != nil {
		log.Printf("main: tuning: %v", err)
	}

	var fsys fs.FS = levels.LevelsFS
	if *levelDir != "" {
		fsys = os.DirFS(*levelDir)
	}

	lm := system.NewLevelManager(fsys, tuning)
	if *level > 1 {
		lm.LoadLevel(*level)
	}

	game := NewGame(system.NewSession(lm, tuning.Game.LevelCount), *debug)
	game.setScale(*scale)
	defer game.Close()

	if *debug && *prefabDir != "" {
		w, err := prefabs.NewWatcher(*prefabDir)
		if err != nil {
			log.Printf("main: watch %s: %v", *prefabDir, err)
		} else {
			game.watcher = w
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(tuning.Game.Title)
	ebiten.SetTPS(tuning.Game.TPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
