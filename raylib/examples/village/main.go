// Village draws the thicket village through raylib instead of Ebitengine.
// Arrow keys pan, Home eases back to the origin, Esc or the close button
// quits.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/phanxgames/thicket"
	"github.com/phanxgames/thicket/raylib"
)

const windowTitle = "Thicket — Village (raylib)"

func main() {
	configPath := flag.String("config", "thicket.toml", "config file (.toml, .yaml, .yml or .json)")
	flag.Parse()

	cfg, err := thicket.LoadRunConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Title == thicket.DefaultRunConfig().Title {
		cfg.Title = windowTitle
	}
	thicket.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	window := raylib.NewWindow(cfg)
	scene := thicket.NewScene(window, append(cfg.SceneOptions(), thicket.WithClock(window.Clock()))...)

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	if err := thicket.Populate(scene, rand.New(rand.NewPCG(seed, seed)), cfg.Trees, cfg.Houses); err != nil {
		log.Fatal(err)
	}

	if err := window.Run(scene); err != nil {
		log.Fatal(err)
	}
}
