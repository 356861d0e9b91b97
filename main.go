package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/climber/config"
	"github.com/automoto/climber/fonts"
	"github.com/automoto/climber/scenes"
	"github.com/automoto/climber/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewClimberScene(),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tuning := flag.String("tuning", "", "YAML tuning file, reloaded on change")
	debug := flag.Bool("debug", false, "start with the debug overlay on")
	level := flag.String("level", config.Debug.LevelName, "level to load")
	logTuning := flag.Bool("log-tuning", false, "log every applied tuning file")
	flag.Parse()

	config.Debug.LevelName = *level
	config.Debug.LogTuning = *logTuning
	if *tuning != "" {
		config.Debug.TuningPath = *tuning
		if err := config.LoadTuning(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("climber")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}
	if *debug {
		config.Debug.Enabled = true
	}

	game := NewGame()
	err := ebiten.RunGame(game)
	if closer, ok := game.scene.(interface{ Close() error }); ok {
		if cerr := closer.Close(); cerr != nil {
			log.Printf("Warning: %v", cerr)
		}
	}
	if err != nil {
		log.Fatal(err)
	}
}
