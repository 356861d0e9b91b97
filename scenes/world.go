package scenes

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/climber/components"
	cfg "github.com/automoto/climber/config"
	"github.com/automoto/climber/systems"
	"github.com/automoto/climber/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ClimberScene runs one level with a single locomotion-driven player.
type ClimberScene struct {
	ecs     *ecs.ECS
	watcher *cfg.TuningWatcher
	cancel  context.CancelFunc
	once    sync.Once
	err     error
}

func NewClimberScene() *ClimberScene {
	return &ClimberScene{}
}

func (cs *ClimberScene) Update() error {
	cs.once.Do(func() { cs.err = cs.configure() })
	if cs.err != nil {
		return cs.err
	}
	cs.ecs.Update()
	return nil
}

func (cs *ClimberScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
}

// Close cancels pending clip loads and stops the tuning watcher.
func (cs *ClimberScene) Close() error {
	if cs.cancel != nil {
		cs.cancel()
	}
	if cs.ecs != nil {
		systems.RemovePlayers(cs.ecs)
	}
	if cs.watcher != nil {
		return cs.watcher.Close()
	}
	return nil
}

func (cs *ClimberScene) configure() error {
	ecs := ecs.NewECS(donburi.NewWorld())

	if cfg.Debug.TuningPath != "" {
		w, err := cfg.NewTuningWatcher(cfg.Debug.TuningPath)
		if err != nil {
			log.Printf("Warning: Could not watch tuning file: %v", err)
		} else {
			cs.watcher = w
		}
	}

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.TuningReloader(cs.watcher))
	// Ladder zones must be resolved before the controllers step.
	ecs.AddSystem(systems.UpdateLadders)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdatePersistence)
	ecs.AddSystem(systems.UpdateMessage)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawMessage)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	cs.ecs = ecs

	// Create the level entity and load level data FIRST.
	levelEntry := factory.CreateLevel(ecs, cfg.Debug.LevelName)
	level := components.Level.Get(levelEntry).CurrentLevel
	if len(level.Spawns) == 0 {
		return errors.New("no player spawn points defined in map " + level.Name)
	}

	worldEntry, err := factory.CreateWorld(ecs, level)
	if err != nil {
		return err
	}
	world := components.World.Get(worldEntry).World

	spawn := level.Spawns[0]
	factory.CreateCamera(ecs, spawn.X, spawn.Z)

	ctx, cancel := context.WithCancel(context.Background())
	cs.cancel = cancel
	if _, err := factory.CreatePlayer(ctx, ecs, world, spawn, "player", systems.NewInputSource(ecs)); err != nil {
		return fmt.Errorf("configure %s: %w", level.Name, err)
	}

	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(ecs, saved)
	}
	return nil
}
