package systems

import (
	"log"

	"github.com/automoto/climber/components"
	cfg "github.com/automoto/climber/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TuningReloader returns a system that re-applies the tuning file whenever
// the watcher reports a change. A nil watcher yields a no-op system.
func TuningReloader(watcher *cfg.TuningWatcher) ecs.System {
	return func(e *ecs.ECS) {
		if watcher == nil {
			return
		}
		select {
		case path, ok := <-watcher.Events:
			if !ok {
				return
			}
			if err := cfg.LoadTuning(path); err != nil {
				log.Printf("Warning: Could not reload tuning: %v", err)
				ShowMessage(e, "Tuning error, see log")
				return
			}
			ApplyTuning(e)
			ShowMessage(e, "Tuning reloaded")
		case err, ok := <-watcher.Errors:
			if ok {
				log.Printf("Warning: Tuning watcher: %v", err)
			}
		default:
		}
	}
}

// ApplyTuning pushes the current config tuning into the running world and
// every player controller.
func ApplyTuning(e *ecs.ECS) {
	if entry, ok := components.World.First(e.World); ok {
		if w := components.World.Get(entry); w.World != nil {
			w.SetSettings(cfg.Physics)
		}
	}
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		if player := components.Player.Get(entry); player.Controller != nil {
			player.Controller.SetSettings(cfg.Locomotion)
		}
	})
}
