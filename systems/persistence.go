package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/climber/components"
	cfg "github.com/automoto/climber/config"
	"github.com/automoto/climber/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the view settings stored on disk
type SavedSettings struct {
	CameraYaw  float64 `json:"cameraYaw"`
	CameraZoom float64 `json:"cameraZoom"`
	Debug      bool    `json:"debug"`
}

// SavedPosition is the quick-save slot
type SavedPosition struct {
	Level string  `json:"level"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Yaw   float64 `json:"yaw"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "climber",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

func loadItem(key string, v any) (bool, error) {
	if !gdataInitialized || gdataManager == nil {
		return false, nil
	}

	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false, nil
	}
	if len(data) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return false, err
	}
	return true, nil
}

func saveItem(key string, v any) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", key, err)
		return err
	}

	if err := gdataManager.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
		return err
	}
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing is saved.
func LoadSettings() (*SavedSettings, error) {
	var s SavedSettings
	ok, err := loadItem("settings", &s)
	if !ok {
		return nil, err
	}
	return &s, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveItem("settings", s)
}

// LoadQuickSave loads the quick-save slot. It returns nil when nothing is saved.
func LoadQuickSave() (*SavedPosition, error) {
	var p SavedPosition
	ok, err := loadItem("quicksave", &p)
	if !ok {
		return nil, err
	}
	return &p, nil
}

// SaveQuickSave writes the quick-save slot
func SaveQuickSave(p *SavedPosition) error {
	return saveItem("quicksave", p)
}

// ApplySavedSettingsGlobal applies settings before any scene exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.Debug.Enabled = saved.Debug
	if saved.CameraZoom > 0 {
		cfg.Camera.Zoom = saved.CameraZoom
	}
}

// ApplySavedSettings applies loaded settings to the running scene.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	ApplySavedSettingsGlobal(saved)
	if entry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(entry)
		camera.Yaw = wrapAngle(saved.CameraYaw)
		if saved.CameraZoom > 0 {
			camera.Zoom = saved.CameraZoom
		}
	}
}

// SaveCurrentSettings stores the camera and debug state.
func SaveCurrentSettings(e *ecs.ECS) {
	saved := &SavedSettings{Debug: cfg.Debug.Enabled, CameraZoom: cfg.Camera.Zoom}
	if entry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(entry)
		saved.CameraYaw = camera.Yaw
		saved.CameraZoom = camera.Zoom
	}
	_ = SaveSettings(saved)
}

// UpdatePersistence handles the quick-save and quick-load actions.
func UpdatePersistence(e *ecs.ECS) {
	input := getOrCreateInput(e)
	save := GetAction(input, cfg.ActionQuickSave).JustPressed
	load := GetAction(input, cfg.ActionQuickLoad).JustPressed
	if !save && !load {
		return
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.Controller == nil {
		return
	}
	levelName := ""
	if levelEntry, ok := components.Level.First(e.World); ok {
		if level := components.Level.Get(levelEntry).CurrentLevel; level != nil {
			levelName = level.Name
		}
	}
	var camera *components.CameraData
	if entry, ok := components.Camera.First(e.World); ok {
		camera = components.Camera.Get(entry)
	}

	if save {
		pos := player.Controller.Position()
		slot := &SavedPosition{Level: levelName, X: pos.X(), Y: pos.Y(), Z: pos.Z()}
		if camera != nil {
			slot.Yaw = camera.Yaw
		}
		if err := SaveQuickSave(slot); err != nil {
			ShowMessage(e, "Save failed")
			return
		}
		SaveCurrentSettings(e)
		ShowMessage(e, "Saved")
		return
	}

	slot, err := LoadQuickSave()
	switch {
	case err != nil || slot == nil:
		ShowMessage(e, "Nothing to load")
		return
	case slot.Level != levelName:
		ShowMessage(e, "Save is for level "+slot.Level)
		return
	}
	player.Controller.SetPosition(mgl64.Vec3{slot.X, slot.Y, slot.Z})
	player.Controller.SetLadder(nil)
	if camera != nil {
		camera.Yaw = wrapAngle(slot.Yaw)
	}
	ShowMessage(e, "Loaded")
}
