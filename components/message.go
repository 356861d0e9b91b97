package components

import "github.com/yohamta/donburi"

// MessageStateData is a singleton tracking the active HUD notice
type MessageStateData struct {
	Text         string // e.g. "Saved", "Tuning reloaded"
	DisplayTimer int    // Frames remaining to display the current notice
}

var MessageState = donburi.NewComponentType[MessageStateData]()
