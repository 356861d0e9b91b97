package systems

import (
	"fmt"

	"github.com/automoto/climber/components"
	cfg "github.com/automoto/climber/config"
	"github.com/automoto/climber/fonts"
	"github.com/automoto/climber/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var (
	hudFontFace  font.Face
	hintFontFace font.Face
)

const controlsHint = "WASD move  Shift run  Space jump  Q/E turn  F1 debug"

// DrawHUD renders the player's locomotion readout in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.Controller == nil {
		return
	}
	if hudFontFace == nil {
		hudFontFace = fonts.HUD.Get()
	}

	ctrl := player.Controller
	pos := ctrl.Position()
	ladder := ctrl.Ladder()

	lines := []string{
		fmt.Sprintf("pos %.2f %.2f %.2f", pos.X(), pos.Y(), pos.Z()),
		fmt.Sprintf("grounded %v  vy %.2f", ctrl.Grounded(), ctrl.VerticalVelocity()),
		fmt.Sprintf("ladder %s", ladder.State),
	}
	if ladder.Cooldown > 0 {
		lines[2] += fmt.Sprintf(" %.2fs", ladder.Cooldown)
	}
	intent := ctrl.LastIntent()
	move := fmt.Sprintf("intent %.2f", intent.Magnitude())
	if intent.Running {
		move += " run"
	}
	lines = append(lines, move)
	if ctrl.HasAnimation() {
		anim := fmt.Sprintf("anim %s", ctrl.AnimState())
		// The dominant layer is what is on screen mid-crossfade.
		if player.Mixer != nil {
			if clip := player.Mixer.Dominant(); clip != nil {
				anim += fmt.Sprintf(" (%s %.0f%%)", clip.Name(), player.Mixer.Weight(clip)*100)
			}
		} else if clip := ctrl.ActiveClip(); clip != nil {
			anim += " (" + clip.Name() + ")"
		}
		lines = append(lines, anim)
	} else {
		lines = append(lines, "anim loading")
	}

	margin := cfg.UI.HUDMargin
	lineHeight := cfg.UI.HUDLineHeight
	boxH := float32(lineHeight*float64(len(lines)) + margin)
	vector.FillRect(screen, float32(margin/2), float32(margin/2), 200, boxH, cfg.UI.HUDBgColor, false)

	for i, line := range lines {
		y := int(margin + lineHeight*float64(i+1) - 4)
		text.Draw(screen, line, hudFontFace, int(margin), y, cfg.UI.HUDTextColor) //nolint:staticcheck // TODO: migrate to text/v2
	}

	if hintFontFace == nil {
		hintFontFace = fonts.HUDSmall.Get()
	}
	hint := text.BoundString(hintFontFace, controlsHint) //nolint:staticcheck // TODO: migrate to text/v2
	hx := screen.Bounds().Dx() - hint.Dx() - int(margin)
	hy := screen.Bounds().Dy() - int(margin)
	text.Draw(screen, controlsHint, hintFontFace, hx, hy, cfg.UI.HUDTextColor) //nolint:staticcheck // TODO: migrate to text/v2
}
