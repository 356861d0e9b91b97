package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/climber/components"
	cfg "github.com/automoto/climber/config"
	"github.com/automoto/climber/fonts"
	"github.com/automoto/climber/physics"
	"github.com/automoto/climber/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var debugFontFace font.Face

// UpdateDebug toggles the debug overlay.
func UpdateDebug(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		cfg.Debug.Enabled = !cfg.Debug.Enabled
		SaveCurrentSettings(ecs)
	}
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Enabled {
		return
	}
	camera, ok := getCamera(ecs)
	if !ok {
		return // No camera yet
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	if cfg.Debug.ShowBodies {
		if worldEntry, ok := components.World.First(ecs.World); ok {
			if world := components.World.Get(worldEntry); world.World != nil {
				for _, obj := range world.Space().Objects() {
					drawObjectOutline(screen, camera, width, height, obj)
				}
			}
		}
	}

	if cfg.Debug.ShowAnimMix {
		drawAnimMix(ecs, screen)
	}
}

func drawObjectOutline(screen *ebiten.Image, camera *components.CameraData, width, height int, obj *resolv.Object) {
	// Determine color based on tags
	c := color.RGBA{0, 255, 255, 255} // Cyan default
	if obj.HasTags(tags.ResolvSolid) {
		c = color.RGBA{100, 100, 100, 255} // Grey
	} else if obj.HasTags(tags.ResolvRamp) {
		c = color.RGBA{255, 200, 0, 255}
	} else if obj.HasTags(tags.ResolvLadder) {
		c = color.RGBA{0, 255, 0, 255} // Green
	} else if obj.HasTags(tags.ResolvCharacter) {
		c = color.RGBA{0, 0, 255, 255} // Blue
	}

	minX, minZ, maxX, maxZ := physics.FromSpace(obj)
	corners := [4][2]float64{{minX, minZ}, {maxX, minZ}, {maxX, maxZ}, {minX, maxZ}}
	var pts [4][2]float32
	for i, p := range corners {
		x, y := project(camera, width, height, p[0], p[1])
		pts[i] = [2]float32{float32(x), float32(y)}
	}
	for i := range pts {
		a, b := pts[i], pts[(i+1)%4]
		vector.StrokeLine(screen, a[0], a[1], b[0], b[1], 1, c, false)
	}
}

// drawAnimMix lists the player's blend layers along the bottom of the screen.
func drawAnimMix(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.Mixer == nil {
		return
	}
	if debugFontFace == nil {
		debugFontFace = fonts.Mono.Get()
	}

	layers := player.Mixer.Layers()
	lineHeight := cfg.UI.HUDLineHeight
	y := float64(screen.Bounds().Dy()) - cfg.UI.HUDMargin - lineHeight*float64(len(layers))
	for _, l := range layers {
		y += lineHeight
		bar := float32(l.Weight * 80)
		vector.FillRect(screen, float32(cfg.UI.HUDMargin), float32(y-lineHeight+4), bar, float32(lineHeight-6), cfg.LightBlue, false)
		label := fmt.Sprintf("%-14s %.2f f%d %3.0f%%", l.Clip.Name(), l.Weight, l.Clip.Frame(), l.Clip.Progress()*100)
		text.Draw(screen, label, debugFontFace, int(cfg.UI.HUDMargin+88), int(y-4), cfg.White) //nolint:staticcheck // TODO: migrate to text/v2
	}
}
