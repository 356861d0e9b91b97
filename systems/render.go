package systems

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/automoto/climber/components"
	cfg "github.com/automoto/climber/config"
	"github.com/automoto/climber/physics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	quadIndices   = []uint16{0, 1, 2, 0, 2, 3}
	quadVertices  = make([]ebiten.Vertex, 4)
)

func init() {
	whiteImage.Fill(color.White)
}

// DrawLevel renders the collision geometry from above, lowest bodies first so
// raised platforms cover the floor.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	camera, ok := getCamera(ecs)
	if !ok {
		return
	}
	worldEntry, ok := components.World.First(ecs.World)
	if !ok {
		return
	}
	world := components.World.Get(worldEntry)
	if world.World == nil {
		return
	}

	bodies := world.Bodies()
	sort.SliceStable(bodies, func(i, j int) bool {
		return bodies[i].Max.Y() < bodies[j].Max.Y()
	})

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	for _, b := range bodies {
		if b.IsSensor() {
			continue
		}
		base := cfg.UI.SolidColor
		if b.IsRamp() {
			base = cfg.UI.RampColor
		}
		fillBox(screen, camera, width, height, b, shade(base, b.Max.Y()))
		if b.IsRamp() {
			drawRampArrow(screen, camera, width, height, b)
		}
	}

	for _, b := range bodies {
		if b.Ladder() != nil {
			drawLadder(screen, camera, width, height, b)
		}
	}
}

// DrawPlayer renders each player as a disc with a facing tick.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := getCamera(ecs)
	if !ok {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if player.Controller == nil {
			return
		}
		pos := player.Controller.Position()
		x, y := project(camera, width, height, pos.X(), pos.Z())
		radius := math.Max(cfg.Physics.Radius*camera.Zoom, 2)

		body := cfg.UI.PlayerColor
		if player.Controller.Ladder().Active() {
			body = cfg.UI.LadderColor
		}
		vector.FillCircle(screen, float32(x), float32(y), float32(radius), shade(body, pos.Y()), true)

		facing := player.Controller.Facing()
		fx, fy := project(camera, width, height,
			pos.X()+math.Sin(facing)*cfg.Physics.Radius*1.6,
			pos.Z()+math.Cos(facing)*cfg.Physics.Radius*1.6)
		vector.StrokeLine(screen, float32(x), float32(y), float32(fx), float32(fy), 2, cfg.UI.FacingColor, true)
	})
}

func getCamera(ecs *ecs.ECS) (*components.CameraData, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return nil, false // No camera yet
	}
	return components.Camera.Get(cameraEntry), true
}

// fillBox draws the top face of a body as a rotated quad.
func fillBox(screen *ebiten.Image, camera *components.CameraData, width, height int, b *physics.Body, clr color.RGBA) {
	corners := [4][2]float64{
		{b.Min.X(), b.Min.Z()},
		{b.Max.X(), b.Min.Z()},
		{b.Max.X(), b.Max.Z()},
		{b.Min.X(), b.Max.Z()},
	}
	cr, cg, cb, ca := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for i, c := range corners {
		x, y := project(camera, width, height, c[0], c[1])
		quadVertices[i] = ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}
	screen.DrawTriangles(quadVertices, quadIndices, whiteSubImage, nil)

	for i := range corners {
		a, c := quadVertices[i], quadVertices[(i+1)%4]
		vector.StrokeLine(screen, a.DstX, a.DstY, c.DstX, c.DstY, 1, cfg.UI.SolidTopColor, false)
	}
}

func drawRampArrow(screen *ebiten.Image, camera *components.CameraData, width, height int, b *physics.Body) {
	up := b.Uphill()
	cx := (b.Min.X() + b.Max.X()) / 2
	cz := (b.Min.Z() + b.Max.Z()) / 2
	half := math.Min(b.Max.X()-b.Min.X(), b.Max.Z()-b.Min.Z()) * 0.35
	x0, y0 := project(camera, width, height, cx-up.X()*half, cz-up.Z()*half)
	x1, y1 := project(camera, width, height, cx+up.X()*half, cz+up.Z()*half)
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 2, cfg.White, true)
	vector.FillCircle(screen, float32(x1), float32(y1), 3, cfg.White, true)
}

func drawLadder(screen *ebiten.Image, camera *components.CameraData, width, height int, b *physics.Body) {
	corners := [4][2]float64{
		{b.Min.X(), b.Min.Z()},
		{b.Max.X(), b.Min.Z()},
		{b.Max.X(), b.Max.Z()},
		{b.Min.X(), b.Max.Z()},
	}
	var pts [4][2]float32
	for i, c := range corners {
		x, y := project(camera, width, height, c[0], c[1])
		pts[i] = [2]float32{float32(x), float32(y)}
	}
	for i := range pts {
		a, c := pts[i], pts[(i+1)%4]
		vector.StrokeLine(screen, a[0], a[1], c[0], c[1], 2, cfg.UI.LadderColor, true)
	}
	// rungs
	for t := float32(0.25); t < 1; t += 0.25 {
		ax := pts[0][0] + (pts[3][0]-pts[0][0])*t
		ay := pts[0][1] + (pts[3][1]-pts[0][1])*t
		bx := pts[1][0] + (pts[2][0]-pts[1][0])*t
		by := pts[1][1] + (pts[2][1]-pts[1][1])*t
		vector.StrokeLine(screen, ax, ay, bx, by, 1, cfg.UI.LadderColor, true)
	}
}

// shade brightens c with height so stacked geometry reads from above.
func shade(c color.RGBA, y float64) color.RGBA {
	k := 1 + math.Max(-0.5, math.Min(1, y/8))
	scale := func(v uint8) uint8 {
		return uint8(math.Min(255, float64(v)*k))
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}
