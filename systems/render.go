package systems

import (
	"image/color"
	"math"

	cfg "github.com/MicahWalkerDesign/bintoss/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawScene renders the playfield from the tick's snapshot: ground, throw
// origin, bin, trail, ball, drag indicator and wind arrow. The renderer is
// a pure consumer of the snapshot.
func DrawScene(e *ecs.ECS, screen *ebiten.Image) {
	snap := TakeSnapshot(e)

	w := float32(cfg.C.Width)
	h := float32(cfg.C.Height)
	groundY := float32(cfg.C.GroundY)

	vector.DrawFilledRect(screen, 0, groundY, w, h-groundY, cfg.Ground, false)

	drawOrigin(screen, snap)
	drawBin(screen, snap.Bin)
	drawTrail(screen, snap)
	drawBall(screen, snap.Ball)
	drawGesture(screen, snap.Gesture)
	drawWind(screen, snap)
}

func drawOrigin(screen *ebiten.Image, snap Snapshot) {
	if snap.Phase != cfg.PhaseReady && snap.Phase != cfg.PhaseDragging {
		return
	}
	ox := float32(cfg.C.OriginX)
	oy := float32(cfg.C.OriginY)
	vector.StrokeCircle(screen, ox, oy, float32(cfg.Input.OriginRadius), 1.5, cfg.LightBlue, true)
	if snap.Phase == cfg.PhaseReady {
		vector.DrawFilledCircle(screen, ox, oy, float32(cfg.Ball.Radius), cfg.Paper, true)
	}
}

func drawBin(screen *ebiten.Image, bin BinSnapshot) {
	if bin.BodyWidth == 0 {
		return
	}
	left := float32(bin.CenterX - bin.BodyWidth/2)
	rimY := float32(bin.RimY)
	bodyW := float32(bin.BodyWidth)
	bodyH := float32(bin.BodyHeight)
	barW := float32((bin.BodyWidth - bin.OpeningWidth) / 2)
	barH := float32(cfg.Bin.RimThickness)

	// Body, then the two rim bars over the opening's flanks.
	vector.DrawFilledRect(screen, left, rimY, bodyW, bodyH, cfg.BinGreen, false)
	vector.DrawFilledRect(screen, left, rimY-barH/2, barW, barH, cfg.BinRim, false)
	vector.DrawFilledRect(screen, left+bodyW-barW, rimY-barH/2, barW, barH, cfg.BinRim, false)
}

func drawTrail(screen *ebiten.Image, snap Snapshot) {
	n := len(snap.Trail)
	for i, p := range snap.Trail {
		frac := float64(i+1) / float64(n)
		clr := color.NRGBA{R: 180, G: 180, B: 180, A: uint8(90 * frac)}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(cfg.Ball.Radius)*0.5, clr, true)
	}
}

func drawBall(screen *ebiten.Image, ball *BallSnapshot) {
	if ball == nil {
		return
	}
	x := float32(ball.X)
	y := float32(ball.Y)
	r := float32(ball.Radius)
	vector.DrawFilledCircle(screen, x, y, r, cfg.Paper, true)

	// A crease line across the ball makes the spin visible.
	dx := float32(math.Cos(ball.Rotation)) * r * 0.8
	dy := float32(math.Sin(ball.Rotation)) * r * 0.8
	vector.StrokeLine(screen, x-dx, y-dy, x+dx, y+dy, 1, color.NRGBA{120, 120, 110, 255}, true)
}

func drawGesture(screen *ebiten.Image, g *GestureSnapshot) {
	if g == nil {
		return
	}
	vector.StrokeLine(screen,
		float32(g.Start.X), float32(g.Start.Y),
		float32(g.Current.X), float32(g.Current.Y),
		2, cfg.LightBlue, true)
	vector.DrawFilledCircle(screen, float32(g.Current.X), float32(g.Current.Y), 4, cfg.LightBlue, true)
}

func drawWind(screen *ebiten.Image, snap Snapshot) {
	if !snap.WindEnabled || snap.WindSpeed == 0 {
		return
	}
	cx := float32(cfg.C.Width) / 2
	y := float32(18)
	length := float32(snap.WindSpeed / cfg.Wind.MaxSpeed * 40)
	vector.StrokeLine(screen, cx-length, y, cx+length, y, 2, cfg.LightBlue, true)
	tip := cx + length
	dir := float32(1)
	if length < 0 {
		dir = -1
	}
	vector.StrokeLine(screen, tip, y, tip-5*dir, y-4, 2, cfg.LightBlue, true)
	vector.StrokeLine(screen, tip, y, tip-5*dir, y+4, 2, cfg.LightBlue, true)
}
