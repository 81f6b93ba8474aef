package systems

import (
	"fmt"

	cfg "github.com/MicahWalkerDesign/bintoss/config"
	"github.com/MicahWalkerDesign/bintoss/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders score, throws remaining, the power meter while dragging,
// the wind readout and the round-over overlay.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	snap := TakeSnapshot(e)
	margin := int(cfg.HUD.Margin)

	text.Draw(screen, fmt.Sprintf("Score %d", snap.Score),
		fonts.Regular.Get(), margin, margin+14, cfg.HUD.TextColor)

	throws := fmt.Sprintf("Throws %d/%d", snap.ThrowsLeft, snap.MaxThrows)
	tw := text.BoundString(fonts.Regular.Get(), throws).Dx()
	text.Draw(screen, throws, fonts.Regular.Get(),
		cfg.C.Width-tw-margin, margin+14, cfg.HUD.TextColor)

	if snap.WindEnabled {
		w := fmt.Sprintf("wind %+.2f", snap.WindSpeed)
		ww := text.BoundString(fonts.Small.Get(), w).Dx()
		text.Draw(screen, w, fonts.Small.Get(),
			(cfg.C.Width-ww)/2, margin+32, cfg.HUD.TextColor)
	}

	drawPowerMeter(screen, snap.Gesture)

	if snap.Phase == cfg.PhaseRoundOver {
		drawRoundOver(screen, snap)
	}
}

func drawPowerMeter(screen *ebiten.Image, g *GestureSnapshot) {
	if g == nil {
		return
	}
	barW := float32(cfg.HUD.PowerBarW)
	barH := float32(cfg.HUD.PowerBarH)
	x := (float32(cfg.C.Width) - barW) / 2
	y := float32(cfg.C.Height) - 24

	segW := barW / 3
	for i := 0; i < 3; i++ {
		clr := cfg.HUD.OverlayColor
		if i < g.Power {
			clr = cfg.HUD.AccentColor
		}
		vector.DrawFilledRect(screen, x+float32(i)*segW+1, y, segW-2, barH, clr, false)
	}
}

func drawRoundOver(screen *ebiten.Image, snap Snapshot) {
	vector.DrawFilledRect(screen, 0, 0,
		float32(cfg.C.Width), float32(cfg.C.Height), cfg.HUD.OverlayColor, false)

	title := "ROUND OVER"
	titleW := text.BoundString(fonts.Title.Get(), title).Dx()
	text.Draw(screen, title, fonts.Title.Get(),
		(cfg.C.Width-titleW)/2, 200, cfg.HUD.AccentColor)

	score := fmt.Sprintf("Final score: %d", snap.Score)
	scoreW := text.BoundString(fonts.Regular.Get(), score).Dx()
	text.Draw(screen, score, fonts.Regular.Get(),
		(cfg.C.Width-scoreW)/2, 240, cfg.HUD.TextColor)

	hint := "Click or press ENTER to play again - ESC for menu"
	hintW := text.BoundString(fonts.Small.Get(), hint).Dx()
	text.Draw(screen, hint, fonts.Small.Get(),
		(cfg.C.Width-hintW)/2, 280, cfg.HUD.TextColor)
}
