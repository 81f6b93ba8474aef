package systems

import (
	"log"

	"github.com/MicahWalkerDesign/bintoss/components"
	cfg "github.com/MicahWalkerDesign/bintoss/config"
	"github.com/MicahWalkerDesign/bintoss/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID

var (
	mouseDragging bool
	activeTouch   = ebiten.TouchID(-1)
)

// UpdateInput polls pointer and touch state and applies it to the session
// between ticks. Each source carries its own press tolerance. Releasing or
// leaving the surface mid-drag goes through the same Release path.
func UpdateInput(e *ecs.ECS) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)

	if session.Phase == cfg.PhaseRoundOver {
		mouseDragging = false
		activeTouch = -1
		if restartRequested() {
			if err := StartRound(e); err != nil {
				log.Printf("restart round: %v", err)
			}
		}
		return
	}

	// Pointer
	if !mouseDragging && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if PressAt(e, cursorVec(), cfg.Input.Pointer) {
			mouseDragging = true
		}
	}
	if mouseDragging {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			DragTo(e, cursorVec())
		} else {
			Release(e)
			mouseDragging = false
		}
	}

	// Touch
	if activeTouch < 0 {
		touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
		for _, id := range touchIDs {
			x, y := ebiten.TouchPosition(id)
			if PressAt(e, gamemath.Vec{X: float64(x), Y: float64(y)}, cfg.Input.Touch) {
				activeTouch = id
				break
			}
		}
	} else {
		if inpututil.IsTouchJustReleased(activeTouch) {
			Release(e)
			activeTouch = -1
		} else {
			x, y := ebiten.TouchPosition(activeTouch)
			DragTo(e, gamemath.Vec{X: float64(x), Y: float64(y)})
		}
	}
}

func restartRequested() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return true
	}
	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	return len(touchIDs) > 0
}

func cursorVec() gamemath.Vec {
	x, y := ebiten.CursorPosition()
	return gamemath.Vec{X: float64(x), Y: float64(y)}
}
