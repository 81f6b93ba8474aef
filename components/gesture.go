package components

import (
	"github.com/MicahWalkerDesign/bintoss/gamemath"
	"github.com/yohamta/donburi"
)

// GestureData is the active drag. Present on the session entity only while
// the phase is Dragging.
type GestureData struct {
	Start     gamemath.Vec
	Current   gamemath.Vec
	StartTick int
	Power     int // discrete power level 1..3 derived from pull distance
}

var Gesture = donburi.NewComponentType[GestureData]()

func (g *GestureData) Pull() gamemath.Vec {
	return g.Current.Sub(g.Start)
}
