package components

import (
	"github.com/yohamta/donburi"
)

// BallData is the single in-flight projectile. Position lives on the
// entity's resolv object; the fields here are per-throw state.
type BallData struct {
	Radius   float64
	Rotation float64 // cosmetic spin, no physical meaning
	InFlight bool

	// PrevY is the vertical center position on the previous tick, used by
	// the rim-plane crossing check.
	PrevY float64

	// ValidEntry latches once a scoring condition fires for this throw. It
	// guarantees at most one score per throw and keeps a later ground
	// contact from reporting the throw as a miss.
	ValidEntry bool
}

var Ball = donburi.NewComponentType[BallData]()
