package tags

import "github.com/yohamta/donburi"

var (
	Ball    = donburi.NewTag().SetName("Ball")
	Bin     = donburi.NewTag().SetName("Bin")
	Session = donburi.NewTag().SetName("Session")
)

// Resolv tags for physics collision
const (
	ResolvBall      = "ball"
	ResolvRimLeft   = "rim_left"
	ResolvRimRight  = "rim_right"
	ResolvWallLeft  = "wall_left"
	ResolvWallRight = "wall_right"
	ResolvGround    = "ground"
)
