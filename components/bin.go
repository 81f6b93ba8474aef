package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// BinData is the target geometry. Immutable during a throw; re-placed once
// per round by the lane policy.
type BinData struct {
	CenterX      float64
	RimY         float64 // vertical position of the rim plane
	BodyWidth    float64
	BodyHeight   float64
	OpeningWidth float64
	Lane         string

	// Solids are the rim bars and side walls currently registered in the
	// collision space; rebuilt on every placement.
	Solids []*resolv.Object
}

var Bin = donburi.NewComponentType[BinData]()

func (b *BinData) OpeningLeft() float64 { return b.CenterX - b.OpeningWidth/2 }

func (b *BinData) OpeningRight() float64 { return b.CenterX + b.OpeningWidth/2 }

func (b *BinData) BodyLeft() float64 { return b.CenterX - b.BodyWidth/2 }

func (b *BinData) BodyRight() float64 { return b.CenterX + b.BodyWidth/2 }

// FloorY is where a captured ball comes to rest inside the bin.
func (b *BinData) FloorY() float64 { return b.RimY + b.BodyHeight }

// OpeningContains reports whether an x position lies within the opening's
// horizontal bounds.
func (b *BinData) OpeningContains(x float64) bool {
	return x >= b.OpeningLeft() && x <= b.OpeningRight()
}
