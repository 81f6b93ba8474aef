package components

import (
	"github.com/MicahWalkerDesign/bintoss/gamemath"
	"github.com/yohamta/donburi"
)

// TrailData is a bounded ring of past ball positions, rendering-only.
type TrailData struct {
	Positions []gamemath.Vec
	Head      int
	Count     int
}

var Trail = donburi.NewComponentType[TrailData]()

// Push records a position, evicting the oldest once the ring is full.
func (t *TrailData) Push(p gamemath.Vec) {
	if len(t.Positions) == 0 {
		return
	}
	t.Positions[t.Head] = p
	t.Head = (t.Head + 1) % len(t.Positions)
	if t.Count < len(t.Positions) {
		t.Count++
	}
}

// Each visits positions from oldest to newest.
func (t *TrailData) Each(fn func(i int, p gamemath.Vec)) {
	start := t.Head - t.Count
	for i := 0; i < t.Count; i++ {
		idx := (start + i + len(t.Positions)) % len(t.Positions)
		fn(i, t.Positions[idx])
	}
}

func (t *TrailData) Reset() {
	t.Head = 0
	t.Count = 0
}
