package components

import (
	"github.com/MicahWalkerDesign/bintoss/config"
	"github.com/yohamta/donburi"
)

// SessionData owns the round state. Score is monotonic and non-negative;
// ThrowsLeft decrements exactly once per accepted launch and never goes
// below zero.
type SessionData struct {
	Score      int
	ThrowsLeft int
	MaxThrows  int
	Phase      config.PhaseID
	PrevPhase  config.PhaseID
	TickCount  int
}

var Session = donburi.NewComponentType[SessionData]()
