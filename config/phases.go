package config

// PhaseID identifies a session phase.
type PhaseID int

const (
	PhaseIdle PhaseID = iota
	PhaseReady
	PhaseDragging
	PhaseFlying
	PhaseCapturing
	PhaseRoundOver
)

var PhaseNames = map[PhaseID]string{
	PhaseIdle:      "idle",
	PhaseReady:     "ready",
	PhaseDragging:  "dragging",
	PhaseFlying:    "flying",
	PhaseCapturing: "capturing",
	PhaseRoundOver: "round over",
}
