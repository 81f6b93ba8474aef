package systems

import (
	"github.com/yohamta/donburi/ecs"
	devents "github.com/yohamta/donburi/features/events"
)

// ProcessEvents flushes queued event notifications to subscribers. Runs
// last in the system order so subscribers observe a consistent tick.
func ProcessEvents(e *ecs.ECS) {
	devents.ProcessAllEvents(e.World)
}
