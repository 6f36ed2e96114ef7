package state

// SceneState is the lifecycle stage of a registered scene
type SceneState int

const (
	StateRegistered SceneState = iota
	StateInitialized
	StateLoaded
	StateDegraded // active, but Load reported an error
	StateUnloaded
)

// String returns the string representation of the scene state
func (s SceneState) String() string {
	switch s {
	case StateRegistered:
		return "Registered"
	case StateInitialized:
		return "Initialized"
	case StateLoaded:
		return "Loaded"
	case StateDegraded:
		return "Degraded"
	case StateUnloaded:
		return "Unloaded"
	default:
		return "Unknown"
	}
}

// Active reports whether a scene in this state receives ticks and renders
func (s SceneState) Active() bool {
	return s == StateLoaded || s == StateDegraded
}
