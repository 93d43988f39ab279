package state

// GameState represents what the playing scene is doing with its actor
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateReplaying
	StateReplayDone
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateReplaying:
		return "Replaying"
	case StateReplayDone:
		return "ReplayDone"
	default:
		return "Unknown"
	}
}

// Ticking reports whether the simulation advances in this state
func (s GameState) Ticking() bool {
	return s == StatePlaying || s == StateReplaying
}

// TogglePause flips between running and paused. Replays pause back into
// replaying; a finished replay stays finished.
func (s GameState) TogglePause(replaying bool) GameState {
	switch s {
	case StatePlaying, StateReplaying:
		return StatePaused
	case StatePaused:
		if replaying {
			return StateReplaying
		}
		return StatePlaying
	default:
		return s
	}
}
