package dot

// State is the tracking state of a dot
type State int

const (
	// StateSeeded is the state of a dot placed at explicit coordinates and never tracked yet
	StateSeeded State = iota
	// StateTracking is the state of a dot with valid parameters
	StateTracking
	// StateLost is terminal until the dot is seeded again
	StateLost
)

func (s State) String() string {
	switch s {
	case StateSeeded:
		return "seeded"
	case StateTracking:
		return "tracking"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}
