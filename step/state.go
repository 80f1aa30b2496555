package step

// State describes whether a step is currently in progress. At most one step
// runs per character; the state flag is the mutual exclusion primitive.
type State uint8

const (
	StateIdle State = iota
	StateStepping
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStepping:
		return "stepping"
	}
	return "unknown"
}
