package model

import "fmt"

// Display holds the values a surface renders for one State.
type Display struct {
	Phase             Phase
	Minutes           int
	Seconds           int
	Clock             string
	Running           bool
	CompletedSessions int
	Progress          float64
}

// Minutes returns the whole minutes left.
func (state State) Minutes() int {
	return state.Remaining / 60
}

// Seconds returns the seconds left within the current minute.
func (state State) Seconds() int {
	return state.Remaining % 60
}

// Clock formats the remaining time as mm:ss.
func (state State) Clock() string {
	return fmt.Sprintf("%02d:%02d", state.Minutes(), state.Seconds())
}

// Progress returns how much of the phase has elapsed, in percent.
func (state State) Progress() float64 {
	total := state.Phase.Duration()
	if total <= 0 {
		return 100
	}
	progress := 100 * float64(total-state.Remaining) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

// Display derives the render values.
func (state State) Display() Display {
	return Display{
		Phase:             state.Phase,
		Minutes:           state.Minutes(),
		Seconds:           state.Seconds(),
		Clock:             state.Clock(),
		Running:           state.Running,
		CompletedSessions: state.CompletedSessions,
		Progress:          state.Progress(),
	}
}
