package widget

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"critter-calc/internal/calculator"
	"critter-calc/internal/theme"
)

// Widget is one mounted calculator: an engine state dressed in a theme.
type Widget struct {
	ID        uuid.UUID
	Theme     theme.Theme
	MountedAt time.Time

	mu        sync.Mutex
	state     calculator.State
	presses   int
	unmounted bool
}

func newWidget(t theme.Theme) *Widget {
	return &Widget{
		ID:        uuid.New(),
		Theme:     t,
		MountedAt: time.Now(),
		state:     calculator.New(),
	}
}

// Press runs one key through the engine. Presses on the same widget are
// applied one at a time, in arrival order.
func (w *Widget) Press(b calculator.Button) Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.state = w.state.Press(b)
	w.presses++
	return w.snapshotLocked()
}

// State returns a copy of the engine state.
func (w *Widget) State() calculator.State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *Widget) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

func (w *Widget) snapshotLocked() Snapshot {
	s := Snapshot{
		ID:                w.ID.String(),
		Theme:             w.Theme.Name,
		Display:           w.state.Display,
		Operation:         w.state.Operation.String(),
		WaitingForOperand: w.state.WaitingForOperand,
		Presses:           w.presses,
	}
	if w.state.HasPrevious {
		prev := calculator.FormatNumber(w.state.Previous)
		s.PreviousValue = &prev
	}
	return s
}

func (w *Widget) markUnmounted() {
	w.mu.Lock()
	w.unmounted = true
	w.mu.Unlock()
}

func (w *Widget) isUnmounted() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.unmounted
}
