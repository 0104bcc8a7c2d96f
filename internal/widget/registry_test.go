package widget

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"critter-calc/internal/calculator"
	"critter-calc/internal/theme"
)

func newTestRegistry(t *testing.T, size int) *Registry {
	t.Helper()
	r, err := NewRegistry(size, zap.NewNop())
	if err != nil {
		t.Fatalf("creating registry: %v", err)
	}
	return r
}

func TestNewRegistryRejectsNonPositiveSize(t *testing.T) {
	if _, err := NewRegistry(0, nil); err == nil {
		t.Fatal("expected error for size 0")
	}
}

func TestMountStartsInInitialState(t *testing.T) {
	r := newTestRegistry(t, 4)
	hog, _ := theme.Lookup("hedgehog")

	w := r.Mount(hog)

	if got := w.State(); got != calculator.New() {
		t.Fatalf("expected initial state, got %+v", got)
	}

	snap := w.Snapshot()
	if snap.Theme != "hedgehog" || snap.Display != "0" || snap.PreviousValue != nil || snap.Presses != 0 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if r.Len() != 1 {
		t.Fatalf("expected 1 mounted widget, got %d", r.Len())
	}
}

func TestPressThroughRegistry(t *testing.T) {
	r := newTestRegistry(t, 4)
	w := r.Mount(theme.Default())

	var snap Snapshot
	var err error
	for _, b := range []calculator.Button{calculator.Button7, calculator.ButtonAdd, calculator.Button3} {
		snap, err = r.Press(w.ID, b)
		if err != nil {
			t.Fatalf("press %q: %v", b, err)
		}
	}

	if snap.Display != "3" || snap.Operation != "+" {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.PreviousValue == nil || *snap.PreviousValue != "7" {
		t.Fatalf("expected previous value 7, got %v", snap.PreviousValue)
	}

	snap, _ = r.Press(w.ID, calculator.ButtonEquals)
	if snap.Display != "10" || snap.Operation != "" || snap.PreviousValue != nil || !snap.WaitingForOperand {
		t.Fatalf("unexpected snapshot after equals %+v", snap)
	}
	if snap.Presses != 4 {
		t.Fatalf("expected 4 presses, got %d", snap.Presses)
	}
}

func TestSnapshotFormatsNonFinitePreviousValue(t *testing.T) {
	r := newTestRegistry(t, 4)
	w := r.Mount(theme.Default())

	for _, b := range []calculator.Button{calculator.Button1, calculator.ButtonDivide, calculator.Button0, calculator.ButtonAdd} {
		w.Press(b)
	}

	snap := w.Snapshot()
	if snap.PreviousValue == nil || *snap.PreviousValue != "Infinity" {
		t.Fatalf("expected previous value Infinity, got %v", snap.PreviousValue)
	}
}

func TestWidgetsAreIndependent(t *testing.T) {
	r := newTestRegistry(t, 4)
	dino := r.Mount(theme.Default())
	hog := r.Mount(theme.Default())

	dino.Press(calculator.Button4)
	hog.Press(calculator.Button9)

	if dino.Snapshot().Display != "4" || hog.Snapshot().Display != "9" {
		t.Fatalf("expected independent displays, got %q and %q", dino.Snapshot().Display, hog.Snapshot().Display)
	}
}

func TestConcurrentPressesAreSerialised(t *testing.T) {
	r := newTestRegistry(t, 4)
	w := r.Mount(theme.Default())

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.Press(w.ID, calculator.Button1); err != nil {
				t.Errorf("press: %v", err)
			}
		}()
	}
	wg.Wait()

	snap := w.Snapshot()
	if snap.Presses != 100 {
		t.Fatalf("expected 100 presses, got %d", snap.Presses)
	}
	if want := strings.Repeat("1", 100); snap.Display != want {
		t.Fatalf("expected 100 ones, got %q", snap.Display)
	}
}

func TestUnknownWidget(t *testing.T) {
	r := newTestRegistry(t, 4)
	id := uuid.New()

	if _, err := r.Get(id); !errors.Is(err, ErrWidgetNotFound) {
		t.Fatalf("get: expected ErrWidgetNotFound, got %v", err)
	}
	if _, err := r.Press(id, calculator.Button1); !errors.Is(err, ErrWidgetNotFound) {
		t.Fatalf("press: expected ErrWidgetNotFound, got %v", err)
	}
	if err := r.Unmount(id); !errors.Is(err, ErrWidgetNotFound) {
		t.Fatalf("unmount: expected ErrWidgetNotFound, got %v", err)
	}
}

func TestUnmountDiscardsWidget(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r, err := NewRegistry(4, zap.New(core))
	if err != nil {
		t.Fatalf("creating registry: %v", err)
	}

	w := r.Mount(theme.Default())
	if err := r.Unmount(w.ID); err != nil {
		t.Fatalf("unmount: %v", err)
	}

	if r.Len() != 0 {
		t.Fatalf("expected empty registry, got %d", r.Len())
	}
	if n := logs.FilterMessage("widget evicted").Len(); n != 0 {
		t.Fatalf("expected no eviction log for an explicit unmount, got %d", n)
	}
}

func TestFullRegistryEvictsLeastRecentlyUsed(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r, err := NewRegistry(2, zap.New(core))
	if err != nil {
		t.Fatalf("creating registry: %v", err)
	}

	first := r.Mount(theme.Default())
	second := r.Mount(theme.Default())

	// Touch first so second becomes the oldest.
	if _, err := r.Press(first.ID, calculator.Button1); err != nil {
		t.Fatalf("press: %v", err)
	}

	third := r.Mount(theme.Default())

	if _, err := r.Get(second.ID); !errors.Is(err, ErrWidgetNotFound) {
		t.Fatalf("expected second widget to be evicted, got %v", err)
	}
	for _, w := range []*Widget{first, third} {
		if _, err := r.Get(w.ID); err != nil {
			t.Fatalf("expected widget %s to stay mounted: %v", w.ID, err)
		}
	}

	evicted := logs.FilterMessage("widget evicted").All()
	if len(evicted) != 1 {
		t.Fatalf("expected 1 eviction log, got %d", len(evicted))
	}
	if got := evicted[0].ContextMap()["widget_id"]; got != second.ID.String() {
		t.Fatalf("expected evicted widget %s, got %#v", second.ID, got)
	}
}
