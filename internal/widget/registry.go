// Package widget keeps mounted calculator widgets in memory and exposes them
// over HTTP.
package widget

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"critter-calc/internal/calculator"
	"critter-calc/internal/theme"
)

var ErrWidgetNotFound = errors.New("widget not found")

// Registry holds mounted widgets. When full, mounting a new widget evicts
// the one used least recently.
type Registry struct {
	widgets *lru.Cache[uuid.UUID, *Widget]
	logger  *zap.Logger
}

func NewRegistry(size int, logger *zap.Logger) (*Registry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Registry{logger: logger}

	cache, err := lru.NewWithEvict[uuid.UUID, *Widget](size, r.onRemove)
	if err != nil {
		return nil, fmt.Errorf("creating widget registry: %w", err)
	}
	r.widgets = cache

	return r, nil
}

// onRemove runs for explicit unmounts as well as evictions.
func (r *Registry) onRemove(id uuid.UUID, w *Widget) {
	if w.isUnmounted() {
		return
	}
	w.markUnmounted()

	r.logger.Info("widget evicted",
		zap.String("widget_id", id.String()),
		zap.String("theme", w.Theme.Name),
		zap.Duration("age", time.Since(w.MountedAt)),
	)
}

// Mount creates a widget in its initial state.
func (r *Registry) Mount(t theme.Theme) *Widget {
	w := newWidget(t)
	r.widgets.Add(w.ID, w)

	r.logger.Debug("widget mounted",
		zap.String("widget_id", w.ID.String()),
		zap.String("theme", t.Name),
	)
	return w
}

func (r *Registry) Get(id uuid.UUID) (*Widget, error) {
	w, ok := r.widgets.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrWidgetNotFound, id)
	}
	return w, nil
}

// Press applies b to the widget with the given id.
func (r *Registry) Press(id uuid.UUID, b calculator.Button) (Snapshot, error) {
	w, err := r.Get(id)
	if err != nil {
		return Snapshot{}, err
	}
	return w.Press(b), nil
}

// Unmount discards a widget and its state.
func (r *Registry) Unmount(id uuid.UUID) error {
	w, ok := r.widgets.Peek(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrWidgetNotFound, id)
	}

	w.markUnmounted()
	r.widgets.Remove(id)

	r.logger.Debug("widget unmounted",
		zap.String("widget_id", id.String()),
		zap.Int("presses", w.Snapshot().Presses),
	)
	return nil
}

// Len is the number of mounted widgets.
func (r *Registry) Len() int {
	return r.widgets.Len()
}
