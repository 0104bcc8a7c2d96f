package widget

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"critter-calc/internal/calculator"
	"critter-calc/internal/handlers"
	"critter-calc/internal/observability"
	"critter-calc/internal/theme"
)

// tracer is the widget service's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("widget")

// Handler serves the widget endpoints over one registry.
type Handler struct {
	registry     *Registry
	defaultTheme theme.Theme
}

func NewHandler(registry *Registry, defaultTheme theme.Theme) *Handler {
	return &Handler{registry: registry, defaultTheme: defaultTheme}
}

// ---------------------------------------------------------------------------
// Handlers: widget lifecycle
// ---------------------------------------------------------------------------

// Mount handles POST /widgets
func (h *Handler) Mount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "widget.mount",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	var req MountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		observability.RecordError(ctx, span, logger, errorCounter, "mount", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	t := h.defaultTheme
	if req.Theme != "" {
		var err error
		t, err = theme.Lookup(req.Theme)
		if err != nil {
			observability.RecordError(ctx, span, logger, errorCounter, "mount", "unknown theme", err, http.StatusBadRequest, w)
			return
		}
	}

	wd := h.registry.Mount(t)

	mountCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("theme", t.Name)))
	span.SetAttributes(
		attribute.String("widget.id", wd.ID.String()),
		attribute.String("widget.theme", t.Name),
	)
	span.SetStatus(codes.Ok, "")

	logger.Info("widget mounted",
		zap.String("widget_id", wd.ID.String()),
		zap.String("theme", t.Name),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusCreated, wd.Snapshot())
}

// Get handles GET /widgets/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	ctx, span := tracer.Start(ctx, "widget.get")
	defer span.End()

	wd, ok := h.lookup(ctx, span, logger, "get", w, r)
	if !ok {
		return
	}

	span.SetStatus(codes.Ok, "")
	handlers.WriteJSON(w, http.StatusOK, wd.Snapshot())
}

// Unmount handles DELETE /widgets/{id}
func (h *Handler) Unmount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "widget.unmount")
	defer span.End()

	wd, ok := h.lookup(ctx, span, logger, "unmount", w, r)
	if !ok {
		return
	}

	if err := h.registry.Unmount(wd.ID); err != nil {
		// Evicted between lookup and removal.
		observability.RecordError(ctx, span, logger, errorCounter, "unmount", "widget not found", err, http.StatusNotFound, w)
		return
	}

	mountCounter.Add(ctx, -1, metric.WithAttributes(attribute.String("theme", wd.Theme.Name)))
	span.SetStatus(codes.Ok, "")

	logger.Info("widget unmounted",
		zap.String("widget_id", wd.ID.String()),
		zap.String("request_id", requestID),
	)

	w.WriteHeader(http.StatusNoContent)
}

// Themes handles GET /themes
func (h *Handler) Themes(w http.ResponseWriter, r *http.Request) {
	keypad := theme.DefaultKeypad()

	all := theme.All()
	resp := make([]ThemeResponse, len(all))
	for i, t := range all {
		resp[i] = ThemeResponse{Theme: t, Keypad: keypad}
	}

	handlers.WriteJSON(w, http.StatusOK, resp)
}

// ---------------------------------------------------------------------------
// Handlers: button presses
// ---------------------------------------------------------------------------

// Press handles POST /widgets/{id}/press
func (h *Handler) Press(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "widget.press",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	wd, ok := h.lookup(ctx, span, logger, "press", w, r)
	if !ok {
		return
	}

	var req PressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "press", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	b, err := calculator.ParseButton(req.Button)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "press", "unknown button", err, http.StatusBadRequest, w)
		return
	}

	snap, elapsed := h.press(ctx, span, wd, b)
	span.SetStatus(codes.Ok, "")

	logger.Info("button pressed",
		zap.String("widget_id", snap.ID),
		zap.String("button", string(b)),
		zap.String("display", snap.Display),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, snap)
}

// Sequence handles POST /widgets/{id}/sequence. It presses several buttons in
// order, with a child span for every press. All buttons are validated before
// the first one is applied.
func (h *Handler) Sequence(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	// Parent span for the whole sequence
	ctx, span := tracer.Start(ctx, "widget.sequence",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	wd, ok := h.lookup(ctx, span, logger, "sequence", w, r)
	if !ok {
		return
	}

	var req SequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "sequence", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if len(req.Buttons) == 0 {
		observability.RecordError(ctx, span, logger, errorCounter, "sequence", "no buttons provided", fmt.Errorf("buttons array is empty"), http.StatusBadRequest, w)
		return
	}

	buttons := make([]calculator.Button, len(req.Buttons))
	for i, s := range req.Buttons {
		b, err := calculator.ParseButton(s)
		if err != nil {
			observability.RecordError(ctx, span, logger, errorCounter, "sequence", "unknown button", fmt.Errorf("step %d: %w", i, err), http.StatusBadRequest, w)
			return
		}
		buttons[i] = b
	}

	span.SetAttributes(attribute.Int("sequence.length", len(buttons)))

	steps := make([]SequenceStep, 0, len(buttons))
	var snap Snapshot

	for i, b := range buttons {
		// --- Child span per press ---
		stepCtx, stepSpan := tracer.Start(ctx, fmt.Sprintf("widget.sequence.step.%d", i),
			trace.WithAttributes(
				attribute.Int("sequence.step.index", i),
				attribute.String("sequence.step.button", string(b)),
			),
		)

		snap, _ = h.press(stepCtx, stepSpan, wd, b)
		stepSpan.SetStatus(codes.Ok, "")
		stepSpan.End()

		steps = append(steps, SequenceStep{Button: string(b), Display: snap.Display})
	}

	span.AddEvent("sequence.complete", trace.WithAttributes(
		attribute.String("display", snap.Display),
		attribute.Int("total_steps", len(buttons)),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("button sequence applied",
		zap.String("widget_id", snap.ID),
		zap.Int("steps", len(buttons)),
		zap.String("display", snap.Display),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, SequenceResponse{Steps: steps, Widget: snap})
}

// press applies one button and records its span attributes and metrics.
// It returns the new snapshot and the press duration in milliseconds.
func (h *Handler) press(ctx context.Context, span trace.Span, wd *Widget, b calculator.Button) (Snapshot, float64) {
	start := time.Now()
	snap := wd.Press(b)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	attrs := metric.WithAttributes(
		attribute.String("button", string(b)),
		attribute.String("theme", wd.Theme.Name),
	)
	pressCounter.Add(ctx, 1, attrs)
	pressHistogram.Record(ctx, elapsed, attrs)

	span.SetAttributes(
		attribute.String("widget.id", snap.ID),
		attribute.String("widget.button", string(b)),
		attribute.String("widget.display", snap.Display),
	)

	if v := calculator.ParseNumber(snap.Display); math.IsNaN(v) || math.IsInf(v, 0) {
		nonFiniteCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("theme", wd.Theme.Name)))
		span.AddEvent("display.non_finite", trace.WithAttributes(attribute.String("display", snap.Display)))
	} else {
		displayGauge.Record(ctx, v, metric.WithAttributes(attribute.String("theme", wd.Theme.Name)))
	}

	return snap, elapsed
}

// lookup resolves the {id} URL parameter, writing the error response itself
// when it cannot.
func (h *Handler) lookup(ctx context.Context, span trace.Span, logger *zap.Logger, opName string, w http.ResponseWriter, r *http.Request) (*Widget, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid widget id", err, http.StatusBadRequest, w)
		return nil, false
	}

	wd, err := h.registry.Get(id)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "widget not found", err, http.StatusNotFound, w)
		return nil, false
	}

	span.SetAttributes(attribute.String("widget.id", id.String()))
	return wd, true
}
