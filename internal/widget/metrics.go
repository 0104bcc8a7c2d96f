package widget

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments, initialized once via InitMetrics().
var (
	pressCounter     metric.Int64Counter
	pressHistogram   metric.Float64Histogram
	errorCounter     metric.Int64Counter
	nonFiniteCounter metric.Int64Counter
	mountCounter     metric.Int64UpDownCounter
	displayGauge     metric.Float64Gauge
)

// InitMetrics registers the OTel instruments for widget traffic.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("widget")

	var err error

	pressCounter, err = meter.Int64Counter("widget.presses.total",
		metric.WithDescription("Total number of button presses applied to widgets"),
		metric.WithUnit("{press}"),
	)
	if err != nil {
		return fmt.Errorf("creating press counter: %w", err)
	}

	pressHistogram, err = meter.Float64Histogram("widget.press.duration",
		metric.WithDescription("Duration of a button press in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating press histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("widget.errors.total",
		metric.WithDescription("Total number of rejected widget requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	nonFiniteCounter, err = meter.Int64Counter("widget.non_finite_results.total",
		metric.WithDescription("Results that left Infinity or NaN on the display"),
		metric.WithUnit("{result}"),
	)
	if err != nil {
		return fmt.Errorf("creating non-finite counter: %w", err)
	}

	mountCounter, err = meter.Int64UpDownCounter("widget.mounted",
		metric.WithDescription("Widgets mounted minus widgets unmounted over HTTP"),
		metric.WithUnit("{widget}"),
	)
	if err != nil {
		return fmt.Errorf("creating mount counter: %w", err)
	}

	displayGauge, err = meter.Float64Gauge("widget.last_display",
		metric.WithDescription("The finite value last shown on a widget display"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating display gauge: %w", err)
	}

	return nil
}
