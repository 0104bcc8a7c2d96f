package widget

import "github.com/prometheus/client_golang/prometheus"

// NewMountedCollector exposes the live registry size on /metrics. Unlike the
// OTel up-down counter it also reflects evictions.
func NewMountedCollector(r *Registry) prometheus.Collector {
	return prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: "critter",
			Name:      "widgets_mounted",
			Help:      "Number of calculator widgets currently mounted.",
		},
		func() float64 { return float64(r.Len()) },
	)
}
