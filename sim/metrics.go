package sim

import "github.com/prometheus/client_golang/prometheus"

// Metrics exposes simulator counters as Prometheus metrics. A nil *Metrics
// is safe to use and records nothing.
type Metrics struct {
	FixesTotal              prometheus.Counter
	WaypointsReached        prometheus.Counter
	FrameConversionFailures prometheus.Counter
	TerrainFailures         prometheus.Counter
}

// NewMetrics registers simulator metrics against the provided registerer.
// A nil registerer falls back to the default registry.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		FixesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "locsim_fixes_total",
			Help: "Cumulative number of position fixes emitted by the simulator.",
		}),
		WaypointsReached: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "locsim_waypoints_reached_total",
			Help: "Cumulative number of route waypoints reached.",
		}),
		FrameConversionFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "locsim_frame_conversion_failures_total",
			Help: "Altitude frame conversions that failed due to a missing reference.",
		}),
		TerrainFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "locsim_terrain_failures_total",
			Help: "Terrain provider queries that returned an error.",
		}),
	}

	for _, c := range []prometheus.Counter{
		m.FixesTotal, m.WaypointsReached, m.FrameConversionFailures, m.TerrainFailures,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// IncFixes increments the fix counter.
func (m *Metrics) IncFixes() {
	if m == nil {
		return
	}
	m.FixesTotal.Inc()
}

// IncWaypointsReached increments the waypoint counter.
func (m *Metrics) IncWaypointsReached() {
	if m == nil {
		return
	}
	m.WaypointsReached.Inc()
}

// IncFrameConversionFailures increments the conversion failure counter.
func (m *Metrics) IncFrameConversionFailures() {
	if m == nil {
		return
	}
	m.FrameConversionFailures.Inc()
}

// IncTerrainFailures increments the terrain failure counter.
func (m *Metrics) IncTerrainFailures() {
	if m == nil {
		return
	}
	m.TerrainFailures.Inc()
}
