// Package metrics provides Prometheus metrics for the simulation loop
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns the simulation metrics
// A nil *Manager is valid and records nothing
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	steps          prometheus.Counter
	stepDuration   prometheus.Histogram
	contacts       *prometheus.CounterVec
	ignored        *prometheus.CounterVec
	bounces        prometheus.Counter
	goals          *prometheus.CounterVec
	respawns       prometheus.Counter
	droppedEvents  prometheus.Counter
	ballSpeed      prometheus.Gauge
	inactivity     prometheus.Gauge
	droppedCatchUp prometheus.Counter
}

// NewManager creates and registers the metrics
// Without WithPrometheusRegistry a private registry is used
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "vipong",
		subsystem:        "sim",
		histogramBuckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.steps = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "steps_total",
		Help:      "Fixed simulation steps run",
	})

	m.stepDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "step_duration_seconds",
		Help:      "Wall time spent per fixed step",
		Buckets:   m.histogramBuckets,
	})

	m.contacts = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "contacts_total",
		Help:      "Contacts handled by collision response, by kind",
	}, []string{"kind"})

	m.ignored = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "contacts_ignored_total",
		Help:      "Contacts dropped by collision response, by reason",
	}, []string{"reason"})

	m.bounces = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "bounces_total",
		Help:      "Bounce events emitted",
	})

	m.goals = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "goals_total",
		Help:      "Goals recorded, by credited side",
	}, []string{"side"})

	m.respawns = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "respawns_total",
		Help:      "Ball respawns after the inactivity timeout",
	})

	m.droppedEvents = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_dropped_total",
		Help:      "Events overwritten in a full queue before being drained",
	})

	m.droppedCatchUp = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catch_up_dropped_seconds_total",
		Help:      "Frame time discarded by the catch-up cap",
	})

	m.ballSpeed = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ball_speed",
		Help:      "Current ball speed in world units per second",
	})

	m.inactivity = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "inactivity_seconds",
		Help:      "Time since the last paddle contact",
	})
}

// RecordStep counts one fixed step and its wall duration
func (m *Manager) RecordStep(d time.Duration) {
	if m == nil {
		return
	}
	m.steps.Inc()
	m.stepDuration.Observe(d.Seconds())
}

// RecordContact counts a handled contact
func (m *Manager) RecordContact(kind string) {
	if m == nil {
		return
	}
	m.contacts.WithLabelValues(kind).Inc()
}

// RecordIgnored counts a dropped contact
func (m *Manager) RecordIgnored(reason string) {
	if m == nil {
		return
	}
	m.ignored.WithLabelValues(reason).Inc()
}

// RecordBounce counts a bounce
func (m *Manager) RecordBounce() {
	if m == nil {
		return
	}
	m.bounces.Inc()
}

// RecordGoal counts a goal for the credited side
func (m *Manager) RecordGoal(side string) {
	if m == nil {
		return
	}
	m.goals.WithLabelValues(side).Inc()
}

// RecordRespawn counts a respawn
func (m *Manager) RecordRespawn() {
	if m == nil {
		return
	}
	m.respawns.Inc()
}

// RecordDropped adds overwritten queue events
func (m *Manager) RecordDropped(n uint64) {
	if m == nil || n == 0 {
		return
	}
	m.droppedEvents.Add(float64(n))
}

// RecordCatchUpDropped adds frame time discarded by the clock
func (m *Manager) RecordCatchUpDropped(d time.Duration) {
	if m == nil || d <= 0 {
		return
	}
	m.droppedCatchUp.Add(d.Seconds())
}

// SetBallSpeed updates the ball speed gauge
func (m *Manager) SetBallSpeed(speed float64) {
	if m == nil {
		return
	}
	m.ballSpeed.Set(speed)
}

// SetInactivity updates the inactivity gauge
func (m *Manager) SetInactivity(d time.Duration) {
	if m == nil {
		return
	}
	m.inactivity.Set(d.Seconds())
}
