package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metrics holds the server's prometheus collectors. Each server owns a
// private registry so tests can spin up handlers without colliding on the
// global default registry.
type metrics struct {
	registry *prometheus.Registry

	sessionsStarted prometheus.Counter
	actionsTaken    *prometheus.CounterVec
	drillsEarned    prometheus.Counter
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		sessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chainz_sessions_started_total",
			Help: "Number of drill-through sessions started.",
		}),
		actionsTaken: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chainz_actions_taken_total",
			Help: "Number of actions taken, by decision quality.",
		}, []string{"quality"}),
		drillsEarned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chainz_drills_earned_total",
			Help: "Number of drill prescriptions earned.",
		}),
	}
	m.registry.MustRegister(m.sessionsStarted, m.actionsTaken, m.drillsEarned)
	return m
}
