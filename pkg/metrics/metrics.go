// Package metrics exposes the Prometheus collectors of the favorites service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder counts favorite mutations by kind and action.
type Recorder struct {
	mutations *prometheus.CounterVec
}

// NewRecorder creates a Recorder and registers its collectors on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "favorites_mutations_total",
			Help: "Number of favorite associations added or removed.",
		}, []string{"kind", "action"}),
	}
	reg.MustRegister(r.mutations)
	return r
}

// FavoriteMutated records one successful add or remove.
func (r *Recorder) FavoriteMutated(kind, action string) {
	if r == nil {
		return
	}
	r.mutations.WithLabelValues(kind, action).Inc()
}
