// Package metrics counts generated and validated keys and sampler draws.
//
// The counters live in the default prometheus registry, next to the log
// statement counter of the logger package. They are exported by writing a
// textfile for the node exporter textfile collector; nothing listens on the network.
package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tinygenkey"

var (
	keysGenerated = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "keys_generated_total",
			Help:      "Number of generated keys, differentiated by alphabet.",
		},
		[]string{"alphabet"},
	)

	keysValidated = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "keys_validated_total",
			Help:      "Number of validated keys, differentiated by result.",
		},
		[]string{"result"},
	)

	samplerDraws = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sampler_draws_total",
			Help:      "Number of entropy draws, differentiated by accepted or rejected.",
		},
		[]string{"outcome"},
	)
)

// KeysGenerated adds n keys drawn from the alphabet labelled label.
func KeysGenerated(label string, n int) {
	keysGenerated.WithLabelValues(label).Add(float64(n))
}

// KeyValidated counts one validation result.
func KeyValidated(valid bool) {
	result := "invalid"
	if valid {
		result = "valid"
	}

	keysValidated.WithLabelValues(result).Inc()
}

// SamplerObserver feeds sampler draws into the draw counter.
type SamplerObserver struct{}

// Observe implements sampler.Observer.
func (SamplerObserver) Observe(accepted bool) {
	outcome := "rejected"
	if accepted {
		outcome = "accepted"
	}

	samplerDraws.WithLabelValues(outcome).Inc()
}

// WriteTextfile writes all metrics of the default registry to path in the
// prometheus text format. The file is replaced atomically.
func WriteTextfile(path string) error {
	return errors.Wrapf(prometheus.WriteToTextfile(path, prometheus.DefaultGatherer), "failed to write metrics to %s", path)
}
