package enum

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts values that could not be resolved.
type Metrics struct {
	fallbacks *prometheus.CounterVec
	invalid   *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them on reg when it is not nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "xsdnorm",
			Subsystem: "enum",
			Name:      "fallbacks_total",
			Help:      "Values resolved to the default because no member matched.",
		}, []string{"enum"}),
		invalid: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "xsdnorm",
			Subsystem: "enum",
			Name:      "invalid_values_total",
			Help:      "Distinct invalid values seen per enumeration.",
		}, []string{"enum"}),
	}

	if reg == nil {
		return m, nil
	}

	for _, c := range []prometheus.Collector{m.fallbacks, m.invalid} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observe(enumName string, first bool) {
	if m == nil {
		return
	}

	m.fallbacks.WithLabelValues(enumName).Inc()

	if first {
		m.invalid.WithLabelValues(enumName).Inc()
	}
}
