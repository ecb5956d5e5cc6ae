package waitlist

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

type submissionMetrics struct {
	total *prometheus.CounterVec
}

// newSubmissionMetrics returns nil when reg is nil, which disables recording.
func newSubmissionMetrics(reg prometheus.Registerer) *submissionMetrics {
	if reg == nil {
		return nil
	}

	total := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "waitlist_submissions_total",
			Help: "Waitlist submit attempts by outcome.",
		},
		[]string{"outcome"},
	)

	if err := reg.Register(total); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return nil
		}
		existing, ok := already.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil
		}
		total = existing
	}

	return &submissionMetrics{total: total}
}

func (m *submissionMetrics) observe(outcome Outcome) {
	if m == nil {
		return
	}
	m.total.WithLabelValues(outcome.String()).Inc()
}
