package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	DocumentsGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "legaldocgen", Name: "documents_generated_total", Help: "Number of documents synthesized (including regenerations)."},
	)
	QuestionsGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "legaldocgen", Name: "question_lists_generated_total", Help: "Number of clarifying-question lists generated."},
	)
	UpstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "legaldocgen", Name: "upstream_request_duration_seconds", Help: "Latency of upstream provider calls.", Buckets: prometheus.DefBuckets},
		[]string{"upstream", "status"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(DocumentsGenerated)
	reg.MustRegister(QuestionsGenerated)
	reg.MustRegister(UpstreamDuration)
}

// ObserveUpstream records one provider call with its outcome label.
func ObserveUpstream(upstream string, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	UpstreamDuration.WithLabelValues(upstream, status).Observe(d.Seconds())
}
