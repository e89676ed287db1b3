package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	InterviewsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "interviews_started_total",
		Help: "Interview sessions started.",
	})

	AnswersEvaluated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "answers_evaluated_total",
		Help: "Candidate answers scored.",
	})

	ReportsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reports_generated_total",
		Help: "Candidate reports built at interview completion.",
	})

	LLMRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "llm_requests_total",
		Help: "Outbound LLM completion calls by outcome.",
	}, []string{"outcome"})

	LLMRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "llm_request_duration_seconds",
		Help:    "Latency of outbound LLM completion calls.",
		Buckets: prometheus.DefBuckets,
	})
)

// RegisterSessionGauge exposes the size of the in-memory session table.
func RegisterSessionGauge(count func() float64) {
	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "interview_sessions_in_memory",
		Help: "Sessions currently held in the process session table.",
	}, count)
}
