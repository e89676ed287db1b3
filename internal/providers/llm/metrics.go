package llm

import (
	"context"
	"time"

	"github.com/gridhire/gridhire/internal/metrics"
)

type instrumented struct {
	next Provider
}

// WithMetrics wraps a Provider so every completion call is counted and timed.
func WithMetrics(p Provider) Provider {
	return &instrumented{next: p}
}

func (i *instrumented) Complete(ctx context.Context, req Request) (string, error) {
	start := time.Now()
	out, err := i.next.Complete(ctx, req)
	metrics.LLMRequestDuration.Observe(time.Since(start).Seconds())

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.LLMRequests.WithLabelValues(outcome).Inc()

	return out, err
}

func (i *instrumented) Close() error { return i.next.Close() }
