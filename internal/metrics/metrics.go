package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Chat request outcomes used as the "outcome" label value.
const (
	OutcomeOK           = "ok"
	OutcomeRateLimited  = "rate_limited"
	OutcomeInvalid      = "invalid_request"
	OutcomeUnconfigured = "unconfigured"
	OutcomeUpstreamBusy = "upstream_busy"
	OutcomeUpstreamFail = "upstream_failure"
	OutcomeStreamError  = "stream_error"
)

var (
	// ChatRequestsTotal counts chat requests by final outcome.
	ChatRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chat_requests_total",
		Help: "Chat requests by outcome.",
	}, []string{"outcome"})

	// UpstreamLatency observes wall time of upstream model calls.
	UpstreamLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "chat_upstream_latency_seconds",
		Help:    "Latency of upstream generate-content calls.",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
	})

	// RefusalsEnforced counts server-side refusal substitutions.
	RefusalsEnforced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chat_refusals_enforced_total",
		Help: "Responses replaced with the canonical refusal by scope enforcement.",
	})
)
