// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Rejection reason labels for VotesRejected.
const (
	ReasonClosed    = "election_closed"
	ReasonDuplicate = "duplicate"
	ReasonInactive  = "inactive_candidate"
	ReasonUnknown   = "unknown_candidate"
)

// VoteMetrics tracks submission outcomes and latency.
type VoteMetrics struct {
	VotesAccepted prometheus.Counter
	VotesRejected *prometheus.CounterVec
	SubmitTime    prometheus.Histogram
}

// NewVoteMetrics registers the collectors once with the given registerer.
// Tests pass a fresh prometheus.NewRegistry to avoid duplicate
// registration across cases.
func NewVoteMetrics(reg prometheus.Registerer, namespace string) *VoteMetrics {
	factory := promauto.With(reg)
	return &VoteMetrics{
		VotesAccepted: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "votes_accepted_total",
				Help:      "Total number of ballots recorded",
			},
		),
		VotesRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "votes_rejected_total",
				Help:      "Total number of rejected vote submissions",
			},
			[]string{"reason"},
		),
		SubmitTime: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "vote_submit_seconds",
				Help:      "Histogram of vote submission handling times",
				Buckets:   prometheus.LinearBuckets(0.001, 0.001, 10),
			},
		),
	}
}
