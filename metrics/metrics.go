// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics defines the Prometheus instrumentation for the voting
// engine. Metrics register against an explicit Registerer so tests can
// use a throwaway registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type VoteMetrics struct {
	VotesAccepted *prometheus.CounterVec
	VotesRejected *prometheus.CounterVec
	VotesPurged   *prometheus.CounterVec
	VotesInjected prometheus.Counter
	VotesRemoved  prometheus.Counter
}

// Rejection reason labels.
const (
	ReasonBlacklisted = "blacklisted"
	ReasonDuplicate   = "duplicate"
	ReasonInvalid     = "invalid"
	ReasonStore       = "store_error"
)

func NewVoteMetrics(namespace string, reg prometheus.Registerer) *VoteMetrics {
	factory := promauto.With(reg)

	return &VoteMetrics{
		VotesAccepted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "votes_accepted_total",
				Help:      "Total number of votes accepted and stored",
			},
			[]string{"locale_id"},
		),
		VotesRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "votes_rejected_total",
				Help:      "Total number of vote submissions rejected",
			},
			[]string{"reason"},
		),
		VotesPurged: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "votes_purged_total",
				Help:      "Total number of votes deleted by fraud purges",
			},
			[]string{"locale_id"},
		),
		VotesInjected: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "votes_injected_total",
				Help:      "Total number of synthetic votes inserted by administrators",
			},
		),
		VotesRemoved: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "votes_removed_total",
				Help:      "Total number of votes removed by administrators",
			},
		),
	}
}
