package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tictactoe_actions"

var (
	DiscoveryRendered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "discovery_rendered_total",
		Help:      "Discovery payloads rendered, by payload type.",
	}, []string{"type"})

	Submissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_total",
		Help:      "Action submissions, by action and result.",
	}, []string{"action", "result"})
)

const (
	ResultAccepted = "accepted"
	ResultRejected = "rejected"
)
