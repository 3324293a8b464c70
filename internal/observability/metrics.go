package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "relay_websocket_connections_active",
			Help: "Current number of active WebSocket connections",
		},
	)

	MessagesRelayed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "relay_messages_total",
			Help: "Chat messages accepted, stored, and broadcast by the relay",
		},
	)

	ScheduleProposals = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "relay_schedule_proposals_total",
			Help: "Session scheduling proposals accepted and broadcast",
		},
	)

	ValidationDrops = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_validation_drops_total",
			Help: "Inbound events dropped by validation, by event name",
		},
		[]string{"event"},
	)
)
