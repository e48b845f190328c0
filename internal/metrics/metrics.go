// Package metrics holds the prometheus collectors of the alert bot.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vadiminshakov/trendalert/internal/domain"
)

const namespace = "trendalert"

// Evaluation results.
const (
	ResultSignal    = "signal"
	ResultNoData    = "no_data"
	ResultTransport = "transport_error"
	ResultError     = "error"
	ResultPanic     = "panic"
)

var (
	EvaluationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "evaluations_total", Help: "Signal evaluations by result"},
		[]string{"result"},
	)
	NotificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "notifications_total", Help: "Signal change notifications by direction"},
		[]string{"direction"},
	)
	CommandsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "commands_total", Help: "Chat commands handled"},
		[]string{"command"},
	)
	LoopErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: namespace, Name: "loop_errors_total", Help: "Failed polling iterations"},
	)
	Direction = prometheus.NewGauge(
		prometheus.GaugeOpts{Namespace: namespace, Name: "direction", Help: "Last announced direction: 1 up, -1 down, 0 none"},
	)
)

func init() {
	prometheus.MustRegister(EvaluationsTotal, NotificationsTotal, CommandsTotal, LoopErrorsTotal, Direction)
}

// SetDirection records the announced direction.
func SetDirection(d domain.Direction) {
	switch d {
	case domain.DirectionUp:
		Direction.Set(1)
	case domain.DirectionDown:
		Direction.Set(-1)
	default:
		Direction.Set(0)
	}
}
