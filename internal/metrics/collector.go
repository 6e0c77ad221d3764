package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	RejectInvalidInput = "invalid_input"
	RejectInvalidCell  = "invalid_cell"
	RejectCellOccupied = "cell_occupied"

	outcomeDraw = "draw"
)

// Collector counts what happens during a session. Each collector owns its registry.
type Collector struct {
	registry *prometheus.Registry

	roundsTotal        *prometheus.CounterVec
	movesTotal         *prometheus.CounterVec
	rejectedMovesTotal *prometheus.CounterVec
}

func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Collector{
		registry: registry,

		roundsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tictactoe_rounds_total",
				Help: "Total number of finished rounds by outcome",
			},
			[]string{"outcome"},
		),
		movesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tictactoe_moves_total",
				Help: "Total number of moves applied to the board by mark",
			},
			[]string{"mark"},
		),
		rejectedMovesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tictactoe_rejected_moves_total",
				Help: "Total number of human move attempts that were re-prompted",
			},
			[]string{"reason"},
		),
	}
}

// RecordRound - outcome is the winning mark or entity.PlayerTie.
func (that *Collector) RecordRound(outcome string) {
	if outcome == entity.PlayerTie {
		outcome = outcomeDraw
	}

	that.roundsTotal.WithLabelValues(outcome).Inc()
}

func (that *Collector) RecordMove(mark string) {
	that.movesTotal.WithLabelValues(mark).Inc()
}

func (that *Collector) RecordRejectedMove(reason string) {
	that.rejectedMovesTotal.WithLabelValues(reason).Inc()
}

// Handler - exposes the collector's registry in the Prometheus text format.
func (that *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(that.registry, promhttp.HandlerOpts{Registry: that.registry})
}
