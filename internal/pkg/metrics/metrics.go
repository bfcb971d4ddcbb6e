package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pharmashift"

// Booking holds the counters for the booking engine. A nil *Booking records nothing.
type Booking struct {
	InvitationAcceptTotal   *prometheus.CounterVec
	ShiftCancellations      *prometheus.CounterVec
	PenaltyCentsTotal       *prometheus.CounterVec
	ClaimConflictsTotal     prometheus.Counter
	SweeperTransitionsTotal *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// NewBooking registers the booking counters on reg. Tests pass a fresh prometheus.NewRegistry().
func NewBooking(reg *prometheus.Registry) *Booking {
	factory := promauto.With(reg)
	return &Booking{
		InvitationAcceptTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "invitation_accept_total",
				Help:      "Invitation acceptance attempts by result",
			},
			[]string{"result"},
		),
		ShiftCancellations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "shift_cancellations_total",
				Help:      "Cancelled filled shifts by breaching role and penalty tier",
			},
			[]string{"role", "tier"},
		),
		PenaltyCentsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "penalty_cents_total",
				Help:      "Penalty amount charged, in cents, by breaching role",
			},
			[]string{"role"},
		),
		ClaimConflictsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "claim_conflicts_total",
				Help:      "Shift claims lost to a concurrent booking",
			},
		),
		SweeperTransitionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sweeper_transitions_total",
				Help:      "Records transitioned by the background sweeper",
			},
			[]string{"kind"},
		),
		gatherer: reg,
	}
}

func (m *Booking) IncAccept(result string) {
	if m == nil {
		return
	}
	m.InvitationAcceptTotal.WithLabelValues(result).Inc()
}

func (m *Booking) ObserveCancellation(role, tier string, penaltyCents int64) {
	if m == nil {
		return
	}
	m.ShiftCancellations.WithLabelValues(role, tier).Inc()
	if penaltyCents > 0 {
		m.PenaltyCentsTotal.WithLabelValues(role).Add(float64(penaltyCents))
	}
}

func (m *Booking) IncClaimConflict() {
	if m == nil {
		return
	}
	m.ClaimConflictsTotal.Inc()
}

func (m *Booking) AddSweeperTransitions(kind string, n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.SweeperTransitionsTotal.WithLabelValues(kind).Add(float64(n))
}

// Handler exposes the registry in the Prometheus text format.
func (m *Booking) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
