package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MarketplaceMetrics groups the counters the order, wallet and delivery
// flows record. Labels stay low-cardinality: statuses, operation types
// and providers only, never user or order ids.
type MarketplaceMetrics struct {
	OrdersCreatedTotal      prometheus.Counter
	OrdersPaidTotal         *prometheus.CounterVec
	OrdersCompletedTotal    prometheus.Counter
	OrdersCancelledTotal    prometheus.Counter
	TransitionsTotal        *prometheus.CounterVec
	TransitionsRejected     *prometheus.CounterVec
	CodeMismatchTotal       *prometheus.CounterVec
	WalletOperationsTotal   *prometheus.CounterVec
	InsufficientFundsTotal  prometheus.Counter
	ClaimsWonTotal          prometheus.Counter
	ClaimsLostTotal         prometheus.Counter
	GatewayOutcomesTotal    *prometheus.CounterVec
	TransitionDuration      *prometheus.HistogramVec
	NotificationErrorsTotal prometheus.Counter
}

func NewMarketplaceMetrics() *MarketplaceMetrics {
	return NewMarketplaceMetricsWith(prometheus.DefaultRegisterer)
}

// NewMarketplaceMetricsWith registers the collectors on the given
// registerer. Tests pass a fresh registry.
func NewMarketplaceMetricsWith(reg prometheus.Registerer) *MarketplaceMetrics {
	factory := promauto.With(reg)
	return &MarketplaceMetrics{
		OrdersCreatedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_orders_created_total",
			Help: "Orders created at checkout",
		}),
		OrdersPaidTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "marketplace_orders_paid_total",
			Help: "Orders settled to paid, by payment method",
		}, []string{"payment_method"}),
		OrdersCompletedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_orders_completed_total",
			Help: "Orders delivered",
		}),
		OrdersCancelledTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_orders_cancelled_total",
			Help: "Orders cancelled before shipment",
		}),
		TransitionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "marketplace_order_transitions_total",
			Help: "Successful lifecycle transitions",
		}, []string{"from", "to"}),
		TransitionsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "marketplace_order_transitions_rejected_total",
			Help: "Transition attempts rejected by the lifecycle table",
		}, []string{"from", "to", "role"}),
		CodeMismatchTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "marketplace_verification_code_mismatch_total",
			Help: "Failed pickup/delivery code checks",
		}, []string{"kind"}),
		WalletOperationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "marketplace_wallet_operations_total",
			Help: "Committed wallet ledger operations",
		}, []string{"type"}),
		InsufficientFundsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_wallet_insufficient_funds_total",
			Help: "Debits rejected for insufficient funds",
		}),
		ClaimsWonTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_delivery_claims_won_total",
			Help: "Delivery jobs successfully claimed",
		}),
		ClaimsLostTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_delivery_claims_lost_total",
			Help: "Claim attempts that lost the race or came too late",
		}),
		GatewayOutcomesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "marketplace_payment_gateway_outcomes_total",
			Help: "Mobile-money gateway outcomes",
		}, []string{"provider", "outcome"}),
		TransitionDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "marketplace_order_transition_duration_seconds",
			Help:    "Wall time of the transactional part of a transition",
			Buckets: prometheus.DefBuckets,
		}, []string{"to"}),
		NotificationErrorsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_notification_errors_total",
			Help: "Notification dispatches that failed (non-fatal)",
		}),
	}
}
