package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersPlaced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_orders_placed_total",
			Help: "Orders written by the draft builder, by payment method",
		},
		[]string{"method"},
	)

	ordersConfirmed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_orders_confirmed_total",
			Help: "Orders moved from pending to confirmed, by payment method",
		},
		[]string{"method"},
	)

	finalizeOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_finalize_total",
			Help: "Finalize calls by outcome",
		},
		[]string{"outcome"},
	)

	intentsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "checkout_payment_intents_created_total",
			Help: "Payment intents created at the gateway",
		},
	)
)

type sizer interface {
	Len() int
}

// CacheSizeCollector reports how many confirmed orders the cache holds.
func CacheSizeCollector(c sizer) prometheus.Collector {
	return prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "checkout_order_cache_entries",
			Help: "Confirmed orders held by the confirmation cache",
		},
		func() float64 { return float64(c.Len()) },
	)
}
