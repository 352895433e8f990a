package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type CheckoutRecorder struct {
	checkouts  *prometheus.CounterVec
	conflicts  prometheus.Counter
	duration   prometheus.Histogram
	rejections *prometheus.CounterVec
}

func NewCheckoutRecorder(reg prometheus.Registerer) *CheckoutRecorder {
	factory := promauto.With(reg)
	return &CheckoutRecorder{
		checkouts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_attempts_total",
				Help: "Checkouts by outcome",
			},
			[]string{"outcome"},
		),
		conflicts: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "checkout_commit_conflicts_total",
				Help: "Commits lost to a concurrent coupon or gift card update",
			},
		),
		duration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "checkout_duration_ms",
				Help:    "Checkout duration in ms",
				Buckets: []float64{5, 10, 25, 50, 100, 200, 400, 800, 1600},
			},
		),
		rejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_rejections_total",
				Help: "Coupon and gift card rejections by reason",
			},
			[]string{"instrument", "reason"},
		),
	}
}

func (r *CheckoutRecorder) ObserveCheckout(outcome string, elapsed time.Duration) {
	r.checkouts.WithLabelValues(outcome).Inc()
	r.duration.Observe(float64(elapsed.Milliseconds()))
}

func (r *CheckoutRecorder) CommitConflict() {
	r.conflicts.Inc()
}

func (r *CheckoutRecorder) CouponRejected(reason string) {
	r.rejections.WithLabelValues("coupon", reason).Inc()
}

func (r *CheckoutRecorder) GiftCardRejected(reason string) {
	r.rejections.WithLabelValues("gift_card", reason).Inc()
}
