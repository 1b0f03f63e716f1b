package obs

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

var (
	domainOnce sync.Once

	// LinesPricedTotal counts order line pricing attempts by outcome.
	LinesPricedTotal *prometheus.CounterVec
	// LineTotalAmount records the total of each priced line.
	LineTotalAmount prometheus.Histogram
	// InvoiceTotalsTotal counts invoice aggregations by stage (create or read).
	InvoiceTotalsTotal *prometheus.CounterVec
	// InvoiceTotalAmount records aggregated invoice totals.
	InvoiceTotalAmount prometheus.Histogram
	// NotificationEmailsTotal counts notification email tasks by outcome.
	NotificationEmailsTotal *prometheus.CounterVec
)

// Pricing outcomes used as the result label of LinesPricedTotal.
const (
	PricingOK               = "ok"
	PricingInvalidPromotion = "invalid_promotion"
	PricingInvalidQuantity  = "invalid_quantity"
	PricingInvalidPrice     = "invalid_price"
	PricingUnknownItem      = "unknown_menu_item"
	PricingError            = "error"
)

var amountBuckets = []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000}

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		LinesPricedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_lines_priced_total",
			Help:      "Count of order line pricing attempts by outcome.",
		}, []string{"result", "promotion"})
		LineTotalAmount = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "order_line_total_amount",
			Help:      "Distribution of priced order line totals.",
			Buckets:   amountBuckets,
		})
		InvoiceTotalsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoice_totals_total",
			Help:      "Count of invoice total aggregations.",
		}, []string{"stage"})
		InvoiceTotalAmount = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "invoice_total_amount",
			Help:      "Distribution of aggregated invoice totals.",
			Buckets:   amountBuckets,
		})
		NotificationEmailsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_emails_total",
			Help:      "Count of notification email tasks by outcome.",
		}, []string{"result"})

		LinesPricedTotal = register(reg, LinesPricedTotal)
		LineTotalAmount = register(reg, LineTotalAmount)
		InvoiceTotalsTotal = register(reg, InvoiceTotalsTotal)
		InvoiceTotalAmount = register(reg, InvoiceTotalAmount)
		NotificationEmailsTotal = register(reg, NotificationEmailsTotal)
	})
}

// ObserveLinePriced records one pricing attempt. total is ignored unless result is PricingOK.
func ObserveLinePriced(result string, withPromotion bool, total decimal.Decimal) {
	if LinesPricedTotal != nil {
		LinesPricedTotal.WithLabelValues(result, fmt.Sprint(withPromotion)).Inc()
	}
	if result == PricingOK && LineTotalAmount != nil {
		LineTotalAmount.Observe(total.InexactFloat64())
	}
}

// ObserveInvoiceTotal records an invoice aggregation at the given stage.
func ObserveInvoiceTotal(stage string, total decimal.Decimal) {
	if InvoiceTotalsTotal != nil {
		InvoiceTotalsTotal.WithLabelValues(stage).Inc()
	}
	if InvoiceTotalAmount != nil {
		InvoiceTotalAmount.Observe(total.InexactFloat64())
	}
}

// ObserveNotificationEmail records the outcome of an email task.
func ObserveNotificationEmail(result string) {
	if NotificationEmailsTotal != nil {
		NotificationEmailsTotal.WithLabelValues(result).Inc()
	}
}
