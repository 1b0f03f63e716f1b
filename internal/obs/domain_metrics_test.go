package obs

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestDomainMetrics(t *testing.T) {
	MustRegisterDomainMetrics("resto_test", prometheus.NewRegistry())

	before := testutil.ToFloat64(LinesPricedTotal.WithLabelValues(PricingOK, "true"))
	ObserveLinePriced(PricingOK, true, decimal.RequireFromString("27.12"))
	ObserveLinePriced(PricingInvalidPromotion, true, decimal.Zero)
	require.Equal(t, before+1, testutil.ToFloat64(LinesPricedTotal.WithLabelValues(PricingOK, "true")))
	require.Equal(t, float64(1), testutil.ToFloat64(LinesPricedTotal.WithLabelValues(PricingInvalidPromotion, "true")))

	ObserveInvoiceTotal("read", decimal.RequireFromString("71.02"))
	require.Equal(t, float64(1), testutil.ToFloat64(InvoiceTotalsTotal.WithLabelValues("read")))

	ObserveNotificationEmail("enqueued")
	require.Equal(t, float64(1), testutil.ToFloat64(NotificationEmailsTotal.WithLabelValues("enqueued")))
}

func TestSQLOperation(t *testing.T) {
	require.Equal(t, "SELECT", sqlOperation("-- name: GetMenuItem :one\nselect id from menu_items"))
	require.Equal(t, "INSERT", sqlOperation("  INSERT INTO invoices"))
	require.Equal(t, "QUERY", sqlOperation("-- only a comment"))
}
