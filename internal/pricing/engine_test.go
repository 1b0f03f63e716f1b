package pricing

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func TestComputeLineWithoutPromotion(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	line, err := calc.ComputeLine(dec("10.00"), 3, nil, fixedNow)
	require.NoError(t, err)
	require.Equal(t, "30.00", line.Subtotal.StringFixed(2))
	require.Equal(t, "3.90", line.Tax.StringFixed(2))
	require.Equal(t, "33.90", line.Total.StringFixed(2))
}

func TestComputeLineWithActivePromotion(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	promo := &Promotion{ID: uuid.New(), Discount: 20, ExpiresAt: fixedNow.Add(time.Hour)}
	line, err := calc.ComputeLine(dec("10.00"), 3, promo, fixedNow)
	require.NoError(t, err)
	require.Equal(t, "24.00", line.Subtotal.StringFixed(2))
	require.Equal(t, "3.12", line.Tax.StringFixed(2))
	require.Equal(t, "27.12", line.Total.StringFixed(2))
}

func TestComputeLineRejectsExpiredPromotion(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	promo := &Promotion{ID: uuid.New(), Discount: 50, ExpiresAt: fixedNow.Add(-time.Minute)}
	line, err := calc.ComputeLine(dec("10.00"), 2, promo, fixedNow)
	if !errors.Is(err, ErrInvalidPromotion) {
		t.Fatalf("expected ErrInvalidPromotion, got %v", err)
	}
	require.True(t, line.Total.IsZero(), "no partial result on failure")
}

func TestComputeLinePromotionExpiringNowIsInvalid(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	promo := &Promotion{Discount: 10, ExpiresAt: fixedNow}
	_, err := calc.ComputeLine(dec("5.00"), 1, promo, fixedNow)
	require.ErrorIs(t, err, ErrInvalidPromotion)
}

func TestComputeLineRejectsOutOfRangeDiscount(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	promo := &Promotion{Discount: 101, ExpiresAt: fixedNow.Add(time.Hour)}
	_, err := calc.ComputeLine(dec("5.00"), 1, promo, fixedNow)
	require.ErrorIs(t, err, ErrInvalidPromotion)
}

func TestComputeLineValidatesInputs(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	_, err := calc.ComputeLine(dec("10.00"), 0, nil, fixedNow)
	require.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = calc.ComputeLine(dec("10.00"), -2, nil, fixedNow)
	require.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = calc.ComputeLine(dec("10.00"), MaxQuantity+1, nil, fixedNow)
	require.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = calc.ComputeLine(dec("10.00"), MaxQuantity, nil, fixedNow)
	require.NoError(t, err)
	_, err = calc.ComputeLine(dec("0"), 1, nil, fixedNow)
	require.ErrorIs(t, err, ErrInvalidPrice)
	_, err = calc.ComputeLine(dec("-1.50"), 1, nil, fixedNow)
	require.ErrorIs(t, err, ErrInvalidPrice)
}

func TestNewCalculatorKeepsZeroRateAndPrecision(t *testing.T) {
	calc := NewCalculator(Config{})
	require.True(t, calc.Config().TaxRate.IsZero())
	require.Equal(t, int32(0), calc.Config().Precision)
	require.Equal(t, RoundHalfAwayFromZero, calc.Config().Rounding)

	line, err := calc.ComputeLine(dec("10.40"), 1, nil, fixedNow)
	require.NoError(t, err)
	require.Equal(t, "0", line.Tax.String())
	require.Equal(t, "10", line.Total.String())

	fixed := NewCalculator(Config{TaxRate: dec("-1"), Precision: -3})
	require.Equal(t, DefaultConfig().TaxRate.String(), fixed.Config().TaxRate.String())
	require.Equal(t, DefaultConfig().Precision, fixed.Config().Precision)
}

func TestComputeLineRoundingTieBreak(t *testing.T) {
	// 0.50 * 0.13 = 0.065 sits exactly on the tie.
	away := NewCalculator(DefaultConfig())
	line, err := away.ComputeLine(dec("0.50"), 1, nil, fixedNow)
	require.NoError(t, err)
	require.Equal(t, "0.07", line.Tax.StringFixed(2))
	require.Equal(t, "0.57", line.Total.StringFixed(2))

	cfg := DefaultConfig()
	cfg.Rounding = RoundHalfEven
	even := NewCalculator(cfg)
	line, err = even.ComputeLine(dec("0.50"), 1, nil, fixedNow)
	require.NoError(t, err)
	require.Equal(t, "0.06", line.Tax.StringFixed(2))
	require.Equal(t, "0.56", line.Total.StringFixed(2))
}

func TestComputeLineCustomRegime(t *testing.T) {
	calc := NewCalculator(Config{TaxRate: dec("0.21"), Precision: 2, Rounding: RoundHalfAwayFromZero})
	line, err := calc.ComputeLine(dec("12.50"), 2, nil, fixedNow)
	require.NoError(t, err)
	require.Equal(t, "5.25", line.Tax.StringFixed(2))
	require.Equal(t, "30.25", line.Total.StringFixed(2))
}

func TestComputeLineProperties(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	rate := dec("0.13")
	prices := []string{"0.01", "1.99", "10.00", "12.35", "99.99"}
	for _, p := range prices {
		price := dec(p)
		for qty := 1; qty <= 7; qty++ {
			line, err := calc.ComputeLine(price, qty, nil, fixedNow)
			require.NoError(t, err)
			want := price.Mul(decimal.NewFromInt(int64(qty)))
			require.True(t, line.Subtotal.Equal(want), "subtotal %s != %s", line.Subtotal, want)
			require.True(t, line.Tax.Equal(want.Mul(rate).Round(2)))
			require.True(t, line.Total.Equal(line.Subtotal.Add(line.Tax)))

			for _, d := range []int32{0, 15, 33, 50, 100} {
				promo := &Promotion{Discount: d, ExpiresAt: fixedNow.Add(time.Second)}
				discounted, err := calc.ComputeLine(price, qty, promo, fixedNow)
				require.NoError(t, err)
				factor := decimal.NewFromInt(1).Sub(decimal.NewFromInt32(d).Div(decimal.NewFromInt(100)))
				require.True(t, discounted.Subtotal.Equal(want.Mul(factor)), "discount %d", d)
			}
		}
	}
}

func TestParseRoundingMode(t *testing.T) {
	require.Equal(t, RoundHalfEven, ParseRoundingMode("HALF_EVEN"))
	require.Equal(t, RoundHalfEven, ParseRoundingMode("bankers"))
	require.Equal(t, RoundHalfAwayFromZero, ParseRoundingMode(""))
	require.Equal(t, RoundHalfAwayFromZero, ParseRoundingMode("unknown"))
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}
