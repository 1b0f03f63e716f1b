package pricing

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxQuantity is the largest quantity a line can store.
const MaxQuantity = math.MaxInt32

var (
	// ErrInvalidPromotion is returned when a referenced promotion is missing or expired.
	ErrInvalidPromotion = errors.New("promotion is not valid or has expired")
	// ErrInvalidQuantity is returned when the requested quantity is not in 1..MaxQuantity.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	// ErrInvalidPrice is returned when the unit price is not positive.
	ErrInvalidPrice = errors.New("unit price must be positive")
)

// RoundingMode selects the tie-break used when rounding monetary amounts.
type RoundingMode string

const (
	// RoundHalfAwayFromZero rounds .5 ties away from zero (0.125 -> 0.13).
	RoundHalfAwayFromZero RoundingMode = "half_away_from_zero"
	// RoundHalfEven rounds .5 ties to the nearest even digit (0.125 -> 0.12).
	RoundHalfEven RoundingMode = "half_even"
)

// Config describes the tax regime applied to every line.
type Config struct {
	TaxRate   decimal.Decimal
	Precision int32
	Rounding  RoundingMode
}

// DefaultConfig returns the 13% tax, two decimal places, half-away-from-zero regime.
func DefaultConfig() Config {
	return Config{
		TaxRate:   decimal.RequireFromString("0.13"),
		Precision: 2,
		Rounding:  RoundHalfAwayFromZero,
	}
}

// ParseRoundingMode maps a configuration string onto a RoundingMode, falling back to half-away-from-zero.
func ParseRoundingMode(value string) RoundingMode {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(RoundHalfEven), "bankers", "banker":
		return RoundHalfEven
	default:
		return RoundHalfAwayFromZero
	}
}

// Promotion is the subset of a promotion needed to price a line.
type Promotion struct {
	ID         uuid.UUID
	Discount   int32
	ExpiresAt  time.Time
	MenuItemID uuid.UUID
}

// ActiveAt reports whether the promotion is still valid at the provided instant.
func (p Promotion) ActiveAt(now time.Time) bool {
	return p.ExpiresAt.After(now)
}

// Line holds the derived amounts of one priced order line.
type Line struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Calculator prices order lines under a fixed Config.
type Calculator struct {
	cfg Config
}

// NewCalculator constructs a Calculator. A negative rate or precision and an
// empty rounding mode are replaced by the DefaultConfig values. A zero tax rate
// and a zero precision are kept as given.
func NewCalculator(cfg Config) Calculator {
	def := DefaultConfig()
	if cfg.TaxRate.IsNegative() {
		cfg.TaxRate = def.TaxRate
	}
	if cfg.Precision < 0 {
		cfg.Precision = def.Precision
	}
	if cfg.Rounding == "" {
		cfg.Rounding = def.Rounding
	}
	return Calculator{cfg: cfg}
}

// Config returns the regime the calculator was built with.
func (c Calculator) Config() Config { return c.cfg }

// ComputeLine prices quantity units at unitPrice, applying promotion when supplied.
// The promotion must be active strictly before its expiry at now.
func (c Calculator) ComputeLine(unitPrice decimal.Decimal, quantity int, promotion *Promotion, now time.Time) (Line, error) {
	if quantity <= 0 || quantity > MaxQuantity {
		return Line{}, ErrInvalidQuantity
	}
	if !unitPrice.IsPositive() {
		return Line{}, ErrInvalidPrice
	}

	subtotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	if promotion != nil {
		if !promotion.ActiveAt(now) {
			return Line{}, ErrInvalidPromotion
		}
		if promotion.Discount < 0 || promotion.Discount > 100 {
			return Line{}, ErrInvalidPromotion
		}
		fraction := decimal.NewFromInt32(promotion.Discount).Div(decimal.NewFromInt(100))
		subtotal = subtotal.Mul(decimal.NewFromInt(1).Sub(fraction))
	}

	tax := c.round(subtotal.Mul(c.cfg.TaxRate))
	total := c.round(subtotal.Add(tax))
	return Line{Subtotal: subtotal, Tax: tax, Total: total}, nil
}

func (c Calculator) round(d decimal.Decimal) decimal.Decimal {
	if c.cfg.Rounding == RoundHalfEven {
		return d.RoundBank(c.cfg.Precision)
	}
	return d.Round(c.cfg.Precision)
}
