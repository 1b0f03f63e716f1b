package pricing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrMenuItemNotFound is returned when the referenced menu item does not exist.
var ErrMenuItemNotFound = errors.New("menu item not found")

// PromotionLookup resolves a promotion that is still active at now.
// A missing or expired promotion is reported with ok == false.
type PromotionLookup interface {
	FindActivePromotion(ctx context.Context, id uuid.UUID, now time.Time) (Promotion, bool, error)
}

// MenuItemLookup resolves the live unit price of a menu item.
type MenuItemLookup interface {
	GetUnitPrice(ctx context.Context, id uuid.UUID) (decimal.Decimal, error)
}

// Service prices lines against the live menu and promotion catalogue.
type Service struct {
	Calc       Calculator
	Menu       MenuItemLookup
	Promotions PromotionLookup
	Now        func() time.Time
}

// Quote describes a priced line together with its inputs.
type Quote struct {
	MenuItemID  uuid.UUID       `json:"menu_item_id"`
	PromotionID *uuid.UUID      `json:"promotion_id,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Line
}

// PriceLine reads the unit price of menuItemID and prices quantity units, applying promotionID when given.
func (s *Service) PriceLine(ctx context.Context, menuItemID uuid.UUID, quantity int, promotionID *uuid.UUID) (Quote, error) {
	if s == nil || s.Menu == nil {
		return Quote{}, errors.New("pricing service not configured")
	}
	if quantity <= 0 || quantity > MaxQuantity {
		return Quote{}, ErrInvalidQuantity
	}
	price, err := s.Menu.GetUnitPrice(ctx, menuItemID)
	if err != nil {
		return Quote{}, err
	}

	now := s.now()
	var promo *Promotion
	if promotionID != nil {
		if s.Promotions == nil {
			return Quote{}, ErrInvalidPromotion
		}
		found, ok, err := s.Promotions.FindActivePromotion(ctx, *promotionID, now)
		if err != nil {
			return Quote{}, fmt.Errorf("lookup promotion: %w", err)
		}
		if !ok {
			return Quote{}, ErrInvalidPromotion
		}
		promo = &found
	}

	line, err := s.Calc.ComputeLine(price, quantity, promo, now)
	if err != nil {
		return Quote{}, err
	}
	return Quote{
		MenuItemID:  menuItemID,
		PromotionID: promotionID,
		Quantity:    quantity,
		UnitPrice:   price,
		Line:        line,
	}, nil
}

func (s *Service) now() time.Time {
	if s != nil && s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
