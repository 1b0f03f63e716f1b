package order

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/backend-resto/internal/common"
	dbgen "github.com/noah-isme/backend-resto/internal/db/gen"
	"github.com/noah-isme/backend-resto/internal/events"
	"github.com/noah-isme/backend-resto/internal/obs"
	"github.com/noah-isme/backend-resto/internal/pricing"
)

// LineQuerier is the subset of generated queries used for order lines.
type LineQuerier interface {
	ListOrderLines(ctx context.Context, arg dbgen.ListOrderLinesParams) ([]dbgen.OrderLine, error)
	CountOrderLines(ctx context.Context) (int64, error)
	GetOrderLine(ctx context.Context, id pgtype.UUID) (dbgen.OrderLine, error)
	CreateOrderLine(ctx context.Context, arg dbgen.CreateOrderLineParams) (dbgen.OrderLine, error)
	UpdateOrderLine(ctx context.Context, arg dbgen.UpdateOrderLineParams) (dbgen.OrderLine, error)
	DeleteOrderLine(ctx context.Context, id pgtype.UUID) (int64, error)
}

// LinePricer prices one line against the live menu and promotions.
type LinePricer interface {
	PriceLine(ctx context.Context, menuItemID uuid.UUID, quantity int, promotionID *uuid.UUID) (pricing.Quote, error)
}

// InvoiceSyncer refreshes the stored total of an invoice after its lines change.
type InvoiceSyncer interface {
	SyncTotal(ctx context.Context, invoiceID pgtype.UUID) error
}

// Line is the API representation of a priced order line.
type Line struct {
	ID          string          `json:"id"`
	Quantity    int32           `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
	OrderID     string          `json:"order_id"`
	MenuItemID  string          `json:"menu_item_id"`
	InvoiceID   *string         `json:"invoice_id"`
	PromotionID *string         `json:"promotion_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// LineInput is the writable part of an order line. Subtotal, tax and total
// are derived and never read from the client. Quantity defaults to 1.
type LineInput struct {
	Quantity    *int    `json:"quantity"`
	OrderID     string  `json:"order_id" validate:"required"`
	MenuItemID  string  `json:"menu_item_id" validate:"required"`
	InvoiceID   *string `json:"invoice_id"`
	PromotionID *string `json:"promotion_id"`
}

// QuoteInput prices a line without persisting it.
type QuoteInput struct {
	Quantity    *int    `json:"quantity"`
	MenuItemID  string  `json:"menu_item_id" validate:"required"`
	PromotionID *string `json:"promotion_id"`
}

// LineService prices and persists order lines.
type LineService struct {
	Q        LineQuerier
	Pricing  LinePricer
	Events   events.Emitter
	Invoices InvoiceSyncer
	Logger   zerolog.Logger
}

type pricedLine struct {
	quote       pricing.Quote
	orderID     pgtype.UUID
	menuItemID  pgtype.UUID
	invoiceID   pgtype.UUID
	promotionID pgtype.UUID
}

// List returns one page of order lines.
func (s *LineService) List(ctx context.Context, page common.PageRequest) ([]Line, int64, error) {
	rows, err := s.Q.ListOrderLines(ctx, dbgen.ListOrderLinesParams{Limit: page.Limit(), Offset: page.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("list order lines: %w", err)
	}
	total, err := s.Q.CountOrderLines(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count order lines: %w", err)
	}
	out := make([]Line, 0, len(rows))
	for _, row := range rows {
		out = append(out, toLine(row))
	}
	return out, total, nil
}

// Get fetches an order line by id.
func (s *LineService) Get(ctx context.Context, id string) (Line, error) {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return Line{}, err
	}
	row, err := s.Q.GetOrderLine(ctx, pgID)
	if err := common.GetRow("order line", err); err != nil {
		return Line{}, err
	}
	return toLine(row), nil
}

// Quote prices a line without storing it.
func (s *LineService) Quote(ctx context.Context, in QuoteInput) (pricing.Quote, error) {
	if err := common.Validate(in); err != nil {
		return pricing.Quote{}, err
	}
	menuItemID, err := common.ParseID("menu_item_id", in.MenuItemID)
	if err != nil {
		return pricing.Quote{}, err
	}
	promotionID, err := common.ParseOptionalID("promotion_id", in.PromotionID)
	if err != nil {
		return pricing.Quote{}, err
	}
	return s.price(ctx, quantityOrDefault(in.Quantity), menuItemID, promotionID)
}

// Create prices the line from the live menu price and stores it.
func (s *LineService) Create(ctx context.Context, in LineInput) (Line, error) {
	priced, err := s.priceInput(ctx, in)
	if err != nil {
		return Line{}, err
	}
	q := priced.quote
	row, err := s.Q.CreateOrderLine(ctx, dbgen.CreateOrderLineParams{
		Quantity:    int32(q.Quantity),
		Subtotal:    q.Subtotal,
		Tax:         q.Tax,
		Total:       q.Total,
		OrderID:     priced.orderID,
		MenuItemID:  priced.menuItemID,
		InvoiceID:   priced.invoiceID,
		PromotionID: priced.promotionID,
	})
	if err != nil {
		return Line{}, common.MapWriteError("order line", err)
	}
	s.afterWrite(ctx, row, q, pgtype.UUID{})
	return toLine(row), nil
}

// Update recomputes every derived amount from the new inputs and the current menu price.
func (s *LineService) Update(ctx context.Context, id string, in LineInput) (Line, error) {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return Line{}, err
	}
	existing, err := s.Q.GetOrderLine(ctx, pgID)
	if err := common.GetRow("order line", err); err != nil {
		return Line{}, err
	}
	priced, err := s.priceInput(ctx, in)
	if err != nil {
		return Line{}, err
	}
	q := priced.quote
	row, err := s.Q.UpdateOrderLine(ctx, dbgen.UpdateOrderLineParams{
		ID:          pgID,
		Quantity:    int32(q.Quantity),
		Subtotal:    q.Subtotal,
		Tax:         q.Tax,
		Total:       q.Total,
		OrderID:     priced.orderID,
		MenuItemID:  priced.menuItemID,
		InvoiceID:   priced.invoiceID,
		PromotionID: priced.promotionID,
	})
	if err != nil {
		return Line{}, common.MapWriteError("order line", err)
	}
	previous := pgtype.UUID{}
	if existing.InvoiceID != row.InvoiceID {
		previous = existing.InvoiceID
	}
	s.afterWrite(ctx, row, q, previous)
	return toLine(row), nil
}

// Delete removes an order line and refreshes the invoice it belonged to.
func (s *LineService) Delete(ctx context.Context, id string) error {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return err
	}
	existing, err := s.Q.GetOrderLine(ctx, pgID)
	if err := common.GetRow("order line", err); err != nil {
		return err
	}
	n, err := s.Q.DeleteOrderLine(ctx, pgID)
	if err := common.DeleteRows("order line", n, err); err != nil {
		return err
	}
	s.syncInvoice(ctx, existing.InvoiceID)
	return nil
}

func (s *LineService) priceInput(ctx context.Context, in LineInput) (pricedLine, error) {
	if err := common.Validate(in); err != nil {
		return pricedLine{}, err
	}
	orderID, err := common.ParseID("order_id", in.OrderID)
	if err != nil {
		return pricedLine{}, err
	}
	menuItemID, err := common.ParseID("menu_item_id", in.MenuItemID)
	if err != nil {
		return pricedLine{}, err
	}
	invoiceID, err := common.ParseOptionalID("invoice_id", in.InvoiceID)
	if err != nil {
		return pricedLine{}, err
	}
	promotionID, err := common.ParseOptionalID("promotion_id", in.PromotionID)
	if err != nil {
		return pricedLine{}, err
	}
	quote, err := s.price(ctx, quantityOrDefault(in.Quantity), menuItemID, promotionID)
	if err != nil {
		return pricedLine{}, err
	}
	return pricedLine{
		quote:       quote,
		orderID:     orderID,
		menuItemID:  menuItemID,
		invoiceID:   invoiceID,
		promotionID: promotionID,
	}, nil
}

func (s *LineService) price(ctx context.Context, quantity int, menuItemID, promotionID pgtype.UUID) (pricing.Quote, error) {
	if s.Pricing == nil {
		return pricing.Quote{}, errors.New("order: pricing not configured")
	}
	var promo *uuid.UUID
	if promotionID.Valid {
		id := uuid.UUID(promotionID.Bytes)
		promo = &id
	}
	quote, err := s.Pricing.PriceLine(ctx, uuid.UUID(menuItemID.Bytes), quantity, promo)
	obs.ObserveLinePriced(pricingResult(err), promo != nil, quote.Total)
	if err != nil {
		return pricing.Quote{}, pricingError(err)
	}
	return quote, nil
}

func (s *LineService) afterWrite(ctx context.Context, row dbgen.OrderLine, q pricing.Quote, previousInvoice pgtype.UUID) {
	events.EmitLogged(ctx, s.Events, s.Logger, events.TopicOrderLinePriced, row.ID, map[string]any{
		"order_id":     common.UUIDString(row.OrderID),
		"menu_item_id": common.UUIDString(row.MenuItemID),
		"invoice_id":   common.UUIDPtr(row.InvoiceID),
		"promotion_id": common.UUIDPtr(row.PromotionID),
		"quantity":     q.Quantity,
		"unit_price":   q.UnitPrice,
		"subtotal":     q.Subtotal,
		"tax":          q.Tax,
		"total":        q.Total,
	})
	s.syncInvoice(ctx, row.InvoiceID)
	s.syncInvoice(ctx, previousInvoice)
}

func (s *LineService) syncInvoice(ctx context.Context, invoiceID pgtype.UUID) {
	if s.Invoices == nil || !invoiceID.Valid {
		return
	}
	if err := s.Invoices.SyncTotal(ctx, invoiceID); err != nil {
		s.Logger.Error().Err(err).Str("invoice_id", common.UUIDString(invoiceID)).Msg("sync invoice total")
	}
}

func quantityOrDefault(q *int) int {
	if q == nil {
		return 1
	}
	return *q
}

func pricingResult(err error) string {
	switch {
	case err == nil:
		return obs.PricingOK
	case errors.Is(err, pricing.ErrInvalidPromotion):
		return obs.PricingInvalidPromotion
	case errors.Is(err, pricing.ErrInvalidQuantity):
		return obs.PricingInvalidQuantity
	case errors.Is(err, pricing.ErrInvalidPrice):
		return obs.PricingInvalidPrice
	case errors.Is(err, pricing.ErrMenuItemNotFound):
		return obs.PricingUnknownItem
	default:
		return obs.PricingError
	}
}

func pricingError(err error) error {
	var appErr *common.AppError
	switch {
	case errors.Is(err, pricing.ErrInvalidPromotion):
		appErr = common.NewAppError("INVALID_PROMOTION", err.Error(), http.StatusBadRequest, err)
		appErr.Details = map[string]string{"field": "promotion_id"}
	case errors.Is(err, pricing.ErrInvalidQuantity):
		appErr = common.NewAppError("INVALID_QUANTITY", err.Error(), http.StatusBadRequest, err)
		appErr.Details = map[string]string{"field": "quantity"}
	case errors.Is(err, pricing.ErrInvalidPrice):
		appErr = common.NewAppError("INVALID_PRICE", err.Error(), http.StatusBadRequest, err)
		appErr.Details = map[string]string{"field": "menu_item_id"}
	case errors.Is(err, pricing.ErrMenuItemNotFound):
		appErr = common.Invalid("menu_item_id", err.Error(), err)
	default:
		return fmt.Errorf("price order line: %w", err)
	}
	return appErr
}

func toLine(row dbgen.OrderLine) Line {
	return Line{
		ID:          common.UUIDString(row.ID),
		Quantity:    row.Quantity,
		Subtotal:    row.Subtotal,
		Tax:         row.Tax,
		Total:       row.Total,
		OrderID:     common.UUIDString(row.OrderID),
		MenuItemID:  common.UUIDString(row.MenuItemID),
		InvoiceID:   common.UUIDPtr(row.InvoiceID),
		PromotionID: common.UUIDPtr(row.PromotionID),
		CreatedAt:   common.TimeFromPG(row.CreatedAt),
		UpdatedAt:   common.TimeFromPG(row.UpdatedAt),
	}
}
