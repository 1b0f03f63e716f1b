package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/backend-resto/internal/common"
	dbgen "github.com/noah-isme/backend-resto/internal/db/gen"
	"github.com/noah-isme/backend-resto/internal/events"
	"github.com/noah-isme/backend-resto/internal/obs"
	"github.com/noah-isme/backend-resto/internal/pricing"
)

// Stages reported on the invoice total metric.
const (
	StageRead   = "read"
	StageCreate = "create"
	StageSync   = "sync"
)

// InvoiceQuerier is the subset of generated queries used for invoices.
type InvoiceQuerier interface {
	ListInvoices(ctx context.Context, arg dbgen.ListInvoicesParams) ([]dbgen.Invoice, error)
	CountInvoices(ctx context.Context) (int64, error)
	GetInvoice(ctx context.Context, id pgtype.UUID) (dbgen.Invoice, error)
	CreateInvoice(ctx context.Context, arg dbgen.CreateInvoiceParams) (dbgen.Invoice, error)
	UpdateInvoice(ctx context.Context, arg dbgen.UpdateInvoiceParams) (dbgen.Invoice, error)
	SetInvoiceTotal(ctx context.Context, arg dbgen.SetInvoiceTotalParams) (dbgen.Invoice, error)
	DeleteInvoice(ctx context.Context, id pgtype.UUID) (int64, error)
	ListOrderLinesByInvoice(ctx context.Context, invoiceID pgtype.UUID) ([]dbgen.OrderLine, error)
}

// Locker serialises total refreshes of one invoice.
type Locker interface {
	WithLock(ctx context.Context, key string, fn func(context.Context) error) error
}

// Invoice is the API representation of an invoice. TotalAmount is aggregated
// from the invoice's lines at read time.
type Invoice struct {
	ID              string          `json:"id"`
	IssuedAt        time.Time       `json:"issued_at"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	LineCount       int             `json:"line_count"`
	PaymentMethodID string          `json:"payment_method_id"`
	TableID         string          `json:"table_id"`
	CustomerID      string          `json:"customer_id"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// InvoiceInput is the writable part of an invoice. The total is never accepted from clients.
type InvoiceInput struct {
	IssuedAt        *time.Time `json:"issued_at"`
	PaymentMethodID string     `json:"payment_method_id" validate:"required"`
	TableID         string     `json:"table_id" validate:"required"`
	CustomerID      string     `json:"customer_id" validate:"required"`
}

// InvoiceService manages invoices and keeps their stored totals in step with their lines.
type InvoiceService struct {
	Q      InvoiceQuerier
	Locks  Locker
	Events events.Emitter
	Logger zerolog.Logger
	Now    func() time.Time
}

type invoiceRefs struct {
	paymentMethodID pgtype.UUID
	tableID         pgtype.UUID
	customerID      pgtype.UUID
}

func (s *InvoiceService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// List returns one page of invoices, each with a freshly aggregated total.
func (s *InvoiceService) List(ctx context.Context, page common.PageRequest) ([]Invoice, int64, error) {
	rows, err := s.Q.ListInvoices(ctx, dbgen.ListInvoicesParams{Limit: page.Limit(), Offset: page.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}
	total, err := s.Q.CountInvoices(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count invoices: %w", err)
	}
	out := make([]Invoice, 0, len(rows))
	for _, row := range rows {
		inv, err := s.withTotal(ctx, row, StageRead)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, inv)
	}
	return out, total, nil
}

// Get fetches an invoice and aggregates its lines.
func (s *InvoiceService) Get(ctx context.Context, id string) (Invoice, error) {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return Invoice{}, err
	}
	row, err := s.Q.GetInvoice(ctx, pgID)
	if err := common.GetRow("invoice", err); err != nil {
		return Invoice{}, err
	}
	return s.withTotal(ctx, row, StageRead)
}

// Create issues an invoice. Its stored total starts as the aggregate of its
// lines, which is zero until lines are billed to it.
func (s *InvoiceService) Create(ctx context.Context, in InvoiceInput) (Invoice, error) {
	refs, err := in.refs()
	if err != nil {
		return Invoice{}, err
	}
	issuedAt := s.now()
	if in.IssuedAt != nil && !in.IssuedAt.IsZero() {
		issuedAt = *in.IssuedAt
	}
	row, err := s.Q.CreateInvoice(ctx, dbgen.CreateInvoiceParams{
		IssuedAt:        common.Timestamptz(issuedAt),
		TotalAmount:     decimal.Zero,
		PaymentMethodID: refs.paymentMethodID,
		TableID:         refs.tableID,
		CustomerID:      refs.customerID,
	})
	if err != nil {
		return Invoice{}, common.MapWriteError("invoice", err)
	}
	inv, err := s.withTotal(ctx, row, StageCreate)
	if err != nil {
		return Invoice{}, err
	}
	if !inv.TotalAmount.Equal(row.TotalAmount) {
		if _, err := s.Q.SetInvoiceTotal(ctx, dbgen.SetInvoiceTotalParams{ID: row.ID, TotalAmount: inv.TotalAmount}); err != nil {
			return Invoice{}, common.MapWriteError("invoice", err)
		}
	}
	events.EmitLogged(ctx, s.Events, s.Logger, events.TopicInvoiceCreated, row.ID, map[string]any{
		"customer_id":       inv.CustomerID,
		"table_id":          inv.TableID,
		"payment_method_id": inv.PaymentMethodID,
		"total_amount":      inv.TotalAmount,
	})
	return inv, nil
}

// Update reassigns the references of an invoice. issued_at and the total are not writable.
func (s *InvoiceService) Update(ctx context.Context, id string, in InvoiceInput) (Invoice, error) {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return Invoice{}, err
	}
	refs, err := in.refs()
	if err != nil {
		return Invoice{}, err
	}
	row, err := s.Q.UpdateInvoice(ctx, dbgen.UpdateInvoiceParams{
		ID:              pgID,
		PaymentMethodID: refs.paymentMethodID,
		TableID:         refs.tableID,
		CustomerID:      refs.customerID,
	})
	if err != nil {
		return Invoice{}, common.MapWriteError("invoice", err)
	}
	return s.withTotal(ctx, row, StageRead)
}

// Delete removes an invoice and every line billed to it.
func (s *InvoiceService) Delete(ctx context.Context, id string) error {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return err
	}
	n, err := s.Q.DeleteInvoice(ctx, pgID)
	return common.DeleteRows("invoice", n, err)
}

// SyncTotal recomputes and stores the total of invoiceID under the invoice lock.
func (s *InvoiceService) SyncTotal(ctx context.Context, invoiceID pgtype.UUID) error {
	if !invoiceID.Valid {
		return nil
	}
	sync := func(ctx context.Context) error {
		lines, total, err := s.aggregate(ctx, invoiceID)
		if err != nil {
			return err
		}
		if _, err := s.Q.SetInvoiceTotal(ctx, dbgen.SetInvoiceTotalParams{ID: invoiceID, TotalAmount: total}); err != nil {
			if common.IsNoRows(err) {
				return nil
			}
			return fmt.Errorf("store invoice total: %w", err)
		}
		obs.ObserveInvoiceTotal(StageSync, total)
		s.Logger.Debug().Str("invoice_id", common.UUIDString(invoiceID)).Int("lines", lines).Str("total", total.String()).Msg("invoice total synced")
		return nil
	}
	if s.Locks == nil {
		return sync(ctx)
	}
	return s.Locks.WithLock(ctx, "invoice:"+common.UUIDString(invoiceID), sync)
}

func (s *InvoiceService) aggregate(ctx context.Context, invoiceID pgtype.UUID) (int, decimal.Decimal, error) {
	rows, err := s.Q.ListOrderLinesByInvoice(ctx, invoiceID)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("list invoice lines: %w", err)
	}
	lines := make([]pricing.Line, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, pricing.Line{Subtotal: row.Subtotal, Tax: row.Tax, Total: row.Total})
	}
	return len(lines), pricing.InvoiceTotal(lines), nil
}

func (s *InvoiceService) withTotal(ctx context.Context, row dbgen.Invoice, stage string) (Invoice, error) {
	count, total, err := s.aggregate(ctx, row.ID)
	if err != nil {
		return Invoice{}, err
	}
	obs.ObserveInvoiceTotal(stage, total)
	inv := toInvoice(row)
	inv.TotalAmount = total
	inv.LineCount = count
	return inv, nil
}

func (in InvoiceInput) refs() (invoiceRefs, error) {
	if err := common.Validate(in); err != nil {
		return invoiceRefs{}, err
	}
	var (
		refs invoiceRefs
		err  error
	)
	if refs.paymentMethodID, err = common.ParseID("payment_method_id", in.PaymentMethodID); err != nil {
		return invoiceRefs{}, err
	}
	if refs.tableID, err = common.ParseID("table_id", in.TableID); err != nil {
		return invoiceRefs{}, err
	}
	if refs.customerID, err = common.ParseID("customer_id", in.CustomerID); err != nil {
		return invoiceRefs{}, err
	}
	return refs, nil
}

func toInvoice(row dbgen.Invoice) Invoice {
	return Invoice{
		ID:              common.UUIDString(row.ID),
		IssuedAt:        common.TimeFromPG(row.IssuedAt),
		TotalAmount:     row.TotalAmount,
		PaymentMethodID: common.UUIDString(row.PaymentMethodID),
		TableID:         common.UUIDString(row.TableID),
		CustomerID:      common.UUIDString(row.CustomerID),
		UpdatedAt:       common.TimeFromPG(row.UpdatedAt),
	}
}
