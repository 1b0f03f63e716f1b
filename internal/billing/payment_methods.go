package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/backend-resto/internal/common"
	dbgen "github.com/noah-isme/backend-resto/internal/db/gen"
)

// PaymentMethodQuerier is the subset of generated queries used for payment methods.
type PaymentMethodQuerier interface {
	ListPaymentMethods(ctx context.Context, arg dbgen.ListPaymentMethodsParams) ([]dbgen.PaymentMethod, error)
	CountPaymentMethods(ctx context.Context) (int64, error)
	GetPaymentMethod(ctx context.Context, id pgtype.UUID) (dbgen.PaymentMethod, error)
	CreatePaymentMethod(ctx context.Context, arg dbgen.CreatePaymentMethodParams) (dbgen.PaymentMethod, error)
	UpdatePaymentMethod(ctx context.Context, arg dbgen.UpdatePaymentMethodParams) (dbgen.PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, id pgtype.UUID) (int64, error)
}

// PaymentMethod is the API representation of a payment method.
type PaymentMethod struct {
	ID            string          `json:"id"`
	Kind          string          `json:"kind"`
	PurchasedOn   string          `json:"purchased_on"`
	PurchaseTotal decimal.Decimal `json:"purchase_total"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// PaymentMethodInput is the writable part of a payment method.
type PaymentMethodInput struct {
	Kind          string          `json:"kind" validate:"required,notblank,max=50"`
	PurchasedOn   string          `json:"purchased_on" validate:"required,datetime=2006-01-02"`
	PurchaseTotal decimal.Decimal `json:"purchase_total"`
}

// PaymentMethodService manages payment methods.
type PaymentMethodService struct {
	Q PaymentMethodQuerier
}

func (in PaymentMethodInput) params() (dbgen.CreatePaymentMethodParams, error) {
	if err := common.Validate(in); err != nil {
		return dbgen.CreatePaymentMethodParams{}, err
	}
	if !in.PurchaseTotal.IsPositive() {
		return dbgen.CreatePaymentMethodParams{}, common.Invalid("purchase_total", "purchase_total must be greater than zero", nil)
	}
	if in.PurchaseTotal.Exponent() < -2 {
		return dbgen.CreatePaymentMethodParams{}, common.Invalid("purchase_total", "purchase_total allows at most two decimal places", nil)
	}
	day, err := time.Parse(time.DateOnly, in.PurchasedOn)
	if err != nil {
		return dbgen.CreatePaymentMethodParams{}, common.Invalid("purchased_on", "purchased_on must be a YYYY-MM-DD date", err)
	}
	return dbgen.CreatePaymentMethodParams{
		Kind:          in.Kind,
		PurchasedOn:   common.Date(day),
		PurchaseTotal: in.PurchaseTotal,
	}, nil
}

// List returns one page of payment methods, newest purchase first.
func (s *PaymentMethodService) List(ctx context.Context, page common.PageRequest) ([]PaymentMethod, int64, error) {
	rows, err := s.Q.ListPaymentMethods(ctx, dbgen.ListPaymentMethodsParams{Limit: page.Limit(), Offset: page.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("list payment methods: %w", err)
	}
	total, err := s.Q.CountPaymentMethods(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count payment methods: %w", err)
	}
	out := make([]PaymentMethod, 0, len(rows))
	for _, row := range rows {
		out = append(out, toPaymentMethod(row))
	}
	return out, total, nil
}

// Get fetches a payment method by id.
func (s *PaymentMethodService) Get(ctx context.Context, id string) (PaymentMethod, error) {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return PaymentMethod{}, err
	}
	row, err := s.Q.GetPaymentMethod(ctx, pgID)
	if err := common.GetRow("payment method", err); err != nil {
		return PaymentMethod{}, err
	}
	return toPaymentMethod(row), nil
}

// Create stores a payment method.
func (s *PaymentMethodService) Create(ctx context.Context, in PaymentMethodInput) (PaymentMethod, error) {
	params, err := in.params()
	if err != nil {
		return PaymentMethod{}, err
	}
	row, err := s.Q.CreatePaymentMethod(ctx, params)
	if err != nil {
		return PaymentMethod{}, common.MapWriteError("payment method", err)
	}
	return toPaymentMethod(row), nil
}

// Update replaces a payment method.
func (s *PaymentMethodService) Update(ctx context.Context, id string, in PaymentMethodInput) (PaymentMethod, error) {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return PaymentMethod{}, err
	}
	params, err := in.params()
	if err != nil {
		return PaymentMethod{}, err
	}
	row, err := s.Q.UpdatePaymentMethod(ctx, dbgen.UpdatePaymentMethodParams{
		ID:            pgID,
		Kind:          params.Kind,
		PurchasedOn:   params.PurchasedOn,
		PurchaseTotal: params.PurchaseTotal,
	})
	if err != nil {
		return PaymentMethod{}, common.MapWriteError("payment method", err)
	}
	return toPaymentMethod(row), nil
}

// Delete removes a payment method together with the invoices and reservations using it.
func (s *PaymentMethodService) Delete(ctx context.Context, id string) error {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return err
	}
	n, err := s.Q.DeletePaymentMethod(ctx, pgID)
	return common.DeleteRows("payment method", n, err)
}

func toPaymentMethod(row dbgen.PaymentMethod) PaymentMethod {
	return PaymentMethod{
		ID:            common.UUIDString(row.ID),
		Kind:          row.Kind,
		PurchasedOn:   common.DateString(row.PurchasedOn),
		PurchaseTotal: row.PurchaseTotal,
		CreatedAt:     common.TimeFromPG(row.CreatedAt),
		UpdatedAt:     common.TimeFromPG(row.UpdatedAt),
	}
}
