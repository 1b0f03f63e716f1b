package order

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/noah-isme/backend-resto/internal/common"
	dbgen "github.com/noah-isme/backend-resto/internal/db/gen"
)

// OrderQuerier is the subset of generated queries used for orders.
type OrderQuerier interface {
	ListOrders(ctx context.Context, arg dbgen.ListOrdersParams) ([]dbgen.Order, error)
	CountOrders(ctx context.Context) (int64, error)
	ListOrdersByCustomer(ctx context.Context, arg dbgen.ListOrdersByCustomerParams) ([]dbgen.Order, error)
	CountOrdersByCustomer(ctx context.Context, customerID pgtype.UUID) (int64, error)
	GetOrder(ctx context.Context, id pgtype.UUID) (dbgen.Order, error)
	CreateOrder(ctx context.Context, arg dbgen.CreateOrderParams) (dbgen.Order, error)
	UpdateOrder(ctx context.Context, arg dbgen.UpdateOrderParams) (dbgen.Order, error)
	DeleteOrder(ctx context.Context, id pgtype.UUID) (int64, error)
}

// Order is the API representation of an order.
type Order struct {
	ID         string    `json:"id"`
	OrderedAt  time.Time `json:"ordered_at"`
	StatusID   string    `json:"status_id"`
	CustomerID string    `json:"customer_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// OrderInput is the writable part of an order. OrderedAt defaults to now.
type OrderInput struct {
	OrderedAt  *time.Time `json:"ordered_at"`
	StatusID   string     `json:"status_id" validate:"required"`
	CustomerID string     `json:"customer_id" validate:"required"`
}

// Service manages orders.
type Service struct {
	Q   OrderQuerier
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// List returns one page of all orders.
func (s *Service) List(ctx context.Context, page common.PageRequest) ([]Order, int64, error) {
	rows, err := s.Q.ListOrders(ctx, dbgen.ListOrdersParams{Limit: page.Limit(), Offset: page.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	total, err := s.Q.CountOrders(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}
	return toOrders(rows), total, nil
}

// ListByCustomer returns one page of the orders placed by customerID.
func (s *Service) ListByCustomer(ctx context.Context, customerID string, page common.PageRequest) ([]Order, int64, error) {
	pgID, err := common.ParseID("customer_id", customerID)
	if err != nil {
		return nil, 0, err
	}
	rows, err := s.Q.ListOrdersByCustomer(ctx, dbgen.ListOrdersByCustomerParams{CustomerID: pgID, Limit: page.Limit(), Offset: page.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("list customer orders: %w", err)
	}
	total, err := s.Q.CountOrdersByCustomer(ctx, pgID)
	if err != nil {
		return nil, 0, fmt.Errorf("count customer orders: %w", err)
	}
	return toOrders(rows), total, nil
}

// Get fetches an order by id.
func (s *Service) Get(ctx context.Context, id string) (Order, error) {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return Order{}, err
	}
	row, err := s.Q.GetOrder(ctx, pgID)
	if err := common.GetRow("order", err); err != nil {
		return Order{}, err
	}
	return toOrder(row), nil
}

// Create places an order.
func (s *Service) Create(ctx context.Context, in OrderInput) (Order, error) {
	if err := common.Validate(in); err != nil {
		return Order{}, err
	}
	statusID, err := common.ParseID("status_id", in.StatusID)
	if err != nil {
		return Order{}, err
	}
	customerID, err := common.ParseID("customer_id", in.CustomerID)
	if err != nil {
		return Order{}, err
	}
	orderedAt := s.now()
	if in.OrderedAt != nil && !in.OrderedAt.IsZero() {
		orderedAt = *in.OrderedAt
	}
	row, err := s.Q.CreateOrder(ctx, dbgen.CreateOrderParams{
		OrderedAt:  common.Timestamptz(orderedAt),
		StatusID:   statusID,
		CustomerID: customerID,
	})
	if err != nil {
		return Order{}, common.MapWriteError("order", err)
	}
	return toOrder(row), nil
}

// Update moves an order to another status or customer. ordered_at is immutable.
func (s *Service) Update(ctx context.Context, id string, in OrderInput) (Order, error) {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return Order{}, err
	}
	if err := common.Validate(in); err != nil {
		return Order{}, err
	}
	statusID, err := common.ParseID("status_id", in.StatusID)
	if err != nil {
		return Order{}, err
	}
	customerID, err := common.ParseID("customer_id", in.CustomerID)
	if err != nil {
		return Order{}, err
	}
	row, err := s.Q.UpdateOrder(ctx, dbgen.UpdateOrderParams{ID: pgID, StatusID: statusID, CustomerID: customerID})
	if err != nil {
		return Order{}, common.MapWriteError("order", err)
	}
	return toOrder(row), nil
}

// Delete removes an order and its lines.
func (s *Service) Delete(ctx context.Context, id string) error {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return err
	}
	n, err := s.Q.DeleteOrder(ctx, pgID)
	return common.DeleteRows("order", n, err)
}

func toOrders(rows []dbgen.Order) []Order {
	out := make([]Order, 0, len(rows))
	for _, row := range rows {
		out = append(out, toOrder(row))
	}
	return out
}

func toOrder(row dbgen.Order) Order {
	return Order{
		ID:         common.UUIDString(row.ID),
		OrderedAt:  common.TimeFromPG(row.OrderedAt),
		StatusID:   common.UUIDString(row.StatusID),
		CustomerID: common.UUIDString(row.CustomerID),
		CreatedAt:  common.TimeFromPG(row.CreatedAt),
		UpdatedAt:  common.TimeFromPG(row.UpdatedAt),
	}
}
