package order

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/noah-isme/backend-resto/internal/common"
	dbgen "github.com/noah-isme/backend-resto/internal/db/gen"
)

// Order states accepted by order_statuses.
const (
	StatusPreparing = "preparación"
	StatusSent      = "enviado"
	StatusDelivered = "entregado"
)

// StatusQuerier is the subset of generated queries used for order statuses.
type StatusQuerier interface {
	ListOrderStatuses(ctx context.Context, arg dbgen.ListOrderStatusesParams) ([]dbgen.OrderStatus, error)
	CountOrderStatuses(ctx context.Context) (int64, error)
	GetOrderStatus(ctx context.Context, id pgtype.UUID) (dbgen.OrderStatus, error)
	CreateOrderStatus(ctx context.Context, status string) (dbgen.OrderStatus, error)
	UpdateOrderStatus(ctx context.Context, arg dbgen.UpdateOrderStatusParams) (dbgen.OrderStatus, error)
	DeleteOrderStatus(ctx context.Context, id pgtype.UUID) (int64, error)
}

// Status is the API representation of an order status row.
type Status struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StatusInput is the writable part of an order status.
type StatusInput struct {
	Status string `json:"status" validate:"required,oneof=preparación enviado entregado"`
}

// StatusService manages the order status catalogue.
type StatusService struct {
	Q StatusQuerier
}

// List returns one page of statuses.
func (s *StatusService) List(ctx context.Context, page common.PageRequest) ([]Status, int64, error) {
	rows, err := s.Q.ListOrderStatuses(ctx, dbgen.ListOrderStatusesParams{Limit: page.Limit(), Offset: page.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("list order statuses: %w", err)
	}
	total, err := s.Q.CountOrderStatuses(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count order statuses: %w", err)
	}
	out := make([]Status, 0, len(rows))
	for _, row := range rows {
		out = append(out, toStatus(row))
	}
	return out, total, nil
}

// Get fetches a status by id.
func (s *StatusService) Get(ctx context.Context, id string) (Status, error) {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return Status{}, err
	}
	row, err := s.Q.GetOrderStatus(ctx, pgID)
	if err := common.GetRow("order status", err); err != nil {
		return Status{}, err
	}
	return toStatus(row), nil
}

// Create stores a new status.
func (s *StatusService) Create(ctx context.Context, in StatusInput) (Status, error) {
	if err := common.Validate(in); err != nil {
		return Status{}, err
	}
	row, err := s.Q.CreateOrderStatus(ctx, in.Status)
	if err != nil {
		return Status{}, common.MapWriteError("order status", err)
	}
	return toStatus(row), nil
}

// Update changes the label of a status.
func (s *StatusService) Update(ctx context.Context, id string, in StatusInput) (Status, error) {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return Status{}, err
	}
	if err := common.Validate(in); err != nil {
		return Status{}, err
	}
	row, err := s.Q.UpdateOrderStatus(ctx, dbgen.UpdateOrderStatusParams{ID: pgID, Status: in.Status})
	if err != nil {
		return Status{}, common.MapWriteError("order status", err)
	}
	return toStatus(row), nil
}

// Delete removes a status and, by cascade, the orders in it.
func (s *StatusService) Delete(ctx context.Context, id string) error {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return err
	}
	n, err := s.Q.DeleteOrderStatus(ctx, pgID)
	return common.DeleteRows("order status", n, err)
}

func toStatus(row dbgen.OrderStatus) Status {
	return Status{
		ID:        common.UUIDString(row.ID),
		Status:    row.Status,
		CreatedAt: common.TimeFromPG(row.CreatedAt),
		UpdatedAt: common.TimeFromPG(row.UpdatedAt),
	}
}
