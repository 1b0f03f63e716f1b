package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"

	"github.com/noah-isme/backend-resto/internal/common"
	dbgen "github.com/noah-isme/backend-resto/internal/db/gen"
	"github.com/noah-isme/backend-resto/internal/events"
)

// Querier is the subset of generated queries used for notifications.
type Querier interface {
	ListNotifications(ctx context.Context, arg dbgen.ListNotificationsParams) ([]dbgen.Notification, error)
	CountNotifications(ctx context.Context) (int64, error)
	GetNotification(ctx context.Context, id pgtype.UUID) (dbgen.Notification, error)
	CreateNotification(ctx context.Context, arg dbgen.CreateNotificationParams) (dbgen.Notification, error)
	UpdateNotification(ctx context.Context, arg dbgen.UpdateNotificationParams) (dbgen.Notification, error)
	DeleteNotification(ctx context.Context, id pgtype.UUID) (int64, error)
}

// Notification is a message addressed to one customer.
type Notification struct {
	ID         string    `json:"id"`
	Message    string    `json:"message"`
	Read       bool      `json:"read"`
	CustomerID string    `json:"customer_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Input struct {
	Message    string `json:"message" validate:"required,notblank,max=500"`
	Read       bool   `json:"read"`
	CustomerID string `json:"customer_id" validate:"required"`
}

// Service manages notifications and announces new ones on the event bus.
type Service struct {
	Q      Querier
	Events events.Emitter
	Logger zerolog.Logger
}

func (s *Service) List(ctx context.Context, page common.PageRequest) ([]Notification, int64, error) {
	rows, err := s.Q.ListNotifications(ctx, dbgen.ListNotificationsParams{Limit: page.Limit(), Offset: page.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}
	total, err := s.Q.CountNotifications(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count notifications: %w", err)
	}
	out := make([]Notification, 0, len(rows))
	for _, row := range rows {
		out = append(out, toNotification(row))
	}
	return out, total, nil
}

func (s *Service) Get(ctx context.Context, id string) (Notification, error) {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return Notification{}, err
	}
	row, err := s.Q.GetNotification(ctx, pgID)
	if err := common.GetRow("notification", err); err != nil {
		return Notification{}, err
	}
	return toNotification(row), nil
}

// Create stores a notification and emits notification.created.
func (s *Service) Create(ctx context.Context, in Input) (Notification, error) {
	customerID, err := in.customer()
	if err != nil {
		return Notification{}, err
	}
	row, err := s.Q.CreateNotification(ctx, dbgen.CreateNotificationParams{Message: in.Message, Read: in.Read, CustomerID: customerID})
	if err != nil {
		return Notification{}, common.MapWriteError("notification", err)
	}
	events.EmitLogged(ctx, s.Events, s.Logger, events.TopicNotificationCreated, row.ID, EmailPayload{
		NotificationID: common.UUIDString(row.ID),
		CustomerID:     common.UUIDString(row.CustomerID),
		Message:        row.Message,
	})
	return toNotification(row), nil
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Notification, error) {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return Notification{}, err
	}
	customerID, err := in.customer()
	if err != nil {
		return Notification{}, err
	}
	row, err := s.Q.UpdateNotification(ctx, dbgen.UpdateNotificationParams{ID: pgID, Message: in.Message, Read: in.Read, CustomerID: customerID})
	if err != nil {
		return Notification{}, common.MapWriteError("notification", err)
	}
	return toNotification(row), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return err
	}
	n, err := s.Q.DeleteNotification(ctx, pgID)
	return common.DeleteRows("notification", n, err)
}

func (in Input) customer() (pgtype.UUID, error) {
	if err := common.Validate(in); err != nil {
		return pgtype.UUID{}, err
	}
	return common.ParseID("customer_id", in.CustomerID)
}

func toNotification(row dbgen.Notification) Notification {
	return Notification{
		ID:         common.UUIDString(row.ID),
		Message:    row.Message,
		Read:       row.Read,
		CustomerID: common.UUIDString(row.CustomerID),
		CreatedAt:  common.TimeFromPG(row.CreatedAt),
		UpdatedAt:  common.TimeFromPG(row.UpdatedAt),
	}
}

// NewHandler exposes notification endpoints.
func NewHandler(svc *Service, defaultPageSize, maxPageSize int) *common.CRUDHandler[Notification, Input] {
	h := &common.CRUDHandler[Notification, Input]{Name: "notification", DefaultPageSize: defaultPageSize, MaxPageSize: maxPageSize}
	if svc != nil {
		h.Svc = svc
	}
	return h
}
