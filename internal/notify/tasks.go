package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"

	"github.com/noah-isme/backend-resto/internal/common"
	dbgen "github.com/noah-isme/backend-resto/internal/db/gen"
	"github.com/noah-isme/backend-resto/internal/events"
	"github.com/noah-isme/backend-resto/internal/obs"
)

// TypeNotificationEmail is the asynq task type for notification emails.
const TypeNotificationEmail = "notification:email"

// EmailPayload is the body of a notification email task.
type EmailPayload struct {
	NotificationID string `json:"notification_id"`
	CustomerID     string `json:"customer_id"`
	Message        string `json:"message"`
}

// Enqueuer is the part of *asynq.Client used to schedule tasks.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// EmailNotifier turns notification.created events into email tasks.
type EmailNotifier struct {
	Client   Enqueuer
	Enabled  bool
	Queue    string
	MaxRetry int
}

// Notify implements events.Notifier.
func (n EmailNotifier) Notify(ctx context.Context, event dbgen.DomainEvent) error {
	if !n.Enabled || n.Client == nil || event.Topic != events.TopicNotificationCreated {
		return nil
	}
	var payload EmailPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return fmt.Errorf("decode notification event: %w", err)
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	opts := []asynq.Option{asynq.Timeout(30 * time.Second)}
	if n.Queue != "" {
		opts = append(opts, asynq.Queue(n.Queue))
	}
	if n.MaxRetry > 0 {
		opts = append(opts, asynq.MaxRetry(n.MaxRetry))
	}
	if event.ID.Valid {
		opts = append(opts, asynq.TaskID("email:"+common.UUIDString(event.ID)))
	}
	_, err = n.Client.EnqueueContext(ctx, asynq.NewTask(TypeNotificationEmail, body), opts...)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("enqueue notification email: %w", err)
	}
	return nil
}

// Recipients resolves a customer's email address.
type Recipients interface {
	GetUser(ctx context.Context, id pgtype.UUID) (dbgen.User, error)
}

// EmailHandler processes notification email tasks on the worker.
type EmailHandler struct {
	Users  Recipients
	Mail   EmailSender
	Logger zerolog.Logger
}

// ProcessTask implements asynq.Handler.
func (h EmailHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload EmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		obs.ObserveNotificationEmail("invalid")
		return fmt.Errorf("decode email task: %v: %w", err, asynq.SkipRetry)
	}
	customerID, err := common.ParseID("customer_id", payload.CustomerID)
	if err != nil {
		obs.ObserveNotificationEmail("invalid")
		return fmt.Errorf("email task: %v: %w", err, asynq.SkipRetry)
	}
	user, err := h.Users.GetUser(ctx, customerID)
	if err != nil {
		if common.IsNoRows(err) {
			obs.ObserveNotificationEmail("no_recipient")
			return nil
		}
		obs.ObserveNotificationEmail("error")
		return fmt.Errorf("lookup recipient: %w", err)
	}
	to := strings.TrimSpace(user.Email)
	if to == "" {
		obs.ObserveNotificationEmail("no_recipient")
		return nil
	}
	if err := h.Mail.Send(to, "Tienes una nueva notificación", payload.Message); err != nil {
		obs.ObserveNotificationEmail("error")
		return fmt.Errorf("send notification email: %w", err)
	}
	obs.ObserveNotificationEmail("sent")
	h.Logger.Debug().Str("notification_id", payload.NotificationID).Str("to", to).Msg("notification email delivered")
	return nil
}

// Register mounts the notification handlers on mux.
func Register(mux *asynq.ServeMux, h EmailHandler) {
	mux.Handle(TypeNotificationEmail, h)
}
