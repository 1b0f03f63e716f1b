package app

import (
	"fmt"

	"github.com/hibiken/asynq"
	redis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/backend-resto/internal/auth"
	"github.com/noah-isme/backend-resto/internal/billing"
	"github.com/noah-isme/backend-resto/internal/config"
	dbgen "github.com/noah-isme/backend-resto/internal/db/gen"
	"github.com/noah-isme/backend-resto/internal/dining"
	"github.com/noah-isme/backend-resto/internal/events"
	"github.com/noah-isme/backend-resto/internal/feedback"
	"github.com/noah-isme/backend-resto/internal/lock"
	"github.com/noah-isme/backend-resto/internal/menu"
	"github.com/noah-isme/backend-resto/internal/notify"
	"github.com/noah-isme/backend-resto/internal/order"
	"github.com/noah-isme/backend-resto/internal/pricing"
	"github.com/noah-isme/backend-resto/internal/promotion"
	"github.com/noah-isme/backend-resto/internal/user"
)

// Services holds one instance of every domain service.
type Services struct {
	Auth           *auth.Service
	Users          *user.Service
	Menu           *menu.Service
	Promotions     *promotion.Service
	Pricing        *pricing.Service
	Orders         *order.Service
	Statuses       *order.StatusService
	Lines          *order.LineService
	PaymentMethods *billing.PaymentMethodService
	Invoices       *billing.InvoiceService
	States         *dining.StateService
	Tables         *dining.TableService
	Reservations   *dining.ReservationService
	Comments       *feedback.Service
	Notifications  *notify.Service
}

// NewServices wires the domain services over q. rdb and tasks may be nil,
// which disables caching, locking and email delivery.
func NewServices(cfg *config.Config, q dbgen.Querier, rdb *redis.Client, tasks *asynq.Client, logger zerolog.Logger) (*Services, error) {
	authSvc, err := auth.NewService(auth.Config{
		Queries:        q,
		Secret:         cfg.JWTSecret,
		AccessTokenTTL: cfg.AccessTokenTTL,
		Issuer:         cfg.JWTIssuer,
		Audience:       cfg.JWTAudience,
	})
	if err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}

	emailNotifier := notify.EmailNotifier{Enabled: cfg.NotifyEmailEnabled, MaxRetry: cfg.QueueMaxRetry}
	if tasks != nil {
		emailNotifier.Client = tasks
	}
	bus := &events.Bus{Store: q, Notifiers: []events.Notifier{emailNotifier}}

	var locks billing.Locker
	if rdb != nil {
		locks = lock.New(rdb, cfg.LockTTL)
	}

	menuSvc := &menu.Service{Q: q, Cache: menu.NewCache(rdb, cfg.MenuCacheTTL), Logger: logger}
	promoSvc := &promotion.Service{Q: q}
	pricingSvc := &pricing.Service{
		Calc:       pricing.NewCalculator(cfg.Pricing),
		Menu:       menuSvc,
		Promotions: promoSvc,
	}
	invoices := &billing.InvoiceService{Q: q, Locks: locks, Events: bus, Logger: logger}

	return &Services{
		Auth:           authSvc,
		Users:          &user.Service{Q: q},
		Menu:           menuSvc,
		Promotions:     promoSvc,
		Pricing:        pricingSvc,
		Orders:         &order.Service{Q: q},
		Statuses:       &order.StatusService{Q: q},
		Lines:          &order.LineService{Q: q, Pricing: pricingSvc, Events: bus, Invoices: invoices, Logger: logger},
		PaymentMethods: &billing.PaymentMethodService{Q: q},
		Invoices:       invoices,
		States:         &dining.StateService{Q: q},
		Tables:         &dining.TableService{Q: q},
		Reservations:   &dining.ReservationService{Q: q},
		Comments:       &feedback.Service{Q: q, Menu: menuSvc},
		Notifications:  &notify.Service{Q: q, Events: bus, Logger: logger},
	}, nil
}
