package app

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"net/http/pprof"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	redis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	limiter "github.com/ulule/limiter/v3"

	"github.com/noah-isme/backend-resto/internal/auth"
	"github.com/noah-isme/backend-resto/internal/authz"
	"github.com/noah-isme/backend-resto/internal/billing"
	"github.com/noah-isme/backend-resto/internal/common"
	"github.com/noah-isme/backend-resto/internal/config"
	"github.com/noah-isme/backend-resto/internal/dining"
	"github.com/noah-isme/backend-resto/internal/feedback"
	"github.com/noah-isme/backend-resto/internal/health"
	"github.com/noah-isme/backend-resto/internal/menu"
	"github.com/noah-isme/backend-resto/internal/notify"
	"github.com/noah-isme/backend-resto/internal/obs"
	"github.com/noah-isme/backend-resto/internal/order"
	"github.com/noah-isme/backend-resto/internal/promotion"
	"github.com/noah-isme/backend-resto/internal/ratelimit"
	"github.com/noah-isme/backend-resto/internal/security"
	"github.com/noah-isme/backend-resto/internal/user"
)

// Router assembles the HTTP surface of the API.
type Router struct {
	Config       *config.Config
	Services     *Services
	Redis        *redis.Client
	LimiterStore limiter.Store
	Checker      health.Checker
	Metrics      *obs.HTTPMetrics
	Logger       zerolog.Logger
}

// Handler builds the chi router with every middleware and route mounted.
func (rt Router) Handler() (http.Handler, error) {
	cfg, svc := rt.Config, rt.Services
	enforcer, err := authz.New(authz.DefaultPolicy(), rt.Logger)
	if err != nil {
		return nil, fmt.Errorf("authorization: %w", err)
	}
	authMW := auth.Middleware{Service: svc.Auth}
	idem := common.Idem{R: rt.Redis, TTL: cfg.IdempotencyTTL}
	throttle := ratelimit.New(rt.LimiterStore, ratelimit.Config{
		Window: cfg.AuthRateLimitWindow,
		Max:    cfg.AuthRateLimitMax,
	}, rt.Logger).Middleware

	pageSize, maxPage := cfg.DefaultPageSize, cfg.MaxPageSize
	authHandler := &auth.Handler{Service: svc.Auth}
	menuHandler := &menu.Handler{Svc: svc.Menu, DefaultPageSize: pageSize, MaxPageSize: maxPage}
	orderHandler := order.NewHandler(svc.Orders, pageSize, maxPage)
	lineHandler := order.NewLineHandler(svc.Lines, pageSize, maxPage)
	commentHandler := feedback.NewHandler(svc.Comments, pageSize, maxPage)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if cfg.Obs.TracingEnabled {
		r.Use(obs.TracingMiddleware)
	}
	if rt.Metrics != nil {
		r.Use(obs.HTTPObs{Metrics: rt.Metrics}.Middleware)
	}
	r.Use(obs.RequestLogger{Logger: rt.Logger}.Middleware)
	r.Use(security.Headers{Enable: cfg.SecurityHeadersEnabled}.Middleware)
	r.Use(security.CORS(cfg.CORSAllowedOrigins))
	r.Use(security.BodyLimit{Max: cfg.BodyLimitBytes}.Middleware)

	healthHandler := health.Handler{Checker: rt.Checker, DBTimeout: cfg.HealthDBTimeout, RedisTimeout: cfg.HealthRedisTimeout}
	r.Get("/health/live", healthHandler.Live)
	r.Get("/health/ready", healthHandler.Ready)
	if cfg.Obs.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}
	if cfg.Obs.PprofEnabled {
		r.Handle("/debug/pprof/*", basicAuth(pprofMux(), cfg.Obs.PprofUser, cfg.Obs.PprofPass))
	}

	r.Route("/api/v1", func(v chi.Router) {
		v.Use(authMW.Authenticate)

		v.Route("/auth", func(a chi.Router) {
			a.With(throttle).Post("/register", authHandler.Register)
			a.With(throttle).Post("/login", authHandler.Login)
			a.With(authMW.RequireAuth).Get("/me", authHandler.Me)
		})

		v.Group(func(p chi.Router) {
			p.Use(authMW.RequireAuth)
			p.Use(idem.Middleware)

			p.Get("/customers/{customerId}/orders", orderHandler.ByCustomer)
			p.Get("/customers/{customerId}/comments", commentHandler.ByCustomer)

			enforcer.Mount(p, authz.ResourceUsers, authz.RoutesOf(user.NewHandler(svc.Users, pageSize, maxPage)))
			enforcer.Mount(p, authz.ResourceCategories, authz.Routes{
				List: menuHandler.ListCategories, Create: menuHandler.CreateCategory, Get: menuHandler.GetCategory,
				Update: menuHandler.UpdateCategory, Delete: menuHandler.DeleteCategory,
			})
			enforcer.Mount(p, authz.ResourceMenuItems, authz.Routes{
				List: menuHandler.ListItems, Create: menuHandler.CreateItem, Get: menuHandler.GetItem,
				Update: menuHandler.UpdateItem, Delete: menuHandler.DeleteItem,
			})
			enforcer.Mount(p, authz.ResourceOrderStatuses, authz.RoutesOf(order.NewStatusHandler(svc.Statuses, pageSize, maxPage)))
			enforcer.Mount(p, authz.ResourceOrders, authz.RoutesOf(orderHandler))
			enforcer.Mount(p, authz.ResourcePromotions, authz.RoutesOf(promotion.NewHandler(svc.Promotions, pageSize, maxPage)))
			enforcer.Mount(p, authz.ResourcePaymentMethods, authz.RoutesOf(billing.NewPaymentMethodHandler(svc.PaymentMethods, pageSize, maxPage)))
			enforcer.Mount(p, authz.ResourceTableStates, authz.RoutesOf(dining.NewStateHandler(svc.States, pageSize, maxPage)))
			enforcer.Mount(p, authz.ResourceTables, authz.RoutesOf(dining.NewTableHandler(svc.Tables, pageSize, maxPage)))
			enforcer.Mount(p, authz.ResourceComments, authz.RoutesOf(commentHandler))
			enforcer.Mount(p, authz.ResourceNotifications, authz.RoutesOf(notify.NewHandler(svc.Notifications, pageSize, maxPage)))
			enforcer.Mount(p, authz.ResourceReservations, authz.RoutesOf(dining.NewReservationHandler(svc.Reservations, pageSize, maxPage)))
			enforcer.Mount(p, authz.ResourceInvoices, authz.RoutesOf(billing.NewInvoiceHandler(svc.Invoices, pageSize, maxPage)))
			enforcer.Mount(p, authz.ResourceOrderLines, authz.RoutesOf(lineHandler), func(r chi.Router) {
				r.With(enforcer.Require(authz.ResourceOrderLines, authz.ActionQuote)).Post("/quote", lineHandler.Quote)
			})
		})
	})

	return r, nil
}

func pprofMux() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	return mux
}

func basicAuth(next http.Handler, user, pass string) http.Handler {
	user, pass = strings.TrimSpace(user), strings.TrimSpace(pass)
	if user == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, p, ok := r.BasicAuth()
		if !ok || subtle.ConstantTimeCompare([]byte(u), []byte(user)) != 1 || subtle.ConstantTimeCompare([]byte(p), []byte(pass)) != 1 {
			w.Header().Set("WWW-Authenticate", `Basic realm="pprof"`)
			common.JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
