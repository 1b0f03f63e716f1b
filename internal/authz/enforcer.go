package authz

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/noah-isme/backend-resto/internal/common"
)

//go:embed model.conf
var modelText string

// Actions checked against the policy.
const (
	ActionList   = "list"
	ActionCreate = "create"
	ActionRead   = "read"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionQuote  = "quote"
)

// Resources guarded by the policy. They match the URL segment of each collection.
const (
	ResourceUsers          = "users"
	ResourceCategories     = "categories"
	ResourceMenuItems      = "menu-items"
	ResourceOrderStatuses  = "order-statuses"
	ResourceOrders         = "orders"
	ResourcePromotions     = "promotions"
	ResourcePaymentMethods = "payment-methods"
	ResourceTableStates    = "table-states"
	ResourceTables         = "tables"
	ResourceComments       = "comments"
	ResourceNotifications  = "notifications"
	ResourceReservations   = "reservations"
	ResourceInvoices       = "invoices"
	ResourceOrderLines     = "order-lines"
)

// DefaultPolicy grants Admin everything. Cliente may list and create the
// resources a diner uses and fully manage comments.
func DefaultPolicy() [][]string {
	policy := [][]string{{common.GroupAdmin, "*", "*"}}
	for _, res := range []string{ResourceUsers, ResourceMenuItems, ResourceOrders, ResourceReservations} {
		policy = append(policy,
			[]string{common.GroupClient, res, ActionList},
			[]string{common.GroupClient, res, ActionCreate},
		)
	}
	policy = append(policy, []string{common.GroupClient, ResourceComments, "*"})
	return policy
}

// Enforcer decides whether a principal's groups allow an action on a resource.
type Enforcer struct {
	e      *casbin.SyncedEnforcer
	logger zerolog.Logger
}

// New builds an in-memory enforcer loaded with policy.
func New(policy [][]string, logger zerolog.Logger) (*Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("authz: model: %w", err)
	}
	e, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("authz: enforcer: %w", err)
	}
	if len(policy) > 0 {
		if _, err := e.AddPolicies(policy); err != nil {
			return nil, fmt.Errorf("authz: load policy: %w", err)
		}
	}
	return &Enforcer{e: e, logger: logger}, nil
}

// Allowed reports whether any group of p grants action on resource.
func (z *Enforcer) Allowed(p common.Principal, resource, action string) (bool, error) {
	for _, group := range p.Groups {
		ok, err := z.e.Enforce(group, resource, action)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// Require guards a handler: 401 without a principal, 403 when the policy denies.
func (z *Enforcer) Require(resource, action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := common.PrincipalFrom(r.Context())
			if !ok {
				common.WriteError(w, common.Unauthorized("authentication required"))
				return
			}
			allowed, err := z.Allowed(p, resource, action)
			if err != nil {
				z.logger.Error().Err(err).Str("resource", resource).Str("action", action).Msg("authorization check failed")
				common.WriteError(w, err)
				return
			}
			if !allowed {
				common.WriteError(w, common.Forbidden("you do not have permission to perform this action"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CRUD is the handler set of one REST collection.
type CRUD interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// Routes names the handlers of a collection that is not a CRUD value.
type Routes struct {
	List, Create, Get, Update, Delete http.HandlerFunc
}

// RoutesOf adapts a CRUD handler.
func RoutesOf(h CRUD) Routes {
	return Routes{List: h.List, Create: h.Create, Get: h.Get, Update: h.Update, Delete: h.Delete}
}

// Mount registers the collection routes of resource on r, each behind its
// policy check. Updates are full replacements on PUT; PATCH is not routed.
// extra adds routes to the same subrouter.
func (z *Enforcer) Mount(r chi.Router, resource string, h Routes, extra ...func(chi.Router)) {
	r.Route("/"+resource, func(r chi.Router) {
		for _, fn := range extra {
			fn(r)
		}
		r.With(z.Require(resource, ActionList)).Get("/", h.List)
		r.With(z.Require(resource, ActionCreate)).Post("/", h.Create)
		r.With(z.Require(resource, ActionRead)).Get("/{id}", h.Get)
		r.With(z.Require(resource, ActionUpdate)).Put("/{id}", h.Update)
		r.With(z.Require(resource, ActionDelete)).Delete("/{id}", h.Delete)
	})
}
