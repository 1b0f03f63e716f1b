package order

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/noah-isme/backend-resto/internal/common"
)

// NewStatusHandler exposes the order status catalogue.
func NewStatusHandler(svc *StatusService, defaultPageSize, maxPageSize int) *common.CRUDHandler[Status, StatusInput] {
	h := &common.CRUDHandler[Status, StatusInput]{Name: "order status", DefaultPageSize: defaultPageSize, MaxPageSize: maxPageSize}
	if svc != nil {
		h.Svc = svc
	}
	return h
}

// Handler exposes order endpoints. Customers only see and place their own orders.
type Handler struct {
	*common.CRUDHandler[Order, OrderInput]
	Svc *Service
}

// NewHandler constructs the order Handler.
func NewHandler(svc *Service, defaultPageSize, maxPageSize int) *Handler {
	crud := &common.CRUDHandler[Order, OrderInput]{
		Name:            "order",
		DefaultPageSize: defaultPageSize,
		MaxPageSize:     maxPageSize,
		Prepare:         ownCustomer,
	}
	if svc != nil {
		crud.Svc = svc
	}
	return &Handler{CRUDHandler: crud, Svc: svc}
}

func ownCustomer(r *http.Request, in *OrderInput) error {
	return common.PinCustomer(r.Context(), &in.CustomerID)
}

// List handles GET /api/v1/orders. Non-admin callers receive their own orders.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	p, ok := common.PrincipalFrom(r.Context())
	if ok && !p.IsAdmin() {
		h.listFor(w, r, p.UserID)
		return
	}
	h.CRUDHandler.List(w, r)
}

// ByCustomer handles GET /api/v1/customers/{customerId}/orders.
func (h *Handler) ByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerId")
	p, _ := common.PrincipalFrom(r.Context())
	if !p.CanActFor(customerID) {
		common.WriteError(w, common.Forbidden("cannot read orders of another customer"))
		return
	}
	h.listFor(w, r, customerID)
}

func (h *Handler) listFor(w http.ResponseWriter, r *http.Request, customerID string) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "order service not configured", nil)
		return
	}
	page := common.ParsePagination(r, h.DefaultPageSize, h.MaxPageSize)
	rows, total, err := h.Svc.ListByCustomer(r.Context(), customerID, page)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.Page(w, rows, page.Meta(total))
}

// LineHandler exposes order line endpoints plus the pricing dry-run.
type LineHandler struct {
	*common.CRUDHandler[Line, LineInput]
	Svc *LineService
}

// NewLineHandler constructs the LineHandler.
func NewLineHandler(svc *LineService, defaultPageSize, maxPageSize int) *LineHandler {
	crud := &common.CRUDHandler[Line, LineInput]{Name: "order line", DefaultPageSize: defaultPageSize, MaxPageSize: maxPageSize}
	if svc != nil {
		crud.Svc = svc
	}
	return &LineHandler{CRUDHandler: crud, Svc: svc}
}

// Quote handles POST /api/v1/order-lines/quote.
func (h *LineHandler) Quote(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "order line service not configured", nil)
		return
	}
	var in QuoteInput
	if err := common.DecodeJSON(r, &in); err != nil {
		common.WriteError(w, err)
		return
	}
	quote, err := h.Svc.Quote(r.Context(), in)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.Data(w, http.StatusOK, quote)
}
