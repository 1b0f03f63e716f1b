package feedback

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/noah-isme/backend-resto/internal/common"
)

// Handler exposes comment endpoints.
type Handler struct {
	*common.CRUDHandler[Comment, Input]
	Svc *Service
}

// NewHandler constructs the comment Handler.
func NewHandler(svc *Service, defaultPageSize, maxPageSize int) *Handler {
	crud := &common.CRUDHandler[Comment, Input]{
		Name:            "comment",
		DefaultPageSize: defaultPageSize,
		MaxPageSize:     maxPageSize,
		Prepare: func(r *http.Request, in *Input) error {
			return common.PinCustomer(r.Context(), &in.CustomerID)
		},
	}
	if svc != nil {
		crud.Svc = svc
	}
	return &Handler{CRUDHandler: crud, Svc: svc}
}

// ByCustomer handles GET /api/v1/customers/{customerId}/comments.
func (h *Handler) ByCustomer(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "comment service not configured", nil)
		return
	}
	page := common.ParsePagination(r, h.DefaultPageSize, h.MaxPageSize)
	rows, total, err := h.Svc.ListByCustomer(r.Context(), chi.URLParam(r, "customerId"), page)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.Page(w, rows, page.Meta(total))
}
