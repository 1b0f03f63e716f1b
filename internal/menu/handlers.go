package menu

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/noah-isme/backend-resto/internal/common"
)

// Handler exposes menu category and item endpoints.
type Handler struct {
	Svc             *Service
	DefaultPageSize int
	MaxPageSize     int
}

func (h *Handler) ready(w http.ResponseWriter) bool {
	if h == nil || h.Svc == nil || h.Svc.Q == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "menu service not configured", nil)
		return false
	}
	return true
}

// ListCategories handles GET /api/v1/categories.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	page := common.ParsePagination(r, h.DefaultPageSize, h.MaxPageSize)
	rows, total, err := h.Svc.ListCategories(r.Context(), page)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.Page(w, rows, page.Meta(total))
}

// CreateCategory handles POST /api/v1/categories.
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	var in CategoryInput
	if err := common.DecodeJSON(r, &in); err != nil {
		common.WriteError(w, err)
		return
	}
	cat, err := h.Svc.CreateCategory(r.Context(), in)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.Data(w, http.StatusCreated, cat)
}

// GetCategory handles GET /api/v1/categories/{id}.
func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	cat, err := h.Svc.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.Data(w, http.StatusOK, cat)
}

// UpdateCategory handles PUT /api/v1/categories/{id}.
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	var in CategoryInput
	if err := common.DecodeJSON(r, &in); err != nil {
		common.WriteError(w, err)
		return
	}
	cat, err := h.Svc.UpdateCategory(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.Data(w, http.StatusOK, cat)
}

// DeleteCategory handles DELETE /api/v1/categories/{id}.
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	if err := h.Svc.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		common.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListItems handles GET /api/v1/menu-items.
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	page := common.ParsePagination(r, h.DefaultPageSize, h.MaxPageSize)
	items, total, err := h.Svc.ListItems(r.Context(), page)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.Page(w, items, page.Meta(total))
}

// CreateItem handles POST /api/v1/menu-items.
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	var in ItemInput
	if err := common.DecodeJSON(r, &in); err != nil {
		common.WriteError(w, err)
		return
	}
	item, err := h.Svc.CreateItem(r.Context(), in)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.Data(w, http.StatusCreated, item)
}

// GetItem handles GET /api/v1/menu-items/{id}.
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	item, err := h.Svc.GetItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.Data(w, http.StatusOK, item)
}

// UpdateItem handles PUT /api/v1/menu-items/{id}.
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	var in ItemInput
	if err := common.DecodeJSON(r, &in); err != nil {
		common.WriteError(w, err)
		return
	}
	item, err := h.Svc.UpdateItem(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.Data(w, http.StatusOK, item)
}

// DeleteItem handles DELETE /api/v1/menu-items/{id}.
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	if err := h.Svc.DeleteItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		common.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
