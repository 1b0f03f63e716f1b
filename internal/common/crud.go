package common

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Resource is a service exposing the five collection operations of a REST resource.
type Resource[T any, In any] interface {
	List(ctx context.Context, page PageRequest) ([]T, int64, error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, in In) (T, error)
	Update(ctx context.Context, id string, in In) (T, error)
	Delete(ctx context.Context, id string) error
}

// CRUDHandler serves list/create on the collection and get/update/delete on /{id}.
type CRUDHandler[T any, In any] struct {
	Name            string
	Svc             Resource[T, In]
	DefaultPageSize int
	MaxPageSize     int
	// Prepare runs after decoding a create or update payload.
	Prepare func(r *http.Request, in *In) error
}

func (h *CRUDHandler[T, In]) ready(w http.ResponseWriter) bool {
	if h == nil || h.Svc == nil {
		name := "resource"
		if h != nil && h.Name != "" {
			name = h.Name
		}
		JSONError(w, http.StatusInternalServerError, "INTERNAL", name+" service not configured", nil)
		return false
	}
	return true
}

func (h *CRUDHandler[T, In]) decode(r *http.Request) (In, error) {
	var in In
	if err := DecodeJSON(r, &in); err != nil {
		return in, err
	}
	if h.Prepare != nil {
		if err := h.Prepare(r, &in); err != nil {
			return in, err
		}
	}
	return in, nil
}

// List handles GET on the collection.
func (h *CRUDHandler[T, In]) List(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	page := ParsePagination(r, h.DefaultPageSize, h.MaxPageSize)
	items, total, err := h.Svc.List(r.Context(), page)
	if err != nil {
		WriteError(w, err)
		return
	}
	Page(w, items, page.Meta(total))
}

// Create handles POST on the collection.
func (h *CRUDHandler[T, In]) Create(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	in, err := h.decode(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	out, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		WriteError(w, err)
		return
	}
	Data(w, http.StatusCreated, out)
}

// Get handles GET /{id}.
func (h *CRUDHandler[T, In]) Get(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	out, err := h.Svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}
	Data(w, http.StatusOK, out)
}

// Update handles PUT /{id}. The body replaces every writable field.
func (h *CRUDHandler[T, In]) Update(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	in, err := h.decode(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	out, err := h.Svc.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		WriteError(w, err)
		return
	}
	Data(w, http.StatusOK, out)
}

// Delete handles DELETE /{id}.
func (h *CRUDHandler[T, In]) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	if err := h.Svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteRows converts the affected-row count of a delete into a NOT_FOUND error when nothing matched.
func DeleteRows(resource string, n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return NotFound(resource, nil)
	}
	return nil
}

// GetRow maps a single-row lookup error to NOT_FOUND.
func GetRow(resource string, err error) error {
	if err == nil {
		return nil
	}
	if IsNoRows(err) {
		return NotFound(resource, err)
	}
	return err
}
