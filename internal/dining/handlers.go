package dining

import (
	"net/http"

	"github.com/noah-isme/backend-resto/internal/common"
)

// NewStateHandler exposes the table state catalogue.
func NewStateHandler(svc *StateService, defaultPageSize, maxPageSize int) *common.CRUDHandler[State, StateInput] {
	h := &common.CRUDHandler[State, StateInput]{Name: "table state", DefaultPageSize: defaultPageSize, MaxPageSize: maxPageSize}
	if svc != nil {
		h.Svc = svc
	}
	return h
}

// NewTableHandler exposes dining table endpoints.
func NewTableHandler(svc *TableService, defaultPageSize, maxPageSize int) *common.CRUDHandler[Table, TableInput] {
	h := &common.CRUDHandler[Table, TableInput]{Name: "table", DefaultPageSize: defaultPageSize, MaxPageSize: maxPageSize}
	if svc != nil {
		h.Svc = svc
	}
	return h
}

// NewReservationHandler exposes reservation endpoints. Customers book for themselves.
func NewReservationHandler(svc *ReservationService, defaultPageSize, maxPageSize int) *common.CRUDHandler[Reservation, ReservationInput] {
	h := &common.CRUDHandler[Reservation, ReservationInput]{
		Name:            "reservation",
		DefaultPageSize: defaultPageSize,
		MaxPageSize:     maxPageSize,
		Prepare: func(r *http.Request, in *ReservationInput) error {
			return common.PinCustomer(r.Context(), &in.CustomerID)
		},
	}
	if svc != nil {
		h.Svc = svc
	}
	return h
}
