package dining

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/noah-isme/backend-resto/internal/common"
	dbgen "github.com/noah-isme/backend-resto/internal/db/gen"
)

// ReservationQuerier is the subset of generated queries used for reservations.
type ReservationQuerier interface {
	ListReservations(ctx context.Context, arg dbgen.ListReservationsParams) ([]dbgen.Reservation, error)
	CountReservations(ctx context.Context) (int64, error)
	GetReservation(ctx context.Context, id pgtype.UUID) (dbgen.Reservation, error)
	CreateReservation(ctx context.Context, arg dbgen.CreateReservationParams) (dbgen.Reservation, error)
	UpdateReservation(ctx context.Context, arg dbgen.UpdateReservationParams) (dbgen.Reservation, error)
	DeleteReservation(ctx context.Context, id pgtype.UUID) (int64, error)
	GetDiningTable(ctx context.Context, id pgtype.UUID) (dbgen.DiningTable, error)
}

// Reservation is the API representation of a table booking.
type Reservation struct {
	ID              string    `json:"id"`
	TableID         string    `json:"table_id"`
	PaymentMethodID string    `json:"payment_method_id"`
	ReservedFor     time.Time `json:"reserved_for"`
	CustomerID      string    `json:"customer_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ReservationInput is the writable part of a reservation.
// CustomerID is fixed at creation.
type ReservationInput struct {
	TableID         string    `json:"table_id" validate:"required"`
	PaymentMethodID string    `json:"payment_method_id" validate:"required"`
	ReservedFor     time.Time `json:"reserved_for" validate:"required"`
	CustomerID      string    `json:"customer_id" validate:"required"`
}

// ReservationService books tables.
type ReservationService struct {
	Q   ReservationQuerier
	Now func() time.Time
}

type reservationRefs struct {
	tableID         pgtype.UUID
	paymentMethodID pgtype.UUID
	customerID      pgtype.UUID
}

func (s *ReservationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// List returns one page of reservations, soonest first.
func (s *ReservationService) List(ctx context.Context, page common.PageRequest) ([]Reservation, int64, error) {
	rows, err := s.Q.ListReservations(ctx, dbgen.ListReservationsParams{Limit: page.Limit(), Offset: page.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("list reservations: %w", err)
	}
	total, err := s.Q.CountReservations(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count reservations: %w", err)
	}
	out := make([]Reservation, 0, len(rows))
	for _, row := range rows {
		out = append(out, toReservation(row))
	}
	return out, total, nil
}

// Get fetches a reservation by id.
func (s *ReservationService) Get(ctx context.Context, id string) (Reservation, error) {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return Reservation{}, err
	}
	row, err := s.Q.GetReservation(ctx, pgID)
	if err := common.GetRow("reservation", err); err != nil {
		return Reservation{}, err
	}
	return toReservation(row), nil
}

// Create books a table for a future instant.
func (s *ReservationService) Create(ctx context.Context, in ReservationInput) (Reservation, error) {
	refs, err := s.check(ctx, in)
	if err != nil {
		return Reservation{}, err
	}
	row, err := s.Q.CreateReservation(ctx, dbgen.CreateReservationParams{
		TableID:         refs.tableID,
		PaymentMethodID: refs.paymentMethodID,
		ReservedFor:     common.Timestamptz(in.ReservedFor),
		CustomerID:      refs.customerID,
	})
	if err != nil {
		return Reservation{}, common.MapWriteError("reservation", err)
	}
	return toReservation(row), nil
}

// Update moves a reservation to another table, payment method or time.
func (s *ReservationService) Update(ctx context.Context, id string, in ReservationInput) (Reservation, error) {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return Reservation{}, err
	}
	refs, err := s.check(ctx, in)
	if err != nil {
		return Reservation{}, err
	}
	row, err := s.Q.UpdateReservation(ctx, dbgen.UpdateReservationParams{
		ID:              pgID,
		TableID:         refs.tableID,
		PaymentMethodID: refs.paymentMethodID,
		ReservedFor:     common.Timestamptz(in.ReservedFor),
	})
	if err != nil {
		return Reservation{}, common.MapWriteError("reservation", err)
	}
	return toReservation(row), nil
}

// Delete cancels a reservation.
func (s *ReservationService) Delete(ctx context.Context, id string) error {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return err
	}
	n, err := s.Q.DeleteReservation(ctx, pgID)
	return common.DeleteRows("reservation", n, err)
}

func (s *ReservationService) check(ctx context.Context, in ReservationInput) (reservationRefs, error) {
	if err := common.Validate(in); err != nil {
		return reservationRefs{}, err
	}
	if in.ReservedFor.Before(s.now()) {
		return reservationRefs{}, common.Invalid("reserved_for", "reservation date cannot be in the past", nil)
	}
	var (
		refs reservationRefs
		err  error
	)
	if refs.tableID, err = common.ParseID("table_id", in.TableID); err != nil {
		return reservationRefs{}, err
	}
	if refs.paymentMethodID, err = common.ParseID("payment_method_id", in.PaymentMethodID); err != nil {
		return reservationRefs{}, err
	}
	if refs.customerID, err = common.ParseID("customer_id", in.CustomerID); err != nil {
		return reservationRefs{}, err
	}
	if _, err := s.Q.GetDiningTable(ctx, refs.tableID); err != nil {
		if common.IsNoRows(err) {
			return reservationRefs{}, common.Invalid("table_id", "table does not exist", err)
		}
		return reservationRefs{}, fmt.Errorf("lookup table: %w", err)
	}
	return refs, nil
}

func toReservation(row dbgen.Reservation) Reservation {
	return Reservation{
		ID:              common.UUIDString(row.ID),
		TableID:         common.UUIDString(row.TableID),
		PaymentMethodID: common.UUIDString(row.PaymentMethodID),
		ReservedFor:     common.TimeFromPG(row.ReservedFor),
		CustomerID:      common.UUIDString(row.CustomerID),
		CreatedAt:       common.TimeFromPG(row.CreatedAt),
		UpdatedAt:       common.TimeFromPG(row.UpdatedAt),
	}
}
