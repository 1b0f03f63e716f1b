package dining

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/noah-isme/backend-resto/internal/common"
	dbgen "github.com/noah-isme/backend-resto/internal/db/gen"
)

// TableQuerier is the subset of generated queries used for dining tables.
type TableQuerier interface {
	ListDiningTables(ctx context.Context, arg dbgen.ListDiningTablesParams) ([]dbgen.DiningTable, error)
	CountDiningTables(ctx context.Context) (int64, error)
	GetDiningTable(ctx context.Context, id pgtype.UUID) (dbgen.DiningTable, error)
	CreateDiningTable(ctx context.Context, arg dbgen.CreateDiningTableParams) (dbgen.DiningTable, error)
	UpdateDiningTable(ctx context.Context, arg dbgen.UpdateDiningTableParams) (dbgen.DiningTable, error)
	DeleteDiningTable(ctx context.Context, id pgtype.UUID) (int64, error)
}

// Table is the API representation of a dining table.
type Table struct {
	ID        string    `json:"id"`
	Number    int32     `json:"number"`
	Capacity  int32     `json:"capacity"`
	StateID   string    `json:"state_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableInput is the writable part of a dining table. Numbers are unique.
type TableInput struct {
	Number   *int32 `json:"number" validate:"required,gt=0"`
	Capacity *int32 `json:"capacity" validate:"required,gt=0"`
	StateID  string `json:"state_id" validate:"required"`
}

// TableService manages dining tables.
type TableService struct {
	Q TableQuerier
}

// List returns one page of tables ordered by number.
func (s *TableService) List(ctx context.Context, page common.PageRequest) ([]Table, int64, error) {
	rows, err := s.Q.ListDiningTables(ctx, dbgen.ListDiningTablesParams{Limit: page.Limit(), Offset: page.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("list tables: %w", err)
	}
	total, err := s.Q.CountDiningTables(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count tables: %w", err)
	}
	out := make([]Table, 0, len(rows))
	for _, row := range rows {
		out = append(out, toTable(row))
	}
	return out, total, nil
}

// Get fetches a table by id.
func (s *TableService) Get(ctx context.Context, id string) (Table, error) {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return Table{}, err
	}
	row, err := s.Q.GetDiningTable(ctx, pgID)
	if err := common.GetRow("table", err); err != nil {
		return Table{}, err
	}
	return toTable(row), nil
}

// Create adds a table. A duplicate number answers 409.
func (s *TableService) Create(ctx context.Context, in TableInput) (Table, error) {
	params, err := in.params()
	if err != nil {
		return Table{}, err
	}
	row, err := s.Q.CreateDiningTable(ctx, params)
	if err != nil {
		return Table{}, common.MapWriteError("table", err)
	}
	return toTable(row), nil
}

// Update replaces a table.
func (s *TableService) Update(ctx context.Context, id string, in TableInput) (Table, error) {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return Table{}, err
	}
	params, err := in.params()
	if err != nil {
		return Table{}, err
	}
	row, err := s.Q.UpdateDiningTable(ctx, dbgen.UpdateDiningTableParams{
		ID:       pgID,
		Number:   params.Number,
		Capacity: params.Capacity,
		StateID:  params.StateID,
	})
	if err != nil {
		return Table{}, common.MapWriteError("table", err)
	}
	return toTable(row), nil
}

// Delete removes a table along with its reservations and invoices.
func (s *TableService) Delete(ctx context.Context, id string) error {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return err
	}
	n, err := s.Q.DeleteDiningTable(ctx, pgID)
	return common.DeleteRows("table", n, err)
}

func (in TableInput) params() (dbgen.CreateDiningTableParams, error) {
	if err := common.Validate(in); err != nil {
		return dbgen.CreateDiningTableParams{}, err
	}
	stateID, err := common.ParseID("state_id", in.StateID)
	if err != nil {
		return dbgen.CreateDiningTableParams{}, err
	}
	return dbgen.CreateDiningTableParams{Number: *in.Number, Capacity: *in.Capacity, StateID: stateID}, nil
}

func toTable(row dbgen.DiningTable) Table {
	return Table{
		ID:        common.UUIDString(row.ID),
		Number:    row.Number,
		Capacity:  row.Capacity,
		StateID:   common.UUIDString(row.StateID),
		CreatedAt: common.TimeFromPG(row.CreatedAt),
		UpdatedAt: common.TimeFromPG(row.UpdatedAt),
	}
}
