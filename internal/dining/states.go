package dining

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/noah-isme/backend-resto/internal/common"
	dbgen "github.com/noah-isme/backend-resto/internal/db/gen"
)

// Table state names. Both spellings of each are accepted.
const (
	StateAvailable = "disponible"
	StateReserved  = "reservada"
)

// StateQuerier is the subset of generated queries used for table states.
type StateQuerier interface {
	ListTableStates(ctx context.Context, arg dbgen.ListTableStatesParams) ([]dbgen.TableState, error)
	CountTableStates(ctx context.Context) (int64, error)
	GetTableState(ctx context.Context, id pgtype.UUID) (dbgen.TableState, error)
	CreateTableState(ctx context.Context, name string) (dbgen.TableState, error)
	UpdateTableState(ctx context.Context, arg dbgen.UpdateTableStateParams) (dbgen.TableState, error)
	DeleteTableState(ctx context.Context, id pgtype.UUID) (int64, error)
}

type State struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type StateInput struct {
	Name string `json:"name" validate:"required,oneof=disponible reservada Disponible Reservada"`
}

// StateService manages the table state catalogue.
type StateService struct {
	Q StateQuerier
}

func (s *StateService) List(ctx context.Context, page common.PageRequest) ([]State, int64, error) {
	rows, err := s.Q.ListTableStates(ctx, dbgen.ListTableStatesParams{Limit: page.Limit(), Offset: page.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("list table states: %w", err)
	}
	total, err := s.Q.CountTableStates(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count table states: %w", err)
	}
	out := make([]State, 0, len(rows))
	for _, row := range rows {
		out = append(out, toState(row))
	}
	return out, total, nil
}

func (s *StateService) Get(ctx context.Context, id string) (State, error) {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return State{}, err
	}
	row, err := s.Q.GetTableState(ctx, pgID)
	if err := common.GetRow("table state", err); err != nil {
		return State{}, err
	}
	return toState(row), nil
}

func (s *StateService) Create(ctx context.Context, in StateInput) (State, error) {
	if err := common.Validate(in); err != nil {
		return State{}, err
	}
	row, err := s.Q.CreateTableState(ctx, in.Name)
	if err != nil {
		return State{}, common.MapWriteError("table state", err)
	}
	return toState(row), nil
}

func (s *StateService) Update(ctx context.Context, id string, in StateInput) (State, error) {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return State{}, err
	}
	if err := common.Validate(in); err != nil {
		return State{}, err
	}
	row, err := s.Q.UpdateTableState(ctx, dbgen.UpdateTableStateParams{ID: pgID, Name: in.Name})
	if err != nil {
		return State{}, common.MapWriteError("table state", err)
	}
	return toState(row), nil
}

func (s *StateService) Delete(ctx context.Context, id string) error {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return err
	}
	n, err := s.Q.DeleteTableState(ctx, pgID)
	return common.DeleteRows("table state", n, err)
}

func toState(row dbgen.TableState) State {
	return State{
		ID:        common.UUIDString(row.ID),
		Name:      row.Name,
		CreatedAt: common.TimeFromPG(row.CreatedAt),
		UpdatedAt: common.TimeFromPG(row.UpdatedAt),
	}
}
