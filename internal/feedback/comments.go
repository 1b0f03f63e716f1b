package feedback

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/noah-isme/backend-resto/internal/common"
	dbgen "github.com/noah-isme/backend-resto/internal/db/gen"
)

// Querier is the subset of generated queries used for comments.
type Querier interface {
	ListComments(ctx context.Context, arg dbgen.ListCommentsParams) ([]dbgen.Comment, error)
	CountComments(ctx context.Context) (int64, error)
	ListCommentsByCustomer(ctx context.Context, arg dbgen.ListCommentsByCustomerParams) ([]dbgen.Comment, error)
	CountCommentsByCustomer(ctx context.Context, customerID pgtype.UUID) (int64, error)
	GetComment(ctx context.Context, id pgtype.UUID) (dbgen.Comment, error)
	CreateComment(ctx context.Context, arg dbgen.CreateCommentParams) (dbgen.Comment, error)
	UpdateComment(ctx context.Context, arg dbgen.UpdateCommentParams) (dbgen.Comment, error)
	DeleteComment(ctx context.Context, id pgtype.UUID) (int64, error)
}

// MenuItems reports whether a menu item exists.
type MenuItems interface {
	Exists(ctx context.Context, id pgtype.UUID) (bool, error)
}

// Comment is a customer review of a menu item.
type Comment struct {
	ID         string    `json:"id"`
	Body       string    `json:"body"`
	Rating     int32     `json:"rating"`
	MenuItemID string    `json:"menu_item_id"`
	CustomerID string    `json:"customer_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Input struct {
	Body       string `json:"body" validate:"required,notblank,max=500"`
	Rating     int32  `json:"rating" validate:"required,gte=1,lte=5"`
	MenuItemID string `json:"menu_item_id" validate:"required"`
	CustomerID string `json:"customer_id" validate:"required"`
}

// Service manages comments. Non-admin callers may only touch their own.
type Service struct {
	Q    Querier
	Menu MenuItems
}

func (s *Service) List(ctx context.Context, page common.PageRequest) ([]Comment, int64, error) {
	rows, err := s.Q.ListComments(ctx, dbgen.ListCommentsParams{Limit: page.Limit(), Offset: page.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("list comments: %w", err)
	}
	total, err := s.Q.CountComments(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count comments: %w", err)
	}
	return toComments(rows), total, nil
}

// ListByCustomer returns the comments written by customerID.
func (s *Service) ListByCustomer(ctx context.Context, customerID string, page common.PageRequest) ([]Comment, int64, error) {
	pgID, err := common.ParseID("customer_id", customerID)
	if err != nil {
		return nil, 0, err
	}
	rows, err := s.Q.ListCommentsByCustomer(ctx, dbgen.ListCommentsByCustomerParams{CustomerID: pgID, Limit: page.Limit(), Offset: page.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("list customer comments: %w", err)
	}
	total, err := s.Q.CountCommentsByCustomer(ctx, pgID)
	if err != nil {
		return nil, 0, fmt.Errorf("count customer comments: %w", err)
	}
	return toComments(rows), total, nil
}

func (s *Service) Get(ctx context.Context, id string) (Comment, error) {
	row, err := s.owned(ctx, id)
	if err != nil {
		return Comment{}, err
	}
	return toComment(row), nil
}

func (s *Service) Create(ctx context.Context, in Input) (Comment, error) {
	menuItemID, err := s.check(ctx, in)
	if err != nil {
		return Comment{}, err
	}
	customerID, err := common.ParseID("customer_id", in.CustomerID)
	if err != nil {
		return Comment{}, err
	}
	row, err := s.Q.CreateComment(ctx, dbgen.CreateCommentParams{
		Body:       in.Body,
		Rating:     in.Rating,
		MenuItemID: menuItemID,
		CustomerID: customerID,
	})
	if err != nil {
		return Comment{}, common.MapWriteError("comment", err)
	}
	return toComment(row), nil
}

// Update edits the text, rating or menu item of a comment. The author is fixed.
func (s *Service) Update(ctx context.Context, id string, in Input) (Comment, error) {
	existing, err := s.owned(ctx, id)
	if err != nil {
		return Comment{}, err
	}
	menuItemID, err := s.check(ctx, in)
	if err != nil {
		return Comment{}, err
	}
	row, err := s.Q.UpdateComment(ctx, dbgen.UpdateCommentParams{
		ID:         existing.ID,
		Body:       in.Body,
		Rating:     in.Rating,
		MenuItemID: menuItemID,
	})
	if err != nil {
		return Comment{}, common.MapWriteError("comment", err)
	}
	return toComment(row), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	existing, err := s.owned(ctx, id)
	if err != nil {
		return err
	}
	n, err := s.Q.DeleteComment(ctx, existing.ID)
	return common.DeleteRows("comment", n, err)
}

// owned loads a comment and rejects callers who are neither its author nor an admin.
func (s *Service) owned(ctx context.Context, id string) (dbgen.Comment, error) {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return dbgen.Comment{}, err
	}
	row, err := s.Q.GetComment(ctx, pgID)
	if err := common.GetRow("comment", err); err != nil {
		return dbgen.Comment{}, err
	}
	if p, ok := common.PrincipalFrom(ctx); ok && !p.CanActFor(common.UUIDString(row.CustomerID)) {
		return dbgen.Comment{}, common.Forbidden("comment belongs to another customer")
	}
	return row, nil
}

func (s *Service) check(ctx context.Context, in Input) (pgtype.UUID, error) {
	if err := common.Validate(in); err != nil {
		return pgtype.UUID{}, err
	}
	menuItemID, err := common.ParseID("menu_item_id", in.MenuItemID)
	if err != nil {
		return pgtype.UUID{}, err
	}
	if s.Menu != nil {
		ok, err := s.Menu.Exists(ctx, menuItemID)
		if err != nil {
			return pgtype.UUID{}, fmt.Errorf("lookup menu item: %w", err)
		}
		if !ok {
			return pgtype.UUID{}, common.Invalid("menu_item_id", "menu item does not exist", nil)
		}
	}
	return menuItemID, nil
}

func toComments(rows []dbgen.Comment) []Comment {
	out := make([]Comment, 0, len(rows))
	for _, row := range rows {
		out = append(out, toComment(row))
	}
	return out
}

func toComment(row dbgen.Comment) Comment {
	return Comment{
		ID:         common.UUIDString(row.ID),
		Body:       row.Body,
		Rating:     row.Rating,
		MenuItemID: common.UUIDString(row.MenuItemID),
		CustomerID: common.UUIDString(row.CustomerID),
		CreatedAt:  common.TimeFromPG(row.CreatedAt),
		UpdatedAt:  common.TimeFromPG(row.UpdatedAt),
	}
}
