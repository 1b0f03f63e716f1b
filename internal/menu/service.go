package menu

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/backend-resto/internal/common"
	dbgen "github.com/noah-isme/backend-resto/internal/db/gen"
	"github.com/noah-isme/backend-resto/internal/pricing"
)

// Querier is the subset of generated queries used by the menu service.
type Querier interface {
	ListMenuCategories(ctx context.Context, arg dbgen.ListMenuCategoriesParams) ([]dbgen.MenuCategory, error)
	CountMenuCategories(ctx context.Context) (int64, error)
	GetMenuCategory(ctx context.Context, id pgtype.UUID) (dbgen.MenuCategory, error)
	CreateMenuCategory(ctx context.Context, arg dbgen.CreateMenuCategoryParams) (dbgen.MenuCategory, error)
	UpdateMenuCategory(ctx context.Context, arg dbgen.UpdateMenuCategoryParams) (dbgen.MenuCategory, error)
	DeleteMenuCategory(ctx context.Context, id pgtype.UUID) (int64, error)

	ListMenuItems(ctx context.Context, arg dbgen.ListMenuItemsParams) ([]dbgen.MenuItem, error)
	CountMenuItems(ctx context.Context) (int64, error)
	GetMenuItem(ctx context.Context, id pgtype.UUID) (dbgen.MenuItem, error)
	GetMenuItemPrice(ctx context.Context, id pgtype.UUID) (decimal.Decimal, error)
	CreateMenuItem(ctx context.Context, arg dbgen.CreateMenuItemParams) (dbgen.MenuItem, error)
	UpdateMenuItem(ctx context.Context, arg dbgen.UpdateMenuItemParams) (dbgen.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id pgtype.UUID) (int64, error)
}

// Service manages menu categories and items.
type Service struct {
	Q      Querier
	Cache  *Cache
	Logger zerolog.Logger
}

// Category is the API representation of a menu category.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Item is the API representation of a menu item.
type Item struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"available"`
	CategoryID  string          `json:"category_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CategoryInput is the writable part of a category.
type CategoryInput struct {
	Name        string `json:"name" validate:"required,notblank,letters,max=100"`
	Description string `json:"description" validate:"letters,max=500"`
}

// ItemInput is the writable part of a menu item.
type ItemInput struct {
	Name        string          `json:"name" validate:"required,min=3,letters,max=100"`
	Description string          `json:"description" validate:"letters,max=500"`
	Price       decimal.Decimal `json:"price"`
	Available   *bool           `json:"available"`
	CategoryID  string          `json:"category_id" validate:"required"`
}

type itemPage struct {
	Items []Item `json:"items"`
	Total int64  `json:"total"`
}

// ListCategories returns one page of categories.
func (s *Service) ListCategories(ctx context.Context, page common.PageRequest) ([]Category, int64, error) {
	rows, err := s.Q.ListMenuCategories(ctx, dbgen.ListMenuCategoriesParams{Limit: page.Limit(), Offset: page.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	total, err := s.Q.CountMenuCategories(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}
	out := make([]Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, toCategory(row))
	}
	return out, total, nil
}

// GetCategory fetches a category by id.
func (s *Service) GetCategory(ctx context.Context, id string) (Category, error) {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return Category{}, err
	}
	row, err := s.Q.GetMenuCategory(ctx, pgID)
	if err != nil {
		return Category{}, notFoundOr("category", err)
	}
	return toCategory(row), nil
}

// CreateCategory validates and stores a new category.
func (s *Service) CreateCategory(ctx context.Context, in CategoryInput) (Category, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if err := common.Validate(in); err != nil {
		return Category{}, err
	}
	row, err := s.Q.CreateMenuCategory(ctx, dbgen.CreateMenuCategoryParams{Name: in.Name, Description: in.Description})
	if err != nil {
		return Category{}, common.MapWriteError("category", err)
	}
	return toCategory(row), nil
}

// UpdateCategory replaces the writable fields of a category.
func (s *Service) UpdateCategory(ctx context.Context, id string, in CategoryInput) (Category, error) {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return Category{}, err
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if err := common.Validate(in); err != nil {
		return Category{}, err
	}
	row, err := s.Q.UpdateMenuCategory(ctx, dbgen.UpdateMenuCategoryParams{ID: pgID, Name: in.Name, Description: in.Description})
	if err != nil {
		return Category{}, common.MapWriteError("category", err)
	}
	return toCategory(row), nil
}

// DeleteCategory removes a category together with its items.
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return err
	}
	n, err := s.Q.DeleteMenuCategory(ctx, pgID)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if n == 0 {
		return common.NotFound("category", nil)
	}
	s.invalidate(ctx)
	return nil
}

// ListItems returns one page of menu items, served from cache when possible.
func (s *Service) ListItems(ctx context.Context, page common.PageRequest) ([]Item, int64, error) {
	key, err := s.Cache.Key(ctx, "items", page.Page, page.PerPage)
	if err != nil {
		s.Logger.Warn().Err(err).Msg("menu cache unavailable")
	}
	var cached itemPage
	if ok, err := s.Cache.GetJSON(ctx, key, &cached); err == nil && ok {
		return cached.Items, cached.Total, nil
	}

	rows, err := s.Q.ListMenuItems(ctx, dbgen.ListMenuItemsParams{Limit: page.Limit(), Offset: page.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("list menu items: %w", err)
	}
	total, err := s.Q.CountMenuItems(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count menu items: %w", err)
	}
	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, toItem(row))
	}
	if err := s.Cache.SetJSON(ctx, key, itemPage{Items: items, Total: total}); err != nil {
		s.Logger.Warn().Err(err).Msg("menu cache write failed")
	}
	return items, total, nil
}

// GetItem fetches a menu item by id.
func (s *Service) GetItem(ctx context.Context, id string) (Item, error) {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return Item{}, err
	}
	row, err := s.Q.GetMenuItem(ctx, pgID)
	if err != nil {
		return Item{}, notFoundOr("menu item", err)
	}
	return toItem(row), nil
}

// CreateItem validates and stores a new menu item. Items are available unless stated otherwise.
func (s *Service) CreateItem(ctx context.Context, in ItemInput) (Item, error) {
	params, err := s.itemParams(in)
	if err != nil {
		return Item{}, err
	}
	row, err := s.Q.CreateMenuItem(ctx, dbgen.CreateMenuItemParams(params))
	if err != nil {
		return Item{}, common.MapWriteError("menu item", err)
	}
	s.invalidate(ctx)
	return toItem(row), nil
}

// UpdateItem replaces the writable fields of a menu item.
func (s *Service) UpdateItem(ctx context.Context, id string, in ItemInput) (Item, error) {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return Item{}, err
	}
	params, err := s.itemParams(in)
	if err != nil {
		return Item{}, err
	}
	row, err := s.Q.UpdateMenuItem(ctx, dbgen.UpdateMenuItemParams{
		ID:          pgID,
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
		Available:   params.Available,
		CategoryID:  params.CategoryID,
	})
	if err != nil {
		return Item{}, common.MapWriteError("menu item", err)
	}
	s.invalidate(ctx)
	return toItem(row), nil
}

// DeleteItem removes a menu item.
func (s *Service) DeleteItem(ctx context.Context, id string) error {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return err
	}
	n, err := s.Q.DeleteMenuItem(ctx, pgID)
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	if n == 0 {
		return common.NotFound("menu item", nil)
	}
	s.invalidate(ctx)
	return nil
}

// GetUnitPrice returns the current price of a menu item for line pricing.
func (s *Service) GetUnitPrice(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	price, err := s.Q.GetMenuItemPrice(ctx, common.ToPGUUID(id))
	if err != nil {
		if common.IsNoRows(err) {
			return decimal.Zero, pricing.ErrMenuItemNotFound
		}
		return decimal.Zero, fmt.Errorf("get menu item price: %w", err)
	}
	return price, nil
}

// Exists reports whether a menu item with the given id exists.
func (s *Service) Exists(ctx context.Context, id pgtype.UUID) (bool, error) {
	_, err := s.Q.GetMenuItem(ctx, id)
	if err != nil {
		if common.IsNoRows(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

type itemFields struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Available   bool
	CategoryID  pgtype.UUID
}

func (s *Service) itemParams(in ItemInput) (itemFields, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if err := common.Validate(in); err != nil {
		return itemFields{}, err
	}
	if !in.Price.IsPositive() {
		return itemFields{}, common.Invalid("price", "price must be greater than zero", nil)
	}
	if in.Price.Exponent() < -2 {
		return itemFields{}, common.Invalid("price", "price allows at most two decimal places", nil)
	}
	categoryID, err := common.ParseID("category_id", in.CategoryID)
	if err != nil {
		return itemFields{}, err
	}
	available := true
	if in.Available != nil {
		available = *in.Available
	}
	return itemFields{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Available:   available,
		CategoryID:  categoryID,
	}, nil
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.Cache.Invalidate(ctx); err != nil {
		s.Logger.Warn().Err(err).Msg("menu cache invalidation failed")
	}
}

func notFoundOr(resource string, err error) error {
	if common.IsNoRows(err) {
		return common.NotFound(resource, err)
	}
	return fmt.Errorf("get %s: %w", resource, err)
}

func toCategory(row dbgen.MenuCategory) Category {
	return Category{
		ID:          common.UUIDString(row.ID),
		Name:        row.Name,
		Description: row.Description,
		CreatedAt:   common.TimeFromPG(row.CreatedAt),
		UpdatedAt:   common.TimeFromPG(row.UpdatedAt),
	}
}

func toItem(row dbgen.MenuItem) Item {
	return Item{
		ID:          common.UUIDString(row.ID),
		Name:        row.Name,
		Description: row.Description,
		Price:       row.Price,
		Available:   row.Available,
		CategoryID:  common.UUIDString(row.CategoryID),
		CreatedAt:   common.TimeFromPG(row.CreatedAt),
		UpdatedAt:   common.TimeFromPG(row.UpdatedAt),
	}
}

var _ pricing.MenuItemLookup = (*Service)(nil)
