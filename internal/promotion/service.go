package promotion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/noah-isme/backend-resto/internal/common"
	dbgen "github.com/noah-isme/backend-resto/internal/db/gen"
	"github.com/noah-isme/backend-resto/internal/pricing"
)

// Querier is the subset of generated queries used by promotions.
type Querier interface {
	ListPromotions(ctx context.Context, arg dbgen.ListPromotionsParams) ([]dbgen.Promotion, error)
	CountPromotions(ctx context.Context) (int64, error)
	GetPromotion(ctx context.Context, id pgtype.UUID) (dbgen.Promotion, error)
	GetActivePromotion(ctx context.Context, arg dbgen.GetActivePromotionParams) (dbgen.Promotion, error)
	CreatePromotion(ctx context.Context, arg dbgen.CreatePromotionParams) (dbgen.Promotion, error)
	UpdatePromotion(ctx context.Context, arg dbgen.UpdatePromotionParams) (dbgen.Promotion, error)
	DeletePromotion(ctx context.Context, id pgtype.UUID) (int64, error)
}

// Service manages promotions and resolves the active ones for line pricing.
type Service struct {
	Q   Querier
	Now func() time.Time
}

// Promotion is the API representation of a promotion.
type Promotion struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Discount    int32     `json:"discount"`
	ExpiresAt   time.Time `json:"expires_at"`
	MenuItemID  string    `json:"menu_item_id"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Input is the writable part of a promotion.
type Input struct {
	Name        string    `json:"name" validate:"required,notblank,max=100"`
	Description string    `json:"description" validate:"max=500"`
	Discount    *int32    `json:"discount" validate:"required,gte=0,lte=100"`
	ExpiresAt   time.Time `json:"expires_at" validate:"required"`
	MenuItemID  string    `json:"menu_item_id" validate:"required"`
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// List returns one page of promotions.
func (s *Service) List(ctx context.Context, page common.PageRequest) ([]Promotion, int64, error) {
	rows, err := s.Q.ListPromotions(ctx, dbgen.ListPromotionsParams{Limit: page.Limit(), Offset: page.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("list promotions: %w", err)
	}
	total, err := s.Q.CountPromotions(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count promotions: %w", err)
	}
	now := s.now()
	out := make([]Promotion, 0, len(rows))
	for _, row := range rows {
		out = append(out, toPromotion(row, now))
	}
	return out, total, nil
}

// Get fetches a promotion by id.
func (s *Service) Get(ctx context.Context, id string) (Promotion, error) {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return Promotion{}, err
	}
	row, err := s.Q.GetPromotion(ctx, pgID)
	if err := common.GetRow("promotion", err); err != nil {
		return Promotion{}, err
	}
	return toPromotion(row, s.now()), nil
}

// Create stores a promotion whose expiry lies in the future.
func (s *Service) Create(ctx context.Context, in Input) (Promotion, error) {
	params, err := s.params(in)
	if err != nil {
		return Promotion{}, err
	}
	row, err := s.Q.CreatePromotion(ctx, params)
	if err != nil {
		return Promotion{}, common.MapWriteError("promotion", err)
	}
	return toPromotion(row, s.now()), nil
}

// Update replaces a promotion. The new expiry must also lie in the future.
func (s *Service) Update(ctx context.Context, id string, in Input) (Promotion, error) {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return Promotion{}, err
	}
	params, err := s.params(in)
	if err != nil {
		return Promotion{}, err
	}
	row, err := s.Q.UpdatePromotion(ctx, dbgen.UpdatePromotionParams{
		ID:          pgID,
		Name:        params.Name,
		Description: params.Description,
		Discount:    params.Discount,
		ExpiresAt:   params.ExpiresAt,
		MenuItemID:  params.MenuItemID,
	})
	if err != nil {
		return Promotion{}, common.MapWriteError("promotion", err)
	}
	return toPromotion(row, s.now()), nil
}

// Delete removes a promotion. Lines that referenced it keep their stored amounts.
func (s *Service) Delete(ctx context.Context, id string) error {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return err
	}
	n, err := s.Q.DeletePromotion(ctx, pgID)
	return common.DeleteRows("promotion", n, err)
}

// FindActivePromotion returns the promotion when it exists and has not expired at now.
func (s *Service) FindActivePromotion(ctx context.Context, id uuid.UUID, now time.Time) (pricing.Promotion, bool, error) {
	row, err := s.Q.GetActivePromotion(ctx, dbgen.GetActivePromotionParams{
		ID:  common.ToPGUUID(id),
		Now: common.Timestamptz(now),
	})
	if err != nil {
		if common.IsNoRows(err) {
			return pricing.Promotion{}, false, nil
		}
		return pricing.Promotion{}, false, err
	}
	promo := pricing.Promotion{
		ID:         uuid.UUID(row.ID.Bytes),
		Discount:   row.Discount,
		ExpiresAt:  common.TimeFromPG(row.ExpiresAt),
		MenuItemID: uuid.UUID(row.MenuItemID.Bytes),
	}
	return promo, promo.ActiveAt(now), nil
}

func (s *Service) params(in Input) (dbgen.CreatePromotionParams, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if err := common.Validate(in); err != nil {
		return dbgen.CreatePromotionParams{}, err
	}
	if !in.ExpiresAt.After(s.now()) {
		return dbgen.CreatePromotionParams{}, common.Invalid("expires_at", "expiry date cannot be in the past", nil)
	}
	menuItemID, err := common.ParseID("menu_item_id", in.MenuItemID)
	if err != nil {
		return dbgen.CreatePromotionParams{}, err
	}
	return dbgen.CreatePromotionParams{
		Name:        in.Name,
		Description: in.Description,
		Discount:    *in.Discount,
		ExpiresAt:   common.Timestamptz(in.ExpiresAt),
		MenuItemID:  menuItemID,
	}, nil
}

func toPromotion(row dbgen.Promotion, now time.Time) Promotion {
	expires := common.TimeFromPG(row.ExpiresAt)
	return Promotion{
		ID:          common.UUIDString(row.ID),
		Name:        row.Name,
		Description: row.Description,
		Discount:    row.Discount,
		ExpiresAt:   expires,
		MenuItemID:  common.UUIDString(row.MenuItemID),
		Active:      expires.After(now),
		CreatedAt:   common.TimeFromPG(row.CreatedAt),
		UpdatedAt:   common.TimeFromPG(row.UpdatedAt),
	}
}

var _ pricing.PromotionLookup = (*Service)(nil)

var _ common.Resource[Promotion, Input] = (*Service)(nil)
