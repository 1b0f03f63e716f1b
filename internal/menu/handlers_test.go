package menu_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	dbgen "github.com/noah-isme/backend-resto/internal/db/gen"
	"github.com/noah-isme/backend-resto/internal/menu"
	"github.com/noah-isme/backend-resto/internal/pricing"
)

type fakeQueries struct {
	categories map[pgtype.UUID]dbgen.MenuCategory
	items      map[pgtype.UUID]dbgen.MenuItem
	itemOrder  []pgtype.UUID
	listCalls  int
}

func newFakeQueries() *fakeQueries {
	return &fakeQueries{
		categories: map[pgtype.UUID]dbgen.MenuCategory{},
		items:      map[pgtype.UUID]dbgen.MenuItem{},
	}
}

func newID() pgtype.UUID { return pgtype.UUID{Bytes: uuid.New(), Valid: true} }

func idString(id pgtype.UUID) string { return uuid.UUID(id.Bytes).String() }

func (f *fakeQueries) ListMenuCategories(_ context.Context, arg dbgen.ListMenuCategoriesParams) ([]dbgen.MenuCategory, error) {
	out := make([]dbgen.MenuCategory, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeQueries) CountMenuCategories(context.Context) (int64, error) {
	return int64(len(f.categories)), nil
}

func (f *fakeQueries) GetMenuCategory(_ context.Context, id pgtype.UUID) (dbgen.MenuCategory, error) {
	c, ok := f.categories[id]
	if !ok {
		return dbgen.MenuCategory{}, pgx.ErrNoRows
	}
	return c, nil
}

func (f *fakeQueries) CreateMenuCategory(_ context.Context, arg dbgen.CreateMenuCategoryParams) (dbgen.MenuCategory, error) {
	c := dbgen.MenuCategory{ID: newID(), Name: arg.Name, Description: arg.Description}
	f.categories[c.ID] = c
	return c, nil
}

func (f *fakeQueries) UpdateMenuCategory(_ context.Context, arg dbgen.UpdateMenuCategoryParams) (dbgen.MenuCategory, error) {
	c, ok := f.categories[arg.ID]
	if !ok {
		return dbgen.MenuCategory{}, pgx.ErrNoRows
	}
	c.Name, c.Description = arg.Name, arg.Description
	f.categories[arg.ID] = c
	return c, nil
}

func (f *fakeQueries) DeleteMenuCategory(_ context.Context, id pgtype.UUID) (int64, error) {
	if _, ok := f.categories[id]; !ok {
		return 0, nil
	}
	delete(f.categories, id)
	return 1, nil
}

func (f *fakeQueries) ListMenuItems(_ context.Context, arg dbgen.ListMenuItemsParams) ([]dbgen.MenuItem, error) {
	f.listCalls++
	out := []dbgen.MenuItem{}
	for i, id := range f.itemOrder {
		if int32(i) < arg.Offset {
			continue
		}
		if int32(len(out)) >= arg.Limit {
			break
		}
		if item, ok := f.items[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeQueries) CountMenuItems(context.Context) (int64, error) {
	return int64(len(f.items)), nil
}

func (f *fakeQueries) GetMenuItem(_ context.Context, id pgtype.UUID) (dbgen.MenuItem, error) {
	item, ok := f.items[id]
	if !ok {
		return dbgen.MenuItem{}, pgx.ErrNoRows
	}
	return item, nil
}

func (f *fakeQueries) GetMenuItemPrice(_ context.Context, id pgtype.UUID) (decimal.Decimal, error) {
	item, ok := f.items[id]
	if !ok {
		return decimal.Zero, pgx.ErrNoRows
	}
	return item.Price, nil
}

func (f *fakeQueries) CreateMenuItem(_ context.Context, arg dbgen.CreateMenuItemParams) (dbgen.MenuItem, error) {
	item := dbgen.MenuItem{
		ID:          newID(),
		Name:        arg.Name,
		Description: arg.Description,
		Price:       arg.Price,
		Available:   arg.Available,
		CategoryID:  arg.CategoryID,
		CreatedAt:   pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	f.items[item.ID] = item
	f.itemOrder = append(f.itemOrder, item.ID)
	return item, nil
}

func (f *fakeQueries) UpdateMenuItem(_ context.Context, arg dbgen.UpdateMenuItemParams) (dbgen.MenuItem, error) {
	item, ok := f.items[arg.ID]
	if !ok {
		return dbgen.MenuItem{}, pgx.ErrNoRows
	}
	item.Name, item.Description, item.Price, item.Available, item.CategoryID = arg.Name, arg.Description, arg.Price, arg.Available, arg.CategoryID
	f.items[arg.ID] = item
	return item, nil
}

func (f *fakeQueries) DeleteMenuItem(_ context.Context, id pgtype.UUID) (int64, error) {
	if _, ok := f.items[id]; !ok {
		return 0, nil
	}
	delete(f.items, id)
	return 1, nil
}

func newRouter(t *testing.T, q *fakeQueries, cache *menu.Cache) (http.Handler, *menu.Service) {
	t.Helper()
	svc := &menu.Service{Q: q, Cache: cache, Logger: zerolog.Nop()}
	h := &menu.Handler{Svc: svc, DefaultPageSize: 20, MaxPageSize: 100}
	r := chi.NewRouter()
	r.Get("/categories", h.ListCategories)
	r.Post("/categories", h.CreateCategory)
	r.Get("/categories/{id}", h.GetCategory)
	r.Put("/categories/{id}", h.UpdateCategory)
	r.Delete("/categories/{id}", h.DeleteCategory)
	r.Get("/menu-items", h.ListItems)
	r.Post("/menu-items", h.CreateItem)
	r.Get("/menu-items/{id}", h.GetItem)
	r.Put("/menu-items/{id}", h.UpdateItem)
	r.Delete("/menu-items/{id}", h.DeleteItem)
	return r, svc
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCategoryLifecycle(t *testing.T) {
	q := newFakeQueries()
	router, _ := newRouter(t, q, nil)

	rec := do(t, router, http.MethodPost, "/categories", `{"name":"Postres","description":"Dulces de la casa"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		Data menu.Category `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, "Postres", created.Data.Name)

	rec = do(t, router, http.MethodPut, "/categories/"+created.Data.ID, `{"name":"Bebidas"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"total_items":1`)

	rec = do(t, router, http.MethodDelete, "/categories/"+created.Data.ID, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, http.MethodGet, "/categories/"+created.Data.ID, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategoryValidation(t *testing.T) {
	router, _ := newRouter(t, newFakeQueries(), nil)

	rec := do(t, router, http.MethodPost, "/categories", `{"name":"   "}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPost, "/categories", `{"name":"Combo 2x1"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "letters")

	rec = do(t, router, http.MethodPost, "/categories", `{`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "BAD_REQUEST")

	rec = do(t, router, http.MethodGet, "/categories/not-a-uuid", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMenuItemValidation(t *testing.T) {
	q := newFakeQueries()
	router, _ := newRouter(t, q, nil)
	cat, _ := q.CreateMenuCategory(context.Background(), dbgen.CreateMenuCategoryParams{Name: "Pizzas"})
	catID := idString(cat.ID)

	cases := map[string]string{
		"short name":    `{"name":"Pi","price":"10.00","category_id":"` + catID + `"}`,
		"digits":        `{"name":"Pizza 4","price":"10.00","category_id":"` + catID + `"}`,
		"zero price":    `{"name":"Pizza","price":"0","category_id":"` + catID + `"}`,
		"negative":      `{"name":"Pizza","price":"-3.50","category_id":"` + catID + `"}`,
		"fractional":    `{"name":"Pizza","price":"1.005","category_id":"` + catID + `"}`,
		"bad category":  `{"name":"Pizza","price":"10.00","category_id":"x"}`,
		"missing categ": `{"name":"Pizza","price":"10.00"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := do(t, router, http.MethodPost, "/menu-items", body)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestMenuItemCreateDefaultsAvailable(t *testing.T) {
	q := newFakeQueries()
	router, _ := newRouter(t, q, nil)
	cat, _ := q.CreateMenuCategory(context.Background(), dbgen.CreateMenuCategoryParams{Name: "Pizzas"})

	rec := do(t, router, http.MethodPost, "/menu-items", `{"name":"Margarita","price":"10.50","category_id":"`+idString(cat.ID)+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		Data menu.Item `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.True(t, created.Data.Available)
	require.Equal(t, "10.5", created.Data.Price.String())
}

func TestListItemsUsesCacheUntilWrite(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	q := newFakeQueries()
	router, _ := newRouter(t, q, menu.NewCache(client, time.Minute))
	cat, _ := q.CreateMenuCategory(context.Background(), dbgen.CreateMenuCategoryParams{Name: "Pizzas"})
	_, _ = q.CreateMenuItem(context.Background(), dbgen.CreateMenuItemParams{Name: "Margarita", Price: decimal.RequireFromString("9.00"), Available: true, CategoryID: cat.ID})

	require.Equal(t, http.StatusOK, do(t, router, http.MethodGet, "/menu-items", "").Code)
	require.Equal(t, http.StatusOK, do(t, router, http.MethodGet, "/menu-items", "").Code)
	require.Equal(t, 1, q.listCalls)

	rec := do(t, router, http.MethodPost, "/menu-items", `{"name":"Napolitana","price":"11.00","category_id":"`+idString(cat.ID)+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, http.MethodGet, "/menu-items", "")
	require.Equal(t, 2, q.listCalls)
	require.Contains(t, rec.Body.String(), "Napolitana")
}

func TestGetUnitPrice(t *testing.T) {
	q := newFakeQueries()
	_, svc := newRouter(t, q, nil)
	item, _ := q.CreateMenuItem(context.Background(), dbgen.CreateMenuItemParams{Name: "Lasagna", Price: decimal.RequireFromString("12.35"), Available: true})

	price, err := svc.GetUnitPrice(context.Background(), uuid.UUID(item.ID.Bytes))
	require.NoError(t, err)
	require.Equal(t, "12.35", price.StringFixed(2))

	_, err = svc.GetUnitPrice(context.Background(), uuid.New())
	require.ErrorIs(t, err, pricing.ErrMenuItemNotFound)
}

func TestDeleteMissingItem(t *testing.T) {
	router, _ := newRouter(t, newFakeQueries(), nil)
	rec := do(t, router, http.MethodDelete, "/menu-items/"+uuid.NewString(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerWithoutService(t *testing.T) {
	h := &menu.Handler{}
	rec := httptest.NewRecorder()
	h.ListItems(rec, httptest.NewRequest(http.MethodGet, "/menu-items", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
