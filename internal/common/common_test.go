package common

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorAppError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, fmt.Errorf("wrapped: %w", NotFound("menu item", pgx.ErrNoRows)))
	require.Equal(t, http.StatusNotFound, rec.Code)
	var body struct {
		Error ErrorBody `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "NOT_FOUND", body.Error.Code)
	require.Equal(t, "menu item not found", body.Error.Message)
}

func TestWriteErrorHidesUnknownErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, errors.New("connection refused"))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "connection refused")
}

func TestMapWriteError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505"}
	var appErr *AppError
	require.ErrorAs(t, MapWriteError("table", dup), &appErr)
	require.Equal(t, http.StatusConflict, appErr.HTTPStatus)

	fk := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"})
	require.ErrorAs(t, MapWriteError("comment", fk), &appErr)
	require.Equal(t, "VALIDATION_ERROR", appErr.Code)

	plain := errors.New("boom")
	require.Same(t, plain, MapWriteError("x", plain))
	require.NoError(t, MapWriteError("x", nil))
}

func TestParsePagination(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?page=3&limit=500", nil)
	page := ParsePagination(r, 20, 100)
	require.Equal(t, 3, page.Page)
	require.Equal(t, 100, page.PerPage)
	require.Equal(t, int32(200), page.Offset())

	r = httptest.NewRequest(http.MethodGet, "/?page=-1&limit=abc", nil)
	page = ParsePagination(r, 20, 100)
	require.Equal(t, PageRequest{Page: 1, PerPage: 20}, page)
	require.Equal(t, Pagination{Page: 1, PerPage: 20, TotalItems: 7}, page.Meta(7))
}

func TestParseID(t *testing.T) {
	id, err := ParseID("id", "7f0c2c4e-5b7a-4a53-9d6c-0c5ce0f8a111")
	require.NoError(t, err)
	require.Equal(t, "7f0c2c4e-5b7a-4a53-9d6c-0c5ce0f8a111", UUIDString(id))

	_, err = ParseID("table_id", "nope")
	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, map[string]string{"field": "table_id"}, appErr.Details)

	blank := " "
	opt, err := ParseOptionalID("promotion_id", &blank)
	require.NoError(t, err)
	require.False(t, opt.Valid)
	require.Nil(t, UUIDPtr(opt))
}

type sample struct {
	Name   string `json:"name" validate:"required,notblank,letters,min=3"`
	Rating int32  `json:"rating" validate:"gte=1,lte=5"`
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(sample{Name: "Plato del día", Rating: 5}))

	err := Validate(sample{Name: "Pizza 4 quesos", Rating: 9})
	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	details := appErr.Details.(map[string]any)["fields"].(map[string]string)
	require.Equal(t, "may only contain letters and spaces", details["name"])
	require.Equal(t, "must be less than or equal to 5", details["rating"])

	err = Validate(sample{Name: "   ", Rating: 1})
	require.ErrorAs(t, err, &appErr)
}

func TestPrincipalContext(t *testing.T) {
	ctx := WithPrincipal(context.Background(), Principal{UserID: "u1", Groups: []string{"Cliente"}})
	p, ok := PrincipalFrom(ctx)
	require.True(t, ok)
	require.True(t, p.HasGroup("Cliente"))
	require.False(t, p.HasGroup("Admin"))
	id, ok := UserID(ctx)
	require.True(t, ok)
	require.Equal(t, "u1", id)

	_, ok = UserID(context.Background())
	require.False(t, ok)
}

func TestIdemRejectsReplayAndReleasesOnFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	status := http.StatusCreated
	handler := Idem{R: client, TTL: time.Minute}.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	}))

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", nil)
		req.Header.Set(IdempotencyHeader, "abc")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusCreated, send())
	require.Equal(t, http.StatusConflict, send())

	mr.FlushAll()
	status = http.StatusInternalServerError
	require.Equal(t, http.StatusInternalServerError, send())
	status = http.StatusCreated
	require.Equal(t, http.StatusCreated, send())
}
