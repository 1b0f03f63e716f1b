package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-resto/internal/auth"
	"github.com/noah-isme/backend-resto/internal/common"
	"github.com/noah-isme/backend-resto/internal/config"
	dbgen "github.com/noah-isme/backend-resto/internal/db/gen"
	"github.com/noah-isme/backend-resto/internal/ratelimit"
	"github.com/noah-isme/backend-resto/internal/user"
)

type accounts map[string]dbgen.User

func (a accounts) CreateUser(_ context.Context, arg dbgen.CreateUserParams) (dbgen.User, error) {
	if _, taken := a[arg.Username]; taken {
		return dbgen.User{}, errors.New("duplicate username")
	}
	u := dbgen.User{
		ID:           common.ToPGUUID(uuid.New()),
		Username:     arg.Username,
		Email:        arg.Email,
		PasswordHash: arg.PasswordHash,
		Groups:       arg.Groups,
	}
	a[u.Username] = u
	return u, nil
}

func (a accounts) ListUsers(context.Context, dbgen.ListUsersParams) ([]dbgen.User, error) {
	out := make([]dbgen.User, 0, len(a))
	for _, u := range a {
		out = append(out, u)
	}
	return out, nil
}

func (a accounts) CountUsers(context.Context) (int64, error) { return int64(len(a)), nil }

func (a accounts) UpdateUser(_ context.Context, arg dbgen.UpdateUserParams) (dbgen.User, error) {
	for name, u := range a {
		if u.ID == arg.ID {
			u.Email, u.Groups = arg.Email, arg.Groups
			a[name] = u
			return u, nil
		}
	}
	return dbgen.User{}, pgx.ErrNoRows
}

func (a accounts) DeleteUser(context.Context, pgtype.UUID) (int64, error) {
	return 0, errors.New("read only")
}

func (a accounts) GetUser(_ context.Context, id pgtype.UUID) (dbgen.User, error) {
	for _, u := range a {
		if u.ID == id {
			return u, nil
		}
	}
	return dbgen.User{}, pgx.ErrNoRows
}

func (a accounts) GetUserByUsername(_ context.Context, username string) (dbgen.User, error) {
	if u, ok := a[username]; ok {
		return u, nil
	}
	return dbgen.User{}, pgx.ErrNoRows
}

func (a accounts) GetGroupByName(_ context.Context, name string) (dbgen.Group, error) {
	switch name {
	case common.GroupAdmin, common.GroupClient:
		return dbgen.Group{ID: common.ToPGUUID(uuid.New()), Name: name}, nil
	}
	return dbgen.Group{}, pgx.ErrNoRows
}

type harness struct {
	handler http.Handler
}

func newHarness(t *testing.T, mutate func(*config.Config)) harness {
	t.Helper()
	hash, err := auth.HashPassword("secreto")
	require.NoError(t, err)
	users := accounts{
		"ana":   {ID: common.ToPGUUID(uuid.New()), Username: "ana", PasswordHash: hash, Groups: []string{common.GroupAdmin}},
		"bruno": {ID: common.ToPGUUID(uuid.New()), Username: "bruno", PasswordHash: hash, Groups: []string{common.GroupClient}},
	}
	authSvc, err := auth.NewService(auth.Config{Queries: users, Secret: "test-secret"})
	require.NoError(t, err)

	cfg := &config.Config{
		DefaultPageSize:        20,
		MaxPageSize:            100,
		BodyLimitBytes:         1 << 10,
		AuthRateLimitMax:       10,
		AuthRateLimitWindow:    time.Minute,
		SecurityHeadersEnabled: true,
	}
	if mutate != nil {
		mutate(cfg)
	}
	store, err := ratelimit.NewStore(nil, "test")
	require.NoError(t, err)

	h, err := Router{
		Config:       cfg,
		Services:     &Services{Auth: authSvc, Users: &user.Service{Q: users}},
		LimiterStore: store,
		Logger:       zerolog.Nop(),
	}.Handler()
	require.NoError(t, err)
	return harness{handler: h}
}

func (h harness) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)
	return rec
}

func (h harness) login(t *testing.T, username string) string {
	t.Helper()
	rec := h.do(http.MethodPost, "/api/v1/auth/login", "", `{"username":"`+username+`","password":"secreto"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var out struct {
		Data auth.LoginResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.NotEmpty(t, out.Data.AccessToken)
	return out.Data.AccessToken
}

func TestRouterHealthIsPublic(t *testing.T) {
	h := newHarness(t, nil)
	rec := h.do(http.MethodGet, "/health/live", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestRouterRequiresToken(t *testing.T) {
	h := newHarness(t, nil)
	for _, path := range []string{"/api/v1/orders", "/api/v1/auth/me", "/api/v1/customers/abc/comments"} {
		rec := h.do(http.MethodGet, path, "", "")
		require.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestRouterAppliesGroupPolicy(t *testing.T) {
	h := newHarness(t, nil)
	client := h.login(t, "bruno")
	admin := h.login(t, "ana")

	denied := []struct{ method, path string }{
		{http.MethodGet, "/api/v1/invoices"},
		{http.MethodGet, "/api/v1/categories"},
		{http.MethodDelete, "/api/v1/orders/" + uuid.NewString()},
		{http.MethodPost, "/api/v1/order-lines/quote"},
		{http.MethodPut, "/api/v1/menu-items/" + uuid.NewString()},
	}
	for _, tc := range denied {
		rec := h.do(tc.method, tc.path, client, "{}")
		require.Equal(t, http.StatusForbidden, rec.Code, "%s %s", tc.method, tc.path)
	}

	// Admin passes the policy and reaches the unconfigured service.
	rec := h.do(http.MethodGet, "/api/v1/invoices", admin, "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "not configured")

	rec = h.do(http.MethodGet, "/api/v1/auth/me", client, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"username":"bruno"`)
}

func TestRouterThrottlesLogin(t *testing.T) {
	h := newHarness(t, func(c *config.Config) { c.AuthRateLimitMax = 2 })
	body := `{"username":"bruno","password":"wrong"}`
	require.Equal(t, http.StatusUnauthorized, h.do(http.MethodPost, "/api/v1/auth/login", "", body).Code)
	require.Equal(t, http.StatusUnauthorized, h.do(http.MethodPost, "/api/v1/auth/login", "", body).Code)
	rec := h.do(http.MethodPost, "/api/v1/auth/login", "", body)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRouterRejectsLargeBodies(t *testing.T) {
	h := newHarness(t, func(c *config.Config) { c.BodyLimitBytes = 16 })
	rec := h.do(http.MethodPost, "/api/v1/auth/login", "", `{"username":"bruno","password":"secreto"}`)
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestRouterRegisterOnlyGrantsClientAnonymously(t *testing.T) {
	h := newHarness(t, nil)

	rec := h.do(http.MethodPost, "/api/v1/auth/register", "", `{"username":"intruso","email":"i@resto.local","password":"secreto","role":"Admin"}`)
	require.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())
	rec = h.do(http.MethodPost, "/api/v1/auth/login", "", `{"username":"intruso","password":"secreto"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = h.do(http.MethodPost, "/api/v1/auth/register", "", `{"username":"carla","email":"c@resto.local","password":"secreto","role":"Cliente"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Contains(t, rec.Body.String(), `"groups":["Cliente"]`)
	carla := h.login(t, "carla")
	require.Equal(t, http.StatusForbidden, h.do(http.MethodGet, "/api/v1/invoices", carla, "").Code)

	rec = h.do(http.MethodPost, "/api/v1/auth/register", h.login(t, "ana"), `{"username":"dora","email":"d@resto.local","password":"secreto","role":"Admin"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Contains(t, rec.Body.String(), `"groups":["Admin"]`)
}

func TestRouterUserCreationRestrictsAdminGroup(t *testing.T) {
	h := newHarness(t, nil)
	client := h.login(t, "bruno")

	rec := h.do(http.MethodPost, "/api/v1/users", client, `{"username":"eva","email":"e@resto.local","password":"secreto","groups":["Admin"]}`)
	require.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())

	rec = h.do(http.MethodPost, "/api/v1/users", client, `{"username":"eva","email":"e@resto.local","password":"secreto","groups":["Cliente","Admin"]}`)
	require.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())

	rec = h.do(http.MethodPost, "/api/v1/users", client, `{"username":"eva","email":"e@resto.local","password":"secreto","groups":["Cliente"]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = h.do(http.MethodPost, "/api/v1/users", h.login(t, "ana"), `{"username":"fede","email":"f@resto.local","password":"secreto","groups":["Admin"]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}
