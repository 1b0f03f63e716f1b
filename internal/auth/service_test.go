package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-resto/internal/auth"
	"github.com/noah-isme/backend-resto/internal/common"
	dbgen "github.com/noah-isme/backend-resto/internal/db/gen"
)

type accounts struct {
	users  map[string]dbgen.User
	groups map[string]dbgen.Group
}

func newAccounts() *accounts {
	return &accounts{
		users: map[string]dbgen.User{},
		groups: map[string]dbgen.Group{
			common.GroupAdmin:  {ID: common.ToPGUUID(uuid.New()), Name: common.GroupAdmin},
			common.GroupClient: {ID: common.ToPGUUID(uuid.New()), Name: common.GroupClient},
		},
	}
}

func (a *accounts) CreateUser(_ context.Context, arg dbgen.CreateUserParams) (dbgen.User, error) {
	if _, ok := a.users[arg.Username]; ok {
		return dbgen.User{}, &pgconn.PgError{Code: "23505"}
	}
	u := dbgen.User{
		ID:           common.ToPGUUID(uuid.New()),
		Username:     arg.Username,
		Email:        arg.Email,
		FirstName:    arg.FirstName,
		LastName:     arg.LastName,
		PasswordHash: arg.PasswordHash,
		Groups:       arg.Groups,
	}
	a.users[u.Username] = u
	return u, nil
}

func (a *accounts) GetUser(_ context.Context, id pgtype.UUID) (dbgen.User, error) {
	for _, u := range a.users {
		if u.ID == id {
			return u, nil
		}
	}
	return dbgen.User{}, pgx.ErrNoRows
}

func (a *accounts) GetUserByUsername(_ context.Context, username string) (dbgen.User, error) {
	u, ok := a.users[username]
	if !ok {
		return dbgen.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (a *accounts) GetGroupByName(_ context.Context, name string) (dbgen.Group, error) {
	g, ok := a.groups[name]
	if !ok {
		return dbgen.Group{}, pgx.ErrNoRows
	}
	return g, nil
}

func newService(t *testing.T) *auth.Service {
	t.Helper()
	svc, err := auth.NewService(auth.Config{Queries: newAccounts(), Secret: "test-secret", AccessTokenTTL: time.Hour})
	require.NoError(t, err)
	return svc
}

func register(username, role string) auth.RegisterInput {
	return auth.RegisterInput{Username: username, Email: username + "@example.com", FirstName: "Ana", LastName: "Pérez", Password: "secreto", Role: role}
}

func appErr(t *testing.T, err error) *common.AppError {
	t.Helper()
	var e *common.AppError
	require.ErrorAs(t, err, &e)
	return e
}

func TestRegisterValidation(t *testing.T) {
	svc := newService(t)

	_, err := svc.Register(context.Background(), register("ana", "Chef"))
	e := appErr(t, err)
	require.Equal(t, "VALIDATION_ERROR", e.Code)
	require.Equal(t, map[string]string{"field": "role"}, e.Details)

	short := register("ana", common.GroupClient)
	short.Password = "12345"
	_, err = svc.Register(context.Background(), short)
	require.Equal(t, "VALIDATION_ERROR", appErr(t, err).Code)

	user, err := svc.Register(context.Background(), register("ana", common.GroupClient))
	require.NoError(t, err)
	require.Equal(t, []string{common.GroupClient}, user.Groups)

	_, err = svc.Register(context.Background(), register("ana", common.GroupClient))
	require.Equal(t, http.StatusConflict, appErr(t, err).HTTPStatus)
}

func TestRegisterAdminRoleNeedsAdminCaller(t *testing.T) {
	svc := newService(t)

	_, err := svc.Register(context.Background(), register("intruso", common.GroupAdmin))
	require.Equal(t, http.StatusForbidden, appErr(t, err).HTTPStatus)

	asClient := common.WithPrincipal(context.Background(), common.Principal{UserID: uuid.NewString(), Groups: []string{common.GroupClient}})
	_, err = svc.Register(asClient, register("intruso", common.GroupAdmin))
	require.Equal(t, http.StatusForbidden, appErr(t, err).HTTPStatus)

	_, err = svc.Login(context.Background(), auth.LoginInput{Username: "intruso", Password: "secreto"})
	require.Equal(t, "INVALID_CREDENTIALS", appErr(t, err).Code)
}

func TestLoginIssuesTokenWithGroups(t *testing.T) {
	svc := newService(t)
	asAdmin := common.WithPrincipal(context.Background(), common.Principal{UserID: uuid.NewString(), Groups: []string{common.GroupAdmin}})
	user, err := svc.Register(asAdmin, register("chef", common.GroupAdmin))
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), auth.LoginInput{Username: "chef", Password: "wrong!"})
	require.Equal(t, "INVALID_CREDENTIALS", appErr(t, err).Code)
	_, err = svc.Login(context.Background(), auth.LoginInput{Username: "ghost", Password: "secreto"})
	require.Equal(t, "INVALID_CREDENTIALS", appErr(t, err).Code)

	res, err := svc.Login(context.Background(), auth.LoginInput{Username: "chef", Password: "secreto"})
	require.NoError(t, err)
	require.Equal(t, "Bearer", res.TokenType)

	p, err := svc.ParseAccessToken(res.AccessToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, p.UserID)
	require.Equal(t, "chef", p.Username)
	require.True(t, p.IsAdmin())

	svc.WithNow(func() time.Time { return time.Now().Add(2 * time.Hour) })
	_, err = svc.ParseAccessToken(res.AccessToken)
	require.Equal(t, http.StatusUnauthorized, appErr(t, err).HTTPStatus)
}

func TestRoutes(t *testing.T) {
	svc := newService(t)
	h := &auth.Handler{Service: svc}
	mw := auth.Middleware{Service: svc}
	r := chi.NewRouter()
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)
	r.With(mw.RequireAuth).Get("/auth/me", h.Me)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"username":"luis","email":"luis@example.com","password":"secreto","role":"Cliente"}`)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotContains(t, rec.Body.String(), "password")

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"luis","password":"secreto"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	res, err := svc.Login(context.Background(), auth.LoginInput{Username: "luis", Password: "secreto"})
	require.NoError(t, err)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+res.AccessToken)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"username":"luis"`)
}
