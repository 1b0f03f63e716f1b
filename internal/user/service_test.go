package user_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/alexedwards/argon2id"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-resto/internal/common"
	dbgen "github.com/noah-isme/backend-resto/internal/db/gen"
	"github.com/noah-isme/backend-resto/internal/user"
)

type userStore struct {
	rows map[pgtype.UUID]dbgen.User
}

func (s *userStore) ListUsers(context.Context, dbgen.ListUsersParams) ([]dbgen.User, error) {
	out := make([]dbgen.User, 0, len(s.rows))
	for _, u := range s.rows {
		out = append(out, u)
	}
	return out, nil
}

func (s *userStore) CountUsers(context.Context) (int64, error) { return int64(len(s.rows)), nil }

func (s *userStore) GetUser(_ context.Context, id pgtype.UUID) (dbgen.User, error) {
	u, ok := s.rows[id]
	if !ok {
		return dbgen.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (s *userStore) CreateUser(_ context.Context, arg dbgen.CreateUserParams) (dbgen.User, error) {
	u := dbgen.User{ID: common.ToPGUUID(uuid.New()), Username: arg.Username, Email: arg.Email, PasswordHash: arg.PasswordHash, Groups: arg.Groups}
	s.rows[u.ID] = u
	return u, nil
}

func (s *userStore) UpdateUser(_ context.Context, arg dbgen.UpdateUserParams) (dbgen.User, error) {
	u, ok := s.rows[arg.ID]
	if !ok {
		return dbgen.User{}, pgx.ErrNoRows
	}
	u.Email, u.FirstName, u.LastName, u.Groups = arg.Email, arg.FirstName, arg.LastName, arg.Groups
	s.rows[arg.ID] = u
	return u, nil
}

func (s *userStore) DeleteUser(_ context.Context, id pgtype.UUID) (int64, error) {
	if _, ok := s.rows[id]; !ok {
		return 0, nil
	}
	delete(s.rows, id)
	return 1, nil
}

func TestUserAdministration(t *testing.T) {
	store := &userStore{rows: map[pgtype.UUID]dbgen.User{}}
	svc := &user.Service{Q: store}
	ctx := context.Background()

	_, err := svc.Create(ctx, user.Input{Username: "mesero", Email: "m@example.com", Groups: []string{"Cliente"}})
	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, map[string]string{"field": "password"}, appErr.Details)

	_, err = svc.Create(ctx, user.Input{Username: "mesero", Email: "m@example.com", Password: "secreto", Groups: []string{"Cocina"}})
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "VALIDATION_ERROR", appErr.Code)

	created, err := svc.Create(ctx, user.Input{Username: " mesero ", Email: "M@Example.com", Password: "secreto", Groups: []string{"Cliente", "Cliente"}})
	require.NoError(t, err)
	require.Equal(t, "mesero", created.Username)
	require.Equal(t, "m@example.com", created.Email)
	require.Equal(t, []string{"Cliente"}, created.Groups)

	id, _ := common.ParseID("id", created.ID)
	ok, err := argon2id.ComparePasswordAndHash("secreto", store.rows[id].PasswordHash)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = svc.Update(ctx, created.ID, user.Input{Username: "mesero", Email: "m@example.com", Groups: []string{"Admin", "Cliente"}})
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "FORBIDDEN", appErr.Code)

	asAdmin := common.WithPrincipal(ctx, common.Principal{UserID: uuid.NewString(), Groups: []string{common.GroupAdmin}})
	updated, err := svc.Update(asAdmin, created.ID, user.Input{Username: "mesero", Email: "m@example.com", Groups: []string{"Admin", "Cliente"}})
	require.NoError(t, err)
	require.Equal(t, []string{"Admin", "Cliente"}, updated.Groups)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestCreateAdminNeedsAdminCaller(t *testing.T) {
	store := &userStore{rows: map[pgtype.UUID]dbgen.User{}}
	svc := &user.Service{Q: store}
	in := user.Input{Username: "gerente", Email: "g@example.com", Password: "secreto", Groups: []string{"Admin"}}

	asClient := common.WithPrincipal(context.Background(), common.Principal{UserID: uuid.NewString(), Groups: []string{common.GroupClient}})
	_, err := svc.Create(asClient, in)
	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, http.StatusForbidden, appErr.HTTPStatus)
	require.Empty(t, store.rows)

	asAdmin := common.WithPrincipal(context.Background(), common.Principal{UserID: uuid.NewString(), Groups: []string{common.GroupAdmin}})
	created, err := svc.Create(asAdmin, in)
	require.NoError(t, err)
	require.Equal(t, []string{"Admin"}, created.Groups)
}
