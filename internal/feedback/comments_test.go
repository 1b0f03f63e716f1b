package feedback_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-resto/internal/common"
	dbgen "github.com/noah-isme/backend-resto/internal/db/gen"
	"github.com/noah-isme/backend-resto/internal/feedback"
)

type commentStore struct {
	rows map[pgtype.UUID]dbgen.Comment
}

func (s *commentStore) ListComments(context.Context, dbgen.ListCommentsParams) ([]dbgen.Comment, error) {
	return nil, nil
}

func (s *commentStore) CountComments(context.Context) (int64, error) { return int64(len(s.rows)), nil }

func (s *commentStore) ListCommentsByCustomer(_ context.Context, arg dbgen.ListCommentsByCustomerParams) ([]dbgen.Comment, error) {
	var out []dbgen.Comment
	for _, c := range s.rows {
		if c.CustomerID == arg.CustomerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *commentStore) CountCommentsByCustomer(ctx context.Context, id pgtype.UUID) (int64, error) {
	rows, _ := s.ListCommentsByCustomer(ctx, dbgen.ListCommentsByCustomerParams{CustomerID: id})
	return int64(len(rows)), nil
}

func (s *commentStore) GetComment(_ context.Context, id pgtype.UUID) (dbgen.Comment, error) {
	c, ok := s.rows[id]
	if !ok {
		return dbgen.Comment{}, pgx.ErrNoRows
	}
	return c, nil
}

func (s *commentStore) CreateComment(_ context.Context, arg dbgen.CreateCommentParams) (dbgen.Comment, error) {
	c := dbgen.Comment{ID: common.ToPGUUID(uuid.New()), Body: arg.Body, Rating: arg.Rating, MenuItemID: arg.MenuItemID, CustomerID: arg.CustomerID}
	s.rows[c.ID] = c
	return c, nil
}

func (s *commentStore) UpdateComment(_ context.Context, arg dbgen.UpdateCommentParams) (dbgen.Comment, error) {
	c, ok := s.rows[arg.ID]
	if !ok {
		return dbgen.Comment{}, pgx.ErrNoRows
	}
	c.Body, c.Rating, c.MenuItemID = arg.Body, arg.Rating, arg.MenuItemID
	s.rows[arg.ID] = c
	return c, nil
}

func (s *commentStore) DeleteComment(_ context.Context, id pgtype.UUID) (int64, error) {
	if _, ok := s.rows[id]; !ok {
		return 0, nil
	}
	delete(s.rows, id)
	return 1, nil
}

type knownItems map[pgtype.UUID]bool

func (k knownItems) Exists(_ context.Context, id pgtype.UUID) (bool, error) { return k[id], nil }

func setup() (*feedback.Service, *commentStore, string) {
	item := uuid.New()
	store := &commentStore{rows: map[pgtype.UUID]dbgen.Comment{}}
	return &feedback.Service{Q: store, Menu: knownItems{common.ToPGUUID(item): true}}, store, item.String()
}

func withCaller(ctx context.Context, id string, groups ...string) context.Context {
	return common.WithPrincipal(ctx, common.Principal{UserID: id, Groups: groups})
}

func TestCommentValidation(t *testing.T) {
	svc, _, item := setup()
	long := make([]byte, 501)
	for i := range long {
		long[i] = 'a'
	}
	cases := map[string]feedback.Input{
		"empty body":   {Body: "", Rating: 3, MenuItemID: item, CustomerID: uuid.NewString()},
		"long body":    {Body: string(long), Rating: 3, MenuItemID: item, CustomerID: uuid.NewString()},
		"rating zero":  {Body: "rico", Rating: 0, MenuItemID: item, CustomerID: uuid.NewString()},
		"rating six":   {Body: "rico", Rating: 6, MenuItemID: item, CustomerID: uuid.NewString()},
		"unknown item": {Body: "rico", Rating: 5, MenuItemID: uuid.NewString(), CustomerID: uuid.NewString()},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), in)
			var appErr *common.AppError
			require.ErrorAs(t, err, &appErr)
			require.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}
}

func TestCommentOwnership(t *testing.T) {
	svc, _, item := setup()
	author, stranger := uuid.NewString(), uuid.NewString()

	c, err := svc.Create(context.Background(), feedback.Input{Body: "muy bueno", Rating: 5, MenuItemID: item, CustomerID: author})
	require.NoError(t, err)

	_, err = svc.Update(withCaller(context.Background(), stranger, common.GroupClient), c.ID, feedback.Input{Body: "malo", Rating: 1, MenuItemID: item, CustomerID: stranger})
	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, http.StatusForbidden, appErr.HTTPStatus)

	updated, err := svc.Update(withCaller(context.Background(), author, common.GroupClient), c.ID, feedback.Input{Body: "excelente", Rating: 4, MenuItemID: item, CustomerID: author})
	require.NoError(t, err)
	require.Equal(t, "excelente", updated.Body)
	require.EqualValues(t, 4, updated.Rating)

	require.NoError(t, svc.Delete(withCaller(context.Background(), uuid.NewString(), common.GroupAdmin), c.ID))
}

func TestCommentsByCustomer(t *testing.T) {
	svc, _, item := setup()
	author := uuid.NewString()
	for _, body := range []string{"uno", "dos"} {
		_, err := svc.Create(context.Background(), feedback.Input{Body: body, Rating: 3, MenuItemID: item, CustomerID: author})
		require.NoError(t, err)
	}
	_, err := svc.Create(context.Background(), feedback.Input{Body: "otro", Rating: 3, MenuItemID: item, CustomerID: uuid.NewString()})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Get("/customers/{customerId}/comments", feedback.NewHandler(svc, 20, 100).ByCustomer)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/customers/"+author+"/comments", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"total_items":2`)
}
