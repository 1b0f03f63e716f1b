package billing_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	redis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-resto/internal/billing"
	"github.com/noah-isme/backend-resto/internal/common"
	dbgen "github.com/noah-isme/backend-resto/internal/db/gen"
	"github.com/noah-isme/backend-resto/internal/lock"
	"github.com/noah-isme/backend-resto/internal/order"
)

var _ order.InvoiceSyncer = (*billing.InvoiceService)(nil)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type invoiceStore struct {
	invoices map[pgtype.UUID]dbgen.Invoice
	lines    map[pgtype.UUID][]dbgen.OrderLine
	setCalls int
}

func newInvoiceStore() *invoiceStore {
	return &invoiceStore{invoices: map[pgtype.UUID]dbgen.Invoice{}, lines: map[pgtype.UUID][]dbgen.OrderLine{}}
}

func (s *invoiceStore) ListInvoices(context.Context, dbgen.ListInvoicesParams) ([]dbgen.Invoice, error) {
	out := make([]dbgen.Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		out = append(out, inv)
	}
	return out, nil
}

func (s *invoiceStore) CountInvoices(context.Context) (int64, error) { return int64(len(s.invoices)), nil }

func (s *invoiceStore) GetInvoice(_ context.Context, id pgtype.UUID) (dbgen.Invoice, error) {
	inv, ok := s.invoices[id]
	if !ok {
		return dbgen.Invoice{}, pgx.ErrNoRows
	}
	return inv, nil
}

func (s *invoiceStore) CreateInvoice(_ context.Context, arg dbgen.CreateInvoiceParams) (dbgen.Invoice, error) {
	inv := dbgen.Invoice{
		ID:              common.ToPGUUID(uuid.New()),
		IssuedAt:        arg.IssuedAt,
		TotalAmount:     arg.TotalAmount,
		PaymentMethodID: arg.PaymentMethodID,
		TableID:         arg.TableID,
		CustomerID:      arg.CustomerID,
	}
	s.invoices[inv.ID] = inv
	return inv, nil
}

func (s *invoiceStore) UpdateInvoice(_ context.Context, arg dbgen.UpdateInvoiceParams) (dbgen.Invoice, error) {
	inv, ok := s.invoices[arg.ID]
	if !ok {
		return dbgen.Invoice{}, pgx.ErrNoRows
	}
	inv.PaymentMethodID, inv.TableID, inv.CustomerID = arg.PaymentMethodID, arg.TableID, arg.CustomerID
	s.invoices[arg.ID] = inv
	return inv, nil
}

func (s *invoiceStore) SetInvoiceTotal(_ context.Context, arg dbgen.SetInvoiceTotalParams) (dbgen.Invoice, error) {
	s.setCalls++
	inv, ok := s.invoices[arg.ID]
	if !ok {
		return dbgen.Invoice{}, pgx.ErrNoRows
	}
	inv.TotalAmount = arg.TotalAmount
	s.invoices[arg.ID] = inv
	return inv, nil
}

func (s *invoiceStore) DeleteInvoice(_ context.Context, id pgtype.UUID) (int64, error) {
	if _, ok := s.invoices[id]; !ok {
		return 0, nil
	}
	delete(s.invoices, id)
	delete(s.lines, id)
	return 1, nil
}

func (s *invoiceStore) ListOrderLinesByInvoice(_ context.Context, id pgtype.UUID) ([]dbgen.OrderLine, error) {
	return s.lines[id], nil
}

func (s *invoiceStore) addLine(invoice pgtype.UUID, subtotal, tax, total string) {
	s.lines[invoice] = append(s.lines[invoice], dbgen.OrderLine{
		ID:        common.ToPGUUID(uuid.New()),
		Quantity:  1,
		Subtotal:  dec(subtotal),
		Tax:       dec(tax),
		Total:     dec(total),
		InvoiceID: invoice,
	})
}

type recordedEvents struct{ topics []string }

func (r *recordedEvents) Emit(_ context.Context, topic string, id pgtype.UUID, _ any) (dbgen.DomainEvent, error) {
	r.topics = append(r.topics, topic)
	return dbgen.DomainEvent{Topic: topic, AggregateID: id}, nil
}

func newInvoiceService(t *testing.T, store *invoiceStore) (*billing.InvoiceService, *recordedEvents, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	ev := &recordedEvents{}
	return &billing.InvoiceService{
		Q:      store,
		Locks:  lock.New(client, time.Second),
		Events: ev,
		Logger: zerolog.Nop(),
		Now:    func() time.Time { return time.Date(2024, 5, 10, 20, 0, 0, 0, time.UTC) },
	}, ev, mr
}

func validInput() billing.InvoiceInput {
	return billing.InvoiceInput{
		PaymentMethodID: uuid.NewString(),
		TableID:         uuid.NewString(),
		CustomerID:      uuid.NewString(),
	}
}

func TestInvoiceCreateStartsAtZeroAndEmits(t *testing.T) {
	store := newInvoiceStore()
	svc, ev, _ := newInvoiceService(t, store)

	inv, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	require.True(t, inv.TotalAmount.IsZero())
	require.Equal(t, 0, inv.LineCount)
	require.Equal(t, 2024, inv.IssuedAt.Year())
	require.Equal(t, []string{"invoice.created"}, ev.topics)
	require.Zero(t, store.setCalls)
}

func TestInvoiceReadAggregatesLines(t *testing.T) {
	store := newInvoiceStore()
	svc, _, _ := newInvoiceService(t, store)
	inv, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	id, err := common.ParseID("id", inv.ID)
	require.NoError(t, err)
	store.addLine(id, "30.00", "3.90", "33.90")
	store.addLine(id, "24.00", "3.12", "27.12")
	store.addLine(id, "8.8496", "1.15", "10.00")

	got, err := svc.Get(context.Background(), inv.ID)
	require.NoError(t, err)
	require.Equal(t, "71.02", got.TotalAmount.StringFixed(2))
	require.Equal(t, 3, got.LineCount)
	require.True(t, store.invoices[id].TotalAmount.IsZero(), "reads do not write the snapshot")

	list, total, err := svc.List(context.Background(), common.PageRequest{Page: 1, PerPage: 20})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "71.02", list[0].TotalAmount.StringFixed(2))
}

func TestSyncTotalStoresSnapshotUnderLock(t *testing.T) {
	store := newInvoiceStore()
	svc, _, mr := newInvoiceService(t, store)
	inv, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	id, _ := common.ParseID("id", inv.ID)
	store.addLine(id, "30.00", "3.90", "33.90")

	require.NoError(t, svc.SyncTotal(context.Background(), id))
	require.Equal(t, "33.90", store.invoices[id].TotalAmount.StringFixed(2))
	require.False(t, mr.Exists("lock:invoice:"+inv.ID))

	// a deleted invoice is not an error
	require.NoError(t, svc.SyncTotal(context.Background(), common.ToPGUUID(uuid.New())))
	require.NoError(t, svc.SyncTotal(context.Background(), pgtype.UUID{}))
}

func TestSyncTotalWaitsForHeldLock(t *testing.T) {
	store := newInvoiceStore()
	svc, _, mr := newInvoiceService(t, store)
	inv, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	id, _ := common.ParseID("id", inv.ID)
	require.NoError(t, mr.Set("lock:invoice:"+inv.ID, "other-replica"))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, svc.SyncTotal(ctx, id), context.DeadlineExceeded)
	require.Zero(t, store.setCalls)
}

func TestInvoiceRejectsMissingReferences(t *testing.T) {
	svc, _, _ := newInvoiceService(t, newInvoiceStore())
	_, err := svc.Create(context.Background(), billing.InvoiceInput{TableID: uuid.NewString()})
	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

type methodStore struct {
	rows map[pgtype.UUID]dbgen.PaymentMethod
}

func (s *methodStore) ListPaymentMethods(context.Context, dbgen.ListPaymentMethodsParams) ([]dbgen.PaymentMethod, error) {
	out := make([]dbgen.PaymentMethod, 0, len(s.rows))
	for _, r := range s.rows {
		out = append(out, r)
	}
	return out, nil
}

func (s *methodStore) CountPaymentMethods(context.Context) (int64, error) { return int64(len(s.rows)), nil }

func (s *methodStore) GetPaymentMethod(_ context.Context, id pgtype.UUID) (dbgen.PaymentMethod, error) {
	r, ok := s.rows[id]
	if !ok {
		return dbgen.PaymentMethod{}, pgx.ErrNoRows
	}
	return r, nil
}

func (s *methodStore) CreatePaymentMethod(_ context.Context, arg dbgen.CreatePaymentMethodParams) (dbgen.PaymentMethod, error) {
	row := dbgen.PaymentMethod{ID: common.ToPGUUID(uuid.New()), Kind: arg.Kind, PurchasedOn: arg.PurchasedOn, PurchaseTotal: arg.PurchaseTotal}
	s.rows[row.ID] = row
	return row, nil
}

func (s *methodStore) UpdatePaymentMethod(_ context.Context, arg dbgen.UpdatePaymentMethodParams) (dbgen.PaymentMethod, error) {
	if _, ok := s.rows[arg.ID]; !ok {
		return dbgen.PaymentMethod{}, pgx.ErrNoRows
	}
	row := dbgen.PaymentMethod{ID: arg.ID, Kind: arg.Kind, PurchasedOn: arg.PurchasedOn, PurchaseTotal: arg.PurchaseTotal}
	s.rows[arg.ID] = row
	return row, nil
}

func (s *methodStore) DeletePaymentMethod(_ context.Context, id pgtype.UUID) (int64, error) {
	if _, ok := s.rows[id]; !ok {
		return 0, nil
	}
	delete(s.rows, id)
	return 1, nil
}

func TestPaymentMethodValidation(t *testing.T) {
	svc := &billing.PaymentMethodService{Q: &methodStore{rows: map[pgtype.UUID]dbgen.PaymentMethod{}}}
	cases := map[string]billing.PaymentMethodInput{
		"blank kind":     {Kind: "  ", PurchasedOn: "2024-05-10", PurchaseTotal: dec("10")},
		"zero total":     {Kind: "tarjeta", PurchasedOn: "2024-05-10", PurchaseTotal: decimal.Zero},
		"negative total": {Kind: "tarjeta", PurchasedOn: "2024-05-10", PurchaseTotal: dec("-1")},
		"three decimals": {Kind: "tarjeta", PurchasedOn: "2024-05-10", PurchaseTotal: dec("1.005")},
		"bad date":       {Kind: "tarjeta", PurchasedOn: "10/05/2024", PurchaseTotal: dec("10")},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), in)
			var appErr *common.AppError
			require.ErrorAs(t, err, &appErr)
			require.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}

	pm, err := svc.Create(context.Background(), billing.PaymentMethodInput{Kind: "efectivo", PurchasedOn: "2024-05-10", PurchaseTotal: dec("71.02")})
	require.NoError(t, err)
	require.Equal(t, "2024-05-10", pm.PurchasedOn)
}

func TestPaymentMethodRoutes(t *testing.T) {
	h := billing.NewPaymentMethodHandler(&billing.PaymentMethodService{Q: &methodStore{rows: map[pgtype.UUID]dbgen.PaymentMethod{}}}, 20, 100)
	r := chi.NewRouter()
	r.Post("/payment-methods", h.Create)
	r.Delete("/payment-methods/{id}", h.Delete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/payment-methods", strings.NewReader(`{"kind":"tarjeta","purchased_on":"2024-05-10","purchase_total":"15.50"}`)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Contains(t, rec.Body.String(), `"purchase_total":"15.5"`)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/payment-methods/"+uuid.NewString(), nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
