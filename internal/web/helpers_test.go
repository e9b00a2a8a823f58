package web

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/AbdulRehman2008/E-comerce/internal/auth"
	"github.com/AbdulRehman2008/E-comerce/internal/cart"
	"github.com/AbdulRehman2008/E-comerce/internal/catalog"
	"github.com/AbdulRehman2008/E-comerce/internal/checkout"
	"github.com/AbdulRehman2008/E-comerce/internal/order"
)

const testSecret = "test-secret"

type memStorage struct {
	items []cart.Item
}

func (m *memStorage) Load() ([]cart.Item, error) { return m.items, nil }
func (m *memStorage) Save(items []cart.Item) error {
	m.items = append([]cart.Item(nil), items...)
	return nil
}

type fakeCatalog struct {
	products []catalog.Product
	err      error
}

func (f *fakeCatalog) Products(ctx context.Context) ([]catalog.Product, error) {
	return f.products, f.err
}

type fakeSubmitter struct {
	summary  checkout.Summary
	err      error
	received *order.Customer
}

func (f *fakeSubmitter) Submit(ctx context.Context, customer order.Customer) (checkout.Summary, error) {
	f.received = &customer
	return f.summary, f.err
}

type fakeOrderRepo struct {
	createFunc       func(ctx context.Context, o *order.Order) error
	getByIDFunc      func(ctx context.Context, orderID string) (*order.Order, error)
	listByUserFunc   func(ctx context.Context, userID string) ([]order.Order, error)
	listAllFunc      func(ctx context.Context) ([]order.Order, error)
	updateStatusFunc func(ctx context.Context, orderID string, status order.Status) error
}

func (f *fakeOrderRepo) Create(ctx context.Context, o *order.Order) error {
	if f.createFunc != nil {
		return f.createFunc(ctx, o)
	}
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, orderID string) (*order.Order, error) {
	if f.getByIDFunc != nil {
		return f.getByIDFunc(ctx, orderID)
	}
	return nil, nil
}

func (f *fakeOrderRepo) ListByUser(ctx context.Context, userID string) ([]order.Order, error) {
	if f.listByUserFunc != nil {
		return f.listByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (f *fakeOrderRepo) ListAll(ctx context.Context) ([]order.Order, error) {
	if f.listAllFunc != nil {
		return f.listAllFunc(ctx)
	}
	return nil, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, orderID string, status order.Status) error {
	if f.updateStatusFunc != nil {
		return f.updateStatusFunc(ctx, orderID, status)
	}
	return nil
}

type testEnv struct {
	router    http.Handler
	cart      *cart.Store
	catalog   *fakeCatalog
	submitter *fakeSubmitter
	orders    *fakeOrderRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := log.New(io.Discard, "", 0)
	env := &testEnv{
		cart:      cart.NewStore(&memStorage{}, logger),
		catalog:   &fakeCatalog{},
		submitter: &fakeSubmitter{},
		orders:    &fakeOrderRepo{},
	}

	env.router = NewRouter(
		auth.NewVerifier(testSecret),
		NewCatalogHandler(env.catalog),
		NewCartHandler(env.cart),
		NewCheckoutHandler(env.submitter),
		NewOrderHandler(env.orders),
	)
	return env
}

func (e *testEnv) do(t *testing.T, method, path, body string, opts ...func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for _, opt := range opts {
		opt(req)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func asUser(t *testing.T, userID, email string, admin bool) func(*http.Request) {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"admin": admin,
	})
	raw, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	return func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+raw)
	}
}
