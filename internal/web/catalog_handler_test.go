package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdulRehman2008/E-comerce/internal/catalog"
)

func TestListProducts_All(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.products = []catalog.Product{
		{ID: 1, Title: "Shirt", Price: 22.30, Category: catalog.CategoryMens},
		{ID: 2, Title: "Dress", Price: 9.85, Category: catalog.CategoryWomens},
	}

	rr := env.do(t, http.MethodGet, "/api/products", "")

	require.Equal(t, http.StatusOK, rr.Code)

	var resp []catalog.Product
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 2)
}

func TestListProducts_FilterAndSort(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.products = []catalog.Product{
		{ID: 1, Title: "Slim Shirt", Price: 22.30, Category: catalog.CategoryMens},
		{ID: 2, Title: "Dress", Price: 9.85, Category: catalog.CategoryWomens},
		{ID: 3, Title: "Winter Shirt", Price: 55.00, Category: catalog.CategoryMens},
	}

	rr := env.do(t, http.MethodGet, "/api/products?category=men%27s+clothing&search=shirt&sort=price-desc", "")

	require.Equal(t, http.StatusOK, rr.Code)

	var resp []catalog.Product
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, int64(3), resp[0].ID)
	assert.Equal(t, int64(1), resp[1].ID)
}

func TestListProducts_UpstreamFailure(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.err = errors.New("api down")

	rr := env.do(t, http.MethodGet, "/api/products", "")

	require.Equal(t, http.StatusBadGateway, rr.Code)
}
