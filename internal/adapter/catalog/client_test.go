package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStores(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/public/catalog/stores/", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":1,"name":"CENTER PEÇAS - CATALÃO","city":"Catalão"},{"id":2,"name":"Loja 2","city":null}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second)

	stores, err := c.GetStores(context.Background())
	require.NoError(t, err)
	require.Len(t, stores, 2)
	assert.Equal(t, int64(1), stores[0].ID)
	assert.Equal(t, "CENTER PEÇAS - CATALÃO", stores[0].Name)
	assert.Empty(t, stores[1].City)
}

func TestGetProducts_QueryString(t *testing.T) {
	var got map[string][]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		_, _ = w.Write([]byte(`{
			"store": {"id": 1, "name": "CENTER PEÇAS - CATALÃO"},
			"products": [{
				"id": "prod-a", "description": "Capa iPhone 12",
				"brand": "Genérica", "brand_id": 3,
				"price": 10.5, "available": true
			}],
			"total": 1
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second)

	page, err := c.GetProducts(context.Background(), 1, ProductQuery{
		Brand:  3,
		Search: "capa",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"1"}, got["store"])
	assert.Equal(t, []string{"3"}, got["brand"])
	assert.Equal(t, []string{"capa"}, got["search"])
	assert.NotContains(t, got, "group")
	assert.NotContains(t, got, "category")
	assert.NotContains(t, got, "color")

	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "prod-a", page.Products[0].ID)
	assert.True(t, page.Products[0].Price.Equal(decimal.RequireFromString("10.5")))
}

func TestGetFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/public/catalog/filters/", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("store"))
		_, _ = w.Write([]byte(`{"groups":[{"id":1,"name":"Capas"}],"brands":[],"categories":[{"id":2,"name":"Premium"}],"colors":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second)

	f, err := c.GetFilters(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, f.Groups, 1)
	assert.Equal(t, "Capas", f.Groups[0].Name)
	require.Len(t, f.Categories, 1)
	assert.Empty(t, f.Brands)
}

func TestGet_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second)

	_, err := c.GetStores(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
