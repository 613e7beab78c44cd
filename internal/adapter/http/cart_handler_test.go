package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cristianojapa/pedido-rapido-catalao/internal/cart"
)

func newCartRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewRouter(nil, NewCartHandler(cart.NewMemoryStore()), nil)
}

func postItem(r *gin.Engine, sessionID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-Id", sessionID)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCartItems_AddAndTotal(t *testing.T) {
	r := newCartRouter(t)

	w := postItem(r, "sess", `{
		"product": {"id": "prod-a", "description": "Capa iPhone 12", "price": 10},
		"delta": 2
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = postItem(r, "sess", `{
		"product": {"id": "prod-b", "description": "Película 3D", "price": 5.5},
		"delta": 1
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp cartResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.TotalItems)
	assert.Equal(t, "R$ 25,50", resp.TotalValue)
	require.Len(t, resp.Lines, 2)
	assert.Equal(t, "R$ 20,00", resp.Lines[0].Subtotal)
}

func TestCartItems_DecrementRemoves(t *testing.T) {
	r := newCartRouter(t)

	w := postItem(r, "sess", `{"product": {"id": "prod-a", "price": 10}, "delta": 1}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = postItem(r, "sess", `{"product": {"id": "prod-a", "price": 10}, "delta": -1}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp cartResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Lines)
	assert.Equal(t, 0, resp.TotalItems)
	assert.Equal(t, "R$ 0,00", resp.TotalValue)
}

func TestCartItems_MissingProductID(t *testing.T) {
	r := newCartRouter(t)

	w := postItem(r, "sess", `{"product": {"description": "sem id"}, "delta": 1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartClear(t *testing.T) {
	r := newCartRouter(t)

	w := postItem(r, "sess", `{"product": {"id": "prod-a", "price": 10}, "delta": 2}`)
	require.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodDelete, "/v1/cart", nil)
	req.Header.Set("X-Session-Id", "sess")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/cart", nil)
	req.Header.Set("X-Session-Id", "sess")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp cartResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Lines)
}

func TestSession_MintedWhenAbsent(t *testing.T) {
	r := newCartRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Session-Id"))
}
