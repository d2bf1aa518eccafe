package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dwikikusuma/qkart-client/internal/backend"
	"github.com/dwikikusuma/qkart-client/internal/catalog/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newGateway(t *testing.T, handler http.HandlerFunc) *CatalogGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewCatalogGateway(backend.NewClient(srv.URL, 2*time.Second, zap.NewNop()))
}

func TestListDecodesProducts(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		w.Write([]byte(`[{"_id":"v4sLtEcMpzabRyfx","name":"iPhone XR","category":"Phones","cost":100,"rating":4,"image":"https://i.imgur.com/lulqWzW.jpg"}]`))
	})

	products, err := gw.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "v4sLtEcMpzabRyfx", products[0].ID)
	assert.Equal(t, "iPhone XR", products[0].Name)
	assert.Equal(t, float64(100), products[0].Cost)
	assert.Equal(t, 4, products[0].Rating)
}

func TestSearchSendsValueQuery(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/search", r.URL.Path)
		assert.Equal(t, "basket ball", r.URL.Query().Get("value"))
		w.Write([]byte(`[]`))
	})

	_, err := gw.Search(context.Background(), "basket ball")
	require.NoError(t, err)
}

func TestSearchMaps404ToErrNotFound(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"Products not found"}`))
	})

	_, err := gw.Search(context.Background(), "zzz")
	assert.True(t, errors.Is(err, app.ErrNotFound))
}

func TestSearchPassesThroughServerError(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := gw.Search(context.Background(), "phone")
	require.Error(t, err)
	assert.False(t, errors.Is(err, app.ErrNotFound))
	assert.Equal(t, http.StatusInternalServerError, backend.StatusOf(err))
}
