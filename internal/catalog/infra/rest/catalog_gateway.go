package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dwikikusuma/qkart-client/internal/backend"
	"github.com/dwikikusuma/qkart-client/internal/catalog/app"
	"github.com/dwikikusuma/qkart-client/internal/catalog/domain"
)

// CatalogGateway implements app.Gateway over the backend's product routes.
type CatalogGateway struct {
	client *backend.Client
}

func NewCatalogGateway(client *backend.Client) *CatalogGateway {
	return &CatalogGateway{client: client}
}

func (g *CatalogGateway) List(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := g.client.Get(ctx, "/products", nil, "", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (g *CatalogGateway) Search(ctx context.Context, text string) ([]domain.Product, error) {
	query := url.Values{"value": []string{text}}

	var products []domain.Product
	err := g.client.Get(ctx, "/products/search", query, "", &products)
	if backend.StatusOf(err) == http.StatusNotFound {
		return nil, app.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return products, nil
}
