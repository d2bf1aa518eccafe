package rest

import (
	"context"

	"github.com/dwikikusuma/qkart-client/internal/backend"
	"github.com/dwikikusuma/qkart-client/internal/cart/domain"
)

// CartGateway implements app.Gateway over the backend's authenticated cart
// routes.
type CartGateway struct {
	client *backend.Client
}

func NewCartGateway(client *backend.Client) *CartGateway {
	return &CartGateway{client: client}
}

func (g *CartGateway) Fetch(ctx context.Context, token string) ([]domain.Line, error) {
	var lines []domain.Line
	if err := g.client.Get(ctx, "/cart", nil, token, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

type upsertRequest struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

func (g *CartGateway) Upsert(ctx context.Context, token, productID string, qty int) ([]domain.Line, error) {
	var lines []domain.Line
	err := g.client.Post(ctx, "/cart", token, upsertRequest{ProductID: productID, Qty: qty}, &lines)
	if err != nil {
		return nil, err
	}
	return lines, nil
}
