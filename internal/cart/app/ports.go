package app

import (
	"context"

	"github.com/dwikikusuma/qkart-client/internal/cart/domain"
)

// Gateway is the backend's cart API. Both calls require a bearer token; the
// upsert returns the authoritative cart after the change.
type Gateway interface {
	Fetch(ctx context.Context, token string) ([]domain.Line, error)
	Upsert(ctx context.Context, token, productID string, qty int) ([]domain.Line, error)
}
