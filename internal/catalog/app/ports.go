package app

import (
	"context"
	"errors"

	"github.com/dwikikusuma/qkart-client/internal/catalog/domain"
)

// ErrNotFound is returned by Gateway.Search when the backend answered 404:
// a valid "nothing matched" result, not a failure.
var ErrNotFound = errors.New("no products matched")

type Gateway interface {
	List(ctx context.Context) ([]domain.Product, error)
	Search(ctx context.Context, text string) ([]domain.Product, error)
}
