package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/qkart-client/internal/cart/app"
	cartdomain "github.com/dwikikusuma/qkart-client/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/qkart-client/internal/catalog/app"
	"github.com/dwikikusuma/qkart-client/internal/session"
)

// LiveCartReader implements checkout's CartReader against the live backend:
// a fresh catalog and cart fetch, reconciled on the spot.
type LiveCartReader struct {
	sessions session.Store
	cart     *cartapp.Service
	catalog  *catalogapp.Service
}

func NewLiveCartReader(sessions session.Store, cart *cartapp.Service, catalog *catalogapp.Service) *LiveCartReader {
	return &LiveCartReader{
		sessions: sessions,
		cart:     cart,
		catalog:  catalog,
	}
}

func (r *LiveCartReader) CurrentLines(ctx context.Context) []cartdomain.DisplayLine {
	sess, err := r.sessions.Load()
	if err != nil {
		return nil
	}

	products := r.catalog.Refresh(ctx)
	raw := r.cart.Fetch(ctx, sess.Token)
	return cartdomain.Reconcile(raw, products)
}
