package app

import (
	"context"
	"errors"

	cartdomain "github.com/dwikikusuma/qkart-client/internal/cart/domain"
	"github.com/dwikikusuma/qkart-client/internal/checkout/domain"
	"github.com/dwikikusuma/qkart-client/internal/session"
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrSignInRequired = errors.New("sign in required")
)

// CartReader supplies the current reconciled cart.
type CartReader interface {
	CurrentLines(ctx context.Context) []cartdomain.DisplayLine
}

// Review is the pre-checkout picture: what the order costs and what is left
// in the wallet afterwards. Remaining may go negative; whether the order is
// affordable is the backend's call at placement time.
type Review struct {
	Username  string
	Balance   float64
	Remaining float64
	Lines     []cartdomain.DisplayLine
	Summary   domain.OrderSummary
}

type Service struct {
	sessions session.Store
	cart     CartReader
}

func NewService(sessions session.Store, cart CartReader) *Service {
	return &Service{
		sessions: sessions,
		cart:     cart,
	}
}

// Review gates on a signed-in session with a non-empty cart and returns the
// order summary.
func (s *Service) Review(ctx context.Context) (Review, error) {
	sess, err := s.sessions.Load()
	if err != nil {
		return Review{}, err
	}
	if !sess.SignedIn() {
		return Review{}, ErrSignInRequired
	}

	lines := s.cart.CurrentLines(ctx)
	if len(lines) == 0 {
		return Review{}, ErrEmptyCart
	}

	summary := domain.Summarize(lines)
	return Review{
		Username:  sess.Username,
		Balance:   sess.Balance,
		Remaining: sess.Balance - summary.Total,
		Lines:     lines,
		Summary:   summary,
	}, nil
}
