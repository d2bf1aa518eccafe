package app

import (
	"context"
	"errors"
	"sync"

	"github.com/dwikikusuma/qkart-client/internal/backend"
	"github.com/dwikikusuma/qkart-client/internal/catalog/domain"
	"github.com/dwikikusuma/qkart-client/internal/notify"
	"go.uber.org/zap"
)

const (
	msgSearchFailed  = "Something went wrong. Check the backend console for more details"
	msgRefreshFailed = "Could not fetch products. Check that the backend is running, reachable and returns valid JSON."
)

// Service is the catalog store: it holds the most recently fetched product
// set and replaces it wholesale on each listing or search. A failed refresh
// keeps the previous set; only an explicit "nothing matched" empties it.
type Service struct {
	gw       Gateway
	notifier notify.Notifier
	log      *zap.Logger

	mu       sync.RWMutex
	products []domain.Product
}

func NewService(gw Gateway, notifier notify.Notifier, log *zap.Logger) *Service {
	return &Service{
		gw:       gw,
		notifier: notifier,
		log:      log,
	}
}

// Products returns a copy of the current catalog.
func (s *Service) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Refresh fetches the unfiltered listing. On failure the prior catalog is
// kept and a notice is surfaced. Returns the catalog now in the store.
func (s *Service) Refresh(ctx context.Context) []domain.Product {
	products, err := s.gw.List(ctx)
	if err != nil {
		s.log.Warn("catalog refresh failed", zap.Error(err))
		s.notifier.Notify(backend.MessageOr(err, msgRefreshFailed), notify.SeverityError)
		return s.Products()
	}

	s.replace(products)
	return products
}

// Search replaces the catalog with the filtered listing for text. Empty text
// means the unfiltered listing. A "not found" answer is a valid empty result
// and empties the store; any other failure keeps the prior set and surfaces
// a notice.
func (s *Service) Search(ctx context.Context, text string) []domain.Product {
	if text == "" {
		return s.Refresh(ctx)
	}

	products, err := s.gw.Search(ctx, text)
	switch {
	case errors.Is(err, ErrNotFound):
		s.replace(nil)
		return nil
	case err != nil:
		s.log.Warn("catalog search failed", zap.String("text", text), zap.Error(err))
		s.notifier.Notify(msgSearchFailed, notify.SeverityError)
		return s.Products()
	}

	s.replace(products)
	return products
}

func (s *Service) replace(products []domain.Product) {
	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
}
