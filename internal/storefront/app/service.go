package app

import (
	"context"
	"sync"
	"time"

	cartapp "github.com/dwikikusuma/qkart-client/internal/cart/app"
	cartdomain "github.com/dwikikusuma/qkart-client/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/qkart-client/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/qkart-client/internal/catalog/domain"
	"github.com/dwikikusuma/qkart-client/internal/session"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service is the storefront screen's brain: it owns the reconciled cart
// view, wires the search box to the catalog through the throttler, and
// routes cart actions. All state behind it is mutated under one mutex so
// the TUI's goroutines and timer-fired searches stay serialized.
type Service struct {
	catalog   *catalogapp.Service
	cart      *cartapp.Service
	sessions  session.Store
	throttler *catalogapp.Throttler
	log       *zap.Logger

	rootCtx context.Context

	mu    sync.Mutex
	raw   *cartdomain.RawCart
	lines []cartdomain.DisplayLine

	updates chan struct{}
}

func NewService(
	rootCtx context.Context,
	catalog *catalogapp.Service,
	cart *cartapp.Service,
	sessions session.Store,
	debounceWindow time.Duration,
	log *zap.Logger,
) *Service {
	s := &Service{
		catalog:  catalog,
		cart:     cart,
		sessions: sessions,
		log:      log,
		rootCtx:  rootCtx,
		updates:  make(chan struct{}, 1),
	}
	s.throttler = catalogapp.NewThrottler(debounceWindow, s.searchFired)
	return s
}

// Bootstrap loads the catalog and, for a signed-in session, the cart, in
// parallel, then reconciles. Failures surface as notices inside the
// services; Bootstrap itself never fails.
func (s *Service) Bootstrap(ctx context.Context) {
	sess, err := s.sessions.Load()
	if err != nil {
		s.log.Warn("session load failed", zap.Error(err))
	}

	var raw *cartdomain.RawCart
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.catalog.Refresh(gctx)
		return nil
	})
	if sess.SignedIn() {
		g.Go(func() error {
			raw = s.cart.Fetch(gctx, sess.Token)
			return nil
		})
	}
	_ = g.Wait()

	s.mu.Lock()
	s.raw = raw
	s.lines = cartdomain.Reconcile(raw, s.catalog.Products())
	s.mu.Unlock()
	s.signal()
}

// OnSearchInput feeds one keystroke's worth of search text into the
// throttler; the search fires after the quiescence window.
func (s *Service) OnSearchInput(text string) {
	s.throttler.Input(text)
}

// SearchNow bypasses the debounce, for explicit submits.
func (s *Service) SearchNow(text string) {
	s.throttler.Now(text)
}

// Close cancels any pending debounced search.
func (s *Service) Close() {
	s.throttler.Stop()
}

// searchFired only swaps the catalog; the cart view is left alone, matching
// the storefront's behavior of reconciling only at mount and after
// mutations.
func (s *Service) searchFired(text string) {
	s.catalog.Search(s.rootCtx, text)
	s.signal()
}

// AddToCart is the product card's action: always quantity 1, and never a
// second line for a product already in the cart.
func (s *Service) AddToCart(ctx context.Context, productID string) {
	s.updateQuantity(ctx, productID, 1, cartapp.UpdateOptions{PreventDuplicate: true})
}

// IncrementQuantity raises the product's quantity by one from the cart
// panel.
func (s *Service) IncrementQuantity(ctx context.Context, productID string) {
	qty := cartdomain.QtyOf(s.Lines(), productID)
	s.updateQuantity(ctx, productID, qty+1, cartapp.UpdateOptions{})
}

// DecrementQuantity lowers the product's quantity by one; reaching zero
// removes the line. A product not in the cart is left alone.
func (s *Service) DecrementQuantity(ctx context.Context, productID string) {
	lines := s.Lines()
	if !cartdomain.Contains(lines, productID) {
		return
	}
	s.updateQuantity(ctx, productID, cartdomain.QtyOf(lines, productID)-1, cartapp.UpdateOptions{})
}

// SetQuantity writes an explicit quantity for a product. Zero removes the
// line.
func (s *Service) SetQuantity(ctx context.Context, productID string, qty int) {
	s.updateQuantity(ctx, productID, qty, cartapp.UpdateOptions{})
}

func (s *Service) updateQuantity(ctx context.Context, productID string, qty int, opts cartapp.UpdateOptions) {
	sess, err := s.sessions.Load()
	if err != nil {
		s.log.Warn("session load failed", zap.Error(err))
	}

	lines, applied := s.cart.UpdateQuantity(ctx, sess.Token, s.Lines(), s.catalog.Products(), productID, qty, opts)
	if !applied {
		// Rejected, failed, or outraced by a younger edit. The view keeps
		// whatever the newest applied response wrote.
		return
	}

	s.mu.Lock()
	s.lines = lines
	if sess.SignedIn() {
		raw := make([]cartdomain.Line, 0, len(lines))
		for _, l := range lines {
			raw = append(raw, cartdomain.Line{ProductID: l.ProductID, Qty: l.Qty})
		}
		s.raw = &cartdomain.RawCart{Lines: raw}
	}
	s.mu.Unlock()
	s.signal()
}

// Lines returns the current reconciled cart.
func (s *Service) Lines() []cartdomain.DisplayLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]cartdomain.DisplayLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// HasCart distinguishes a fetched (possibly empty) cart from no cart at
// all; the UI prompts for sign-in only in the latter case.
func (s *Service) HasCart() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raw != nil
}

// Catalog returns the current product set.
func (s *Service) Catalog() []catalogdomain.Product {
	return s.catalog.Products()
}

func (s *Service) TotalValue() float64 {
	return cartdomain.TotalValue(s.Lines())
}

func (s *Service) TotalItems() int {
	return cartdomain.TotalItems(s.Lines())
}

// Updates signals that catalog or cart state changed; the TUI repaints on
// each tick. Sends are dropped when one is already pending.
func (s *Service) Updates() <-chan struct{} {
	return s.updates
}

func (s *Service) signal() {
	select {
	case s.updates <- struct{}{}:
	default:
	}
}
