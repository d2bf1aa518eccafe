package app

import (
	"context"
	"net/http"
	"sync"

	"github.com/dwikikusuma/qkart-client/internal/backend"
	"github.com/dwikikusuma/qkart-client/internal/cart/domain"
	catalog "github.com/dwikikusuma/qkart-client/internal/catalog/domain"
	"github.com/dwikikusuma/qkart-client/internal/notify"
	"go.uber.org/zap"
)

const (
	msgSignInRequired = "Login to add an item to the Cart"
	msgAlreadyInCart  = "Item already in cart. Use the cart sidebar to update quantity or remove item."
	msgFetchFailed    = "Could not fetch cart details. Check that the backend is running, reachable and returns valid JSON."
	msgUpdateFailed   = "Could not update cart. Check that the backend is running, reachable and returns valid JSON."
)

// UpdateOptions control UpdateQuantity policy. PreventDuplicate is set by
// the "Add to Cart" action so it cannot create a second line for a product
// already present; the cart panel's own +/- controls leave it clear.
type UpdateOptions struct {
	PreventDuplicate bool
}

// Service mutates the cart through the backend and reconciles the result.
// Every failure path resolves to a (possibly unchanged) cart value plus at
// most one notice; nothing escapes as an error.
type Service struct {
	gw       Gateway
	notifier notify.Notifier
	log      *zap.Logger

	// Monotonic guard against racing upserts: a response is applied only
	// if no younger response has been applied already.
	mu      sync.Mutex
	seq     uint64
	applied uint64
}

func NewService(gw Gateway, notifier notify.Notifier, log *zap.Logger) *Service {
	return &Service{
		gw:       gw,
		notifier: notifier,
		log:      log,
	}
}

// Fetch loads the raw cart for the session. An empty token means guest mode
// and yields an absent (nil) cart without touching the backend; so does any
// backend failure, after surfacing a notice.
func (s *Service) Fetch(ctx context.Context, token string) *domain.RawCart {
	if token == "" {
		return nil
	}

	lines, err := s.gw.Fetch(ctx, token)
	if err != nil {
		s.log.Warn("cart fetch failed", zap.Error(err))
		status := backend.StatusOf(err)
		if status == http.StatusBadRequest || status == http.StatusUnauthorized {
			s.notifier.Notify(backend.MessageOr(err, msgFetchFailed), notify.SeverityError)
		} else {
			s.notifier.Notify(msgFetchFailed, notify.SeverityError)
		}
		return nil
	}

	return &domain.RawCart{Lines: lines}
}

// UpdateQuantity sets productID's quantity to qty (0 removes the line) and
// returns the reconciled cart the backend confirmed. Policy, in order: a
// guest cannot mutate; a duplicate add is rejected locally; otherwise the
// upsert goes out and the response is reconciled against catalog. On
// rejection or failure the input lines come back unchanged.
//
// applied reports whether the response was accepted as the newest state.
// It is false on every unchanged-input path, including a response discarded
// because a younger one already landed; callers holding view state must not
// overwrite it with an unapplied result.
func (s *Service) UpdateQuantity(
	ctx context.Context,
	token string,
	current []domain.DisplayLine,
	products []catalog.Product,
	productID string,
	qty int,
	opts UpdateOptions,
) (lines []domain.DisplayLine, applied bool) {
	if token == "" {
		s.notifier.Notify(msgSignInRequired, notify.SeverityWarning)
		return current, false
	}

	if opts.PreventDuplicate && domain.Contains(current, productID) {
		s.notifier.Notify(msgAlreadyInCart, notify.SeverityWarning)
		return current, false
	}

	version := s.nextVersion()

	raw, err := s.gw.Upsert(ctx, token, productID, qty)
	if err != nil {
		s.log.Warn("cart upsert failed",
			zap.String("product_id", productID),
			zap.Int("qty", qty),
			zap.Error(err))
		s.notifier.Notify(backend.MessageOr(err, msgUpdateFailed), notify.SeverityError)
		return current, false
	}

	if !s.apply(version) {
		s.log.Debug("stale cart response discarded",
			zap.Uint64("version", version),
			zap.String("product_id", productID))
		return current, false
	}

	return domain.Reconcile(&domain.RawCart{Lines: raw}, products), true
}

func (s *Service) nextVersion() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// apply records version as the latest applied response. It reports false
// when a younger response already landed, in which case the caller must
// discard this one.
func (s *Service) apply(version uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if version < s.applied {
		return false
	}
	s.applied = version
	return true
}
