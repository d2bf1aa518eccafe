package app

import (
	"context"
	"sync"
	"testing"
	"time"

	cartapp "github.com/dwikikusuma/qkart-client/internal/cart/app"
	cartdomain "github.com/dwikikusuma/qkart-client/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/qkart-client/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/qkart-client/internal/catalog/domain"
	"github.com/dwikikusuma/qkart-client/internal/notify"
	"github.com/dwikikusuma/qkart-client/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCatalogGateway struct {
	mu          sync.Mutex
	products    []catalogdomain.Product
	searchCalls int
	lastText    string
}

func (f *fakeCatalogGateway) List(ctx context.Context) ([]catalogdomain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.products, nil
}

func (f *fakeCatalogGateway) Search(ctx context.Context, text string) ([]catalogdomain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls++
	f.lastText = text
	return f.products[:1], nil
}

func (f *fakeCatalogGateway) stats() (int, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.searchCalls, f.lastText
}

type fakeCartGateway struct {
	mu         sync.Mutex
	lines      []cartdomain.Line
	fetchCalls int
}

// Fetch runs inside Bootstrap's errgroup, so the fake locks like a real
// gateway would.
func (f *fakeCartGateway) Fetch(ctx context.Context, token string) ([]cartdomain.Line, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchCalls++
	return f.lines, nil
}

func (f *fakeCartGateway) fetches() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetchCalls
}

func (f *fakeCartGateway) Upsert(ctx context.Context, token, productID string, qty int) ([]cartdomain.Line, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]cartdomain.Line, 0, len(f.lines)+1)
	found := false
	for _, l := range f.lines {
		if l.ProductID == productID {
			found = true
			if qty > 0 {
				out = append(out, cartdomain.Line{ProductID: productID, Qty: qty})
			}
			continue
		}
		out = append(out, l)
	}
	if !found && qty > 0 {
		out = append(out, cartdomain.Line{ProductID: productID, Qty: qty})
	}
	f.lines = out
	return out, nil
}

type memoryStore struct {
	sess session.Session
}

func (m *memoryStore) Load() (session.Session, error) { return m.sess, nil }
func (m *memoryStore) Save(s session.Session) error   { m.sess = s; return nil }
func (m *memoryStore) Clear() error                   { m.sess = session.Session{}; return nil }

var testProducts = []catalogdomain.Product{
	{ID: "P1", Name: "iPhone XR", Category: "Phones", Cost: 100, Rating: 4},
	{ID: "P2", Name: "Basketball", Category: "Sports", Cost: 50, Rating: 5},
}

func newStorefront(t *testing.T, catalogGW catalogapp.Gateway, cartGW cartapp.Gateway, sess session.Session) (*Service, *notify.Recorder) {
	t.Helper()
	rec := notify.NewRecorder()
	log := zap.NewNop()
	catalog := catalogapp.NewService(catalogGW, rec, log)
	cart := cartapp.NewService(cartGW, rec, log)
	svc := NewService(context.Background(), catalog, cart, &memoryStore{sess: sess}, 20*time.Millisecond, log)
	t.Cleanup(svc.Close)
	return svc, rec
}

func TestBootstrapSignedInJoinsCartAndCatalog(t *testing.T) {
	catalogGW := &fakeCatalogGateway{products: testProducts}
	cartGW := &fakeCartGateway{lines: []cartdomain.Line{{ProductID: "P1", Qty: 3}}}
	svc, _ := newStorefront(t, catalogGW, cartGW, session.Session{Token: "tok", Username: "criodo"})

	svc.Bootstrap(context.Background())

	assert.True(t, svc.HasCart())
	lines := svc.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "iPhone XR", lines[0].Name)
	assert.Equal(t, 3, lines[0].Qty)
	assert.Equal(t, float64(300), svc.TotalValue())
	assert.Equal(t, 3, svc.TotalItems())
	assert.Len(t, svc.Catalog(), 2)
}

func TestBootstrapGuestHasNoCart(t *testing.T) {
	catalogGW := &fakeCatalogGateway{products: testProducts}
	cartGW := &fakeCartGateway{}
	svc, _ := newStorefront(t, catalogGW, cartGW, session.Session{})

	svc.Bootstrap(context.Background())

	assert.False(t, svc.HasCart(), "guest cart is absent, not empty")
	assert.Empty(t, svc.Lines())
	assert.Zero(t, cartGW.fetches())
	assert.Len(t, svc.Catalog(), 2, "catalog loads for guests too")
}

func TestAddToCartGuestIsRejectedWithNotice(t *testing.T) {
	catalogGW := &fakeCatalogGateway{products: testProducts}
	svc, rec := newStorefront(t, catalogGW, &fakeCartGateway{}, session.Session{})
	svc.Bootstrap(context.Background())

	svc.AddToCart(context.Background(), "P1")

	assert.Empty(t, svc.Lines())
	assert.False(t, svc.HasCart())

	notices := rec.Drain()
	require.Len(t, notices, 1)
	assert.Equal(t, notify.SeverityWarning, notices[0].Severity)
}

func TestAddThenAdjustQuantity(t *testing.T) {
	catalogGW := &fakeCatalogGateway{products: testProducts}
	svc, rec := newStorefront(t, catalogGW, &fakeCartGateway{}, session.Session{Token: "tok"})
	svc.Bootstrap(context.Background())

	svc.AddToCart(context.Background(), "P2")
	require.Len(t, svc.Lines(), 1)
	assert.True(t, svc.HasCart())

	// A second card-add for the same product is gated locally.
	svc.AddToCart(context.Background(), "P2")
	assert.Len(t, svc.Lines(), 1)
	notices := rec.Drain()
	require.Len(t, notices, 1)
	assert.Equal(t, notify.SeverityWarning, notices[0].Severity)

	svc.IncrementQuantity(context.Background(), "P2")
	assert.Equal(t, 2, cartdomain.QtyOf(svc.Lines(), "P2"))

	svc.DecrementQuantity(context.Background(), "P2")
	svc.DecrementQuantity(context.Background(), "P2")
	assert.Empty(t, svc.Lines(), "decrementing to zero removes the line")
	assert.True(t, svc.HasCart(), "an emptied cart is still a cart")
}

func TestDecrementMissingProductIsNoop(t *testing.T) {
	catalogGW := &fakeCatalogGateway{products: testProducts}
	cartGW := &fakeCartGateway{}
	svc, rec := newStorefront(t, catalogGW, cartGW, session.Session{Token: "tok"})
	svc.Bootstrap(context.Background())

	svc.DecrementQuantity(context.Background(), "P1")
	assert.Empty(t, svc.Lines())
	assert.Empty(t, rec.Drain())
}

func TestSearchInputIsDebounced(t *testing.T) {
	catalogGW := &fakeCatalogGateway{products: testProducts}
	svc, _ := newStorefront(t, catalogGW, &fakeCartGateway{}, session.Session{})
	svc.Bootstrap(context.Background())

	for _, text := range []string{"i", "ip", "iph", "ipho", "iphon", "iphone"} {
		svc.OnSearchInput(text)
	}

	require.Eventually(t, func() bool {
		calls, _ := catalogGW.stats()
		return calls == 1
	}, time.Second, 10*time.Millisecond)

	calls, lastText := catalogGW.stats()
	assert.Equal(t, 1, calls, "a keystroke burst produces one search")
	assert.Equal(t, "iphone", lastText)

	require.Eventually(t, func() bool {
		return len(svc.Catalog()) == 1
	}, time.Second, 10*time.Millisecond)
}
