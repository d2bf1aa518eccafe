package app

import (
	"context"
	"testing"
	"time"

	"github.com/dwikikusuma/qkart-client/internal/cart/domain"
	"github.com/dwikikusuma/qkart-client/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// gatedCall is one in-flight upsert whose response is held until the test
// releases it, so response arrival order can be forced.
type gatedCall struct {
	productID string
	qty       int
	release   chan struct{}
}

type gatedGateway struct {
	started chan *gatedCall
}

func (g *gatedGateway) Fetch(ctx context.Context, token string) ([]domain.Line, error) {
	return nil, nil
}

func (g *gatedGateway) Upsert(ctx context.Context, token, productID string, qty int) ([]domain.Line, error) {
	call := &gatedCall{productID: productID, qty: qty, release: make(chan struct{})}
	g.started <- call
	<-call.release
	return []domain.Line{{ProductID: productID, Qty: qty}}, nil
}

// Two quantity edits race; the response for the older request arrives after
// the younger one was applied and must be discarded, so the cart reflects
// the newest issued request rather than whichever response landed last.
func TestUpdateQuantityStaleResponseDiscarded(t *testing.T) {
	gw := &gatedGateway{started: make(chan *gatedCall, 2)}
	svc := NewService(gw, notify.NewRecorder(), zap.NewNop())

	current := linesWith("P1", 1)

	type result struct {
		lines   []domain.DisplayLine
		applied bool
	}

	first := make(chan result, 1)
	go func() {
		lines, applied := svc.UpdateQuantity(context.Background(), "tok", current, testCatalog, "P1", 2, UpdateOptions{})
		first <- result{lines, applied}
	}()
	callA := waitForCall(t, gw.started)

	second := make(chan result, 1)
	go func() {
		lines, applied := svc.UpdateQuantity(context.Background(), "tok", current, testCatalog, "P1", 3, UpdateOptions{})
		second <- result{lines, applied}
	}()
	callB := waitForCall(t, gw.started)

	// Younger response lands first and wins.
	close(callB.release)
	gotB := <-second
	assert.True(t, gotB.applied)
	require.Len(t, gotB.lines, 1)
	assert.Equal(t, 3, gotB.lines[0].Qty)

	// Older response lands second and must be thrown away.
	close(callA.release)
	gotA := <-first
	assert.False(t, gotA.applied, "stale response is reported as not applied")
	assert.Equal(t, current, gotA.lines, "stale response returns the caller's lines unchanged")
}

func waitForCall(t *testing.T, ch chan *gatedCall) *gatedCall {
	t.Helper()
	select {
	case call := <-ch:
		return call
	case <-time.After(2 * time.Second):
		t.Fatal("upsert was never issued")
		return nil
	}
}
