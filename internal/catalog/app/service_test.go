package app

import (
	"context"
	"testing"

	"github.com/dwikikusuma/qkart-client/internal/backend"
	"github.com/dwikikusuma/qkart-client/internal/catalog/domain"
	"github.com/dwikikusuma/qkart-client/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGateway struct {
	listResult   []domain.Product
	listErr      error
	searchResult []domain.Product
	searchErr    error

	listCalls   int
	searchCalls int
	lastText    string
}

func (f *fakeGateway) List(ctx context.Context) ([]domain.Product, error) {
	f.listCalls++
	return f.listResult, f.listErr
}

func (f *fakeGateway) Search(ctx context.Context, text string) ([]domain.Product, error) {
	f.searchCalls++
	f.lastText = text
	return f.searchResult, f.searchErr
}

var sampleCatalog = []domain.Product{
	{ID: "v4sLtEcMpzabRyfx", Name: "iPhone XR", Category: "Phones", Cost: 100, Rating: 4, Image: "https://i.imgur.com/lulqWzW.jpg"},
	{ID: "upLK9JbQ4rMhTwt4", Name: "Basketball", Category: "Sports", Cost: 50, Rating: 5, Image: "https://i.imgur.com/lulqWzW.jpg"},
}

func newService(gw Gateway, rec *notify.Recorder) *Service {
	return NewService(gw, rec, zap.NewNop())
}

func TestRefreshReplacesStore(t *testing.T) {
	gw := &fakeGateway{listResult: sampleCatalog}
	svc := newService(gw, notify.NewRecorder())

	got := svc.Refresh(context.Background())
	assert.Equal(t, sampleCatalog, got)
	assert.Equal(t, sampleCatalog, svc.Products())
}

func TestRefreshFailureKeepsPriorStoreAndNotifies(t *testing.T) {
	gw := &fakeGateway{listResult: sampleCatalog}
	rec := notify.NewRecorder()
	svc := newService(gw, rec)
	svc.Refresh(context.Background())

	gw.listErr = &backend.Error{Status: 500, Message: "Something went wrong. Check the backend console for more details"}
	got := svc.Refresh(context.Background())

	assert.Equal(t, sampleCatalog, got, "prior catalog survives a failed refresh")

	notices := rec.Drain()
	require.Len(t, notices, 1)
	assert.Equal(t, notify.SeverityError, notices[0].Severity)
	assert.Equal(t, "Something went wrong. Check the backend console for more details", notices[0].Message)
}

func TestSearchReplacesStore(t *testing.T) {
	gw := &fakeGateway{searchResult: sampleCatalog[:1]}
	svc := newService(gw, notify.NewRecorder())

	got := svc.Search(context.Background(), "phone")
	assert.Equal(t, sampleCatalog[:1], got)
	assert.Equal(t, "phone", gw.lastText)
	assert.Equal(t, sampleCatalog[:1], svc.Products())
}

func TestSearchEmptyTextFetchesUnfilteredListing(t *testing.T) {
	gw := &fakeGateway{listResult: sampleCatalog}
	svc := newService(gw, notify.NewRecorder())

	got := svc.Search(context.Background(), "")
	assert.Equal(t, sampleCatalog, got)
	assert.Equal(t, 1, gw.listCalls)
	assert.Zero(t, gw.searchCalls)
}

func TestSearchNotFoundEmptiesStore(t *testing.T) {
	gw := &fakeGateway{listResult: sampleCatalog}
	rec := notify.NewRecorder()
	svc := newService(gw, rec)
	svc.Refresh(context.Background())

	gw.searchErr = ErrNotFound
	got := svc.Search(context.Background(), "zzz")

	assert.Empty(t, got)
	assert.Empty(t, svc.Products(), "404 is a valid empty result")
	assert.Empty(t, rec.Drain(), "not-found is not an error to the user")
}

func TestSearchServerErrorKeepsStoreAndNotifies(t *testing.T) {
	gw := &fakeGateway{listResult: sampleCatalog}
	rec := notify.NewRecorder()
	svc := newService(gw, rec)
	svc.Refresh(context.Background())

	gw.searchErr = &backend.Error{Status: 500}
	got := svc.Search(context.Background(), "phone")

	assert.Equal(t, sampleCatalog, got, "500 leaves the store unchanged")

	notices := rec.Drain()
	require.Len(t, notices, 1)
	assert.Equal(t, notify.SeverityError, notices[0].Severity)
}

func TestProductsReturnsCopy(t *testing.T) {
	gw := &fakeGateway{listResult: sampleCatalog}
	svc := newService(gw, notify.NewRecorder())
	svc.Refresh(context.Background())

	got := svc.Products()
	got[0].Name = "mutated"
	assert.Equal(t, "iPhone XR", svc.Products()[0].Name)
}
