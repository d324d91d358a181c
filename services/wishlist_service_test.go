package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fragrance-store/models"
	"fragrance-store/store"
)

type mockWishlistAPI struct {
	fetchCalls  int
	addCalls    int
	removeCalls int

	fetchErr error
	items    []models.Product
}

func (m *mockWishlistAPI) Fetch(_ context.Context, _ string) ([]models.Product, error) {
	m.fetchCalls++
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return m.items, nil
}

func (m *mockWishlistAPI) Add(_ context.Context, _, productID string) error {
	m.addCalls++
	m.items = append(m.items, models.Product{ID: productID})
	return nil
}

func (m *mockWishlistAPI) Remove(_ context.Context, _, productID string) error {
	m.removeCalls++
	kept := m.items[:0]
	for _, p := range m.items {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}
	m.items = kept
	return nil
}

func newWishlistFixture() (*mockWishlistAPI, *WishlistService) {
	api := &mockWishlistAPI{}
	svc := NewWishlistService(api, store.NewMemoryStore(), time.Hour)
	return api, svc
}

func TestWishlistAddUnauthenticatedIssuesNoCalls(t *testing.T) {
	ctx := context.Background()
	api, svc := newWishlistFixture()

	_, err := svc.Add(ctx, "sid-1", "", "p1")
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Equal(t, 0, api.addCalls)
	assert.Equal(t, 0, api.fetchCalls)

	_, err = svc.Remove(ctx, "sid-1", "", "p1")
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Equal(t, 0, api.removeCalls)
	assert.Equal(t, 0, api.fetchCalls)
}

func TestWishlistMutationRefetchesFromServer(t *testing.T) {
	ctx := context.Background()
	api, svc := newWishlistFixture()

	products, err := svc.Add(ctx, "sid-1", "token", "p1")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 1, api.addCalls)
	assert.Equal(t, 1, api.fetchCalls, "every mutation is followed by a full refetch")

	inWishlist, err := svc.IsInWishlist(ctx, "sid-1", "p1")
	require.NoError(t, err)
	assert.True(t, inWishlist)

	products, err = svc.Remove(ctx, "sid-1", "token", "p1")
	require.NoError(t, err)
	assert.Empty(t, products)

	inWishlist, err = svc.IsInWishlist(ctx, "sid-1", "p1")
	require.NoError(t, err)
	assert.False(t, inWishlist)
}

func TestWishlistFetchFailsOpenToEmpty(t *testing.T) {
	ctx := context.Background()
	api, svc := newWishlistFixture()

	// Seed a cached wishlist, then make the next fetch fail.
	_, err := svc.Add(ctx, "sid-1", "token", "p1")
	require.NoError(t, err)

	api.fetchErr = errors.New("connection refused")
	products, err := svc.Fetch(ctx, "sid-1", "token")
	require.NoError(t, err)
	assert.Empty(t, products)

	// The stale cache must be gone too.
	inWishlist, err := svc.IsInWishlist(ctx, "sid-1", "p1")
	require.NoError(t, err)
	assert.False(t, inWishlist)
}

func TestWishlistAnonymousFetchIsEmptyWithoutNetwork(t *testing.T) {
	ctx := context.Background()
	api, svc := newWishlistFixture()

	products, err := svc.Fetch(ctx, "sid-1", "")
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.Equal(t, 0, api.fetchCalls)
}
