package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fragrance-store/models"
	"fragrance-store/store"
)

func newTestCart(t *testing.T) *CartService {
	t.Helper()
	return NewCartService(store.NewMemoryStore(), time.Hour)
}

func product(id string, finalPrice float64, stock int) *models.Product {
	return &models.Product{
		ID:         id,
		Name:       "Fragrance " + id,
		Slug:       "fragrance-" + id,
		Price:      finalPrice,
		FinalPrice: finalPrice,
		Stock:      stock,
		Images:     []string{"https://cdn.example/" + id + ".jpg"},
	}
}

func TestCartAddAndTotals(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(t)
	sid := "sid-1"

	_, err := cart.Add(ctx, sid, product("A", 500, 10), 2)
	require.NoError(t, err)
	lines, err := cart.Add(ctx, sid, product("B", 1200, 10), 1)
	require.NoError(t, err)

	assert.Len(t, lines, 2)
	assert.Equal(t, 2200.0, CartTotal(lines))
	assert.Equal(t, 3, CartCount(lines))

	lines, err = cart.Remove(ctx, sid, "A")
	require.NoError(t, err)
	assert.Equal(t, 1200.0, CartTotal(lines))
	assert.Equal(t, 1, CartCount(lines))
}

func TestCartAddIncrementsExistingLine(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(t)
	sid := "sid-1"

	_, err := cart.Add(ctx, sid, product("A", 500, 10), 1)
	require.NoError(t, err)
	lines, err := cart.Add(ctx, sid, product("A", 500, 10), 2)
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
}

func TestCartUpdateToZeroEqualsRemove(t *testing.T) {
	ctx := context.Background()
	sid := "sid-1"

	updated := newTestCart(t)
	_, err := updated.Add(ctx, sid, product("A", 500, 10), 2)
	require.NoError(t, err)
	_, err = updated.Add(ctx, sid, product("B", 1200, 10), 1)
	require.NoError(t, err)
	afterUpdate, err := updated.UpdateQuantity(ctx, sid, "A", 0)
	require.NoError(t, err)

	removed := newTestCart(t)
	_, err = removed.Add(ctx, sid, product("A", 500, 10), 2)
	require.NoError(t, err)
	_, err = removed.Add(ctx, sid, product("B", 1200, 10), 1)
	require.NoError(t, err)
	afterRemove, err := removed.Remove(ctx, sid, "A")
	require.NoError(t, err)

	assert.Equal(t, afterRemove, afterUpdate)
}

func TestCartRemoveAbsentLineIsNoop(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(t)
	sid := "sid-1"

	_, err := cart.Add(ctx, sid, product("A", 500, 10), 1)
	require.NoError(t, err)

	lines, err := cart.Remove(ctx, sid, "missing")
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestCartCountNeverNegative(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(t)
	sid := "sid-1"

	_, err := cart.Add(ctx, sid, product("A", 500, 10), 2)
	require.NoError(t, err)
	_, err = cart.Remove(ctx, sid, "A")
	require.NoError(t, err)
	lines, err := cart.Remove(ctx, sid, "A")
	require.NoError(t, err)

	assert.Equal(t, 0, CartCount(lines))
	assert.Equal(t, 0.0, CartTotal(lines))
}

func TestCartTotalCommutative(t *testing.T) {
	ctx := context.Background()
	sid := "sid-1"

	forward := newTestCart(t)
	_, err := forward.Add(ctx, sid, product("A", 499.5, 10), 2)
	require.NoError(t, err)
	_, err = forward.Add(ctx, sid, product("B", 1200, 10), 1)
	require.NoError(t, err)
	_, err = forward.Add(ctx, sid, product("C", 75.25, 10), 3)
	require.NoError(t, err)
	forwardLines, err := forward.Get(ctx, sid)
	require.NoError(t, err)

	reversed := newTestCart(t)
	_, err = reversed.Add(ctx, sid, product("C", 75.25, 10), 3)
	require.NoError(t, err)
	_, err = reversed.Add(ctx, sid, product("B", 1200, 10), 1)
	require.NoError(t, err)
	_, err = reversed.Add(ctx, sid, product("A", 499.5, 10), 2)
	require.NoError(t, err)
	reversedLines, err := reversed.Get(ctx, sid)
	require.NoError(t, err)

	assert.Equal(t, CartTotal(forwardLines), CartTotal(reversedLines))
}

func TestCartClampsToStock(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(t)
	sid := "sid-1"

	lines, err := cart.Add(ctx, sid, product("A", 500, 3), 5)
	require.NoError(t, err)
	assert.Equal(t, 3, lines[0].Quantity)

	lines, err = cart.UpdateQuantity(ctx, sid, "A", 10)
	require.NoError(t, err)
	assert.Equal(t, 3, lines[0].Quantity)
}

func TestCartPersistsAcrossServiceInstances(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	sid := "sid-1"

	first := NewCartService(st, time.Hour)
	_, err := first.Add(ctx, sid, product("A", 500, 10), 2)
	require.NoError(t, err)

	// A new service over the same store is the page-reload case.
	second := NewCartService(st, time.Hour)
	lines, err := second.Get(ctx, sid)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 1000.0, CartTotal(lines))
}

func TestCartClear(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(t)
	sid := "sid-1"

	_, err := cart.Add(ctx, sid, product("A", 500, 10), 2)
	require.NoError(t, err)
	require.NoError(t, cart.Clear(ctx, sid))

	lines, err := cart.Get(ctx, sid)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCartSnapshotIsIndependentCopy(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(t)
	sid := "sid-1"

	_, err := cart.Add(ctx, sid, product("A", 500, 10), 2)
	require.NoError(t, err)

	snapshot, err := cart.Snapshot(ctx, sid)
	require.NoError(t, err)

	_, err = cart.UpdateQuantity(ctx, sid, "A", 7)
	require.NoError(t, err)

	assert.Equal(t, 2, snapshot[0].Quantity)
}
