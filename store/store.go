// Package store is the durable session-scoped key/value layer behind the cart,
// auth session, wishlist cache, and pending checkout. Every cart mutation is
// written through synchronously so a reload reconstructs the identical state.
package store

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("store: key not found")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
