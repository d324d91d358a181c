package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fragrance-store/models"
	"fragrance-store/store"
)

type WishlistAPI interface {
	Fetch(ctx context.Context, token string) ([]models.Product, error)
	Add(ctx context.Context, token, productID string) error
	Remove(ctx context.Context, token, productID string) error
}

// WishlistService mirrors the backend's per-user wishlist. The server is the
// source of truth: every mutation is followed by a full refetch rather than an
// optimistic local update, trading responsiveness for consistency.
type WishlistService struct {
	api   WishlistAPI
	store store.Store
	ttl   time.Duration
}

func NewWishlistService(api WishlistAPI, st store.Store, ttl time.Duration) *WishlistService {
	return &WishlistService{api: api, store: st, ttl: ttl}
}

// Fetch replaces the cached wishlist from the backend. Fails open to an empty
// wishlist on any error so stale entries from a previous user never linger.
func (s *WishlistService) Fetch(ctx context.Context, sid, token string) ([]models.Product, error) {
	if token == "" {
		_ = s.store.Delete(ctx, wishlistKey(sid))
		return []models.Product{}, nil
	}

	products, err := s.api.Fetch(ctx, token)
	if err != nil {
		_ = s.store.Delete(ctx, wishlistKey(sid))
		return []models.Product{}, nil
	}

	if data, err := json.Marshal(products); err == nil {
		_ = s.store.Set(ctx, wishlistKey(sid), data, s.ttl)
	}
	return products, nil
}

func (s *WishlistService) Add(ctx context.Context, sid, token, productID string) ([]models.Product, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	if err := s.api.Add(ctx, token, productID); err != nil {
		return nil, err
	}
	return s.Fetch(ctx, sid, token)
}

func (s *WishlistService) Remove(ctx context.Context, sid, token, productID string) ([]models.Product, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	if err := s.api.Remove(ctx, token, productID); err != nil {
		return nil, err
	}
	return s.Fetch(ctx, sid, token)
}

// IsInWishlist is a pure membership test against the cached set.
func (s *WishlistService) IsInWishlist(ctx context.Context, sid, productID string) (bool, error) {
	data, err := s.store.Get(ctx, wishlistKey(sid))
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return false, err
	}
	for _, p := range products {
		if p.ID == productID {
			return true, nil
		}
	}
	return false, nil
}
