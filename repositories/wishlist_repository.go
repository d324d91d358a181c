package repositories

import (
	"context"
	"net/http"

	"fragrance-store/models"
)

type WishlistRepository struct {
	client *Client
}

func NewWishlistRepository(client *Client) *WishlistRepository {
	return &WishlistRepository{client: client}
}

func (r *WishlistRepository) Fetch(ctx context.Context, token string) ([]models.Product, error) {
	products := []models.Product{}
	if err := r.client.do(ctx, http.MethodGet, "/wishlist", token, nil, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *WishlistRepository) Add(ctx context.Context, token, productID string) error {
	body := map[string]string{"product_id": productID}
	return r.client.do(ctx, http.MethodPost, "/wishlist/add", token, nil, body, nil)
}

func (r *WishlistRepository) Remove(ctx context.Context, token, productID string) error {
	body := map[string]string{"product_id": productID}
	return r.client.do(ctx, http.MethodPost, "/wishlist/remove", token, nil, body, nil)
}
