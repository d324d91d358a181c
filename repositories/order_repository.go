package repositories

import (
	"context"
	"net/http"
	"net/url"

	"fragrance-store/models"
)

type OrderRepository struct {
	client *Client
}

func NewOrderRepository(client *Client) *OrderRepository {
	return &OrderRepository{client: client}
}

func (r *OrderRepository) CreateOrder(ctx context.Context, token string, req models.OrderCreateRequest) (*models.Order, error) {
	var order models.Order
	if err := r.client.do(ctx, http.MethodPost, "/orders", token, nil, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) CreatePaymentIntent(ctx context.Context, token, orderID string) (*models.PaymentIntent, error) {
	query := url.Values{}
	query.Set("order_id", orderID)

	var intent models.PaymentIntent
	if err := r.client.do(ctx, http.MethodPost, "/orders/create-payment", token, query, map[string]string{}, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

func (r *OrderRepository) VerifyPayment(ctx context.Context, token string, req models.PaymentVerification) error {
	return r.client.do(ctx, http.MethodPost, "/orders/verify-payment", token, nil, req, nil)
}

func (r *OrderRepository) GetMyOrders(ctx context.Context, token string) ([]models.Order, error) {
	orders := []models.Order{}
	if err := r.client.do(ctx, http.MethodGet, "/orders", token, nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) GetOrderByID(ctx context.Context, token, id string) (*models.Order, error) {
	var order models.Order
	if err := r.client.do(ctx, http.MethodGet, "/orders/"+id, token, nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
