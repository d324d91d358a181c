package repositories

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fragrance-store/models"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   []byte
}

func newBackend(t *testing.T, status int, response string) (*Client, *[]recordedRequest) {
	t.Helper()

	var requests []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requests = append(requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Auth:   r.Header.Get("Authorization"),
			Body:   body,
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)

	return NewClient(server.URL), &requests
}

func TestOrderRepositoryCreateOrder(t *testing.T) {
	client, requests := newBackend(t, http.StatusOK, `{"id":"order-1","total":2200}`)
	repo := NewOrderRepository(client)

	order, err := repo.CreateOrder(context.Background(), "tok", models.OrderCreateRequest{
		Items: []models.OrderItem{
			{ProductID: "A", ProductName: "Fragrance A", Quantity: 2, Price: 500, FinalPrice: 500},
		},
		ShippingAddress: models.Address{Street: "12 Rose Lane", City: "Mumbai", State: "MH", PostalCode: "400001", Phone: "9876543210"},
	})
	require.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)

	require.Len(t, *requests, 1)
	req := (*requests)[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/orders", req.Path)
	assert.Equal(t, "Bearer tok", req.Auth)

	var payload models.OrderCreateRequest
	require.NoError(t, json.Unmarshal(req.Body, &payload))
	require.Len(t, payload.Items, 1)
	assert.Equal(t, 500.0, payload.Items[0].FinalPrice)
	assert.Equal(t, "400001", payload.ShippingAddress.PostalCode)
}

func TestOrderRepositoryCreatePaymentIntent(t *testing.T) {
	client, requests := newBackend(t, http.StatusOK, `{"amount":220000,"currency":"INR","razorpay_order_id":"rzp_1"}`)
	repo := NewOrderRepository(client)

	intent, err := repo.CreatePaymentIntent(context.Background(), "tok", "order-1")
	require.NoError(t, err)
	assert.Equal(t, int64(220000), intent.Amount)
	assert.Equal(t, "INR", intent.Currency)
	assert.Equal(t, "rzp_1", intent.RazorpayOrderID)

	req := (*requests)[0]
	assert.Equal(t, "/api/orders/create-payment", req.Path)
	assert.Equal(t, "order_id=order-1", req.Query)
}

func TestOrderRepositoryVerifyPayment(t *testing.T) {
	client, requests := newBackend(t, http.StatusOK, `{"status":"verified"}`)
	repo := NewOrderRepository(client)

	err := repo.VerifyPayment(context.Background(), "tok", models.PaymentVerification{
		OrderID:           "order-1",
		RazorpayOrderID:   "rzp_1",
		RazorpayPaymentID: "pay_1",
		RazorpaySignature: "sig_1",
	})
	require.NoError(t, err)

	req := (*requests)[0]
	assert.Equal(t, "/api/orders/verify-payment", req.Path)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(req.Body, &payload))
	assert.Equal(t, "order-1", payload["order_id"])
	assert.Equal(t, "rzp_1", payload["razorpay_order_id"])
	assert.Equal(t, "pay_1", payload["razorpay_payment_id"])
	assert.Equal(t, "sig_1", payload["razorpay_signature"])
}

func TestUpstreamErrorCarriesDetailVerbatim(t *testing.T) {
	client, _ := newBackend(t, http.StatusBadRequest, `{"detail":"Insufficient stock for Midnight Oud"}`)
	repo := NewOrderRepository(client)

	_, err := repo.CreateOrder(context.Background(), "tok", models.OrderCreateRequest{})
	require.Error(t, err)

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusBadRequest, upstream.StatusCode)
	assert.Equal(t, "Insufficient stock for Midnight Oud", upstream.Message)
}

func TestUpstreamErrorWithoutDetailFallsBack(t *testing.T) {
	client, _ := newBackend(t, http.StatusInternalServerError, `oops`)
	repo := NewWishlistRepository(client)

	err := repo.Add(context.Background(), "tok", "p1")
	require.Error(t, err)

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusInternalServerError, upstream.StatusCode)
	assert.Contains(t, upstream.Message, "500")
}

func TestWishlistRepositoryPayloads(t *testing.T) {
	client, requests := newBackend(t, http.StatusOK, `[]`)
	repo := NewWishlistRepository(client)

	_, err := repo.Fetch(context.Background(), "tok")
	require.NoError(t, err)
	err = repo.Add(context.Background(), "tok", "p1")
	require.NoError(t, err)
	err = repo.Remove(context.Background(), "tok", "p1")
	require.NoError(t, err)

	require.Len(t, *requests, 3)
	assert.Equal(t, "/api/wishlist", (*requests)[0].Path)
	assert.Equal(t, "/api/wishlist/add", (*requests)[1].Path)
	assert.Equal(t, "/api/wishlist/remove", (*requests)[2].Path)

	var payload map[string]string
	require.NoError(t, json.Unmarshal((*requests)[1].Body, &payload))
	assert.Equal(t, "p1", payload["product_id"])
}

func TestCatalogRepositoryProductFilters(t *testing.T) {
	client, requests := newBackend(t, http.StatusOK, `[]`)
	repo := NewCatalogRepository(client)

	_, err := repo.GetProducts(context.Background(), models.ProductFilter{
		Search:     "oud",
		CategoryID: "cat-1",
		MinPrice:   100,
		MaxPrice:   5000,
		IsFeatured: true,
		Limit:      12,
	})
	require.NoError(t, err)

	req := (*requests)[0]
	assert.Equal(t, "/api/products", req.Path)
	assert.Contains(t, req.Query, "search=oud")
	assert.Contains(t, req.Query, "category_id=cat-1")
	assert.Contains(t, req.Query, "min_price=100")
	assert.Contains(t, req.Query, "max_price=5000")
	assert.Contains(t, req.Query, "is_featured=true")
	assert.Contains(t, req.Query, "limit=12")
	assert.Empty(t, req.Auth, "catalog reads are anonymous")
}

func TestAdminRepositoryRejectsUnknownEntity(t *testing.T) {
	client, requests := newBackend(t, http.StatusOK, `[]`)
	repo := NewAdminRepository(client)

	_, err := repo.List(context.Background(), "tok", "widgets", nil)
	assert.ErrorIs(t, err, ErrUnknownEntity)
	assert.Empty(t, *requests)
}

func TestAdminRepositoryMapsEntityPaths(t *testing.T) {
	client, requests := newBackend(t, http.StatusOK, `[]`)
	repo := NewAdminRepository(client)

	_, err := repo.List(context.Background(), "tok", "banners", nil)
	require.NoError(t, err)
	err = repo.Delete(context.Background(), "tok", "navigation", "nav-1")
	require.NoError(t, err)

	require.Len(t, *requests, 2)
	assert.Equal(t, "/api/admin/banners", (*requests)[0].Path)
	assert.Equal(t, "/api/admin/navigation/nav-1", (*requests)[1].Path)
	assert.Equal(t, http.MethodDelete, (*requests)[1].Method)
}
