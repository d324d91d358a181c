package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"fragrance-store/models"
	"fragrance-store/store"
	"fragrance-store/utils"
)

type OrderAPI interface {
	CreateOrder(ctx context.Context, token string, req models.OrderCreateRequest) (*models.Order, error)
	CreatePaymentIntent(ctx context.Context, token, orderID string) (*models.PaymentIntent, error)
	VerifyPayment(ctx context.Context, token string, req models.PaymentVerification) error
}

type Mailer interface {
	SendOrderConfirmation(to, name, orderID string) error
}

// PendingCheckout is the orchestrator's state between opening the hosted
// payment widget and receiving its completion callback. It survives in the
// session store because the two halves arrive on separate requests.
type PendingCheckout struct {
	ID              string    `json:"id"`
	OrderID         string    `json:"order_id"`
	RazorpayOrderID string    `json:"razorpay_order_id"`
	Amount          int64     `json:"amount"`
	Currency        string    `json:"currency"`
	StartedAt       time.Time `json:"started_at"`
}

// CheckoutService sequences order creation, payment-intent creation, and
// payment verification. The sequence is strictly linear; a failure at any
// stage is terminal for that attempt and the cart is cleared if and only if
// verification succeeds.
type CheckoutService struct {
	orders      OrderAPI
	cart        *CartService
	store       store.Store
	mailer      Mailer
	razorpayKey string
	storeName   string

	// expiry bounds how long a pending payment stays claimable. Zero means
	// forever: a dismissed widget leaves the checkout awaiting payment until
	// the user retries, which is the original storefront's behavior.
	expiry time.Duration
}

func NewCheckoutService(orders OrderAPI, cart *CartService, st store.Store, mailer Mailer, razorpayKey, storeName string, expiry time.Duration) *CheckoutService {
	return &CheckoutService{
		orders:      orders,
		cart:        cart,
		store:       st,
		mailer:      mailer,
		razorpayKey: razorpayKey,
		storeName:   storeName,
		expiry:      expiry,
	}
}

func checkoutKey(sid string) string { return "checkout:" + sid }

// Begin runs the first three transitions: snapshot the cart, create the order,
// create the payment intent, and park the checkout awaiting payment. The cart
// is never touched on any failure path.
func (s *CheckoutService) Begin(ctx context.Context, sid, token string, user *models.User, address models.Address) (*models.PaymentOptions, error) {
	if token == "" || user == nil {
		return nil, ErrUnauthenticated
	}

	// An expired pending checkout no longer blocks a fresh attempt.
	pendingNow, err := s.Pending(ctx, sid)
	if err != nil && !errors.Is(err, ErrCheckoutExpired) {
		return nil, err
	}
	if pendingNow != nil {
		return nil, ErrCheckoutInFlight
	}

	lines, err := s.cart.Snapshot(ctx, sid)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	items := make([]models.OrderItem, len(lines))
	for i, line := range lines {
		items[i] = models.OrderItem{
			ProductID:    line.ProductID,
			ProductName:  line.Name,
			ProductImage: line.Image,
			Quantity:     line.Quantity,
			Price:        line.Price,
			Discount:     line.Discount,
			FinalPrice:   line.FinalPrice,
		}
	}

	order, err := s.orders.CreateOrder(ctx, token, models.OrderCreateRequest{
		Items:           items,
		ShippingAddress: address,
	})
	if err != nil {
		return nil, err
	}

	intent, err := s.orders.CreatePaymentIntent(ctx, token, order.ID)
	if err != nil {
		// The order now exists server-side in an unpaid state. That is a
		// backend reconciliation concern (abandoned-order sweep), not
		// something this client retries.
		return nil, err
	}

	// The backend prices the intent (it may add shipping or taxes), so a
	// difference is not an error, but a large one is worth a trace.
	if expected := utils.ToPaise(CartTotal(lines)); intent.Amount != expected {
		log.Printf("Payment intent amount %d differs from cart total %d for order %s", intent.Amount, expected, order.ID)
	}

	pending := PendingCheckout{
		ID:              uuid.NewString(),
		OrderID:         order.ID,
		RazorpayOrderID: intent.RazorpayOrderID,
		Amount:          intent.Amount,
		Currency:        intent.Currency,
		StartedAt:       time.Now(),
	}
	data, err := json.Marshal(pending)
	if err != nil {
		return nil, err
	}
	// Expiry is enforced by Pending against StartedAt; the store TTL only
	// garbage-collects the record some time after it can no longer be claimed.
	ttl := time.Duration(0)
	if s.expiry > 0 {
		ttl = s.expiry + time.Hour
	}
	if err := s.store.Set(ctx, checkoutKey(sid), data, ttl); err != nil {
		return nil, err
	}

	options := &models.PaymentOptions{
		Key:             s.razorpayKey,
		Amount:          intent.Amount,
		Currency:        intent.Currency,
		RazorpayOrderID: intent.RazorpayOrderID,
		OrderID:         order.ID,
		Name:            s.storeName,
		Description:     "Purchase of luxury fragrances",
		Prefill: models.PaymentPrefill{
			Name:    user.Name,
			Email:   user.Email,
			Contact: address.Phone,
		},
	}
	return options, nil
}

// Complete relays the widget's signed confirmation to the backend and, only on
// verification success, clears the cart. Either outcome ends the pending
// checkout; the verify call is issued at most once per attempt.
func (s *CheckoutService) Complete(ctx context.Context, sid, token string, user *models.User, conf models.PaymentConfirmation) (string, error) {
	if token == "" {
		return "", ErrUnauthenticated
	}

	pending, err := s.Pending(ctx, sid)
	if err != nil {
		return "", err
	}
	if pending == nil {
		return "", ErrCheckoutNotFound
	}
	if conf.RazorpayOrderID != pending.RazorpayOrderID {
		return "", ErrPaymentMismatch
	}

	err = s.orders.VerifyPayment(ctx, token, models.PaymentVerification{
		OrderID:           pending.OrderID,
		RazorpayOrderID:   conf.RazorpayOrderID,
		RazorpayPaymentID: conf.RazorpayPaymentID,
		RazorpaySignature: conf.RazorpaySignature,
	})
	if err != nil {
		// Funds may have been captured even though verification failed; the
		// backend reconciles that. Surfaced distinctly, never as a generic
		// network error.
		_ = s.store.Delete(ctx, checkoutKey(sid))
		return "", fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}

	if err := s.cart.Clear(ctx, sid); err != nil {
		log.Printf("Failed to clear cart after verified payment: %v", err)
	}
	_ = s.store.Delete(ctx, checkoutKey(sid))

	if s.mailer != nil && user != nil {
		if err := s.mailer.SendOrderConfirmation(user.Email, user.Name, pending.OrderID); err != nil {
			log.Printf("Failed to send order confirmation email: %v", err)
		}
	}

	return pending.OrderID, nil
}

// Pending returns the checkout awaiting payment, or nil. An expired record is
// removed and reported as expired so the user can start over cleanly.
func (s *CheckoutService) Pending(ctx context.Context, sid string) (*PendingCheckout, error) {
	data, err := s.store.Get(ctx, checkoutKey(sid))
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var pending PendingCheckout
	if err := json.Unmarshal(data, &pending); err != nil {
		return nil, err
	}

	if s.expiry > 0 && time.Since(pending.StartedAt) > s.expiry {
		_ = s.store.Delete(ctx, checkoutKey(sid))
		return nil, ErrCheckoutExpired
	}
	return &pending, nil
}

// Abandon discards the pending checkout without touching the cart, for a user
// who dismissed the widget and wants to start over. The unpaid order remains
// server-side for the backend to sweep.
func (s *CheckoutService) Abandon(ctx context.Context, sid string) error {
	return s.store.Delete(ctx, checkoutKey(sid))
}
