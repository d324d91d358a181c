package models

// PaymentIntent is the server-issued authorization for a specific charge.
// Amount is in minor units (paise). Consumed once by the hosted widget.
type PaymentIntent struct {
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	RazorpayOrderID string `json:"razorpay_order_id"`
}

// PaymentOptions is everything the hosted Razorpay checkout needs to open.
type PaymentOptions struct {
	Key             string         `json:"key"`
	Amount          int64          `json:"amount"`
	Currency        string         `json:"currency"`
	RazorpayOrderID string         `json:"order_id"`
	OrderID         string         `json:"store_order_id"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	Prefill         PaymentPrefill `json:"prefill"`
}

type PaymentPrefill struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

// PaymentConfirmation carries the signed identifiers the widget hands back on
// completion. Relayed verbatim to the backend verification endpoint.
type PaymentConfirmation struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

type PaymentVerification struct {
	OrderID           string `json:"order_id"`
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}
