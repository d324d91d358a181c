package services

import "errors"

var (
	// ErrUnauthenticated means a protected operation was attempted with no
	// session token. Handled locally; no network call is issued.
	ErrUnauthenticated = errors.New("login required")

	ErrCartEmpty = errors.New("cart is empty")

	// ErrCheckoutInFlight guards against double-submission creating duplicate
	// orders: at most one checkout may await payment per session.
	ErrCheckoutInFlight = errors.New("a checkout is already awaiting payment")

	ErrCheckoutNotFound = errors.New("no checkout awaiting payment")

	ErrCheckoutExpired = errors.New("checkout expired, please place the order again")

	// ErrVerificationFailed is distinct from a transport failure: the provider
	// reported success but the backend could not verify the signed confirmation,
	// so funds may have moved. Never masked as a generic error.
	ErrVerificationFailed = errors.New("payment verification failed")

	ErrPaymentMismatch = errors.New("payment confirmation does not match the pending checkout")
)
