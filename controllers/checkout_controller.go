package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fragrance-store/middleware"
	"fragrance-store/models"
	"fragrance-store/services"
)

type CheckoutController struct {
	checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkout: checkout}
}

// BeginCheckout godoc
// @Summary Place the order and open payment
// @Description Creates the order from a cart snapshot, requests a payment intent, and returns the hosted widget options
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Shipping address"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) BeginCheckout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	options, err := ctrl.checkout.Begin(
		c.Request.Context(),
		middleware.SessionID(c),
		middleware.AuthToken(c),
		middleware.CurrentUser(c),
		req.Address(),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order created, awaiting payment",
		Data:    options,
	})
}

// ConfirmPayment godoc
// @Summary Relay the payment widget's completion
// @Description Forwards the provider's signed identifiers for verification; the cart is cleared only on success
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.PaymentConfirmation true "Signed payment identifiers"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /checkout/confirm [post]
func (ctrl *CheckoutController) ConfirmPayment(c *gin.Context) {
	var conf models.PaymentConfirmation
	if err := c.ShouldBindJSON(&conf); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	orderID, err := ctrl.checkout.Complete(
		c.Request.Context(),
		middleware.SessionID(c),
		middleware.AuthToken(c),
		middleware.CurrentUser(c),
		conf,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Payment successful",
		Data:    gin.H{"order_id": orderID},
	})
}

// PendingCheckout godoc
// @Summary Get the checkout awaiting payment, if any
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 410 {object} models.ErrorResponse
// @Router /checkout/pending [get]
func (ctrl *CheckoutController) PendingCheckout(c *gin.Context) {
	pending, err := ctrl.checkout.Pending(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: pending})
}

// AbandonCheckout godoc
// @Summary Abandon the checkout awaiting payment
// @Description Discards the pending payment without touching the cart; the unpaid order is reconciled server-side
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /checkout/pending [delete]
func (ctrl *CheckoutController) AbandonCheckout(c *gin.Context) {
	if err := ctrl.checkout.Abandon(c.Request.Context(), middleware.SessionID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Checkout abandoned",
	})
}
