package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fragrance-store/models"
	"fragrance-store/repositories"
	"fragrance-store/services"
)

// respondError maps an operation failure to one user-visible notification.
// Backend rejections keep their message verbatim; transport failures collapse
// to a generic message. Nothing is retried automatically anywhere.
func respondError(c *gin.Context, err error) {
	var upstream *repositories.UpstreamError
	if errors.As(err, &upstream) {
		c.JSON(upstream.StatusCode, models.ErrorResponse{
			Success: false,
			Message: upstream.Message,
		})
		return
	}

	status := http.StatusBadGateway
	message := "Unable to reach the store backend"

	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		status, message = http.StatusUnauthorized, err.Error()
	case errors.Is(err, services.ErrVerificationFailed):
		status, message = http.StatusBadRequest, "Payment verification failed"
	case errors.Is(err, services.ErrCheckoutInFlight):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, services.ErrCheckoutNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, services.ErrCheckoutExpired):
		status, message = http.StatusGone, err.Error()
	case errors.Is(err, services.ErrCartEmpty),
		errors.Is(err, services.ErrPaymentMismatch),
		errors.Is(err, repositories.ErrUnknownEntity):
		status, message = http.StatusBadRequest, err.Error()
	}

	c.JSON(status, models.ErrorResponse{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}
