package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fragrance-store/middleware"
	"fragrance-store/models"
	"fragrance-store/repositories"
)

type OrderController struct {
	orders *repositories.OrderRepository
}

func NewOrderController(orders *repositories.OrderRepository) *OrderController {
	return &OrderController{orders: orders}
}

// GetMyOrders godoc
// @Summary List the current user's orders
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /orders [get]
func (ctrl *OrderController) GetMyOrders(c *gin.Context) {
	orders, err := ctrl.orders.GetMyOrders(c.Request.Context(), middleware.AuthToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: orders})
}

// GetOrderByID godoc
// @Summary Get one order
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order id"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	order, err := ctrl.orders.GetOrderByID(c.Request.Context(), middleware.AuthToken(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: order})
}
