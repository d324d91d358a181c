package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fragrance-store/middleware"
	"fragrance-store/models"
	"fragrance-store/repositories"
	"fragrance-store/services"
	"fragrance-store/utils"
)

type CartController struct {
	cart    *services.CartService
	catalog *repositories.CatalogRepository
}

func NewCartController(cart *services.CartService, catalog *repositories.CatalogRepository) *CartController {
	return &CartController{cart: cart, catalog: catalog}
}

func (ctrl *CartController) respondCart(c *gin.Context, lines []models.CartLine) {
	c.JSON(http.StatusOK, models.CartResponse{
		Success: true,
		Items:   lines,
		Total:   utils.Round2(services.CartTotal(lines)),
		Count:   services.CartCount(lines),
	})
}

// GetCart godoc
// @Summary Get the session cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.CartResponse
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	lines, err := ctrl.cart.Get(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	ctrl.respondCart(c, lines)
}

// AddToCart godoc
// @Summary Add a product to the cart
// @Description Fetches the product so the cart line carries a validated snapshot of name, prices and image
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddToCartRequest true "Product and quantity"
// @Success 200 {object} models.CartResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/add [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	product, err := ctrl.catalog.GetProductByID(c.Request.Context(), req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}

	lines, err := ctrl.cart.Add(c.Request.Context(), middleware.SessionID(c), product, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	ctrl.respondCart(c, lines)
}

// UpdateQuantity godoc
// @Summary Set a cart line's quantity
// @Description Quantity zero removes the line
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.UpdateQuantityRequest true "Product and quantity"
// @Success 200 {object} models.CartResponse
// @Router /cart/update [post]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	lines, err := ctrl.cart.UpdateQuantity(c.Request.Context(), middleware.SessionID(c), req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	ctrl.respondCart(c, lines)
}

// RemoveFromCart godoc
// @Summary Remove a cart line
// @Tags Cart
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} models.CartResponse
// @Router /cart/{id} [delete]
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	lines, err := ctrl.cart.Remove(c.Request.Context(), middleware.SessionID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	ctrl.respondCart(c, lines)
}
