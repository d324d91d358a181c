package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fragrance-store/middleware"
	"fragrance-store/models"
	"fragrance-store/services"
)

type WishlistController struct {
	wishlist *services.WishlistService
	sessions *services.SessionService
}

func NewWishlistController(wishlist *services.WishlistService, sessions *services.SessionService) *WishlistController {
	return &WishlistController{wishlist: wishlist, sessions: sessions}
}

// GetWishlist godoc
// @Summary Get the current user's wishlist
// @Description Anonymous sessions get an empty list; errors fail open to empty
// @Tags Wishlist
// @Produce json
// @Success 200 {object} models.Response
// @Router /wishlist [get]
func (ctrl *WishlistController) GetWishlist(c *gin.Context) {
	sid := middleware.SessionID(c)

	token, _, err := ctrl.sessions.Current(c.Request.Context(), sid)
	if err != nil {
		respondError(c, err)
		return
	}

	products, err := ctrl.wishlist.Fetch(c.Request.Context(), sid, token)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: products})
}

// CheckWishlist godoc
// @Summary Check whether a product is wishlisted
// @Description Answered from the session's cached wishlist; anonymous sessions get false
// @Tags Wishlist
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} models.Response
// @Router /wishlist/contains/{id} [get]
func (ctrl *WishlistController) CheckWishlist(c *gin.Context) {
	wishlisted, err := ctrl.wishlist.IsInWishlist(c.Request.Context(), middleware.SessionID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    gin.H{"wishlisted": wishlisted},
	})
}

// AddToWishlist godoc
// @Summary Add a product to the wishlist
// @Tags Wishlist
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.WishlistRequest true "Product"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /wishlist/add [post]
func (ctrl *WishlistController) AddToWishlist(c *gin.Context) {
	var req models.WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	products, err := ctrl.wishlist.Add(c.Request.Context(), middleware.SessionID(c), middleware.AuthToken(c), req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Added to wishlist",
		Data:    products,
	})
}

// RemoveFromWishlist godoc
// @Summary Remove a product from the wishlist
// @Tags Wishlist
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.WishlistRequest true "Product"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /wishlist/remove [post]
func (ctrl *WishlistController) RemoveFromWishlist(c *gin.Context) {
	var req models.WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	products, err := ctrl.wishlist.Remove(c.Request.Context(), middleware.SessionID(c), middleware.AuthToken(c), req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Removed from wishlist",
		Data:    products,
	})
}
