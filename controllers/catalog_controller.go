package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fragrance-store/middleware"
	"fragrance-store/models"
	"fragrance-store/repositories"
)

type CatalogController struct {
	catalog *repositories.CatalogRepository
}

func NewCatalogController(catalog *repositories.CatalogRepository) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// GetProducts godoc
// @Summary List products
// @Description List products with optional search, category, price and featured filters
// @Tags Catalog
// @Produce json
// @Param search query string false "Search term"
// @Param category_id query string false "Category id"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param is_featured query bool false "Featured only"
// @Param limit query int false "Max results"
// @Success 200 {object} models.Response
// @Router /products [get]
func (ctrl *CatalogController) GetProducts(c *gin.Context) {
	minPrice, _ := strconv.ParseFloat(c.Query("min_price"), 64)
	maxPrice, _ := strconv.ParseFloat(c.Query("max_price"), 64)
	limit, _ := strconv.Atoi(c.Query("limit"))

	filter := models.ProductFilter{
		Search:     c.Query("search"),
		CategoryID: c.Query("category_id"),
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
		IsFeatured: c.Query("is_featured") == "true",
		Limit:      limit,
	}

	products, err := ctrl.catalog.GetProducts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: products})
}

// GetProductBySlug godoc
// @Summary Get product
// @Tags Catalog
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{slug} [get]
func (ctrl *CatalogController) GetProductBySlug(c *gin.Context) {
	product, err := ctrl.catalog.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: product})
}

// GetCategories godoc
// @Summary List categories
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *CatalogController) GetCategories(c *gin.Context) {
	categories, err := ctrl.catalog.GetCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: categories})
}

// GetBanners godoc
// @Summary List home page banners
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /banners [get]
func (ctrl *CatalogController) GetBanners(c *gin.Context) {
	banners, err := ctrl.catalog.GetBanners(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: banners})
}

// GetNavigation godoc
// @Summary List navigation entries
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /navigation [get]
func (ctrl *CatalogController) GetNavigation(c *gin.Context) {
	items, err := ctrl.catalog.GetNavigation(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: items})
}

// GetReviews godoc
// @Summary List reviews for a product
// @Tags Catalog
// @Produce json
// @Param product_id query string true "Product id"
// @Success 200 {object} models.Response
// @Router /reviews [get]
func (ctrl *CatalogController) GetReviews(c *gin.Context) {
	reviews, err := ctrl.catalog.GetReviews(c.Request.Context(), c.Query("product_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: reviews})
}

// CreateReview godoc
// @Summary Submit a review
// @Tags Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ReviewRequest true "Review"
// @Success 201 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /reviews [post]
func (ctrl *CatalogController) CreateReview(c *gin.Context) {
	var req models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	review, err := ctrl.catalog.CreateReview(c.Request.Context(), middleware.AuthToken(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Review submitted",
		Data:    review,
	})
}
