package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fragrance-store/controllers"
	"fragrance-store/middleware"
	"fragrance-store/services"
)

type Controllers struct {
	Auth     *controllers.AuthController
	Catalog  *controllers.CatalogController
	Cart     *controllers.CartController
	Wishlist *controllers.WishlistController
	Checkout *controllers.CheckoutController
	Orders   *controllers.OrderController
	Admin    *controllers.AdminController
	Sessions *services.SessionService
}

func SetupRoutes(router *gin.Engine, ctrl Controllers) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.Use(middleware.SessionMiddleware())

	router.POST("/auth/login", ctrl.Auth.Login)
	router.POST("/auth/signup", ctrl.Auth.Signup)
	router.POST("/auth/logout", ctrl.Auth.Logout)
	router.GET("/auth/me", ctrl.Auth.Me)

	router.GET("/products", ctrl.Catalog.GetProducts)
	router.GET("/products/:slug", ctrl.Catalog.GetProductBySlug)
	router.GET("/reviews", ctrl.Catalog.GetReviews)
	router.GET("/categories", ctrl.Catalog.GetCategories)
	router.GET("/banners", ctrl.Catalog.GetBanners)
	router.GET("/navigation", ctrl.Catalog.GetNavigation)

	router.GET("/cart", ctrl.Cart.GetCart)
	router.POST("/cart/add", ctrl.Cart.AddToCart)
	router.POST("/cart/update", ctrl.Cart.UpdateQuantity)
	router.DELETE("/cart/:id", ctrl.Cart.RemoveFromCart)

	router.GET("/wishlist", ctrl.Wishlist.GetWishlist)
	router.GET("/wishlist/contains/:id", ctrl.Wishlist.CheckWishlist)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(ctrl.Sessions))
	{
		auth.POST("/auth/address", ctrl.Auth.AddAddress)

		auth.POST("/reviews", ctrl.Catalog.CreateReview)

		auth.POST("/wishlist/add", ctrl.Wishlist.AddToWishlist)
		auth.POST("/wishlist/remove", ctrl.Wishlist.RemoveFromWishlist)

		auth.POST("/checkout", ctrl.Checkout.BeginCheckout)
		auth.POST("/checkout/confirm", ctrl.Checkout.ConfirmPayment)
		auth.GET("/checkout/pending", ctrl.Checkout.PendingCheckout)
		auth.DELETE("/checkout/pending", ctrl.Checkout.AbandonCheckout)

		auth.GET("/orders", ctrl.Orders.GetMyOrders)
		auth.GET("/orders/:id", ctrl.Orders.GetOrderByID)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(ctrl.Sessions), middleware.AdminMiddleware())
	{
		admin.GET("/dashboard", ctrl.Admin.Dashboard)
		admin.POST("/upload", ctrl.Admin.UploadImage)

		admin.GET("/:entity", ctrl.Admin.ListEntities)
		admin.POST("/:entity", ctrl.Admin.CreateEntity)
		admin.GET("/:entity/:id", ctrl.Admin.GetEntity)
		admin.PUT("/:entity/:id", ctrl.Admin.UpdateEntity)
		admin.DELETE("/:entity/:id", ctrl.Admin.DeleteEntity)
	}
}
