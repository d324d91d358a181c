package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"fragrance-store/config"
	"fragrance-store/controllers"
	_ "fragrance-store/docs"
	"fragrance-store/middleware"
	"fragrance-store/repositories"
	"fragrance-store/routes"
	"fragrance-store/services"
	"fragrance-store/store"
)

// @title Fragrance Store Gateway API
// @version 1.0
// @description Storefront and admin-console gateway over the store backend.
// @BasePath /
func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	sessionStore := buildStore()
	defer config.CloseRedis()
	defer config.CloseDB()

	sessionTTL, err := time.ParseDuration(config.AppConfig.SessionExpiry)
	if err != nil {
		sessionTTL = 720 * time.Hour
	}

	client := repositories.NewClient(config.AppConfig.BackendURL)
	authRepo := repositories.NewAuthRepository(client)
	catalogRepo := repositories.NewCatalogRepository(client)
	orderRepo := repositories.NewOrderRepository(client)
	wishlistRepo := repositories.NewWishlistRepository(client)
	adminRepo := repositories.NewAdminRepository(client)

	sessionSvc := services.NewSessionService(authRepo, sessionStore, sessionTTL)
	cartSvc := services.NewCartService(sessionStore, sessionTTL)
	wishlistSvc := services.NewWishlistService(wishlistRepo, sessionStore, sessionTTL)

	mailer := services.NewMailService(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.SMTPUser,
		config.AppConfig.SMTPPass,
		config.AppConfig.SMTPFrom,
		config.AppConfig.StoreName,
	)

	// A nil *MailService must stay nil as the interface too.
	var checkoutMailer services.Mailer
	if mailer != nil {
		checkoutMailer = mailer
	}

	checkoutSvc := services.NewCheckoutService(
		orderRepo,
		cartSvc,
		sessionStore,
		checkoutMailer,
		config.AppConfig.RazorpayKeyID,
		config.AppConfig.StoreName,
		config.AppConfig.CheckoutExpiry,
	)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	routes.SetupRoutes(router, routes.Controllers{
		Auth:     controllers.NewAuthController(sessionSvc),
		Catalog:  controllers.NewCatalogController(catalogRepo),
		Cart:     controllers.NewCartController(cartSvc, catalogRepo),
		Wishlist: controllers.NewWishlistController(wishlistSvc, sessionSvc),
		Checkout: controllers.NewCheckoutController(checkoutSvc),
		Orders:   controllers.NewOrderController(orderRepo),
		Admin:    controllers.NewAdminController(adminRepo),
		Sessions: sessionSvc,
	})

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func buildStore() store.Store {
	switch config.AppConfig.StoreBackend {
	case "postgres":
		if config.AppConfig.DatabaseURL == "" {
			log.Println("STORE_BACKEND=postgres but DATABASE_URL is empty, using in-memory store")
			return store.NewMemoryStore()
		}
		config.ConnectDB()
		pgStore, err := store.NewPostgresStore(context.Background(), config.DB)
		if err != nil {
			log.Fatalf("Failed to initialize Postgres session store: %v", err)
		}
		return pgStore
	case "memory":
		return store.NewMemoryStore()
	default:
		config.InitRedis()
		if config.RedisClient == nil {
			return store.NewMemoryStore()
		}
		return store.NewRedisStore(config.RedisClient)
	}
}
