package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NeryGM09/libreria-luismi/controllers"
	"github.com/NeryGM09/libreria-luismi/database"
	"github.com/NeryGM09/libreria-luismi/middleware"
	"github.com/NeryGM09/libreria-luismi/models"
	"github.com/NeryGM09/libreria-luismi/notifier"
	"github.com/NeryGM09/libreria-luismi/repository"
	"github.com/NeryGM09/libreria-luismi/routes"
	servicepkg "github.com/NeryGM09/libreria-luismi/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	cfg, err := LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	db, err := database.Connect(cfg.DSN(), logger, &models.Product{}, &models.Order{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db) //nolint:errcheck

	if err := database.SeedProducts(db, logger); err != nil {
		logger.Warn("Catalog seeding failed", zap.Error(err))
	}

	// DI chain
	productRepo := repository.NewGormProductRepository(db)
	orderRepo := repository.NewGormOrderRepository(db)
	productService := servicepkg.NewProductService(productRepo, logger)
	orderService := servicepkg.NewOrderService(orderRepo, logger)
	whatsapp := notifier.NewWhatsAppNotifier(cfg.WhatsAppNumber)
	checkoutService := servicepkg.NewCheckoutService(orderService, whatsapp, logger)

	productController := controllers.NewProductController(productService)
	orderController := controllers.NewOrderController(orderService)
	checkoutController := controllers.NewCheckoutController(checkoutService)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.RateLimitMiddleware())

	// The storefront and the API may be served from different origins, so
	// every origin is allowed. Preflight answers 200 with no body.
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With", "X-CSRF-Token", "X-Api-Version", "Content-Length", "Content-MD5", "Date", "Accept-Version"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,

		OptionsResponseStatusCode: http.StatusOK,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "libreria-backend"})
	})

	routes.RegisterAPIRoutes(r, productController, orderController, checkoutController)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	logger.Info("Storefront API started", zap.String("port", cfg.Port))
	<-quit
	logger.Info("Shutting down storefront API...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited cleanly")
}
