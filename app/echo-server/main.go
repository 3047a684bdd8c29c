package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Rhoda-NM/OneStopShop-Project/app/echo-server/router"
	"github.com/Rhoda-NM/OneStopShop-Project/business/billing"
	"github.com/Rhoda-NM/OneStopShop-Project/business/category"
	"github.com/Rhoda-NM/OneStopShop-Project/business/contact"
	"github.com/Rhoda-NM/OneStopShop-Project/business/discount"
	"github.com/Rhoda-NM/OneStopShop-Project/business/interaction"
	"github.com/Rhoda-NM/OneStopShop-Project/business/orders"
	"github.com/Rhoda-NM/OneStopShop-Project/business/payments"
	"github.com/Rhoda-NM/OneStopShop-Project/business/product"
	"github.com/Rhoda-NM/OneStopShop-Project/business/rating"
	"github.com/Rhoda-NM/OneStopShop-Project/business/recommend"
	"github.com/Rhoda-NM/OneStopShop-Project/business/search"
	userService "github.com/Rhoda-NM/OneStopShop-Project/business/user"
	"github.com/Rhoda-NM/OneStopShop-Project/business/wishlist"
	"github.com/Rhoda-NM/OneStopShop-Project/internal/middleware"
	"github.com/Rhoda-NM/OneStopShop-Project/internal/repository/mpesa"
	"github.com/Rhoda-NM/OneStopShop-Project/internal/repository/notification"
	psqlRepo "github.com/Rhoda-NM/OneStopShop-Project/internal/repository/postgres"
	redisRepo "github.com/Rhoda-NM/OneStopShop-Project/internal/repository/redis"
	"github.com/Rhoda-NM/OneStopShop-Project/internal/rest"
	"github.com/Rhoda-NM/OneStopShop-Project/pkg/config"
	"github.com/Rhoda-NM/OneStopShop-Project/pkg/database"
	redisdb "github.com/Rhoda-NM/OneStopShop-Project/pkg/database/redis"
	"github.com/Rhoda-NM/OneStopShop-Project/pkg/logger"
	"github.com/Rhoda-NM/OneStopShop-Project/pkg/metrics"
	"github.com/Rhoda-NM/OneStopShop-Project/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting OneStopShop", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to redis", "error", err)
	}
	defer redisdb.CloseRedisClient(redisClient)

	// Init notification from mailjet
	mailjetEmail := notification.NewMailjetRepository(
		notification.MailjetConfig{
			MailjetBaseURL:           cfg.Mailjet.MailjetBaseUrl,
			MailjetBasicAuthUsername: cfg.Mailjet.MailjetBasicAuthUsername,
			MailjetBasicAuthPassword: cfg.Mailjet.MailjetBasicAuthPassword,
			MailjetSenderEmail:       cfg.Mailjet.MailjetSenderEmail,
			MailjetSenderName:        cfg.Mailjet.MailjetSenderName,
		},
	)

	mpesaRepo := mpesa.NewMpesaRepository(
		mpesa.MpesaConfig{
			ConsumerKey:       cfg.Mpesa.ConsumerKey,
			ConsumerSecret:    cfg.Mpesa.ConsumerSecret,
			BusinessShortCode: cfg.Mpesa.BusinessShortCode,
			Passkey:           cfg.Mpesa.Passkey,
			BaseUrl:           cfg.Mpesa.BaseUrl,
			CallbackUrl:       cfg.Mpesa.CallbackUrl,
		},
	)

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	productRepo := psqlRepo.NewProductRepository(db)
	categoryRepo := psqlRepo.NewCategoryRepository(db)
	ordersRepo := psqlRepo.NewOrdersRepository(db)
	billingRepo := psqlRepo.NewBillingRepository(db)
	wishlistRepo := psqlRepo.NewWishlistRepository(db)
	ratingRepo := psqlRepo.NewRatingRepository(db)
	discountRepo := psqlRepo.NewDiscountRepository(db)
	interactionRepo := psqlRepo.NewInteractionRepository(db)
	tokenRepo := redisRepo.NewTokenRepository(redisClient)

	// Init service
	userSvc := userService.NewUserService(userRepo, validate, mailjetEmail, tokenRepo, cfg.App.AppEmailVerificationKey, cfg.App.AppDeploymentUrl)
	productSvc := product.NewProductService(productRepo, ratingRepo, discountRepo)
	categorySvc := category.NewCategoryService(categoryRepo)
	ordersSvc := orders.NewOrdersService(ordersRepo, productRepo)
	billingSvc := billing.NewBillingService(billingRepo, validate)
	wishlistSvc := wishlist.NewWishlistService(wishlistRepo, productRepo)
	ratingSvc := rating.NewRatingService(ratingRepo, productRepo)
	discountSvc := discount.NewDiscountService(discountRepo, productRepo)
	interactionSvc := interaction.NewInteractionService(interactionRepo, productRepo)
	recommendSvc := recommend.NewRecommendService(interactionRepo, productRepo)
	searchSvc := search.NewSearchService(productRepo, interactionRepo)
	paymentsSvc := payments.NewPaymentsService(mpesaRepo, ordersRepo)
	contactSvc := contact.NewContactService(mailjetEmail, validate, cfg.App.Name, cfg.App.ContactInboxEmail)

	// Init handler
	userHandler := rest.NewUserHandler(userSvc)
	productHandler := rest.NewProductHandler(productSvc, interactionSvc)
	categoryHandler := rest.NewCategoryHandler(categorySvc)
	ordersHandler := rest.NewOrdersHandler(ordersSvc)
	billingHandler := rest.NewBillingHandler(billingSvc)
	wishlistHandler := rest.NewWishlistHandler(wishlistSvc)
	ratingHandler := rest.NewRatingHandler(ratingSvc)
	discountHandler := rest.NewDiscountHandler(discountSvc)
	interactionHandler := rest.NewInteractionHandler(interactionSvc)
	recommendationHandler := rest.NewRecommendationHandler(recommendSvc)
	searchHandler := rest.NewSearchHandler(searchSvc)
	paymentsHandler := rest.NewPaymentsHandler(paymentsSvc)
	contactHandler := rest.NewContactHandler(contactSvc)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Auth middleware
	authRequired := middleware.AuthMiddlewareWithRedis(userSvc)
	optionalAuth := middleware.OptionalAuth()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired)
	router.SetupProductRoutes(api, productHandler, authRequired)
	router.SetupCategoryRoutes(api, categoryHandler, authRequired)
	router.SetupOrdersRoutes(api, ordersHandler, authRequired)
	router.SetupBillingRoutes(api, billingHandler, authRequired)
	router.SetupWishlistRoutes(api, wishlistHandler, authRequired)
	router.SetupRatingRoutes(api, ratingHandler, authRequired)
	router.SetupDiscountRoutes(api, discountHandler, authRequired)
	router.SetupSearchRoutes(api, searchHandler, optionalAuth)
	router.SetupRecommendationRoutes(api, recommendationHandler, authRequired)
	router.SetupInteractionRoutes(api, interactionHandler, authRequired)
	router.SetupPaymentsRoutes(api, paymentsHandler, authRequired)
	router.SetupContactRoutes(api, contactHandler)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
