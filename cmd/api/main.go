package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KhaanFaizan/Safai-PAK/internal/config"
	"github.com/KhaanFaizan/Safai-PAK/internal/database"
	"github.com/KhaanFaizan/Safai-PAK/internal/domain"
	"github.com/KhaanFaizan/Safai-PAK/internal/middleware"
	"github.com/KhaanFaizan/Safai-PAK/internal/modules/admin"
	"github.com/KhaanFaizan/Safai-PAK/internal/modules/auth"
	"github.com/KhaanFaizan/Safai-PAK/internal/modules/booking"
	"github.com/KhaanFaizan/Safai-PAK/internal/modules/catalog"
	"github.com/KhaanFaizan/Safai-PAK/internal/modules/contact"
	"github.com/KhaanFaizan/Safai-PAK/internal/modules/dashboard"
	"github.com/KhaanFaizan/Safai-PAK/internal/modules/notification"
	"github.com/KhaanFaizan/Safai-PAK/internal/modules/review"
	"github.com/KhaanFaizan/Safai-PAK/internal/modules/user"
	jwtsvc "github.com/KhaanFaizan/Safai-PAK/internal/pkg/jwt"
	"github.com/KhaanFaizan/Safai-PAK/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	jwt := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	// repositories
	userRepo := repository.NewUserRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// services
	hub := notification.NewHub()
	defer hub.Close()

	notifService := notification.NewService(notifRepo, userRepo, hub)
	authService := auth.NewService(userRepo, jwt, notifService)
	catalogService := catalog.NewService(serviceRepo, userRepo)
	bookingService := booking.NewService(bookingRepo, serviceRepo, userRepo, notifService)
	reviewService := review.NewService(reviewRepo, bookingRepo, userRepo, serviceRepo, notifService)
	dashboardService := dashboard.NewService(bookingRepo, userRepo)
	adminService := admin.NewService(userRepo, notifService)
	userService := user.NewService(userRepo, serviceRepo)
	contactService := contact.NewService(contactRepo)

	// handlers
	authHandler := auth.NewHandler(authService)
	catalogHandler := catalog.NewHandler(catalogService)
	bookingHandler := booking.NewHandler(bookingService)
	reviewHandler := review.NewHandler(reviewService)
	dashboardHandler := dashboard.NewHandler(dashboardService)
	adminHandler := admin.NewHandler(adminService)
	userHandler := user.NewHandler(userService)
	contactHandler := contact.NewHandler(contactService)
	notifHandler := notification.NewHandler(notifService)
	streamHandler := notification.NewStreamHandler(hub, jwt, notifService)

	gate := middleware.NewUserGate(userRepo)

	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())

	started := time.Now()
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "uptime": time.Since(started).String()})
	})

	api := router.Group("/api")

	// public surface
	authHandler.RegisterPublicRoutes(api)
	catalogHandler.RegisterPublicRoutes(api)
	reviewHandler.RegisterRoutes(api, nil)
	userHandler.RegisterPublicRoutes(api)
	contactHandler.RegisterRoutes(api, nil)
	api.GET("/notifications/stream", streamHandler.HandleStream)

	// authenticated surface
	protected := api.Group("")
	protected.Use(middleware.JWTAuth(jwt), gate.BlockSuspended())

	authHandler.RegisterProtectedRoutes(protected)
	bookingHandler.RegisterRoutes(protected)
	notifHandler.RegisterRoutes(protected)
	reviewHandler.RegisterRoutes(nil, protected)

	// verified-provider surface
	providerGroup := protected.Group("")
	providerGroup.Use(middleware.RequireRole(string(domain.RoleProvider)), gate.VerifiedProviderOnly())
	catalogHandler.RegisterProviderRoutes(providerGroup)
	dashboardHandler.RegisterRoutes(providerGroup)

	// admin surface
	adminGroup := protected.Group("")
	adminGroup.Use(middleware.AdminOnly())
	adminHandler.RegisterRoutes(adminGroup)
	contactHandler.RegisterRoutes(nil, adminGroup)

	log.Printf("Server running on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
