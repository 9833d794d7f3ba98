package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"repair-app/internal/config"
	"repair-app/internal/handler"
	"repair-app/internal/repository"
	"repair-app/internal/services"
	"repair-app/internal/utils"
)

func main() {
	shutdownManager := utils.NewShutdownManager(context.Background())
	shutdownManager.StartListening()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Инициализация Redis (единственное хранилище)
	store, err := utils.NewRedisStore(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	shutdownManager.Register(func(ctx context.Context) error {
		log.Println("Закрываем соединение с Redis")
		return store.Close()
	})

	// Репозитории и сервисы
	userRepo := repository.NewUserRepository(store)
	ticketRepo := repository.NewTicketRepository(store)
	serviceRepo := repository.NewServiceRepository(store)

	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret)

	var notifier services.Notifier = services.NoopNotifier{}
	if cfg.MailEnabled() {
		notifier = services.NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	}

	authService := services.NewAuthService(userRepo, jwtUtil, store)
	ticketService := services.NewTicketService(ticketRepo, userRepo, serviceRepo, notifier)
	userService := services.NewUserService(userRepo)
	catalogService := services.NewCatalogService(serviceRepo)
	reportService := services.NewReportService()

	authHandler := handler.NewAuthHandler(authService)
	ticketHandler := handler.NewTicketHandler(ticketService)
	userHandler := handler.NewUserHandler(userService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	reportHandler := handler.NewReportHandler(reportService)

	// Роутер и эндпоинты
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authMiddleware := utils.AuthMiddleware(jwtUtil, store)

	api := router.Group("/api")
	{
		api.POST("/signup", authHandler.Signup)
		api.POST("/login", authHandler.Login)
		api.GET("/session", authHandler.Session)
		api.GET("/services", catalogHandler.List)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "OK", "timestamp": time.Now().UTC()})
		})

		protected := api.Group("/")
		protected.Use(authMiddleware)
		{
			protected.POST("/logout", authHandler.Logout)
			protected.GET("/profile", authHandler.GetProfile)
			protected.PUT("/profile", authHandler.UpdateProfile)

			protected.POST("/tickets", ticketHandler.Create)
			protected.GET("/tickets", ticketHandler.List)
			protected.GET("/tickets/:id", ticketHandler.Get)
			protected.PUT("/tickets/:id", ticketHandler.Update)
			protected.POST("/tickets/:id/comments", ticketHandler.AddComment)

			protected.POST("/reports", reportHandler.Generate)

			admin := protected.Group("/")
			admin.Use(utils.RequireRoles("admin"))
			{
				admin.POST("/tickets/:id/assign", ticketHandler.Assign)
				admin.GET("/users", userHandler.GetAllUsers)
				admin.PUT("/users/:id/block", userHandler.SetBlocked)
				admin.GET("/masters", userHandler.GetMasters)
				admin.POST("/services", catalogHandler.Create)
				admin.PUT("/services/:id", catalogHandler.Update)
				admin.DELETE("/services/:id", catalogHandler.Delete)
			}
		}
	}

	server := &http.Server{
		Addr:    cfg.Port,
		Handler: router,
		BaseContext: func(net.Listener) context.Context {
			return shutdownManager.Context()
		},
	}

	go func() {
		log.Println("Repair service running on", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	shutdownManager.Register(func(ctx context.Context) error {
		log.Println("Останавливаем HTTP-сервер")
		return server.Shutdown(ctx)
	})

	select {}
}
