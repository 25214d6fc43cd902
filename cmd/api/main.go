package main

import (
	"log"

	"github.com/aurumworks/goldsmith-api/internal/application/service"
	"github.com/aurumworks/goldsmith-api/internal/config"
	"github.com/aurumworks/goldsmith-api/internal/domain/metal"
	"github.com/aurumworks/goldsmith-api/internal/infrastructure/database"
	"github.com/aurumworks/goldsmith-api/internal/infrastructure/repository"
	"github.com/aurumworks/goldsmith-api/internal/presentation/http/handler"
	"github.com/aurumworks/goldsmith-api/internal/presentation/http/routes"
	"github.com/aurumworks/goldsmith-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	receiptRepo := repository.NewReceiptRepository(db)
	voucherRepo := repository.NewVoucherRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	clientService := service.NewClientService(clientRepo)
	receiptService := service.NewReceiptService(
		receiptRepo,
		clientRepo,
		voucherRepo,
		metal.ReceivedConvention(cfg.Receipt.ReceivedConvention),
		cfg.Receipt.ReceiptPrefix,
	)
	voucherService := service.NewVoucherService(
		voucherRepo,
		cfg.Receipt.ReceiptPrefix,
		cfg.Receipt.ShopVoucherPrefix,
	)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Client:  handler.NewClientHandler(clientService),
		Receipt: handler.NewReceiptHandler(receiptService),
		Voucher: handler.NewVoucherHandler(voucherService, cfg.Receipt.ReceiptPrefix),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
