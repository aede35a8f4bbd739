package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"prizm_backend/database"
	"prizm_backend/internal/config"
	"prizm_backend/internal/handlers"
	"prizm_backend/internal/logger"
	"prizm_backend/internal/middleware"
	"prizm_backend/internal/models"
	"prizm_backend/internal/repositories"
	"prizm_backend/internal/routes"
	"prizm_backend/internal/services"
	"prizm_backend/internal/storage"
	"prizm_backend/internal/validator"
	"prizm_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	worker := workers.NewCampaignWorker(gormDB)
	worker.Start(context.Background())

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		UseSSL:     cfg.Storage.UseSSL,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer, storageInstance)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var emailSender services.EmailSender
	if cfg.Email.Enabled {
		emailSender = services.NewSMTPEmailSender(cfg)
	} else {
		logger.Warn("Email delivery disabled, using noop sender")
		emailSender = services.NoopEmailSender{}
	}

	userRepo := repositories.NewUserRepository(gormDB)
	companyRepo := repositories.NewCompanyRepository(gormDB)
	influencerRepo := repositories.NewInfluencerRepository(gormDB)
	campaignRepo := repositories.NewCampaignRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)
	messageRepo := repositories.NewMessageRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)
	paymentRepo := repositories.NewPaymentRepository(gormDB)
	bankAccountRepo := repositories.NewBankAccountRepository(gormDB)
	favoriteRepo := repositories.NewFavoriteRepository(gormDB)
	debugReportRepo := repositories.NewDebugReportRepository(gormDB)

	notificationSvc := services.NewNotificationService(notificationRepo, userRepo, emailSender)
	authService := services.NewAuthService(userRepo, companyRepo, influencerRepo)
	profileService := services.NewProfileService(companyRepo, influencerRepo)
	campaignService := services.NewCampaignService(campaignRepo, companyRepo)
	applicationService := services.NewApplicationService(applicationRepo, campaignRepo, influencerRepo, companyRepo, notificationSvc)
	statusService := services.NewStatusService(applicationRepo, messageRepo, paymentRepo, bankAccountRepo, notificationSvc)
	messageService := services.NewMessageService(messageRepo, applicationRepo, influencerRepo)
	favoriteService := services.NewFavoriteService(favoriteRepo, campaignRepo, influencerRepo)
	bankAccountService := services.NewBankAccountService(bankAccountRepo)
	paymentService := services.NewPaymentService(paymentRepo, companyRepo)
	debugReportService := services.NewDebugReportService(debugReportRepo)

	return &services.ServiceContainer{
		AuthService:        authService,
		ProfileService:     profileService,
		CampaignService:    campaignService,
		ApplicationService: applicationService,
		StatusService:      statusService,
		MessageService:     messageService,
		FavoriteService:    favoriteService,
		NotificationSvc:    notificationSvc,
		BankAccountService: bankAccountService,
		PaymentService:     paymentService,
		DebugReportService: debugReportService,
		EmailSender:        emailSender,
	}
}

func initializeHandlers(sc *services.ServiceContainer, storageInstance storage.Storage) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, sc.AuthService),
		ProfileHandler:      handlers.NewProfileHandler(baseHandler, sc.ProfileService),
		CampaignHandler:     handlers.NewCampaignHandler(baseHandler, sc.CampaignService, sc.FavoriteService),
		ApplicationHandler:  handlers.NewApplicationHandler(baseHandler, sc.ApplicationService, sc.StatusService),
		MessageHandler:      handlers.NewMessageHandler(baseHandler, sc.MessageService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, sc.NotificationSvc),
		BankAccountHandler:  handlers.NewBankAccountHandler(baseHandler, sc.BankAccountService),
		PaymentHandler:      handlers.NewPaymentHandler(baseHandler, sc.PaymentService),
		DebugReportHandler:  handlers.NewDebugReportHandler(baseHandler, sc.DebugReportService),
		UploadHandler:       handlers.NewUploadHandler(baseHandler, storageInstance),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))

	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		limiter := middleware.NewRedisLimiter(redisClient)
		router.Use(middleware.RateLimitMiddleware(limiter, "rl:global", 300, time.Minute))
		logger.Info("Redis rate limiting enabled", "addr", cfg.Redis.Addr)
	}

	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer tx.Rollback()

	var adminUser models.User
	result := tx.Where("email = ?", adminEmail).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		tx.Rollback()
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		PasswordHash: string(hashedPassword),
		Name:         "Administrator",
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
	}
	if err := tx.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)
	return tx.Commit().Error
}
