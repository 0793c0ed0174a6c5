package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/lingonote/lingonote/pkg/validator"

	_ "github.com/lingonote/lingonote/docs"
	"github.com/lingonote/lingonote/internal/adapter/handler"
	"github.com/lingonote/lingonote/internal/adapter/repository"
	"github.com/lingonote/lingonote/internal/infrastructure/cache"
	"github.com/lingonote/lingonote/internal/infrastructure/database"
	"github.com/lingonote/lingonote/internal/infrastructure/external/oauth"
	httpmw "github.com/lingonote/lingonote/internal/infrastructure/http/middleware"
	"github.com/lingonote/lingonote/internal/infrastructure/storage"
	"github.com/lingonote/lingonote/internal/usecase/auth"
	meetinguse "github.com/lingonote/lingonote/internal/usecase/meeting"
	pkgai "github.com/lingonote/lingonote/pkg/ai"
	"github.com/lingonote/lingonote/pkg/config"
	"github.com/lingonote/lingonote/pkg/jwt"
)

// @title           LingoNote API
// @version         1.0
// @description     API for LingoNote: meeting notes in, translated and summarized notes out.

// @host      localhost:8080
// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Set-Cookie", "Cookie"},
		AllowCredentials: true,
	}))

	// Sized above the 16 MiB image cap plus base64 and JSON overhead.
	e.Use(middleware.BodyLimit("24M"))

	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Schema is normally managed through the sql-migrate CLI; applying on
	// boot is a development convenience only.
	if cfg.Database.AutoMigrate {
		if cfg.IsProduction() {
			log.Fatalf("DB_AUTO_MIGRATE is enabled in production. Disable it and manage schema with the migrate CLI.")
		}
		log.Println("🔄 Applying migrations on boot (development only) ...")
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping boot-time migrations; use scripts/migrate for schema changes")
	}

	// OAuth state store: Redis when enabled, in-process otherwise
	var stateStore oauth.Store
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		stateStore = cache.NewRedisStore(redisClient)
	} else {
		log.Println("📦 Redis disabled, using in-memory state store")
		stateStore = cache.NewMemoryStore()
	}

	// Initialize blob storage
	log.Println("🗄️  Connecting to MinIO...")
	minioClient, err := storage.NewMinIOClient(&cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO: %v", err)
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	userRepo := repository.NewUserRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	translationRepo := repository.NewTranslationRepository(db)

	// Initialize AI clients. Gemini is always constructed: OCR and
	// summarization run on it even when translation is local.
	log.Println("🤖 Initializing AI providers...")
	geminiClient, err := pkgai.NewGeminiClient(context.Background(), &cfg.AI.Gemini)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}

	var provider pkgai.TranslationProvider = geminiClient
	if cfg.AI.Provider == "ollama" {
		ollamaClient := pkgai.NewOllamaClient(&cfg.AI.Ollama)
		provider = ollamaClient
		if cfg.AI.FallbackEnabled {
			log.Println("🔁 Local provider with single-shot Gemini fallback enabled")
			provider = pkgai.NewFallbackProvider(ollamaClient, geminiClient, logger)
		} else {
			log.Println("🖥️  Local provider without fallback")
		}
	} else {
		log.Println("☁️  Cloud provider (Gemini)")
	}

	// Initialize meeting workflow
	log.Println("📝 Initializing meeting service...")
	meetingService := meetinguse.NewMeetingService(
		meetingRepo,
		translationRepo,
		provider,
		geminiClient,
		geminiClient,
		minioClient,
		logger,
	)

	// Initialize OAuth provider and state manager
	log.Println("🔐 Initializing OAuth provider...")
	googleProvider := oauth.NewGoogleProvider(
		cfg.OAuth.Google.ClientID,
		cfg.OAuth.Google.ClientSecret,
		cfg.OAuth.Google.RedirectURL,
	)
	stateManager := oauth.NewStateManager(stateStore, cfg.OAuth.StateTTL)

	// Initialize JWT manager
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize OAuth service
	oauthService := auth.NewOAuthService(userRepo, googleProvider, stateManager, jwtManager)

	// Initialize handlers and routes
	log.Println("🛣️  Setting up routes...")
	authHandler := handler.NewAuth(oauthService, logger, cfg)
	meetingHandler := handler.NewMeetingHandler(meetingService, logger)
	authEchoMW := httpmw.EchoAuth(oauthService)

	router := handler.NewRouter(cfg, authHandler, meetingHandler, authEchoMW)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
