package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/segmentio/kafka-go"

	"github.com/skobelevsky/authgate/internal/facades"
	"github.com/skobelevsky/authgate/internal/handlers"
	"github.com/skobelevsky/authgate/internal/jwt"
	"github.com/skobelevsky/authgate/internal/logger"
	"github.com/skobelevsky/authgate/internal/mail"
	"github.com/skobelevsky/authgate/internal/middlewares"
	"github.com/skobelevsky/authgate/internal/migrations"
	"github.com/skobelevsky/authgate/internal/repositories"
	"github.com/skobelevsky/authgate/internal/services"
	"github.com/skobelevsky/authgate/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything the process needs, resolved once at startup.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	jwtSecretKey string
	jwtExpSecond int

	smtpHost     string
	smtpPort     string
	smtpUsername string
	smtpPassword string
	smtpFrom     string
	resetBaseURL string

	geminiAPIKey string
	geminiAPIURL string
	geminiModel  string

	kafkaAddr  string
	kafkaTopic string

	s3Endpoint      string
	s3Region        string
	s3Bucket        string
	s3AccessKey     string
	s3SecretKey     string
	s3PublicBaseURL string
}

// @title authgate API
// @version 1.0.0
// @description Authentication backend with accessibility settings and an AI proxy
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and resolves all
// application configuration, with defaults for local development.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	cfg := &config{
		appHost:  getEnv("APP_HOST", "localhost"),
		appPort:  getEnv("APP_PORT", "8080"),
		logLevel: getEnv("APP_LOG_LEVEL", "info"),

		pgHost:     getEnv("POSTGRES_HOST", "localhost"),
		pgUser:     getEnv("POSTGRES_USER", "user"),
		pgPassword: getEnv("POSTGRES_PASSWORD", "password"),
		pgDB:       getEnv("POSTGRES_DB", "authgate"),

		jwtSecretKey: getEnv("JWT_SECRET_KEY", "my_super_secret_key"),

		smtpHost:     getEnv("SMTP_HOST", ""),
		smtpPort:     getEnv("SMTP_PORT", "587"),
		smtpUsername: getEnv("SMTP_USERNAME", ""),
		smtpPassword: getEnv("SMTP_PASSWORD", ""),
		smtpFrom:     getEnv("SMTP_FROM", "no-reply@localhost"),
		resetBaseURL: getEnv("RESET_BASE_URL", "http://localhost:3000"),

		geminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		geminiAPIURL: getEnv("GEMINI_API_URL", "https://generativelanguage.googleapis.com"),
		geminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		kafkaAddr:  getEnv("KAFKA_ADDR", ""),
		kafkaTopic: getEnv("KAFKA_TOPIC", "auth-events"),

		s3Endpoint:      getEnv("S3_ENDPOINT", ""),
		s3Region:        getEnv("S3_REGION", "us-east-1"),
		s3Bucket:        getEnv("S3_BUCKET", ""),
		s3AccessKey:     getEnv("S3_ACCESS_KEY", ""),
		s3SecretKey:     getEnv("S3_SECRET_KEY", ""),
		s3PublicBaseURL: getEnv("S3_PUBLIC_BASE_URL", ""),
	}

	var err error
	if cfg.pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return nil, err
	}
	if cfg.pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return nil, err
	}
	if cfg.pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return nil, err
	}
	// 30 days by default.
	if cfg.jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "2592000")); err != nil {
		return nil, err
	}

	return cfg, nil
}

// run initializes the logger, database, migrations, external providers, and
// the HTTP server. It sets up routes, applies middleware, and handles
// graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.pgHost, cfg.pgPort, cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "err", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "err", err)
		return err
	}

	// Run migrations before serving any traffic.
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		logger.Log.Errorw("migrations failed", "err", err)
		return err
	}
	logger.Log.Info("Migrations applied")

	// Initialize the token issuer
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.jwtSecretKey),
		jwt.WithExpiration(time.Duration(cfg.jwtExpSecond)*time.Second),
	)

	// Optional Kafka writer for auth events
	var events services.KafkaWriter
	if cfg.kafkaAddr != "" {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(cfg.kafkaAddr),
			Topic:    cfg.kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kw.Close()
		events = kw
		logger.Log.Infof("Kafka events enabled on %s topic %s", cfg.kafkaAddr, cfg.kafkaTopic)
	} else {
		logger.Log.Info("Kafka not configured, auth events will only be logged")
	}

	// Mailer degrades to logging reset URLs when SMTP is not configured.
	mailer := mail.New(cfg.smtpHost, cfg.smtpPort, cfg.smtpUsername, cfg.smtpPassword,
		cfg.smtpFrom, cfg.resetBaseURL)

	// Optional object storage for profile pictures
	var uploader storage.Uploader
	if cfg.s3Bucket != "" {
		s3up, err := storage.NewS3Uploader(ctx, cfg.s3Endpoint, cfg.s3Region, cfg.s3Bucket,
			cfg.s3AccessKey, cfg.s3SecretKey, cfg.s3PublicBaseURL)
		if err != nil {
			logger.Log.Errorw("object storage init failed", "err", err)
			return err
		}
		uploader = s3up
	} else {
		logger.Log.Info("S3 not configured, profile picture uploads disabled")
	}

	gemini := facades.NewGeminiFacade(cfg.geminiAPIKey, cfg.geminiAPIURL, cfg.geminiModel)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	settingsReadRepo := repositories.NewSettingsReadRepository(db)
	settingsWriteRepo := repositories.NewSettingsWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, events)
	passwordService := services.NewPasswordService(userReadRepo, userWriteRepo, mailer, events)
	userService := services.NewUserService(userReadRepo, userWriteRepo, settingsWriteRepo, uploader)
	settingsService := services.NewSettingsService(settingsReadRepo, settingsWriteRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))
		r.Post("/forgot-password", handlers.NewForgotPasswordHandler(passwordService))
		r.Get("/verify-reset-key", handlers.NewVerifyResetKeyHandler(passwordService))
		r.Post("/reset-password", handlers.NewResetPasswordHandler(passwordService))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens))
			r.Post("/logout", handlers.NewLogoutHandler())
			r.Get("/me", handlers.NewGetMeHandler(userService))
			r.Put("/me", handlers.NewUpdateMeHandler(userService))
			r.Post("/update-email", handlers.NewUpdateEmailHandler(userService))
			r.Put("/change-password", handlers.NewChangePasswordHandler(passwordService))
			r.Get("/accessibility-settings", handlers.NewGetSettingsHandler(settingsService))
			r.Put("/accessibility-settings", handlers.NewUpdateSettingsHandler(settingsService))
			r.Post("/upload-profile-picture", handlers.NewUploadPictureHandler(userService))
			r.Post("/gemini", handlers.NewGeminiHandler(gemini))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
