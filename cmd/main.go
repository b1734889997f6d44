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
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/parkjy76/gw-stock-chart/internal/facades"
	"github.com/parkjy76/gw-stock-chart/internal/handlers"
	"github.com/parkjy76/gw-stock-chart/internal/logger"
	"github.com/parkjy76/gw-stock-chart/internal/middlewares"
	"github.com/parkjy76/gw-stock-chart/internal/migrations"
	"github.com/parkjy76/gw-stock-chart/internal/repositories"
	"github.com/parkjy76/gw-stock-chart/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-stock-chart API
// @version 1.0.0
// @description Gateway backend for stock chart analytics, discussion board, and memos
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		sessionTTLSecond,
		analyticsURL, analyticsTimeoutSecond,
		corsMaxAgeSecond,
		kafkaAddr, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		sessionTTLSecond,
		analyticsURL, analyticsTimeoutSecond,
		corsMaxAgeSecond,
		kafkaAddr, kafkaTopic,
	); err != nil {
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

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, session, analytics, CORS, and Kafka
// configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	sessionTTLSecond int,
	analyticsURL string, analyticsTimeoutSecond int,
	corsMaxAgeSecond int,
	kafkaAddr, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Session config
	if sessionTTLSecond, err = strconv.Atoi(getEnv("SESSION_TTL_SECOND", "3600")); err != nil {
		return
	}

	// External analytics service config
	analyticsURL = getEnv("ANALYTICS_URL", "http://localhost:5000")
	if analyticsTimeoutSecond, err = strconv.Atoi(getEnv("ANALYTICS_TIMEOUT_SECOND", "10")); err != nil {
		return
	}

	// CORS config
	if corsMaxAgeSecond, err = strconv.Atoi(getEnv("CORS_MAX_AGE_SECOND", "3600")); err != nil {
		return
	}

	// Kafka config. Empty address disables event publishing.
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "stock-chart-events")

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	sessionTTLSecond int,
	analyticsURL string, analyticsTimeoutSecond int,
	corsMaxAgeSecond int,
	kafkaAddr, kafkaTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Apply migrations
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		logger.Log.Fatal("migrations failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer, optional
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka event publishing enabled: %s topic %s", kafkaAddr, kafkaTopic)
	}

	sessionTTL := time.Duration(sessionTTLSecond) * time.Second

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	discussionReadRepo := repositories.NewDiscussionReadRepository(db)
	discussionWriteRepo := repositories.NewDiscussionWriteRepository(db)
	memoReadRepo := repositories.NewMemoReadRepository(db)
	memoWriteRepo := repositories.NewMemoWriteRepository(db)
	sessionRepo := repositories.NewSessionRepository(rdb, sessionTTL)

	// Initialize services and facades
	authService := services.NewAuthService(userReadRepo, userWriteRepo, kafkaWriter)
	boardService := services.NewBoardService(
		discussionReadRepo, discussionWriteRepo,
		memoReadRepo, memoWriteRepo,
		kafkaWriter,
	)
	analyticsFacade := facades.NewAnalyticsHTTPFacade(analyticsURL,
		time.Duration(analyticsTimeoutSecond)*time.Second)

	principal := handlers.PrincipalFunc(middlewares.PrincipalFromContext)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc:  func(r *http.Request, origin string) bool { return true },
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           corsMaxAgeSecond,
	}))
	r.Use(middlewares.SessionMiddleware(sessionRepo))

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService, sessionRepo, sessionTTL))
		r.Post("/logout", handlers.NewLogoutHandler(sessionRepo))
		r.Get("/status", handlers.NewStatusHandler(principal))
	})

	r.Route("/api/board", func(r chi.Router) {
		r.Get("/discussion", handlers.NewListDiscussionsHandler(boardService))
		r.Get("/discussion/search", handlers.NewSearchDiscussionsHandler(boardService))
		r.Get("/discussion/{id}", handlers.NewGetDiscussionHandler(boardService))
		r.Get("/memo", handlers.NewListMemosHandler(boardService, principal))
		r.Get("/memo/search", handlers.NewSearchMemosHandler(boardService, principal))
		r.Get("/memo/{id}", handlers.NewGetMemoHandler(boardService, principal))

		// Mutations run inside a per-request transaction
		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(db))
			r.Post("/discussion", handlers.NewCreateDiscussionHandler(boardService, principal))
			r.Put("/discussion/{id}", handlers.NewUpdateDiscussionHandler(boardService, principal))
			r.Delete("/discussion/{id}", handlers.NewDeleteDiscussionHandler(boardService, principal))
			r.Post("/memo", handlers.NewCreateMemoHandler(boardService, principal))
			r.Put("/memo/{id}", handlers.NewUpdateMemoHandler(boardService, principal))
			r.Delete("/memo/{id}", handlers.NewDeleteMemoHandler(boardService, principal))
		})
	})

	r.Route("/api/chart", func(r chi.Router) {
		r.Get("/data/{ticker}/{interval}/{ema}/{rsi}", handlers.NewChartDataHandler(analyticsFacade))
		r.Post("/analyze", handlers.NewAnalyzeChartHandler(analyticsFacade))
		r.Get("/index-data", handlers.NewIndexDataHandler(analyticsFacade))
		r.Post("/news/analyze", handlers.NewAnalyzeNewsHandler(analyticsFacade))
		r.Post("/ai/analyze", handlers.NewAnalyzeAIHandler(analyticsFacade))
		r.Post("/chart/analyze-patterns", handlers.NewAnalyzePatternsHandler(analyticsFacade))
		r.Get("/news/rss", handlers.NewNewsRSSHandler(analyticsFacade))
		r.Get("/portfolio/available-stocks", handlers.NewAvailableStocksHandler(analyticsFacade))
		r.Post("/portfolio/optimize", handlers.NewOptimizePortfolioHandler(analyticsFacade))
		r.Post("/chatbot/chat", handlers.NewChatbotHandler(analyticsFacade))
		r.Get("/health", handlers.NewHealthHandler(analyticsFacade))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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
