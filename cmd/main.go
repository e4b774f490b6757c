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
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sbilibin2017/equiv/internal/catalog"
	"github.com/sbilibin2017/equiv/internal/facades"
	"github.com/sbilibin2017/equiv/internal/handlers"
	"github.com/sbilibin2017/equiv/internal/logger"
	"github.com/sbilibin2017/equiv/internal/middlewares"
	"github.com/sbilibin2017/equiv/internal/repositories"
	"github.com/sbilibin2017/equiv/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Snapshot store backends selectable with RATES_STORE.
const (
	storeRedis    = "redis"
	storePostgres = "postgres"
	storeMemory   = "memory"
)

// config holds everything parseConfig reads from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	RatesURL             string
	RatesHTTPTimeout     time.Duration
	RatesRefreshInterval time.Duration
	RatesStore           string

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExp          time.Duration

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	KafkaBrokers []string
	KafkaTopic   string
}

// @title equiv API
// @version 1.0.0
// @description Unit and currency conversion service
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
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
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, rate source, storage, messaging and logging configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	seconds := func(key, defaultValue string) (time.Duration, error) {
		n, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return time.Duration(n) * time.Second, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// Rate source config
	cfg.RatesURL = getEnv("RATES_URL", facades.DefaultExchangeRatesURL)
	if cfg.RatesHTTPTimeout, err = seconds("RATES_HTTP_TIMEOUT_SECOND", "10"); err != nil {
		return
	}
	if cfg.RatesRefreshInterval, err = seconds("RATES_REFRESH_INTERVAL_SECOND", "3600"); err != nil {
		return
	}
	cfg.RatesStore = getEnv("RATES_STORE", storeRedis)
	switch cfg.RatesStore {
	case storeRedis, storePostgres, storeMemory:
	default:
		err = fmt.Errorf("RATES_STORE: unknown store %q", cfg.RatesStore)
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	if cfg.RedisExp, err = seconds("REDIS_EXP_SECOND", "0"); err != nil {
		return
	}

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", facades.DefaultRatesTopic)

	return
}

// run initializes the logger, snapshot store, rate source, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	if err := catalog.ValidateAliases(); err != nil {
		return err
	}

	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Snapshot store
	store, closeStore, err := openStore(ctxShutdown, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	// Rate source and optional publisher
	reader := facades.NewExchangeRatesHTTPFacade(&http.Client{Timeout: cfg.RatesHTTPTimeout}, cfg.RatesURL)

	var opts []services.CurrencyOption
	if len(cfg.KafkaBrokers) > 0 {
		writer := facades.NewExchangeRatesKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer writer.Close()
		opts = append(opts, services.WithPublisher(facades.NewExchangeRatesKafkaPublisher(writer)))
		log.Infof("Publishing exchange rates to %s on %v", cfg.KafkaTopic, cfg.KafkaBrokers)
	}

	// Initialize services
	rates := services.NewCurrencyService(reader, store, opts...)
	rates.Hydrate(ctxShutdown)
	converter := services.NewConverterService(rates)

	if cfg.RatesRefreshInterval > 0 {
		go rates.RunRefreshLoop(ctxShutdown, cfg.RatesRefreshInterval)
	} else {
		go rates.FetchRates(ctxShutdown)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: newRouter(log, converter, rates, fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

// openStore connects the snapshot store selected by RATES_STORE.
func openStore(ctx context.Context, cfg config) (services.ExchangeRatesCacheStore, func(), error) {
	switch cfg.RatesStore {
	case storeRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("redis connection error: %w", err)
		}
		return repositories.NewExchangeRateCacheRepository(rdb, cfg.RedisExp), func() { rdb.Close() }, nil

	case storePostgres:
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
		logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

		db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres connection error: %w", err)
		}
		db.SetMaxOpenConns(cfg.PGMaxOpenConns)
		db.SetMaxIdleConns(cfg.PGMaxIdleConns)
		if err := repositories.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return repositories.NewExchangeRateSQLRepository(db), func() { db.Close() }, nil

	default:
		return repositories.NewExchangeRateMemoryRepository(), func() {}, nil
	}
}

// newRouter mounts every API route under /api/v1 plus the swagger UI.
func newRouter(log *zap.SugaredLogger, converter *services.ConverterService, rates *services.CurrencyService, swaggerURL string) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	r.Route("/api/v1", func(r chi.Router) {
		handlers.RegisterCategoryHandlers(r,
			handlers.NewListCategoriesHandler(converter),
			handlers.NewListUnitsHandler(converter),
		)
		handlers.RegisterConvertHandlers(r,
			handlers.NewConvertHandler(converter),
			handlers.NewConvertAllHandler(converter),
		)
		handlers.RegisterConvertPhraseHandler(r, handlers.NewConvertPhraseHandler(converter))
		handlers.RegisterResolveHandler(r, handlers.NewResolveHandler(catalog.Resolve))
		handlers.RegisterExchangeRatesHandlers(r,
			handlers.NewGetExchangeRatesHandler(rates),
			handlers.NewRefreshExchangeRatesHandler(rates, rates),
		)
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	return r
}
