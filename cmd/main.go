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
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-wallet-ledger/internal/facades"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/handlers"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/logger"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/metrics"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/middlewares"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/repositories"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// sweepInterval is how often abandoned reservations and expired wallet
// locks are reclaimed.
const sweepInterval = time.Minute

// @title gw-wallet-ledger API
// @version 1.0.0
// @description Wallet ledger and split-payment settlement service
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		gwExchangerHost, gwExchangerPort,
		gatewayBaseURL, gatewayAPIKey, notifierURL,
		kafkaBrokers, kafkaTopic,
		logLevel, jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		gwExchangerHost, gwExchangerPort,
		gatewayBaseURL, gatewayAPIKey, notifierURL,
		kafkaBrokers, kafkaTopic,
		logLevel, jwtSecret, jwtExp,
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

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, gateway, Kafka, logging, and JWT
// configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	gwExchangerHost, gwExchangerPort string,
	gatewayBaseURL, gatewayAPIKey, notifierURL string,
	kafkaBrokers, kafkaTopic string,
	logLevel string,
	jwtSecretKey string, jwtExpSecond int,
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

	// Currency exchange gRPC config
	gwExchangerHost = getEnv("GW_EXCHANGER_HOST", "localhost")
	gwExchangerPort = getEnv("GW_EXCHANGER_PORT", "50051")

	// Payment gateway config
	gatewayBaseURL = getEnv("GATEWAY_BASE_URL", "http://localhost:9090")
	gatewayAPIKey = getEnv("GATEWAY_API_KEY", "")
	notifierURL = getEnv("NOTIFIER_WEBHOOK_URL", "http://localhost:9091/notify")

	// Kafka config
	kafkaBrokers = getEnv("KAFKA_BROKERS", "localhost:9092")
	kafkaTopic = getEnv("KAFKA_AUDIT_TOPIC", "wallet-audit")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, gRPC and HTTP
// clients, wires repositories, services and handlers, starts the
// background sweeps and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	gwExchangerHost, gwExchangerPort string,
	gatewayBaseURL, gatewayAPIKey, notifierURL string,
	kafkaBrokers, kafkaTopic string,
	logLevel string,
	jwtSecretKey string, jwtExpSecond int,
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
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", pgHost, pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Connect to the currency exchange gRPC service
	grpcAddr := fmt.Sprintf("%s:%s", gwExchangerHost, gwExchangerPort)
	conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to connect to gRPC service at %s: %w", grpcAddr, err)
	}
	defer conn.Close()
	exchangeClient := pb.NewExchangeServiceClient(conn)

	// Kafka writer for the audit topic
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(kafkaBrokers),
		Topic:    kafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// Initialize JWT validation
	tokener := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	runner := repositories.NewTxRunner(db, middlewares.SetTxToContext)

	walletReadRepo := repositories.NewWalletReadRepository(db, txGetter)
	walletWriteRepo := repositories.NewWalletWriteRepository(db, txGetter)
	lotReadRepo := repositories.NewLotReadRepository(db, txGetter)
	lotWriteRepo := repositories.NewLotWriteRepository(db, txGetter)
	freezeReadRepo := repositories.NewFreezeReadRepository(db, txGetter)
	freezeWriteRepo := repositories.NewFreezeWriteRepository(db, txGetter)
	txnReadRepo := repositories.NewTransactionReadRepository(db, txGetter)
	txnWriteRepo := repositories.NewTransactionWriteRepository(db, txGetter)
	lockReadRepo := repositories.NewWalletLockReadRepository(db, txGetter)
	lockWriteRepo := repositories.NewWalletLockWriteRepository(db, txGetter)
	disputeReadRepo := repositories.NewDisputeReadRepository(db, txGetter)
	disputeWriteRepo := repositories.NewDisputeWriteRepository(db, txGetter)
	intentRepo := repositories.NewPaymentIntentWriteRepository(db, txGetter)
	intentReadRepo := repositories.NewPaymentIntentReadRepository(db, txGetter)
	auditRepo := repositories.NewAuditLogWriteRepository(db, txGetter)
	rateCacheRepo := repositories.NewExchangeRateCacheRepository(rdb, 5*time.Minute)

	// Initialize facades
	exchangeFacade := facades.NewExchangeRatesGRPCFacade(exchangeClient)
	gatewayFacade := facades.NewGatewayHTTPFacade(gatewayBaseURL, gatewayAPIKey, 30*time.Second)
	notifierFacade := facades.NewNotifierHTTPFacade(notifierURL, 10*time.Second)

	// Initialize metrics
	collector := metrics.NewCollector()

	// Initialize services
	auditService := services.NewAuditService(auditRepo, kafkaWriter)
	allocator := services.NewLotLedgerService(lotReadRepo)
	freezeService := services.NewFreezeService(
		runner,
		walletReadRepo, walletWriteRepo,
		allocator, lotWriteRepo,
		freezeReadRepo, freezeWriteRepo,
		txnReadRepo, txnWriteRepo,
		auditService,
	)
	lockService := services.NewAccountLockService(
		runner,
		walletReadRepo, walletWriteRepo,
		lotReadRepo, lotWriteRepo,
		lockReadRepo, lockWriteRepo,
		auditService,
	)
	currencyService := services.NewCurrencyService(exchangeFacade, rateCacheRepo)
	splitPaymentService := services.NewSplitPaymentService(
		freezeService,
		gatewayFacade,
		walletReadRepo,
		intentRepo,
		intentReadRepo,
		currencyService,
		auditService,
		collector,
		fmt.Sprintf("http://%s:%s/api/v1/checkout/return", appHost, appPort),
		fmt.Sprintf("http://%s:%s/api/v1/checkout/cancelled", appHost, appPort),
	)
	disputeService := services.NewDisputeEscrowService(
		runner,
		disputeReadRepo, disputeWriteRepo,
		txnReadRepo, txnWriteRepo,
		lotWriteRepo,
		walletReadRepo, walletWriteRepo,
		auditService,
		notifierFacade,
	)
	topUpService := services.NewTopUpService(runner, walletWriteRepo, lotWriteRepo, txnWriteRepo, auditService)

	// Initialize handlers
	checkoutHandler := handlers.NewCheckoutHandler(splitPaymentService, tokener)
	confirmHandler := handlers.NewConfirmHandler(splitPaymentService, tokener)
	cancelHandler := handlers.NewCancelHandler(splitPaymentService, tokener)
	balanceHandler := handlers.NewBalanceHandler(walletReadRepo, lotReadRepo, tokener)
	topUpHandler := handlers.NewTopUpHandler(topUpService, tokener)
	walletFreezeHandler := handlers.NewAdminWalletFreezeHandler(lockService, tokener)
	walletUnfreezeHandler := handlers.NewAdminWalletUnfreezeHandler(lockService, tokener)
	lotFreezeHandler := handlers.NewAdminLotFreezeHandler(lockService, tokener)
	lotUnfreezeHandler := handlers.NewAdminLotUnfreezeHandler(lockService, tokener)
	openDisputeHandler := handlers.NewOpenDisputeHandler(disputeService, tokener)
	disputeEvidenceHandler := handlers.NewDisputeEvidenceHandler(disputeService, tokener)
	resolveDisputeHandler := handlers.NewResolveDisputeHandler(disputeService, tokener)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokener))

			r.Post("/checkout", checkoutHandler)
			r.Post("/checkout/confirm", confirmHandler)
			r.Post("/checkout/cancel", cancelHandler)

			r.Get("/wallet/balance", balanceHandler)
			r.Post("/wallet/topup", topUpHandler)

			r.Post("/disputes", openDisputeHandler)
			r.Post("/disputes/{disputeID}/evidence", disputeEvidenceHandler)

			r.Post("/admin/wallets/freeze", walletFreezeHandler)
			r.Post("/admin/wallets/unfreeze", walletUnfreezeHandler)
			r.Post("/admin/lots/{lotID}/freeze", lotFreezeHandler)
			r.Post("/admin/lots/{lotID}/unfreeze", lotUnfreezeHandler)
			r.Post("/admin/disputes/{disputeID}/resolve", resolveDisputeHandler)
		})
	})

	r.Handle("/metrics", collector.Handler())
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

	// Background sweeps for abandoned reservations and expired locks
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctxShutdown.Done():
				return
			case <-ticker.C:
				now := time.Now()
				if n, err := freezeService.ProcessExpiredFreezes(ctxShutdown, now); err != nil {
					logger.Log.Errorw("freeze sweep failed", "error", err)
				} else if n > 0 {
					logger.Log.Infow("released expired reservations", "count", n)
				}
				if n, err := lockService.ProcessExpiredLocks(ctxShutdown, now); err != nil {
					logger.Log.Errorw("lock sweep failed", "error", err)
				} else if n > 0 {
					logger.Log.Infow("lifted expired wallet locks", "count", n)
				}
			}
		}
	}()

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
