package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/budgetbank/budget-api/internal/command"
	"github.com/budgetbank/budget-api/internal/config"
	"github.com/budgetbank/budget-api/internal/events"
	"github.com/budgetbank/budget-api/internal/handler"
	"github.com/budgetbank/budget-api/internal/logger"
	"github.com/budgetbank/budget-api/internal/middleware"
	"github.com/budgetbank/budget-api/internal/query"
	redisClient "github.com/budgetbank/budget-api/internal/redis"
	"github.com/budgetbank/budget-api/internal/repository"
)

const (
	serviceName    = "budget-api"
	serviceVersion = "1.0.0"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		boot := logger.New("info")
		boot.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.New(cfg.LogLevel)
	logger.SetDefault(log)

	// Database connection (write store)
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}

	if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Redis connection (read model store + event streaming)
	redis, err := redisClient.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redis.Close()

	// --- CQRS wiring ---
	publisher := events.NewPublisher(redis.Client)

	writeRepo := repository.NewAccountRepository(db)
	readRepo := repository.NewAccountReadRepository(writeRepo, redis.Client)

	accountSvc := command.NewAccountCommandService(writeRepo, readRepo, publisher)
	ledgerSvc := command.NewLedgerCommandService(writeRepo, readRepo, publisher)
	querySvc := query.NewAccountQueryService(readRepo)

	accountHandler := handler.NewAccountHandler(accountSvc, querySvc)
	transactionHandler := handler.NewTransactionHandler(ledgerSvc, querySvc)

	// Setup router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(cfg.CORSOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.String(http.StatusOK, "%s v%s", serviceName, serviceVersion)
		})
		api.POST("/accounts", accountHandler.CreateAccount)
		api.GET("/accounts/:user", accountHandler.GetAccount)
		api.DELETE("/accounts/:user", accountHandler.DeleteAccount)
		api.POST("/accounts/:user/transactions", transactionHandler.AddTransaction)
		api.GET("/accounts/:user/transactions", transactionHandler.ListTransactions)
		api.GET("/accounts/:user/transactions/:id", transactionHandler.GetTransaction)
		api.DELETE("/accounts/:user/transactions/:id", transactionHandler.RemoveTransaction)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Read-model projector: replays mutations from the event stream so the
	// Redis views converge even when a synchronous cache write was lost.
	go func() {
		subscriber := events.NewSubscriber(redis.Client, events.SubscriberConfig{
			Group:    "budget-api-projector",
			Consumer: "projector-1",
			Stream:   events.BudgetEventsStream,
			Handler:  query.NewReadModelProjector(readRepo).HandleEvent,
		})
		if err := subscriber.Start(ctx); err != nil && err != context.Canceled {
			log.Warn().Err(err).Msg("projector stopped")
		}
	}()

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("budget service starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Info().Msg("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
