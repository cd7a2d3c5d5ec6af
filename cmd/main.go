package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	catalogapp "github.com/srisatyasai136/review/application/catalog"
	feedbackapp "github.com/srisatyasai136/review/application/feedback"
	userapp "github.com/srisatyasai136/review/application/user"
	"github.com/srisatyasai136/review/cmd/config"
	redisclient "github.com/srisatyasai136/review/cmd/redis"
	_ "github.com/srisatyasai136/review/docs"
	catalogRepo "github.com/srisatyasai136/review/repository/catalog"
	feedbackRepo "github.com/srisatyasai136/review/repository/feedback"
	"github.com/srisatyasai136/review/repository/migration"
	redisRepo "github.com/srisatyasai136/review/repository/redis"
	txRepo "github.com/srisatyasai136/review/repository/tx"
	userRepo "github.com/srisatyasai136/review/repository/user"
	"github.com/srisatyasai136/review/thirdparty/mailer"
	"github.com/srisatyasai136/review/thirdparty/rabbitmq"
	"github.com/srisatyasai136/review/transport"
	"github.com/srisatyasai136/review/utils/logger"
	validatorx "github.com/srisatyasai136/review/utils/validator"
	"go.uber.org/zap"
)

// @title DEMO CLASS FEEDBACK API
// @version 1.0
// @description Demo class feedback API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}

	logger.Info("Starting server", zap.String("env", cfg.Environment))
	validatorx.Init()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if cfg.Database.AutoMigrate {
		if err := migration.Run(context.Background(), db.DB); err != nil {
			logger.Fatal("err migrate db", zap.Error(err))
		}
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// feedback events are optional; without a broker submissions still succeed
	var publisher feedbackapp.EventPublisher
	if cfg.RabbitMQ.Enabled {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	CatalogRepo := catalogRepo.NewCatalogRepository(db)
	FeedbackRepo := feedbackRepo.NewFeedbackRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo, mailer.NewMailer(cfg.Mail))
	FeedbackApp := feedbackapp.NewFeedbackApp(UserRepo, CatalogRepo, FeedbackRepo, publisher)
	CatalogApp := catalogapp.NewCatalogApp(TxRepo, CatalogRepo)

	httpTransport := transport.NewTransport(UserApp, FeedbackApp, CatalogApp, cfg.Internal.APIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
