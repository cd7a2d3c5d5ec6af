package main

import (
	"context"
	"os/signal"
	"syscall"

	feedbackapp "github.com/srisatyasai136/review/application/feedback"
	"github.com/srisatyasai136/review/cmd/config"
	"github.com/srisatyasai136/review/thirdparty/mailer"
	"github.com/srisatyasai136/review/thirdparty/rabbitmq"
	"github.com/srisatyasai136/review/utils/logger"
	"go.uber.org/zap"
)

// Consumer emails trainers about feedback submitted through the API.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	handler := feedbackapp.NewTrainerNotifier(mailer.NewMailer(cfg.Mail))
	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, handler)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("Consumer running", zap.String("env", cfg.Environment))

	<-ctx.Done()
	logger.Info("Consumer stopped")
}
