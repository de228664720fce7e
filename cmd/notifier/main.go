package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	apidelivery "github.com/plmkit/notifier/internal/api/handlers/delivery"
	"github.com/plmkit/notifier/internal/api/router"
	"github.com/plmkit/notifier/internal/api/server"
	"github.com/plmkit/notifier/internal/channel"
	"github.com/plmkit/notifier/internal/config"
	"github.com/plmkit/notifier/internal/dispatcher"
	mqdelivery "github.com/plmkit/notifier/internal/rabbitmq/handlers/delivery"
	"github.com/plmkit/notifier/internal/rabbitmq/queue"
	"github.com/plmkit/notifier/internal/recipient"
	deliveryrepo "github.com/plmkit/notifier/internal/repository/delivery"
	"github.com/plmkit/notifier/internal/worker"
	"github.com/plmkit/notifier/pkg/email"
	"github.com/plmkit/notifier/pkg/sms"
	"github.com/plmkit/notifier/pkg/wecom"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewDeliveryQueue(ch)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create delivery queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	repo := deliveryrepo.NewRepository(db)

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	emailClient := email.NewClient(
		cfg.Channels.Email.SMTPHost,
		cfg.Channels.Email.SMTPPort,
		cfg.Channels.Email.Username,
		cfg.Channels.Email.Password,
		cfg.Channels.Email.From,
	)
	smsClient := sms.NewClient(cfg.Channels.SMS.Endpoint, cfg.Channels.SMS.APIKey, cfg.Channels.SMS.Sign)
	wecomClient := wecom.NewClient(cfg.Channels.Wecom.CorpID, cfg.Channels.Wecom.CorpSecret, cfg.Channels.Wecom.AgentID)

	registry := channel.NewRegistry(
		channel.NewSystemHandler(repo),
		channel.NewEmailHandler(emailClient, cfg.Channels.Email.Enabled),
		channel.NewSMSHandler(smsClient, cfg.Channels.SMS.Enabled, cfg.Channels.SMS.DailyCap, cfg.Channels.SMS.HourlyCap),
		channel.NewWecomHandler(wecomClient, cfg.Channels.Wecom.Enabled),
		channel.NewWebhookHandler(cfg.Channels.Webhook.Enabled, cfg.Channels.Webhook.Timeout),
	)

	resolver := recipient.NewResolver(repo, repo, cfg.Delivery.AdminUserID)

	disp := dispatcher.New(
		repo, q, resolver, registry, rdb,
		cfg.Delivery.RetrySchedule, cfg.Delivery.MaxRetries, cfg.Retry,
	)

	messageHandler := mqdelivery.NewHandler(disp)
	deliveryWorker := worker.New(q, q, messageHandler, repo)

	go deliveryWorker.Run(ctx, cfg.Retry, cfg.Workers.Count)

	apiHandler := apidelivery.NewHandler(disp, repo, val)
	r := router.New(apiHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Error().Err(err).Msg("http server stopped")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
