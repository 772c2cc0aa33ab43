package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/checkout-service/docs"
	"github.com/SergeyBogomolovv/checkout-service/internal/app"
	"github.com/SergeyBogomolovv/checkout-service/internal/checkout"
	"github.com/SergeyBogomolovv/checkout-service/internal/config"
	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/events"
	"github.com/SergeyBogomolovv/checkout-service/internal/gateway"
	"github.com/SergeyBogomolovv/checkout-service/internal/handler"
	"github.com/SergeyBogomolovv/checkout-service/internal/postgres"
	"github.com/SergeyBogomolovv/checkout-service/internal/repo"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
	"github.com/SergeyBogomolovv/checkout-service/internal/telemetry"
	"github.com/SergeyBogomolovv/checkout-service/pkg/cache"
	"github.com/SergeyBogomolovv/checkout-service/pkg/trm"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

const version = "1.0.0"

// @title           Checkout Service API
// @version         1.0
// @description     Storefront checkout, payment backend and order confirmation.
func main() {
	conf := config.New()
	logger := telemetry.NewLogger(conf.Env, os.Stdout)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	shutdownTracer, err := telemetry.InitTracerProvider(ctx, conf.Telemetry, version)
	panicIfErr("failed to init tracing", err)
	defer shutdownTracer(context.Background())

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	rdb := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Addr,
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})
	defer rdb.Close()
	panicIfErr("failed to connect to redis", rdb.Ping(ctx).Err())
	logger.Info("redis connected")

	stripeGateway, err := gateway.NewStripeGateway(logger, conf.Stripe.SecretKey)
	panicIfErr("failed to init payment gateway", err)

	producer := events.NewProducer(logger, conf.Kafka)
	defer producer.Close()

	pgRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db, trm.WithIsolation(sql.LevelReadCommitted))
	orderCache := cache.NewLRU[entities.Order](conf.Cache.Capacity, conf.Cache.TTL)

	orderService := service.NewOrderService(logger, service.Deps{
		TxManager: txManager,
		Orders:    pgRepo,
		Carts:     pgRepo,
		Identity:  service.NewIdentityResolver(logger, pgRepo),
		Gateway:   stripeGateway,
		Events:    producer,
		Cache:     orderCache,
	}, conf.Checkout.Currency)

	orchestrator := checkout.NewOrchestrator(logger,
		checkout.NewRedisRecoveryStore(logger, rdb, conf.Redis.PendingTTL),
		checkout.NewHTTPBackend(conf.Checkout.PaymentBackendURL, conf.Checkout.BackendTimeout),
		pgRepo,
		orderService,
		conf.Checkout.Currency,
	)

	handler.RegisterMetrics()
	prometheus.MustRegister(service.CacheSizeCollector(orderCache))
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(
		handler.NewCheckoutHandler(logger, orchestrator, conf.Checkout.Currency),
		handler.NewPaymentHandler(logger, orderService),
		handler.NewOrderHandler(logger, orderService),
	)
	if conf.Stripe.WebhookSecret != "" {
		app.SetHTTPHandlers(handler.NewWebhookHandler(logger, conf.Stripe.WebhookSecret, producer))
	}
	app.SetConsumers(kafkaHandler)
	app.SetStarters(orderCache)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		slog.Error(prefix, slog.Any("error", err))
		panic(prefix + ": " + err.Error())
	}
}
