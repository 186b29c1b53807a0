package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/garden-shop/internal/app"
	"github.com/SergeyBogomolovv/garden-shop/internal/auth"
	"github.com/SergeyBogomolovv/garden-shop/internal/config"
	"github.com/SergeyBogomolovv/garden-shop/internal/handler"
	"github.com/SergeyBogomolovv/garden-shop/internal/llm"
	"github.com/SergeyBogomolovv/garden-shop/internal/middleware"
	"github.com/SergeyBogomolovv/garden-shop/internal/notify"
	"github.com/SergeyBogomolovv/garden-shop/internal/postgres"
	"github.com/SergeyBogomolovv/garden-shop/internal/repo"
	"github.com/SergeyBogomolovv/garden-shop/internal/service"
	"github.com/SergeyBogomolovv/garden-shop/pkg/cache"
	"github.com/SergeyBogomolovv/garden-shop/pkg/trm"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/joho/godotenv"
)

// @title           Garden Shop API
// @version         1.0
// @description     Заказы и резервирование остатков садового магазина
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to migrate db", postgres.Migrate(context.Background(), db, logger))

	txManager := trm.NewManager(db)
	stockRepo := repo.NewStockRepo(db)
	variantRepo := repo.NewVariantRepo(db)
	orderRepo := repo.NewOrderRepo(db)
	addressRepo := repo.NewAddressRepo(db)
	userRepo := repo.NewUserRepo(db)
	quoteRepo := repo.NewQuoteRepo(db)

	orderCache := newCache(conf)
	publisher := notify.NewKafkaPublisher(conf.Kafka)
	tokens := auth.NewTokenManager(conf.Auth.JWTSecret, conf.Auth.TokenTTL, conf.Auth.Issuer)
	ollama := llm.New(logger, conf.Ollama)

	resolver := service.NewVariantResolver(variantRepo)
	assembler := service.NewOrderAssembler(resolver, stockRepo, conf.Orders.MaxLines)
	store := service.NewOrderStore(logger, txManager, orderRepo, stockRepo)

	orderService := service.NewOrderService(logger, addressRepo, assembler, store, orderCache, publisher, service.OrderServiceConfig{
		DefaultPageSize:     conf.Orders.DefaultPageSize,
		MaxPageSize:         conf.Orders.MaxPageSize,
		NotificationTimeout: conf.Orders.NotificationTimeout,
	})
	addressService := service.NewAddressService(logger, txManager, addressRepo)
	authService := service.NewAuthService(logger, userRepo, tokens)
	stockService := service.NewStockService(logger, txManager, stockRepo)
	quoteService := service.NewQuoteService(logger, txManager, assembler, quoteRepo)
	chatService := service.NewChatService(logger, ollama, resolver, stockRepo, addressRepo, orderService)
	notificationService := service.NewNotificationService(logger, userRepo, notify.NewRenderer(), notify.NewSMTPMailer(conf.SMTP))

	authMiddleware := middleware.Auth(tokens)

	handler.RegisterMetrics(prometheus.DefaultRegisterer)

	app := app.New(logger, conf, prometheus.DefaultRegisterer)

	app.SetHTTPHandlers(
		handler.NewAuthHandler(logger, authService, authMiddleware),
		handler.NewOrderHandler(logger, orderService, authMiddleware),
		handler.NewAddressHandler(logger, addressService, authMiddleware),
		handler.NewStockHandler(logger, stockService, authMiddleware),
		handler.NewQuoteHandler(logger, quoteService, authMiddleware),
		handler.NewChatHandler(logger, chatService, authMiddleware),
	)
	app.SetConsumers(handler.NewNotificationConsumer(logger, conf.Kafka, notificationService))
	app.SetStarters(orderCache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})
	app.SetClosers(
		func() error {
			// уведомления пишутся в publisher, поэтому ждем их до его закрытия
			orderService.Wait()
			return publisher.Close()
		},
		orderCache.Close,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))

	select {
	case <-ctx.Done():
	case err := <-app.ServerErr():
		logger.Error("shutting down after server failure", slog.Any("error", err))
	}
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type orderCache interface {
	service.Cache
	Start(ctx context.Context) error
	Close() error
}

func newCache(conf config.Config) orderCache {
	if conf.Cache.Backend == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     conf.Redis.Addr,
			Password: conf.Redis.Password,
			DB:       conf.Redis.DB,
		})
		return cache.NewRedisCache(client, "order", conf.Cache.TTL)
	}
	return cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
