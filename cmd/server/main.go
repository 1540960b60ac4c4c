package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/techhunt/api/internal/api"
	"github.com/techhunt/api/internal/api/handler"
	"github.com/techhunt/api/internal/core/ports"
	"github.com/techhunt/api/internal/core/service"
	"github.com/techhunt/api/internal/infrastructure/config"
	"github.com/techhunt/api/internal/infrastructure/db/memory"
	"github.com/techhunt/api/internal/infrastructure/db/mongo"
	"github.com/techhunt/api/internal/infrastructure/db/redis"
	"github.com/techhunt/api/internal/infrastructure/queue"
	"github.com/techhunt/api/pkg/logger"
)

// @title                       TechHunt API
// @version                     1.0
// @description                 Tech product catalog with token identity and admin/moderator roles.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the token.
func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "techhunt-api",
	})

	st, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open store")
	}
	defer st.close()

	cache, rdb := openCache(ctx, cfg, log)
	if rdb != nil {
		st.health["redis"] = redis.NewPinger(rdb)
		defer func() { _ = rdb.Close() }()
	}

	activity := service.NewActivityService(st.activity, logger.For("activity"))
	dispatcher := queue.NewDispatcher(cfg.Activity.Workers, activity, logger.For("dispatcher"))
	// Workers keep draining after the signal; Close stops them.
	dispatcher.Start(context.WithoutCancel(ctx))

	var productCache ports.ProductCache
	if cache != nil {
		productCache = cache
	}

	router := api.NewRouter(api.Dependencies{
		Logger:      log,
		Tokens:      service.NewTokenService(cfg.TokenSecret),
		Credentials: st.users,
		Users:       service.NewUserService(st.users, logger.For("users")),
		Products:    service.NewProductService(st.products, productCache, dispatcher, logger.For("products")),
		Reviews:     service.NewReviewService(st.reviews, logger.For("reviews")),
		Cart:        service.NewCartService(st.cart, logger.For("cart")),
		Health:      st.health,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Str("store", cfg.Store).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	// Handlers still running after a failed Shutdown have their activity dropped.
	dispatcher.Close()
	log.Info().Msg("shutdown complete")
}

// store bundles the repositories selected by STORE.
type store struct {
	users    ports.UserRepository
	products ports.ProductRepository
	reviews  ports.ReviewRepository
	cart     ports.CartRepository
	activity ports.ActivityRepository
	health   map[string]handler.Pinger
	close    func()
}

func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*store, error) {
	if cfg.Store == config.StoreMemory {
		log.Warn().Msg("using in-memory store, data is lost on restart")
		return &store{
			users:    memory.NewUserRepository(),
			products: memory.NewProductRepository(),
			reviews:  memory.NewReviewRepository(),
			cart:     memory.NewCartRepository(),
			activity: memory.NewActivityRepository(),
			health:   map[string]handler.Pinger{},
			close:    func() {},
		}, nil
	}

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  "techhunt-api",
	})
	if err != nil {
		return nil, err
	}

	users := mongo.NewUserRepository(db)
	products := mongo.NewProductRepository(db)
	reviews := mongo.NewReviewRepository(db)
	activity := mongo.NewActivityRepository(db)
	if err := mongo.EnsureIndexes(ctx, users, products, reviews, activity); err != nil {
		log.Warn().Err(err).Msg("index creation failed")
	}

	return &store{
		users:    users,
		products: products,
		reviews:  reviews,
		cart:     mongo.NewCartRepository(db),
		activity: activity,
		health:   map[string]handler.Pinger{"mongodb": mongo.NewPinger(db)},
		close:    func() { disconnect(client, log) },
	}, nil
}

func disconnect(client *mongodriver.Client, log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect")
	}
}

// openCache connects the product cache. Any failure disables caching.
func openCache(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*redis.ProductCache, *goredis.Client) {
	if cfg.Redis.Addr == "" {
		log.Info().Msg("product cache disabled")
		return nil, nil
	}
	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, product cache disabled")
		return nil, nil
	}
	return redis.NewProductCache(rdb, cfg.Redis.CacheTTL), rdb
}
