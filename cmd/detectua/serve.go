package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/detectua/internal/api"
	"github.com/dmitrymomot/detectua/pkg/clientip"
	"github.com/dmitrymomot/detectua/pkg/config"
	"github.com/dmitrymomot/detectua/pkg/httpserver"
	"github.com/dmitrymomot/detectua/pkg/logger"
	"github.com/dmitrymomot/detectua/pkg/ratelimiter"
	"github.com/dmitrymomot/detectua/pkg/redis"
	"github.com/dmitrymomot/detectua/pkg/requestid"
	"github.com/dmitrymomot/detectua/pkg/useragent"
)

func serve(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	envFile := fs.String("env", "", "load variables from this .env file before reading the environment")
	addr := fs.String("addr", "", "listen address, overrides HTTP_ADDR")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *envFile != "" {
		if err := config.LoadEnv(*envFile); err != nil {
			return err
		}
	}
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}
	if *addr != "" {
		cfg.HTTP.Addr = *addr
	}
	if cfg.CacheSize <= 0 {
		return fmt.Errorf("DETECT_CACHE_SIZE must be positive, got %d", cfg.CacheSize)
	}
	if cfg.MaxUALength <= 0 {
		return fmt.Errorf("DETECT_MAX_UA_LENGTH must be positive, got %d", cfg.MaxUALength)
	}
	resolver, err := clientip.NewFromConfig(cfg.ClientIP)
	if err != nil {
		return err
	}

	log := newLogger(cfg)
	logger.SetAsDefault(log)

	var (
		readiness   []httpserver.Check
		redisClient goredis.UniversalClient
	)
	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()
		redisClient = client
		readiness = append(readiness, redis.Healthcheck(client))
	}

	parser := useragent.NewCachedParser(cfg.CacheSize, useragent.WithMaxCachedLength(cfg.MaxUALength))
	limiter, closeLimiter, err := newLimiter(cfg, redisClient)
	if err != nil {
		return err
	}
	defer closeLimiter()

	h := api.NewHandler(
		api.WithParser(parser),
		api.WithRateLimiter(limiter),
		api.WithClientIP(resolver),
		api.WithMaxUserAgentLength(cfg.MaxUALength),
		api.WithLogger(log.With(logger.Component("api"))),
		api.WithMaxBatchSize(cfg.MaxBatchSize),
		api.WithMaxBodyBytes(cfg.MaxBodyBytes),
	)

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log.With(logger.Component("httpserver"))),
		httpserver.WithStopHook(func() {
			s := parser.Stats()
			log.Info("detector cache",
				slog.Uint64("hits", s.Hits),
				slog.Uint64("misses", s.Misses),
				slog.Uint64("evictions", s.Evictions),
				slog.Int("size", s.Size),
			)
		}),
	)
	return srv.Run(ctx, api.Router(h, readiness...))
}

// newLimiter returns nil when rate limiting is disabled. Buckets live in
// Redis when a client is given and in process memory otherwise.
func newLimiter(cfg appConfig, client goredis.UniversalClient) (ratelimiter.Limiter, func(), error) {
	if cfg.RateLimit.Disabled {
		return nil, func() {}, nil
	}
	if cfg.RateLimit.Capacity < cfg.MaxBatchSize {
		return nil, nil, fmt.Errorf("RATE_LIMIT_CAPACITY (%d) must be at least DETECT_MAX_BATCH_SIZE (%d)",
			cfg.RateLimit.Capacity, cfg.MaxBatchSize)
	}
	var (
		store   ratelimiter.Store
		closeFn = func() {}
	)
	if client != nil {
		store = ratelimiter.NewRedisStore(client, ratelimiter.WithKeyPrefix(cfg.Service+":ratelimit:"))
	} else {
		mem := ratelimiter.NewMemoryStore()
		store, closeFn = mem, mem.Close
	}

	bucket, err := ratelimiter.NewBucket(store, cfg.RateLimit)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return bucket, closeFn, nil
}

func newLogger(cfg appConfig) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Service),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			useragent.LoggerExtractor(),
		),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}
	return logger.New(opts...)
}
