package main

import (
	"github.com/dmitrymomot/detectua/pkg/clientip"
	"github.com/dmitrymomot/detectua/pkg/httpserver"
	"github.com/dmitrymomot/detectua/pkg/ratelimiter"
	"github.com/dmitrymomot/detectua/pkg/redis"
)

type appConfig struct {
	Env          string `env:"APP_ENV" envDefault:"development"`
	Service      string `env:"SERVICE_NAME" envDefault:"detectua"`
	LogLevel     string `env:"LOG_LEVEL"`
	CacheSize    int    `env:"DETECT_CACHE_SIZE" envDefault:"4096"`
	MaxBatchSize int    `env:"DETECT_MAX_BATCH_SIZE" envDefault:"100"`
	MaxBodyBytes int64  `env:"DETECT_MAX_BODY_BYTES" envDefault:"1048576"`
	MaxUALength  int    `env:"DETECT_MAX_UA_LENGTH" envDefault:"2048"`
	HTTP         httpserver.Config
	ClientIP     clientip.Config
	RateLimit    ratelimiter.Config
	Redis        redis.Config
}
