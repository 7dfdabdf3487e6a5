// Package config loads typed configuration structs from environment
// variables.
//
// Struct fields are mapped with `env` tags understood by
// github.com/caarlos0/env/v11; optional .env files are read with
// github.com/joho/godotenv. Each configuration type is parsed once per
// process and served from memory afterwards.
//
//	type Config struct {
//		Env       string `env:"APP_ENV" envDefault:"development"`
//		CacheSize int    `env:"UA_CACHE_SIZE" envDefault:"1024"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Errors wrap ErrParsingConfig or ErrLoadingEnvFile and can be checked with
// errors.Is.
package config
