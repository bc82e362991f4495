package rto

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/rtokit/pkg/logger"
)

// Config holds pass defaults read from the environment.
type Config struct {
	ExcludeExtraneousValues bool   `env:"RTO_EXCLUDE_EXTRANEOUS_VALUES" envDefault:"true"`
	ExposeDefaultValues     bool   `env:"RTO_EXPOSE_DEFAULT_VALUES" envDefault:"true"`
	ExposeValuesAsGetter    bool   `env:"RTO_EXPOSE_VALUES_AS_GETTER" envDefault:"false"`
	LogFailures             bool   `env:"RTO_LOG_FAILURES" envDefault:"false"`
	LogLevel                string `env:"RTO_LOG_LEVEL" envDefault:"info"`
	LogFormat               string `env:"RTO_LOG_FORMAT" envDefault:"text"`
}

var dotenvLoaded sync.Once

// LoadConfig reads Config from environment variables. A .env file in the
// working directory is loaded once first, if present.
func LoadConfig() (Config, error) {
	dotenvLoaded.Do(func() {
		// the .env file is optional
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// Options converts the configuration into pass options. It panics on an
// invalid log level or format, like logger.New.
func (c Config) Options() []Option {
	log := logger.New(
		logger.WithLevelName(c.LogLevel),
		logger.WithFormat(logger.Format(c.LogFormat)),
		logger.WithAttr(logger.Component("rto")),
		logger.WithContextExtractors(ShapePathExtractor),
	)

	opts := []Option{
		ExcludeExtraneousValues(c.ExcludeExtraneousValues),
		ExposeDefaultValues(c.ExposeDefaultValues),
		ExposeValuesAsGetter(c.ExposeValuesAsGetter),
		WithLogger(log),
	}
	if c.LogFailures {
		opts = append(opts, WithFailureHandler(LogFailures(log)))
	}
	return opts
}
