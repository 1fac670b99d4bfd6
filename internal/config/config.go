package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const defaultAPIBaseURL = "https://rickandmortyapi.com/api"

// Config — конфигурация шлюза и клиента Rick and Morty API
type Config struct {
	// RunAddress — адрес HTTP-сервера шлюза
	RunAddress NetworkAddress `env:"RUN_ADDRESS"`
	// APIBaseURL — корень внешнего API
	APIBaseURL BaseURL `env:"API_BASE_URL"`
	// APITimeout — таймаут одного запроса к внешнему API
	APITimeout time.Duration `env:"API_TIMEOUT"`
	// TokenSecret — секрет подписи визиторских токенов; пустое значение
	// означает эфемерный секрет на время работы процесса
	TokenSecret string `env:"TOKEN_SECRET"`
}

// Load собирает конфигурацию: значения по умолчанию, затем переменные
// окружения, затем флаги командной строки
func Load() (*Config, error) {
	cfg := &Config{
		RunAddress: NetworkAddress{Host: "localhost", Port: 8080},
		APIBaseURL: BaseURL(defaultAPIBaseURL),
		APITimeout: 10 * time.Second,
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	flag.Var(&cfg.RunAddress, "a", "address to run the gateway HTTP server")
	flag.Var(&cfg.APIBaseURL, "b", "base URL of the Rick and Morty API")
	flag.DurationVar(&cfg.APITimeout, "t", cfg.APITimeout, "timeout for requests to the API")
	flag.Parse()

	if cfg.APITimeout <= 0 {
		return nil, fmt.Errorf("API timeout must be positive, got %s", cfg.APITimeout)
	}

	return cfg, nil
}
