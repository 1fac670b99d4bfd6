package app

import (
	"github.com/avc-dev/rickandmorty-client/internal/client"
	"github.com/avc-dev/rickandmorty-client/internal/config"
	"github.com/avc-dev/rickandmorty-client/internal/handler"
	"go.uber.org/zap"
)

// App представляет шлюз к Rick and Morty API
type App struct {
	config  *config.Config
	logger  *zap.Logger
	api     *client.Client
	handler *handler.Handler
}

// New создает новый экземпляр приложения
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	api := client.New(client.Config{
		BaseURL: cfg.APIBaseURL.String(),
		Timeout: cfg.APITimeout,
	}, logger)

	return &App{
		config:  cfg,
		logger:  logger,
		api:     api,
		handler: handler.New(api, logger),
	}, nil
}

// Run запускает приложение
func Run() error {
	app, err := New()
	if err != nil {
		return err
	}
	defer app.Close()

	return app.start()
}

// Close освобождает сессию API-клиента и сбрасывает буфер логгера.
// Идемпотентен.
func (a *App) Close() {
	if a.api != nil {
		a.api.Close()
	}
	if a.logger != nil {
		a.logger.Sync()
	}
}
