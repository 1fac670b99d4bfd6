package app

import (
	"net/http"

	"go.uber.org/zap"
)

// start запускает HTTP сервер шлюза
func (a *App) start() error {
	router := a.newRouter()

	a.logger.Info("Starting gateway",
		zap.String("address", a.config.RunAddress.String()),
		zap.String("api_base_url", a.config.APIBaseURL.String()),
	)

	err := http.ListenAndServe(a.config.RunAddress.String(), router)
	if err != nil {
		a.logger.Error("Server failed", zap.Error(err))
		return err
	}

	return nil
}
