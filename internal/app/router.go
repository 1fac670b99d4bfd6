package app

import (
	"github.com/avc-dev/rickandmorty-client/internal/middleware"
	"github.com/avc-dev/rickandmorty-client/internal/service"
	"github.com/go-chi/chi/v5"
)

// newRouter создает и настраивает роутер шлюза
func (a *App) newRouter() *chi.Mux {
	r := chi.NewRouter()

	// Identity
	tokens := service.NewVisitorTokenService(a.config.TokenSecret)
	identity := middleware.NewIdentityMiddleware(tokens, a.logger)

	// Middleware: идентификация до логирования, чтобы visitor_id попадал в лог
	r.Use(identity.Identify)
	r.Use(middleware.Logger(a.logger))
	r.Use(middleware.GzipMiddleware(a.logger))

	// Routes
	r.Get("/ping", a.handler.Ping)
	r.Get("/character/{id}", a.handler.GetCharacter)

	return r
}
