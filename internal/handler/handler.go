package handler

import (
	"context"

	"github.com/avc-dev/rickandmorty-client/internal/model"
	"go.uber.org/zap"
)

// CharacterProvider определяет интерфейс API-клиента для обработчиков шлюза
type CharacterProvider interface {
	GetCharacter(ctx context.Context, id int) (model.Character, error)
	Ping(ctx context.Context) error
}

// Handler обрабатывает HTTP-запросы шлюза
type Handler struct {
	api    CharacterProvider
	logger *zap.Logger
}

// New создает новый экземпляр Handler
func New(api CharacterProvider, logger *zap.Logger) *Handler {
	return &Handler{
		api:    api,
		logger: logger,
	}
}
