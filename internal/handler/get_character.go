package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/avc-dev/rickandmorty-client/internal/client"
	"github.com/avc-dev/rickandmorty-client/internal/model"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// GetCharacter обрабатывает GET /character/{id}: запрашивает персонажа
// во внешнем API и возвращает его JSON-представление
func (h *Handler) GetCharacter(w http.ResponseWriter, req *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(req, "id"))
	if err != nil {
		http.Error(w, "character id must be an integer", http.StatusBadRequest)
		return
	}

	character, err := h.api.GetCharacter(req.Context(), id)
	if err != nil {
		h.respondError(w, id, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(character); err != nil {
		h.logger.Error("failed to encode character",
			zap.Int("id", id),
			zap.Error(err),
		)
	}
}

// respondError транслирует ошибки клиента в статусы ответа шлюза.
// 404 внешнего API проходит как есть, остальные сбои — 502.
func (h *Handler) respondError(w http.ResponseWriter, id int, err error) {
	var statusErr *client.StatusError
	var validationErr *model.ValidationError

	switch {
	case errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound:
		http.Error(w, "character not found", http.StatusNotFound)
	case errors.As(err, &statusErr):
		h.logger.Error("unexpected status from API",
			zap.Int("id", id),
			zap.Int("status", statusErr.Code),
		)
		http.Error(w, "upstream API failure", http.StatusBadGateway)
	case errors.As(err, &validationErr):
		h.logger.Error("API response failed validation",
			zap.Int("id", id),
			zap.Error(err),
		)
		http.Error(w, "invalid upstream response", http.StatusBadGateway)
	default:
		h.logger.Error("API request failed",
			zap.Int("id", id),
			zap.Error(err),
		)
		http.Error(w, "upstream API unavailable", http.StatusBadGateway)
	}
}
