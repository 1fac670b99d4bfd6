package handler

import (
	"net/http"

	"go.uber.org/zap"
)

// Ping проверяет доступность внешнего API
func (h *Handler) Ping(w http.ResponseWriter, req *http.Request) {
	if err := h.api.Ping(req.Context()); err != nil {
		h.logger.Error("API ping failed", zap.Error(err))
		w.WriteHeader(http.StatusBadGateway)
		return
	}

	w.WriteHeader(http.StatusOK)
}
