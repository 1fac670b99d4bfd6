package middleware

import (
	"context"
	"net/http"

	"github.com/avc-dev/rickandmorty-client/internal/service"
	"go.uber.org/zap"
)

// VisitorIDKey is the key used to store visitor ID in context
type VisitorIDKey string

const (
	// VisitorIDContextKey is the context key for visitor ID
	VisitorIDContextKey VisitorIDKey = "visitor_id"
)

// IdentityMiddleware представляет миддлвар анонимной идентификации
// посетителей шлюза
type IdentityMiddleware struct {
	tokens *service.VisitorTokenService
	logger *zap.Logger
}

// NewIdentityMiddleware создает новый экземпляр IdentityMiddleware
func NewIdentityMiddleware(tokens *service.VisitorTokenService, logger *zap.Logger) *IdentityMiddleware {
	return &IdentityMiddleware{
		tokens: tokens,
		logger: logger,
	}
}

// Identify возвращает миддлвар, который присваивает посетителю
// подписанную куку (или использует уже существующую) и добавляет
// visitor_id в контекст запроса
func (im *IdentityMiddleware) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		visitorID, err := im.tokens.GetOrCreateVisitor(r, w)
		if err != nil {
			im.logger.Error("failed to identify visitor", zap.Error(err))
			http.Error(w, "Identification failed", http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), VisitorIDContextKey, visitorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetVisitorIDFromContext извлекает visitor_id из контекста запроса
func GetVisitorIDFromContext(ctx context.Context) (string, bool) {
	visitorID, ok := ctx.Value(VisitorIDContextKey).(string)
	return visitorID, ok
}
