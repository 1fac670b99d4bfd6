package service

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const visitorCookieName = "visitor_token"

// ErrInvalidToken возвращается, когда токен посетителя не прошел проверку
var ErrInvalidToken = errors.New("invalid visitor token")

// VisitorTokenService выпускает и проверяет подписанные токены
// анонимных посетителей шлюза
type VisitorTokenService struct {
	secret []byte
}

// NewVisitorTokenService создает сервис токенов. Пустой секрет заменяется
// на эфемерный: выпущенные токены перестанут проходить проверку
// после перезапуска процесса.
func NewVisitorTokenService(secret string) *VisitorTokenService {
	if secret == "" {
		secret = uuid.New().String()
	}

	return &VisitorTokenService{
		secret: []byte(secret),
	}
}

// GenerateVisitorID генерирует уникальный идентификатор посетителя
func (s *VisitorTokenService) GenerateVisitorID() string {
	return uuid.New().String()
}

// GenerateToken создает JWT для посетителя
func (s *VisitorTokenService) GenerateToken(visitorID string) (string, error) {
	claims := jwt.MapClaims{
		"visitor_id": visitorID,
		"exp":        time.Now().Add(24 * time.Hour).Unix(),
		"iat":        time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken проверяет подпись токена и извлекает visitor_id
func (s *VisitorTokenService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	visitorID, ok := claims["visitor_id"].(string)
	if !ok {
		return "", fmt.Errorf("%w: visitor_id claim not found", ErrInvalidToken)
	}

	return visitorID, nil
}

// GetOrCreateVisitor извлекает visitor_id из куки запроса или выпускает
// новый токен и устанавливает куку. Недействительный токен молча
// заменяется новым — посетитель просто получает новую идентичность.
func (s *VisitorTokenService) GetOrCreateVisitor(r *http.Request, w http.ResponseWriter) (string, error) {
	cookie, err := r.Cookie(visitorCookieName)
	if err == nil && cookie.Value != "" {
		visitorID, err := s.ValidateToken(cookie.Value)
		if err == nil {
			return visitorID, nil
		}
	}

	visitorID := s.GenerateVisitorID()
	token, err := s.GenerateToken(visitorID)
	if err != nil {
		return "", fmt.Errorf("failed to generate visitor token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     visitorCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400,
	})

	return visitorID, nil
}
