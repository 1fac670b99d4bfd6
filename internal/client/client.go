package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/avc-dev/rickandmorty-client/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBaseURL — корень публичного Rick and Morty API
const DefaultBaseURL = "https://rickandmortyapi.com/api"

// DefaultTimeout — таймаут запроса по умолчанию
const DefaultTimeout = 10 * time.Second

// Config задает параметры исходящей HTTP-сессии
type Config struct {
	// BaseURL — корень API; по умолчанию DefaultBaseURL
	BaseURL string
	// Timeout — таймаут одного запроса; по умолчанию DefaultTimeout
	Timeout time.Duration
	// HTTPClient переопределяет транспорт целиком; если задан,
	// Timeout игнорируется в пользу его собственных настроек
	HTTPClient *http.Client
}

// Client владеет переиспользуемой HTTP-сессией к Rick and Morty API.
// Экземпляр безопасен для конкурентных вызовов. Типичное использование:
//
//	c := client.New(client.Config{}, logger)
//	defer c.Close()
//
// defer гарантирует освобождение сессии на любом пути выхода.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *zap.Logger
	closed  atomic.Bool
}

// New создает клиент с готовой к работе сессией. Сетевых вызовов
// не выполняет. nil-логгер заменяется на no-op.
func New(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	baseURL := strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpc := cfg.HTTPClient
	if httpc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpc = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL: baseURL,
		httpc:   httpc,
		logger:  logger,
	}
}

// GetCharacter запрашивает персонажа по идентификатору: GET {base}/character/{id}.
// На статус вне 2xx возвращает *StatusError, на сетевой сбой или таймаут —
// *TransportError, на тело, не прошедшее схему, — *model.ValidationError.
// Любая ошибка касается только этого вызова, сессия остается рабочей.
func (c *Client) GetCharacter(ctx context.Context, id int) (model.Character, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/character/%d", c.baseURL, id))
	if err != nil {
		return model.Character{}, err
	}

	return model.ParseCharacter(body)
}

// Ping проверяет доступность API запросом к корню
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.get(ctx, c.baseURL)
	return err
}

// Close освобождает соединения пула и помечает сессию закрытой.
// Идемпотентен: повторные вызовы ничего не делают. После Close
// запросы завершаются ошибкой ErrClientClosed.
func (c *Client) Close() {
	if c.closed.Swap(true) {
		return
	}

	c.httpc.CloseIdleConnections()
}

// Closed сообщает, была ли сессия закрыта
func (c *Client) Closed() bool {
	return c.closed.Load()
}

func (c *Client) get(ctx context.Context, requestURL string) ([]byte, error) {
	if c.closed.Load() {
		return nil, ErrClientClosed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &TransportError{URL: requestURL, Err: err}
	}

	requestID := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Error("API request failed",
			zap.String("url", requestURL),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, &TransportError{URL: requestURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("failed to read API response",
			zap.String("url", requestURL),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, &TransportError{URL: requestURL, Err: err}
	}

	c.logger.Debug("API request",
		zap.String("url", requestURL),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
		zap.Int("size", len(body)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{Code: resp.StatusCode, Body: body, URL: requestURL}
	}

	return body, nil
}
