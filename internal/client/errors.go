package client

import (
	"errors"
	"fmt"
)

// ErrClientClosed возвращается на любой вызов после Close
var ErrClientClosed = errors.New("client is closed")

// StatusError означает, что API ответил статусом вне диапазона 2xx.
// Тело ответа сохраняется как есть и не разбирается в Character.
type StatusError struct {
	Code int
	Body []byte
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.Code, e.URL)
}

// TransportError означает, что запрос не удалось выполнить:
// DNS, отказ соединения, TLS или истекший таймаут. Повторов нет,
// исходная причина доступна через Unwrap.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
