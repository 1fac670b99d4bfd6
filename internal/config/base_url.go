package config

import (
	"fmt"
	"net/url"
	"strings"
)

// BaseURL — абсолютный корень внешнего API. Значение валидируется
// при установке, завершающий слеш убирается.
type BaseURL string

func (b BaseURL) String() string {
	return string(b)
}

func (b *BaseURL) Set(value string) error {
	value = strings.TrimSpace(value)

	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid base URL format: %s", value)
	}

	*b = BaseURL(strings.TrimSuffix(value, "/"))

	return nil
}

// UnmarshalText читает базовый URL из переменной окружения
func (b *BaseURL) UnmarshalText(text []byte) error {
	return b.Set(string(text))
}
