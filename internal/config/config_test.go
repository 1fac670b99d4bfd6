package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBaseURL_Set проверяет валидацию базового URL API
func TestBaseURL_Set(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
		wantErr  bool
	}{
		{
			name:     "Valid https URL",
			value:    "https://rickandmortyapi.com/api",
			expected: "https://rickandmortyapi.com/api",
		},
		{
			name:     "Trailing slash trimmed",
			value:    "https://custom-api.example.com/api/",
			expected: "https://custom-api.example.com/api",
		},
		{
			name:     "Surrounding whitespace trimmed",
			value:    "  http://localhost:8080/api ",
			expected: "http://localhost:8080/api",
		},
		{
			name:    "Relative URL",
			value:   "/api",
			wantErr: true,
		},
		{
			name:    "Missing scheme",
			value:   "rickandmortyapi.com/api",
			wantErr: true,
		},
		{
			name:    "Non-http scheme",
			value:   "ftp://rickandmortyapi.com/api",
			wantErr: true,
		},
		{
			name:    "Empty value",
			value:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b BaseURL

			err := b.Set(tt.value)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, b.String())
		})
	}
}

// TestNetworkAddress_Set проверяет разбор адреса host:port
func TestNetworkAddress_Set(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected NetworkAddress
		wantErr  bool
	}{
		{
			name:     "Valid address",
			value:    "localhost:8080",
			expected: NetworkAddress{Host: "localhost", Port: 8080},
		},
		{
			name:     "Empty host",
			value:    ":9090",
			expected: NetworkAddress{Host: "", Port: 9090},
		},
		{
			name:    "Missing port",
			value:   "localhost",
			wantErr: true,
		},
		{
			name:    "Non-numeric port",
			value:   "localhost:http",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetworkAddress

			err := a.Set(tt.value)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, a)
			assert.Equal(t, tt.value, a.String())
		})
	}
}

// TestNetworkAddress_UnmarshalText проверяет чтение адреса из окружения
func TestNetworkAddress_UnmarshalText(t *testing.T) {
	var a NetworkAddress

	require.NoError(t, a.UnmarshalText([]byte("0.0.0.0:8000")))
	assert.Equal(t, "0.0.0.0:8000", a.String())
}

// TestBaseURL_UnmarshalText проверяет чтение базового URL из окружения
func TestBaseURL_UnmarshalText(t *testing.T) {
	var b BaseURL

	require.NoError(t, b.UnmarshalText([]byte("https://example.com/api")))
	assert.Equal(t, "https://example.com/api", b.String())

	assert.Error(t, b.UnmarshalText([]byte("not a url")))
}
