package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLog(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{"full payload", []byte(`{"message":"round started","timestamp":"2026-08-30T12:00:00Z"}`)},
		{"missing message", []byte(`{"timestamp":"2026-08-30T12:00:00Z"}`)},
		{"empty object", []byte(`{}`)},
		{"no body", nil},
		{"malformed json", []byte(`{"message":`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			w := env.do(t, http.MethodPost, "/api/log", tt.body)
			require.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
		})
	}
}
