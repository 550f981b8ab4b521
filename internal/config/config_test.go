package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"LOG_PATH", "DEBUG", "DB_PATH", "PORT", "STATIC_DIR"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "/var/log/games/ByThePowerOfMemory.log", cfg.LogPath)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "./bythepowerofmemory.db", cfg.DBPath)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "./static", cfg.StaticDir)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LOG_PATH", "/tmp/memory.log")
	t.Setenv("DEBUG", "TRUE")
	t.Setenv("DB_PATH", "/tmp/memory.db")
	t.Setenv("PORT", "9090")
	t.Setenv("STATIC_DIR", "/srv/spa")

	cfg := Load()

	assert.Equal(t, "/tmp/memory.log", cfg.LogPath)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/memory.db", cfg.DBPath)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/srv/spa", cfg.StaticDir)
}

func TestDebugParsing(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"True", true},
		{"false", false},
		{"yes", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Setenv("DEBUG", tt.value)
		assert.Equal(t, tt.want, Load().Debug, "DEBUG=%q", tt.value)
	}
}
