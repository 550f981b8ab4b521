package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every environment-derived setting, read once at startup.
type Config struct {
	LogPath   string
	Debug     bool
	DBPath    string
	Port      string
	StaticDir string
}

// Load reads .env (if present) and the process environment. Missing
// variables fall back to defaults; there is nothing to validate.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		LogPath:   getEnv("LOG_PATH", "/var/log/games/ByThePowerOfMemory.log"),
		Debug:     strings.EqualFold(os.Getenv("DEBUG"), "true"),
		DBPath:    getEnv("DB_PATH", "./bythepowerofmemory.db"),
		Port:      getEnv("PORT", "8080"),
		StaticDir: getEnv("STATIC_DIR", "./static"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
