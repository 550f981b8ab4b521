package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger settings.
type Config struct {
	Path  string // log file destination, empty means stderr
	Debug bool
}

// New builds a zap logger writing to cfg.Path. When the log file cannot be
// opened (missing directory, permissions) it falls back to stderr so the
// process still comes up with working logging.
func New(cfg Config) (*zap.Logger, error) {
	zapConfig := buildConfig(cfg.Debug)
	if cfg.Path != "" {
		zapConfig.OutputPaths = []string{cfg.Path}
		zapConfig.ErrorOutputPaths = []string{cfg.Path}
	}

	logger, err := zapConfig.Build()
	if err != nil && cfg.Path != "" {
		zapConfig.OutputPaths = []string{"stderr"}
		zapConfig.ErrorOutputPaths = []string{"stderr"}
		logger, err = zapConfig.Build()
	}
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("service", "ByThePowerOfMemory")), nil
}

func buildConfig(debug bool) zap.Config {
	var zapConfig zap.Config
	if debug {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
	}
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.EncoderConfig.TimeKey = "timestamp"
	return zapConfig
}
