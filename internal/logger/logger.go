package logger

import (
	"go.uber.org/zap"

	"github.com/flipdeck/flip/internal/config"
)

// New builds the application logger. The terminal belongs to the UI, so logs
// go to the configured file; with no file configured the logger is a no-op.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.LogFile == "" {
		return zap.NewNop(), nil
	}

	var zc zap.Config
	if cfg.Env == "production" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.OutputPaths = []string{cfg.LogFile}
	zc.ErrorOutputPaths = []string{cfg.LogFile}

	return zc.Build()
}
