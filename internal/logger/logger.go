package logger

import (
	"strings"

	"go.uber.org/zap"
)

// New builds a JSON production logger for "prod"/"production" and a
// human-readable development logger otherwise.
func New(mode string) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	return cfg.Build()
}
