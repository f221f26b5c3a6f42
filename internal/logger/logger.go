// Package logger builds the zap logger used across mathdrill.
package logger

import (
	"go.uber.org/zap"

	"github.com/abhisek/mathdrill/internal/config"
)

// New returns a production logger when cfg.Env is "production" and a
// development logger otherwise.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Env == "production" {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}

// NewFile is New with output redirected to path. The TUI owns stdout and
// stderr, so interactive runs log here instead.
func NewFile(cfg *config.Config, path string) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	if cfg.Env == "production" {
		zc = zap.NewProductionConfig()
	}
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	return zc.Build()
}
