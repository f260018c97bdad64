// Package logging builds the application's zap logger from config.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"towerkrieg-local/config"
)

// Service names the application in every log line.
const Service = "towerkrieg-local"

// New returns a sugared logger writing JSON lines to cfg.File. An empty File
// returns a no-op logger.
func New(cfg config.LogConfig) (*zap.SugaredLogger, error) {
	if cfg.File == "" {
		return zap.NewNop().Sugar(), nil
	}

	level := zapcore.InfoLevel
	if cfg.Level != "" {
		l, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		level = l
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = "json"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.OutputPaths = []string{cfg.File}
	zc.ErrorOutputPaths = []string{cfg.File}
	zc.Sampling = nil
	zc.InitialFields = map[string]interface{}{"service": Service}

	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", cfg.File, err)
	}
	return l.Sugar(), nil
}
