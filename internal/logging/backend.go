package logging

import (
	"time"

	"go.uber.org/zap"
)

func LogBackendCall(logger *zap.Logger, method, path string, status int, duration time.Duration, err error) {
	fields := []zap.Field{
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
		zap.Duration("duration", duration),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}

	logger.Debug("backend call", fields...)
}
