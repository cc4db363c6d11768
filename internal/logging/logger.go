package logging

import (
	"go.uber.org/zap"
)

const (
	envLocal = "local"
	envDev   = "dev"
)

// New builds the application logger: human readable for local and dev
// environments, JSON everywhere else.
func New(env string) (*zap.Logger, error) {
	switch env {
	case envLocal, envDev:
		return zap.NewDevelopment()
	default:
		return zap.NewProduction()
	}
}
