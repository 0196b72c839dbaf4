package config

import (
	"go.uber.org/zap"
)

// NewLogger builds the structured logger that gets injected into services
// and controllers. There is deliberately no package-level logger.
func NewLogger() (*zap.Logger, error) {
	if getEnv("APP_ENV", "development") == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
