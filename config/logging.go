package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// setLogger picks a zap logger for the given environment. Anything other than
// production or development is treated as a local run and logs at debug level.
func setLogger(env string) (*zap.Logger, error) {
	switch env {
	case "production":
		return zap.NewProduction()
	case "development":
		return zap.NewDevelopment(zap.IncreaseLevel(zapcore.InfoLevel))
	default:
		return zap.NewDevelopment()
	}
}
