package app

import (
	"github.com/launchforge/launchforge-backend/internal/pkg/logger"
	"github.com/launchforge/launchforge-backend/internal/utils"
)

type Config struct {
	JWTSecretKey string
	Environment  string
	Version      string
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	environment := utils.GetEnv("ENVIRONMENT", "development", log)
	version := utils.GetEnv("SERVICE_VERSION", "dev", log)
	return Config{
		JWTSecretKey: jwtSecretKey,
		Environment:  environment,
		Version:      version,
	}
}
