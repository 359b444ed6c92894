package config

import "github.com/joho/godotenv"

type LoggerConfig struct {
	Endpoint     string
	ServiceName  string
	IsProduction bool
}

type Config struct {
	Logger LoggerConfig
}

func NewConfig() *Config {
	_ = godotenv.Load()
	return &Config{
		Logger: LoggerConfig{
			Endpoint:     getStringEnv("OTEL_ENDPOINT", "localhost:4317"),
			ServiceName:  getStringEnv("OTEL_SERVICE_NAME", "cartsim"),
			IsProduction: getBoolEnv("IS_PRODUCTION", false),
		},
	}
}
