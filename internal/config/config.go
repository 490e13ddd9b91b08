package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config содержит настройки калькулятора
type Config struct {
	MaxPrincipal    float64
	MaxPayment      float64
	MaxPeriods      int
	MaxRate         float64
	LogLevel        string
	OTELEndpoint    string
	OTELServiceName string
	MetricsFile     string
}

// Default возвращает конфигурацию по умолчанию без чтения окружения
func Default() *Config {
	return &Config{
		MaxPrincipal:    1e12,
		MaxPayment:      1e12,
		MaxPeriods:      12000,
		MaxRate:         1000,
		LogLevel:        "WARN",
		OTELServiceName: "loancalc",
	}
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	def := Default()
	cfg := &Config{
		MaxPrincipal:    getEnvFloat("MAX_PRINCIPAL", def.MaxPrincipal),
		MaxPayment:      getEnvFloat("MAX_PAYMENT", def.MaxPayment),
		MaxPeriods:      getEnvInt("MAX_PERIODS", def.MaxPeriods),
		MaxRate:         getEnvFloat("MAX_RATE", def.MaxRate),
		LogLevel:        getEnvString("LOG_LEVEL", def.LogLevel),
		OTELEndpoint:    getEnvString("OTEL_ENDPOINT", def.OTELEndpoint),
		OTELServiceName: getEnvString("OTEL_SERVICE_NAME", def.OTELServiceName),
		MetricsFile:     getEnvString("METRICS_FILE", def.MetricsFile),
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
