package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost     string
	ServicePort     int
	ShutdownTimeout time.Duration
	GinMode         string
	LogLevel        string
	LogJSON         bool

	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	DBSlowThreshold   time.Duration

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	CorsOrigins []string
}

// NewConfig reads config/<CONFIG_NAME>.toml (default "config"), then .env,
// then the environment. A missing config file is not an error.
func NewConfig() (*Config, error) {
	var err error
	configName := "config"
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		v.AddConfigPath(p)
	}
	v.AddConfigPath("config")
	v.AddConfigPath(".")

	v.SetDefault("ServiceHost", "0.0.0.0")
	v.SetDefault("ServicePort", 8080)
	v.SetDefault("ShutdownTimeout", "10s")
	v.SetDefault("GinMode", "release")
	v.SetDefault("LogLevel", "info")
	v.SetDefault("LogJSON", false)
	v.SetDefault("DBMaxOpenConns", 20)
	v.SetDefault("DBMaxIdleConns", 5)
	v.SetDefault("DBConnMaxLifetime", "30m")
	v.SetDefault("DBSlowThreshold", "200ms")
	v.SetDefault("MinioBucket", "cruises-img")
	v.SetDefault("MinioUseSSL", false)
	v.SetDefault("CorsOrigins", []string{})

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		logrus.Warnf("config file %q not found, using defaults", configName)
	}

	// .env is optional; real environment variables win over it
	err = godotenv.Load()
	if err != nil {
		logrus.Warn("Error loading .env file, using environment only")
	}

	for key, env := range map[string]string{
		"ServiceHost":     "SERVICE_HOST",
		"ServicePort":     "SERVICE_PORT",
		"ShutdownTimeout": "SHUTDOWN_TIMEOUT",
		"GinMode":         "GIN_MODE",
		"LogLevel":        "LOG_LEVEL",
		"LogJSON":         "LOG_JSON",
		"MinioEndpoint":   "MINIO_ENDPOINT",
		"MinioAccessKey":  "MINIO_ACCESS_KEY",
		"MinioSecretKey":  "MINIO_SECRET_KEY",
		"MinioBucket":     "MINIO_BUCKET",
		"MinioUseSSL":     "MINIO_USE_SSL",
		"CorsOrigins":     "CORS_ORIGINS",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	err = v.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	logrus.Info("config parsed")
	return cfg, nil
}
