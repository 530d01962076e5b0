package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores the service settings. Values are read in order:
// .env file (if present) → environment → command-line flags.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
}

// LoadConfig reads the configuration. A missing .env file is fine when
// the environment carries the settings directly.
func LoadConfig() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	config := Config{
		HTTPPort:   envOrDefault("HTTP_PORT", "8080"),
		DBHost:     envOrDefault("DB_HOST", "localhost"),
		DBPort:     envOrDefault("DB_PORT", "5432"),
		DBUser:     envOrDefault("DB_USER", "postgres"),
		DBPassword: envOrDefault("DB_PASSWORD", "postgres"),
		DBName:     envOrDefault("DB_NAME", "cargopay"),
		DBSslMode:  envOrDefault("DB_SSLMODE", "disable"),
	}

	pflag.StringVarP(&config.HTTPPort, "port", "p", config.HTTPPort, "port to listen on")
	pflag.StringVar(&config.DBHost, "db-host", config.DBHost, "postgres host")
	pflag.StringVar(&config.DBName, "db-name", config.DBName, "postgres database name")
	pflag.Parse()

	return config
}

// DSN assembles the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
