package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration holds the static settings needed to run the service.
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:"8080"`                 // Server port
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // Database connection URI
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // Database name
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Allowed origins (comma separated, * = all)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Allow credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Max requests per window (0 = disabled)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Window length in seconds
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Enable rate limiting
	// TLS/HTTPS configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Enable HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Path to certificate file (.crt or .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Path to private key file (.key)
}

// getEnvPath returns the env file path for the current environment.
func getEnvPath() string {
	// Default to the development environment.
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// fmt.Printf because the logger is not initialized yet here.
		fmt.Printf("Cannot resolve current directory: %v\n", err)
		return ""
	}

	// Walk up looking for config/env.
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig reads configuration from the environment file for GO_ENV.
func NewConfig(files ...string) *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		fmt.Printf("config/env directory not found\n")
		return nil
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Printf("Cannot load env file at %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Failed to parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
