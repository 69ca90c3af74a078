// Package config provides environment-driven configuration for the
// whereisit server.
package config

import "os"

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	DB       DBConfig
	JWT      JWTConfig
	Firebase FirebaseConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Path string
}

type JWTConfig struct {
	SigningKey string // secret key for JWT signing
	Issuer     string // JWT issuer claim
}

type FirebaseConfig struct {
	ProjectID       string // empty disables Firebase ID-token verification
	CredentialsPath string
}

type CORSConfig struct {
	Origin string // frontend origin allowed to send credentials
}

// Load returns application configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		DB: DBConfig{
			Path: getEnv("DB_PATH", "whereisit.db"),
		},
		JWT: JWTConfig{
			SigningKey: getEnv("JWT_SECRET", ""),
			Issuer:     getEnv("JWT_ISSUER", "whereisit"),
		},
		Firebase: FirebaseConfig{
			ProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
			CredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
		},
		CORS: CORSConfig{
			Origin: getEnv("CORS_ORIGIN", "http://localhost:5173"),
		},
	}
}

// SecureCookies reports whether cookies should carry the Secure flag.
func (c *Config) SecureCookies() bool {
	return c.Server.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
